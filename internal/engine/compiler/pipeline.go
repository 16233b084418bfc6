package compiler

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

// Job is one cache-gated compilation.
type Job struct {
	Request domain.CompilationRequest
	// CacheDir and CacheKey locate the cache record of the input.
	CacheDir string
	CacheKey string
	// Fragments are source files appended to the input when present.
	Fragments []string
	Client    domain.ClientKind
	Template  string
}

// Result describes what a compilation did.
type Result struct {
	// Compiled is true when the engine ran.
	Compiled bool
	// Written is true when the output file was replaced.
	Written bool
	// Restored is true when a missing output was rewritten from the cache.
	Restored bool
}

// Pipeline runs detector, compiler and writer for one input.
type Pipeline struct {
	detector *Detector
	compiler *Compiler
	writer   *Writer
	hasher   ports.Hasher
	tracer   ports.Tracer
	logger   ports.Logger
	now      func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	store ports.CacheStore,
	hasher ports.Hasher,
	engine ports.Engine,
	tracer ports.Tracer,
	logger ports.Logger,
) *Pipeline {
	writer := NewWriter()
	return &Pipeline{
		detector: NewDetector(store, hasher, writer, logger),
		compiler: NewCompiler(engine),
		writer:   writer,
		hasher:   hasher,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
	}
}

// AutoCompile compiles the job's input when its cache record says so and
// publishes the result. On failure the previous output stays in place.
func (p *Pipeline) AutoCompile(ctx context.Context, job Job) (res Result, err error) {
	req := &job.Request
	ctx, span := p.startSpan(ctx, job.Client, job.Template, req)
	defer func() {
		span.SetAttribute("compiled", res.Compiled)
		span.SetAttribute("written", res.Written)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	decision, err := p.detector.Check(job.CacheDir, job.CacheKey, req.InputPath, req.ImportPaths, req.Force)
	if err != nil {
		return res, err
	}

	if !decision.Recompile {
		span.SetAttribute("cached", true)
		if decision.Prior.Compiled != "" && !p.writer.Exists(req.OutputPath) {
			if err := p.writer.Write(req.OutputPath, decision.Prior.Compiled); err != nil {
				return res, err
			}
			res.Written, res.Restored = true, true
		}
		return res, nil
	}

	css, err := p.compile(ctx, req, job.Fragments)
	if err != nil {
		return res, err
	}
	res.Compiled = true

	// The record is stamped with the compile time so a rebuild always
	// supersedes its predecessor while untouched sources stay below it.
	next := domain.CacheRecord{
		SourceIdentity: req.InputPath,
		LastModified:   max(decision.Snapshot.Updated, p.now().UnixNano()),
		Files:          decision.Snapshot.Files,
		ContentHash:    p.hasher.HashContent([]byte(css)),
		Compiled:       css,
	}

	res.Written, err = p.detector.Commit(job.CacheDir, job.CacheKey, decision.Prior, next, req.OutputPath)
	return res, err
}

// CompileTemplate compiles and writes unconditionally. No cache record is
// consulted or stored.
func (p *Pipeline) CompileTemplate(ctx context.Context, req *domain.CompilationRequest, fragments []string) (res Result, err error) {
	ctx, span := p.startSpan(ctx, "", "", req)
	defer func() {
		span.SetAttribute("written", res.Written)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	css, err := p.compile(ctx, req, fragments)
	if err != nil {
		return res, err
	}
	res.Compiled = true

	if err := p.writer.Write(req.OutputPath, css); err != nil {
		return res, err
	}
	res.Written = true
	return res, nil
}

func (p *Pipeline) compile(ctx context.Context, req *domain.CompilationRequest, fragmentPaths []string) (string, error) {
	primary, err := os.ReadFile(req.InputPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrUnreadableInput.Error()), "input", req.InputPath)
	}

	fragments := make([]string, 0, len(fragmentPaths))
	for _, path := range fragmentPaths {
		data, err := os.ReadFile(path) //nolint:gosec // fragment paths are derived from the template directory
		if err != nil {
			p.logger.Debug(fmt.Sprintf("skipping fragment %s", path))
			continue
		}
		fragments = append(fragments, string(data))
	}

	return p.compiler.Compile(ctx, req, string(primary), fragments)
}

func (p *Pipeline) startSpan(
	ctx context.Context,
	client domain.ClientKind,
	template string,
	req *domain.CompilationRequest,
) (context.Context, ports.Span) {
	opts := []ports.SpanOption{
		ports.WithAttribute("input", req.InputPath),
		ports.WithAttribute("output", req.OutputPath),
		ports.WithAttribute("format", req.Format.String()),
		ports.WithAttribute("force", req.Force),
	}
	if client != "" {
		opts = append(opts, ports.WithAttribute("client", string(client)))
	}
	if template != "" {
		opts = append(opts, ports.WithAttribute("template", template))
	}
	return p.tracer.Start(ctx, "compile", opts...)
}

// Package lessc runs the external lessc compiler.
package lessc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"sort"
	"strings"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Engine = (*Engine)(nil)

// Engine implements ports.Engine by piping the source into lessc.
type Engine struct {
	logger ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Compile runs lessc with the source on stdin and returns the CSS it prints,
// without comments unless opts.PreserveComments is set.
// Diagnostics on stderr become the error text when lessc exits non-zero and
// are logged as warnings otherwise.
func (e *Engine) Compile(ctx context.Context, source string, opts domain.EngineOptions) (string, error) {
	binary := opts.Binary
	if binary == "" {
		binary = domain.DefaultEngineBinary
	}

	executable, err := exec.LookPath(binary)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrEngineNotFound.Error()), "binary", binary)
	}

	cmd := exec.CommandContext(ctx, executable, Args(opts)...) //nolint:gosec // binary comes from configuration
	cmd.Args[0] = binary
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		cause := err
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			cause = zerr.New(msg)
		}

		wrapped := zerr.Wrap(cause, domain.ErrCompilationFailed.Error())
		wrapped = zerr.With(wrapped, "input", opts.Filename)
		return "", zerr.With(wrapped, "exit_code", exitCode)
	}

	e.relay(stderr.String())

	css := stdout.String()
	if !opts.PreserveComments {
		css = StripComments(css)
	}
	return css, nil
}

// relay forwards non-fatal lessc diagnostics to the logger line by line.
func (e *Engine) relay(diagnostics string) {
	if e.logger == nil {
		return
	}
	for line := range strings.SplitSeq(strings.TrimSpace(diagnostics), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			e.logger.Warn("lessc: " + line)
		}
	}
}

// Args builds the lessc command line for opts. The source is read from stdin.
func Args(opts domain.EngineOptions) []string {
	args := append([]string{}, opts.Args...)

	if len(opts.ImportPaths) > 0 {
		args = append(args, "--include-path="+strings.Join(opts.ImportPaths, string(os.PathListSeparator)))
	}

	names := make([]string, 0, len(opts.Variables))
	for name := range opts.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		args = append(args, "--global-var="+name+"="+opts.Variables[name])
	}

	if opts.Format == domain.FormatCompressed {
		args = append(args, "--compress")
	}

	return append(args, "-")
}

package compiler

import (
	"context"
	"strings"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler prepares a request for the Less engine.
type Compiler struct {
	engine ports.Engine
}

// NewCompiler creates a new Compiler.
func NewCompiler(engine ports.Engine) *Compiler {
	return &Compiler{engine: engine}
}

// Compile joins primary and the fragments, in order and newline separated,
// and compiles the result with the request's options.
func (c *Compiler) Compile(ctx context.Context, req *domain.CompilationRequest, primary string, fragments []string) (string, error) {
	source := primary
	if len(fragments) > 0 {
		source = strings.Join(append([]string{primary}, fragments...), "\n")
	}

	css, err := c.engine.Compile(ctx, source, req.EngineOptions())
	if err != nil {
		return "", zerr.With(err, "format", req.Format.String())
	}
	return css, nil
}

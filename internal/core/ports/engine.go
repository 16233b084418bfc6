package ports

import (
	"context"

	"go.trai.ch/lessco/internal/core/domain"
)

// Engine is the external Less compiler.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// Compile turns Less source into CSS. A rejected source yields an error
	// wrapping domain.ErrCompilationFailed.
	Compile(ctx context.Context, source string, opts domain.EngineOptions) (string, error)
}

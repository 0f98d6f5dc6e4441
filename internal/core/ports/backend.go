package ports

import (
	"context"

	"go.trai.ch/retro/internal/core/domain"
)

// Backend runs the backporting tool for one invocation.
// Implementations either call the tool in-process or fork a runtime.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Name identifies the backend in logs.
	Name() string
	// Run processes the classes described by the invocation.
	Run(ctx context.Context, inv domain.Invocation) error
}

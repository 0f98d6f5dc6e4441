package ports

import (
	"context"

	"go.trai.ch/retro/internal/core/domain"
)

// ProcessRunner runs a subprocess to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run starts the command and blocks until it exits.
	// A non-zero exit status is reported as an error carrying the exit code and output tail.
	Run(ctx context.Context, cmd domain.Command) error
}

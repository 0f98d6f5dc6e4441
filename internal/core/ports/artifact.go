package ports

import (
	"context"

	"go.trai.ch/retro/internal/core/domain"
)

// ArtifactFetcher copies published artifacts into a local directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactFetcher interface {
	// Fetch copies the requested artifact, overwriting any stale copy, and returns its local path.
	// It returns a *domain.ArtifactNotPackagedError when the artifact exists but has not been packaged yet.
	Fetch(ctx context.Context, req domain.ArtifactRequest) (string, error)
}

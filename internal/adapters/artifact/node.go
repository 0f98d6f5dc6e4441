package artifact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/internal/adapters/fs"
	"go.trai.ch/retro/internal/core/ports"
)

// NodeID is the unique identifier for the artifact fetcher Graft node.
const NodeID graft.ID = "adapter.artifact"

func init() {
	graft.Register(graft.Node[ports.ArtifactFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ArtifactFetcher, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(hasher), nil
		},
	})
}

package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/adapters/toolchain" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/core/ports"
)

// NodeID is the unique identifier for the runtime resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{toolchain.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			toolchains, err := graft.Dep[ports.ToolchainManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(toolchains, log), nil
		},
	})
}

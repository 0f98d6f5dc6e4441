package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain manager Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolchainManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolchainManager, error) {
			return NewManager(), nil
		},
	})
}

package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ScratchNodeID is the unique identifier for the scratch file Graft node.
	ScratchNodeID graft.ID = "adapter.fs.scratch"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.TempFiles]{
		ID:        ScratchNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TempFiles, error) {
			return NewScratch(""), nil
		},
	})
}

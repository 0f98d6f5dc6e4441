package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/internal/adapters/artifact"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/adapters/process"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/retro/internal/engine/resolver"
)

const (
	// EntryPointsNodeID is the unique identifier for the entry point registry Graft node.
	EntryPointsNodeID graft.ID = "engine.backend.entry_points"
	// EmbeddedNodeID is the unique identifier for the embedded backend Graft node.
	EmbeddedNodeID graft.ID = "engine.backend.embedded"
	// ForkedNodeID is the unique identifier for the forked backend Graft node.
	ForkedNodeID graft.ID = "engine.backend.forked"
)

// DefaultEntryPoints is the registry in-process implementations register with at init time.
var DefaultEntryPoints = NewEntryPoints()

func init() {
	graft.Register(graft.Node[*EntryPoints]{
		ID:        EntryPointsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*EntryPoints, error) {
			return DefaultEntryPoints, nil
		},
	})

	graft.Register(graft.Node[*Embedded]{
		ID:        EmbeddedNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EntryPointsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Embedded, error) {
			entryPoints, err := graft.Dep[*EntryPoints](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewEmbedded(entryPoints, log), nil
		},
	})

	graft.Register(graft.Node[*Forked]{
		ID:        ForkedNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			artifact.NodeID,
			resolver.NodeID,
			process.NodeID,
			fs.ScratchNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runForkedNode,
	})
}

func runForkedNode(ctx context.Context) (*Forked, error) {
	fetcher, err := graft.Dep[ports.ArtifactFetcher](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}

	tempFiles, err := graft.Dep[ports.TempFiles](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewForked(fetcher, res, runner, tempFiles, tracer, log), nil
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/retro/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/retro/internal/adapters/host"      //nolint:depguard // Wired in app layer
	"go.trai.ch/retro/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/retro/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/retro/internal/engine/backend"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			host.NodeID,
			backend.EmbeddedNodeID,
			backend.ForkedNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			fs.ScratchNodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.HostDetector](ctx)
	if err != nil {
		return nil, err
	}

	embedded, err := graft.Dep[*backend.Embedded](ctx)
	if err != nil {
		return nil, err
	}

	forked, err := graft.Dep[*backend.Forked](ctx)
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

	return New(loader, detector, embedded, forked, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
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

	return &Components{
		App:       app,
		Logger:    log,
		TempFiles: tempFiles,
		Tracer:    tracer,
	}, nil
}

// Package app implements the application layer for retro.
package app

import (
	"context"
	"os"

	"go.trai.ch/retro/internal/build"
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProcessOptions are the per-invocation settings supplied on the command line.
type ProcessOptions struct {
	// WorkDir is the directory config discovery starts from. Empty means the process working directory.
	WorkDir string
	// ConfigPath names an explicit config file.
	ConfigPath string
	// Defines are property overrides applied on top of the config file.
	Defines map[string]string
}

// App orchestrates one processing run: load, validate, then hand off to a backend.
type App struct {
	configLoader ports.ConfigLoader
	hostDetector ports.HostDetector
	embedded     ports.Backend
	forked       ports.Backend
	tracer       ports.Tracer
	logger       ports.Logger
	toolVersion  string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	hostDetector ports.HostDetector,
	embedded ports.Backend,
	forked ports.Backend,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		hostDetector: hostDetector,
		embedded:     embedded,
		forked:       forked,
		tracer:       tracer,
		logger:       logger,
		toolVersion:  build.Version,
	}
}

// WithToolVersion overrides the version of the tool fetched for forked runs.
func (a *App) WithToolVersion(version string) *App {
	a.toolVersion = version
	return a
}

// Process runs the backporting tool over the classes of the given goal.
func (a *App) Process(ctx context.Context, goal domain.Goal, opts ProcessOptions) error {
	ctx, span := a.tracer.Start(ctx, "process")
	defer span.End()
	span.SetAttribute("goal", string(goal))

	if err := a.process(ctx, goal, opts); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, domain.ErrProcessingFailed.Error())
	}
	return nil
}

func (a *App) process(ctx context.Context, goal domain.Goal, opts ProcessOptions) error {
	cwd := opts.WorkDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return zerr.Wrap(err, "failed to get working directory")
		}
		cwd = wd
	}

	params, err := a.configLoader.Load(cwd, opts.ConfigPath, goal)
	if err != nil {
		return err
	}
	if err := params.ApplyDefines(opts.Defines); err != nil {
		return err
	}

	if params.Skip {
		a.logger.Info("Skipping execution (skip=true)")
		return nil
	}

	host, err := a.hostDetector.Detect(cwd)
	if err != nil {
		return err
	}

	cfg, err := a.validate(ctx, params, host)
	if err != nil {
		return err
	}

	backend := a.embedded
	if cfg.Fork {
		backend = a.forked
	}

	ctx, span := a.tracer.Start(ctx, "invoke")
	defer span.End()
	span.SetAttribute("backend", backend.Name())

	if err := backend.Run(ctx, domain.NewInvocation(cfg, params, host, a.toolVersion)); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) validate(ctx context.Context, params domain.Parameters, host domain.Host) (domain.BuildConfig, error) {
	_, span := a.tracer.Start(ctx, "validate")
	defer span.End()

	cfg, warnings, err := domain.Validate(params, host)
	if err != nil {
		span.RecordError(err)
		return domain.BuildConfig{}, err
	}
	for _, w := range warnings {
		a.logger.Warn(string(w))
	}
	span.SetAttribute("target", cfg.Target.String())
	span.SetAttribute("fork", cfg.Fork)
	return cfg, nil
}

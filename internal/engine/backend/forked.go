package backend

import (
	"context"
	"strings"

	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
)

// RuntimeResolver picks the runtime a forked run executes on.
type RuntimeResolver interface {
	Resolve(inv domain.Invocation) domain.RuntimeCandidate
}

var _ ports.Backend = (*Forked)(nil)

// Forked runs the tool jar in a separate Java runtime.
type Forked struct {
	fetcher   ports.ArtifactFetcher
	resolver  RuntimeResolver
	runner    ports.ProcessRunner
	tempFiles ports.TempFiles
	tracer    ports.Tracer
	logger    ports.Logger
}

// NewForked creates a new Forked backend.
func NewForked(
	fetcher ports.ArtifactFetcher,
	resolver RuntimeResolver,
	runner ports.ProcessRunner,
	tempFiles ports.TempFiles,
	tracer ports.Tracer,
	logger ports.Logger,
) *Forked {
	return &Forked{
		fetcher:   fetcher,
		resolver:  resolver,
		runner:    runner,
		tempFiles: tempFiles,
		tracer:    tracer,
		logger:    logger,
	}
}

// Name identifies the backend in logs.
func (f *Forked) Name() string {
	return "forked"
}

// Run copies the tool jar into the build directory and runs it on the resolved runtime.
// The classpath file written for the run is removed on every return path.
func (f *Forked) Run(ctx context.Context, inv domain.Invocation) error {
	f.logger.Info("Retrieving Retrolambda " + inv.ToolVersion)

	jar, err := f.fetchJar(ctx, inv)
	if err != nil {
		if domain.IsNotPackaged(err) {
			f.logger.Info(err.Error())
			return nil
		}
		return err
	}

	f.logger.Info("Processing classes with Retrolambda")

	runtime := f.resolveRuntime(ctx, inv)

	plan, err := f.prepare(inv.Config, runtime, jar)
	if err != nil {
		return err
	}
	defer f.cleanup(plan.ClasspathFile)

	ctx, span := f.tracer.Start(ctx, "run-process")
	defer span.End()
	span.SetAttribute("executable", plan.Command.Executable)

	if err := f.runner.Run(ctx, plan.Command); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (f *Forked) fetchJar(ctx context.Context, inv domain.Invocation) (string, error) {
	ctx, span := f.tracer.Start(ctx, "fetch-artifact")
	defer span.End()

	coords := domain.ToolCoordinates(inv.ToolVersion)
	span.SetAttribute("artifact", coords.String())

	jar, err := f.fetcher.Fetch(ctx, domain.ArtifactRequest{
		Coordinates: coords,
		Repository:  inv.Repository,
		DestDir:     domain.ToolCacheDir(inv.BuildDir),
		DestName:    domain.ToolJarName,
	})
	if err != nil && !domain.IsNotPackaged(err) {
		span.RecordError(err)
	}
	return jar, err
}

func (f *Forked) resolveRuntime(ctx context.Context, inv domain.Invocation) domain.RuntimeCandidate {
	_, span := f.tracer.Start(ctx, "resolve-runtime")
	defer span.End()

	runtime := f.resolver.Resolve(inv)
	span.SetAttribute("provenance", string(runtime.Provenance))
	span.SetAttribute("executable", runtime.Executable)
	return runtime
}

// prepare writes the classpath file and builds the command line around it.
func (f *Forked) prepare(cfg domain.BuildConfig, runtime domain.RuntimeCandidate, jar string) (domain.InvocationPlan, error) {
	classpathFile, err := f.tempFiles.Create(domain.ClasspathFilePattern, []byte(strings.Join(cfg.Classpath, "\n")))
	if err != nil {
		return domain.InvocationPlan{}, zerr.Wrap(err, domain.ErrClasspathFileFailed.Error())
	}

	return domain.InvocationPlan{
		Command:       NewCommand(cfg, runtime, jar, classpathFile),
		ClasspathFile: classpathFile,
		ToolJar:       jar,
	}, nil
}

func (f *Forked) cleanup(path string) {
	if err := f.tempFiles.Remove(path); err != nil {
		f.logger.Warn("unable to delete " + path)
	}
}

// NewCommand builds the forked command line. The classpath property is passed through
// classpathFile instead of inline.
func NewCommand(cfg domain.BuildConfig, runtime domain.RuntimeCandidate, jar, classpathFile string) domain.Command {
	props := cfg.Properties()
	args := make([]string, 0, len(props)+3)
	for _, prop := range props {
		if prop.Key == domain.PropClasspath {
			args = append(args, "-D"+domain.PropClasspathFile+"="+classpathFile)
			continue
		}
		args = append(args, "-D"+prop.Key+"="+prop.Value)
	}
	args = append(args, "-javaagent:"+jar, "-jar", jar)

	var env []string
	if runtime.Home != "" {
		env = append(env, "JAVA_HOME="+runtime.Home)
	}

	return domain.Command{
		Executable: runtime.Executable,
		Args:       args,
		Env:        env,
	}
}

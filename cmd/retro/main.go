// Package main is the entry point for the retro CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/retro/cmd/retro/commands"
	"go.trai.ch/retro/internal/app"
	_ "go.trai.ch/retro/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Flush phase timings once the command has finished.
	defer func() {
		if err := components.Tracer.Shutdown(context.Background()); err != nil {
			components.Logger.Warn(err.Error())
		}
	}()

	// Classpath files left behind by an interrupted run.
	defer func() {
		if err := components.TempFiles.Purge(); err != nil {
			components.Logger.Warn(err.Error())
		}
	}()

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	logs, _ := components.Logger.(commands.LogSwitch)
	cli := commands.New(components.App, logs)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

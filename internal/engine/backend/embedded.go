// Package backend runs the backporting tool either inside this process or in a forked runtime.
package backend

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
)

// MainEntryPoint is the name the tool's in-process entry point is registered under.
const MainEntryPoint = "net.orfjackal.retrolambda.Retrolambda"

// EntryPoint is an in-process implementation of the backporting tool.
type EntryPoint interface {
	Run(ctx context.Context, props domain.Properties) error
}

// EntryPointFunc adapts a function to EntryPoint.
type EntryPointFunc func(ctx context.Context, props domain.Properties) error

// Run calls f.
func (f EntryPointFunc) Run(ctx context.Context, props domain.Properties) error {
	return f(ctx, props)
}

// EntryPoints is a registry of in-process entry points keyed by name.
type EntryPoints struct {
	mu      sync.RWMutex
	entries map[string]EntryPoint
}

// NewEntryPoints creates an empty registry.
func NewEntryPoints() *EntryPoints {
	return &EntryPoints{entries: make(map[string]EntryPoint)}
}

// Register adds or replaces the entry point stored under name.
func (e *EntryPoints) Register(name string, ep EntryPoint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[name] = ep
}

// Lookup returns the entry point stored under name.
func (e *EntryPoints) Lookup(name string) (EntryPoint, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ep, ok := e.entries[name]
	if !ok {
		return nil, zerr.With(domain.ErrEntryPointNotFound, "entry_point", name)
	}
	return ep, nil
}

// ForkHint tells the user how to get past a missing in-process entry point.
const ForkHint = "run with --fork to use a separate Java process"

var _ ports.Backend = (*Embedded)(nil)

// Embedded calls the tool in-process through a registered entry point.
type Embedded struct {
	entryPoints *EntryPoints
	logger      ports.Logger
}

// NewEmbedded creates a new Embedded backend.
func NewEmbedded(entryPoints *EntryPoints, logger ports.Logger) *Embedded {
	return &Embedded{entryPoints: entryPoints, logger: logger}
}

// Name identifies the backend in logs.
func (e *Embedded) Name() string {
	return "embedded"
}

// Run hands the configuration properties to the registered entry point.
func (e *Embedded) Run(ctx context.Context, inv domain.Invocation) error {
	e.logger.Info("Processing classes with Retrolambda")

	ep, err := e.entryPoints.Lookup(MainEntryPoint)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEmbeddedInvocationFailed.Error()), "hint", ForkHint)
	}

	if err := invoke(ctx, ep, inv.Config.Properties()); err != nil {
		return zerr.Wrap(err, domain.ErrEmbeddedInvocationFailed.Error())
	}
	return nil
}

func invoke(ctx context.Context, ep EntryPoint, props domain.Properties) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.ErrEntryPointPanicked, "panic", fmt.Sprint(r))
		}
	}()
	return ep.Run(ctx, props)
}

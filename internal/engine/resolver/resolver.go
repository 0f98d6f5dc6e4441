// Package resolver picks the Java runtime a forked run executes on.
package resolver

import (
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
)

const javaTool = "java"

// Toolchain versions that provide a Java 8 runtime, in order of preference.
var java8Versions = []struct {
	version    string
	provenance domain.Provenance
}{
	{version: "1.8", provenance: domain.ProvenanceToolchain},
	{version: "8", provenance: domain.ProvenanceToolchainAlternate},
}

// source yields a runtime candidate if it can provide one.
type source func(inv domain.Invocation) (domain.RuntimeCandidate, bool)

// Resolver walks the runtime sources in priority order.
type Resolver struct {
	toolchains ports.ToolchainManager
	logger     ports.Logger
}

// New creates a new Resolver.
func New(toolchains ports.ToolchainManager, logger ports.Logger) *Resolver {
	return &Resolver{toolchains: toolchains, logger: logger}
}

// Resolve returns the runtime to fork. It never fails: when nothing else is available the
// host runtime is used.
func (r *Resolver) Resolve(inv domain.Invocation) domain.RuntimeCandidate {
	for _, src := range r.sources() {
		if candidate, ok := src(inv); ok {
			return candidate
		}
	}
	// The host source always matches.
	return hostRuntime(inv.Host)
}

// sources lists every runtime source in priority order: the explicit home, the managed
// Java 8 toolchains, the build context toolchain and finally the host runtime.
func (r *Resolver) sources() []source {
	toolchains := r.toolchainSources()

	sources := make([]source, 0, len(toolchains)+2)
	sources = append(sources, r.explicit(toolchains))
	for _, src := range toolchains {
		sources = append(sources, r.announced(src))
	}
	return append(sources, r.host)
}

func (r *Resolver) toolchainSources() []source {
	sources := make([]source, 0, len(java8Versions)+1)
	for _, v := range java8Versions {
		sources = append(sources, r.managed(v.version, v.provenance))
	}
	return append(sources, r.buildContext)
}

// explicit yields the configured runtime home. A toolchain that would otherwise have
// been picked is reported as ignored.
func (r *Resolver) explicit(toolchains []source) source {
	return func(inv domain.Invocation) (domain.RuntimeCandidate, bool) {
		home := inv.Config.RuntimeHome
		if home == "" {
			return domain.RuntimeCandidate{}, false
		}
		if _, ok := r.firstOf(inv, toolchains); ok {
			r.logger.Warn("toolchains are ignored, 'java8home' parameter is set to " + home)
		}
		return domain.RuntimeCandidate{
			Executable: domain.JavaExecutable(home, inv.Host.OS),
			Home:       home,
			Provenance: domain.ProvenanceExplicit,
		}, true
	}
}

// announced logs the toolchain src picked.
func (r *Resolver) announced(src source) source {
	return func(inv domain.Invocation) (domain.RuntimeCandidate, bool) {
		candidate, ok := src(inv)
		if ok {
			r.logger.Info("Toolchain in retro: " + domain.Toolchain{Home: candidate.Home}.String())
		}
		return candidate, ok
	}
}

func (r *Resolver) host(inv domain.Invocation) (domain.RuntimeCandidate, bool) {
	return hostRuntime(inv.Host), true
}

func (r *Resolver) firstOf(inv domain.Invocation, sources []source) (domain.RuntimeCandidate, bool) {
	for _, src := range sources {
		if candidate, ok := src(inv); ok {
			return candidate, true
		}
	}
	return domain.RuntimeCandidate{}, false
}

func (r *Resolver) managed(version string, provenance domain.Provenance) source {
	return func(inv domain.Invocation) (domain.RuntimeCandidate, bool) {
		found, err := r.toolchains.Find(inv.Toolchains, domain.ToolchainTypeJDK, map[string]string{"version": version})
		if err != nil {
			r.logger.Warn("ignoring toolchains: " + err.Error())
			return domain.RuntimeCandidate{}, false
		}
		for _, tc := range found {
			if candidate, ok := r.usable(tc, inv.Host.OS, provenance); ok {
				return candidate, true
			}
		}
		return domain.RuntimeCandidate{}, false
	}
}

func (r *Resolver) buildContext(inv domain.Invocation) (domain.RuntimeCandidate, bool) {
	tc, err := r.toolchains.FromBuildContext(inv.Toolchains, domain.ToolchainTypeJDK)
	if err != nil {
		r.logger.Warn("ignoring toolchains: " + err.Error())
		return domain.RuntimeCandidate{}, false
	}
	if tc == nil {
		return domain.RuntimeCandidate{}, false
	}
	return r.usable(*tc, inv.Host.OS, domain.ProvenanceToolchainContext)
}

func (r *Resolver) usable(tc domain.Toolchain, goos string, provenance domain.Provenance) (domain.RuntimeCandidate, bool) {
	executable := r.toolchains.FindTool(tc, javaTool, goos)
	if executable == "" {
		return domain.RuntimeCandidate{}, false
	}
	return domain.RuntimeCandidate{Executable: executable, Home: tc.Home, Provenance: provenance}, true
}

// hostRuntime falls back to the launcher next to the host runtime, or to java on PATH
// when the host home is unknown.
func hostRuntime(host domain.Host) domain.RuntimeCandidate {
	if host.JavaHome == "" {
		return domain.RuntimeCandidate{Executable: javaTool, Provenance: domain.ProvenanceHost}
	}
	return domain.RuntimeCandidate{
		Executable: domain.JavaExecutable(host.JavaHome, host.OS),
		Home:       host.JavaHome,
		Provenance: domain.ProvenanceHost,
	}
}

package domain

import "path/filepath"

// Provenance records which source a runtime was resolved from.
type Provenance string

const (
	// ProvenanceExplicit is the user supplied runtime home override.
	ProvenanceExplicit Provenance = "explicit"
	// ProvenanceToolchain is a managed toolchain matching the exact required version.
	ProvenanceToolchain Provenance = "toolchain"
	// ProvenanceToolchainAlternate is a managed toolchain registered under the alternate version name.
	ProvenanceToolchainAlternate Provenance = "toolchain-alternate"
	// ProvenanceToolchainContext is the toolchain selected for the whole build.
	ProvenanceToolchainContext Provenance = "toolchain-context"
	// ProvenanceHost is the runtime the orchestrator itself runs alongside.
	ProvenanceHost Provenance = "host"
)

// RuntimeCandidate is a resolved runtime executable.
type RuntimeCandidate struct {
	Executable string
	Home       string
	Provenance Provenance
}

// JavaExecutable returns the path of the java launcher inside a runtime home.
func JavaExecutable(home, goos string) string {
	name := "java"
	if goos == "windows" {
		name += ".exe"
	}
	return filepath.Join(home, "bin", name)
}

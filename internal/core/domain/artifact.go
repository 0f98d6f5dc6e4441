package domain

import (
	"path"
	"strings"
)

// Tool artifact identity. The version always follows the orchestrator's own build version.
const (
	ToolGroupID    = "com.kohlschutter.retrolambda"
	ToolArtifactID = "retrolambda"
)

// DefaultRemoteRepository is used when no remote repository is configured.
const DefaultRemoteRepository = "https://repo.maven.apache.org/maven2"

// Coordinates identify a jar artifact in a Maven-layout repository.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// ToolCoordinates returns the coordinates of the backporting tool at the given version.
func ToolCoordinates(version string) Coordinates {
	return Coordinates{GroupID: ToolGroupID, ArtifactID: ToolArtifactID, Version: version}
}

// String renders the coordinates as group:artifact:jar:version.
func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":jar:" + c.Version
}

// VersionDir returns the slash-separated repository directory holding the version.
func (c Coordinates) VersionDir() string {
	return path.Join(strings.ReplaceAll(c.GroupID, ".", "/"), c.ArtifactID, c.Version)
}

// RepositoryPath returns the slash-separated path of the jar relative to a repository root.
func (c Coordinates) RepositoryPath() string {
	return path.Join(c.VersionDir(), c.ArtifactID+"-"+c.Version+".jar")
}

// IsDevelopment reports whether the version denotes an unreleased build.
func (c Coordinates) IsDevelopment() bool {
	return c.Version == "" || c.Version == "dev" || strings.HasSuffix(c.Version, "-SNAPSHOT")
}

// RepositorySettings locate the repositories artifacts are copied from.
type RepositorySettings struct {
	// Local is the root of a Maven-layout repository on disk.
	Local string
	// Remote is the base URL of a Maven-layout HTTP repository. Empty disables remote lookups.
	Remote string
}

// ArtifactRequest asks for an artifact to be copied into a local directory.
type ArtifactRequest struct {
	Coordinates Coordinates
	Repository  RepositorySettings
	DestDir     string
	DestName    string
}

package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidDefine is returned when a -D property override cannot be parsed.
	ErrInvalidDefine = zerr.New("invalid property override")

	// ErrUnknownDefine is returned when a -D property override names an unknown property.
	ErrUnknownDefine = zerr.New("unknown property override")

	// ErrUnrecognizedTarget is returned when the configured target is not a supported Java version.
	ErrUnrecognizedTarget = zerr.New("unrecognized target")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("could not find config file")

	// ErrToolchainsReadFailed is returned when the toolchains registry cannot be read.
	ErrToolchainsReadFailed = zerr.New("failed to read toolchains file")

	// ErrToolchainsParseFailed is returned when the toolchains registry cannot be parsed.
	ErrToolchainsParseFailed = zerr.New("failed to parse toolchains file")

	// ErrInvalidVersionRange is returned when a toolchain version requirement is malformed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrArtifactRetrievalFailed is returned when the tool artifact cannot be copied into the build cache.
	ErrArtifactRetrievalFailed = zerr.New("failed to retrieve artifact")

	// ErrArtifactNotFound is returned when no repository holds the requested artifact.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrArtifactChecksumMismatch is returned when the cached copy does not match its source.
	ErrArtifactChecksumMismatch = zerr.New("artifact checksum mismatch")

	// ErrClasspathFileFailed is returned when the classpath file for a forked run cannot be written.
	ErrClasspathFileFailed = zerr.New("failed to write classpath file")

	// ErrSubprocessFailed is returned when the forked runtime exits non-zero or cannot be started.
	ErrSubprocessFailed = zerr.New("forked process failed")

	// ErrEmbeddedInvocationFailed is returned when the in-process entry point fails.
	ErrEmbeddedInvocationFailed = zerr.New("failed to run Retrolambda")

	// ErrEntryPointNotFound is returned when no in-process entry point is registered under a name.
	ErrEntryPointNotFound = zerr.New("entry point not found")

	// ErrEntryPointPanicked is returned when an in-process entry point panics.
	ErrEntryPointPanicked = zerr.New("entry point panicked")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrProcessingFailed wraps any fatal failure of a processing goal.
	ErrProcessingFailed = zerr.New("failed to process classes")

	// ErrTempFileFailed is returned when a scratch file cannot be created.
	ErrTempFileFailed = zerr.New("failed to create temporary file")
)

// ArtifactNotPackagedError reports that the requested artifact is known but has not been
// packaged yet, typically because it is built by the same build that needs it.
// Callers treat it as a benign early return.
type ArtifactNotPackagedError struct {
	Coordinates Coordinates
}

// Error implements the error interface.
func (e *ArtifactNotPackagedError) Error() string {
	return "artifact " + e.Coordinates.String() + " has not been packaged yet"
}

// IsNotPackaged reports whether err means the artifact has not been packaged yet.
func IsNotPackaged(err error) bool {
	var notPackaged *ArtifactNotPackagedError
	return errors.As(err, &notPackaged)
}

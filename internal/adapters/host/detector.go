// Package host detects the Java runtime the orchestrator runs alongside.
package host

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	envFile        = ".env"
	releaseFile    = "release"
	javaHomeEnv    = "JAVA_HOME"
	javaVersionKey = "JAVA_VERSION"
)

var _ ports.HostDetector = (*Detector)(nil)

// Detector implements ports.HostDetector from the environment and the runtime's release file.
type Detector struct {
	LookupEnv func(string) (string, bool)
	LookPath  func(string) (string, error)
	GOOS      string
}

// NewDetector creates a Detector reading the process environment.
func NewDetector() *Detector {
	return &Detector{
		LookupEnv: os.LookupEnv,
		LookPath:  exec.LookPath,
		GOOS:      runtime.GOOS,
	}
}

// Detect describes the host runtime. Variables from a .env file in cwd fill in
// whatever the process environment leaves unset. An undetectable runtime is not an error;
// it yields a Host with an empty home and version.
func (d *Detector) Detect(cwd string) (domain.Host, error) {
	h := domain.Host{OS: d.GOOS}

	dotenv, err := readDotenv(filepath.Join(cwd, envFile))
	if err != nil {
		return h, err
	}

	home, ok := d.LookupEnv(javaHomeEnv)
	if !ok || home == "" {
		home = dotenv[javaHomeEnv]
	}
	if home == "" {
		home = d.homeFromPath()
	}
	if home == "" {
		return h, nil
	}

	h.JavaHome = filepath.Clean(home)
	h.JavaVersion = releaseVersion(h.JavaHome)
	return h, nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read environment file"), "path", path)
	}
	return values, nil
}

// homeFromPath follows the java launcher on PATH back to its installation directory.
func (d *Detector) homeFromPath() string {
	if d.LookPath == nil {
		return ""
	}
	name := "java"
	if d.GOOS == "windows" {
		name += ".exe"
	}
	launcher, err := d.LookPath(name)
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(launcher); err == nil {
		launcher = resolved
	}
	// <home>/bin/java
	return filepath.Dir(filepath.Dir(launcher))
}

// releaseVersion reads JAVA_VERSION from the runtime's release file.
func releaseVersion(home string) string {
	values, err := godotenv.Read(filepath.Join(home, releaseFile))
	if err != nil {
		return ""
	}
	return values[javaVersionKey]
}

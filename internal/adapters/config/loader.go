// Package config provides the configuration loader for retro.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML or TOML file.
type Loader struct {
	Logger ports.Logger
	// HomeDir returns the user's home directory. It defaults to os.UserHomeDir.
	HomeDir func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, HomeDir: os.UserHomeDir}
}

// Load reads the parameters for the given goal.
// Without an explicit path the config file is discovered by walking up from cwd.
// A project without any config file runs with the defaults rooted at cwd.
func (l *Loader) Load(cwd, path string, goal domain.Goal) (domain.Parameters, error) {
	configPath, err := l.findConfiguration(cwd, path)
	if err != nil {
		return domain.Parameters{}, err
	}

	var file Retrofile
	baseDir := cwd
	if configPath != "" {
		if err := l.readConfig(configPath, &file); err != nil {
			return domain.Parameters{}, zerr.With(err, "path", configPath)
		}
		baseDir = filepath.Dir(configPath)
	}

	home, err := l.homeDir()
	if err != nil {
		return domain.Parameters{}, err
	}

	return buildParameters(&file, baseDir, home, goal), nil
}

func (l *Loader) findConfiguration(cwd, explicit string) (string, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return filepath.Clean(path), nil
	}

	currentDir := cwd
	for {
		for _, name := range []string{domain.ConfigFileName, domain.ConfigFileNameTOML} {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) readConfig(configPath string, target *Retrofile) error {
	// #nosec G304 -- configPath is validated by caller
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		md, err := toml.Decode(string(data), target)
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		for _, key := range md.Undecoded() {
			l.Logger.Warn("unknown key '" + key.String() + "' in " + filepath.Base(configPath) + " is ignored")
		}
		return nil
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func (l *Loader) homeDir() (string, error) {
	if l.HomeDir == nil {
		return "", nil
	}
	home, err := l.HomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine home directory")
	}
	return home, nil
}

func buildParameters(file *Retrofile, baseDir, home string, goal domain.Goal) domain.Parameters {
	resolve := func(p string) string {
		return resolvePath(p, baseDir, home)
	}

	target := file.Target
	if target == "" {
		target = string(domain.DefaultTarget)
	}

	buildDir := file.Project.BuildDir
	if buildDir == "" {
		buildDir = domain.DefaultBuildDir
	}
	buildDir = resolve(buildDir)

	mainIn, mainOut := sourceSetDirs(file.Project.Main, buildDir, domain.DefaultClassesDir, resolve)

	var inputDir, outputDir string
	var classpath []string
	switch goal {
	case domain.GoalTest:
		inputDir, outputDir = sourceSetDirs(file.Project.Test, buildDir, domain.DefaultTestClassesDir, resolve)
		classpath = []string{inputDir, mainOut}
		classpath = appendResolved(classpath, file.Project.Main.Classpath, resolve)
		classpath = appendResolved(classpath, file.Project.Test.Classpath, resolve)
	default:
		inputDir, outputDir = mainIn, mainOut
		classpath = appendResolved([]string{inputDir}, file.Project.Main.Classpath, resolve)
	}

	toolchainsFile := file.Toolchains
	if toolchainsFile == "" && home != "" {
		toolchainsFile = filepath.Join(home, filepath.FromSlash(domain.DefaultToolchainsFile))
	}

	localRepo := file.Repository.Local
	if localRepo == "" && home != "" {
		localRepo = filepath.Join(home, filepath.FromSlash(domain.DefaultLocalRepository))
	}

	remote := domain.DefaultRemoteRepository
	if file.Repository.Remote != nil {
		remote = strings.TrimSpace(*file.Repository.Remote)
	}

	var runtimeHome string
	if file.Java8Home != "" {
		runtimeHome = resolve(file.Java8Home)
	}

	return domain.Parameters{
		Skip:              file.Skip,
		Target:            target,
		DefaultMethods:    file.DefaultMethods,
		Quiet:             file.Quiet,
		JavacHacks:        file.JavacHacks,
		FixJava8Classpath: file.FixJava8Classpath,
		Fork:              file.Fork,
		RuntimeHome:       runtimeHome,
		InputDir:          inputDir,
		OutputDir:         outputDir,
		Classpath:         classpath,
		BuildDir:          buildDir,
		Toolchains: domain.ToolchainSettings{
			File:    resolveOptional(toolchainsFile, resolve),
			Context: file.Toolchain,
		},
		Repository: domain.RepositorySettings{
			Local:  resolveOptional(localRepo, resolve),
			Remote: remote,
		},
	}
}

// sourceSetDirs returns the input and output directories of a source set.
// The output directory defaults to the input directory, so classes are processed in place.
func sourceSetDirs(set SourceSetDTO, buildDir, defaultDir string, resolve func(string) string) (string, string) {
	in := filepath.Join(buildDir, defaultDir)
	if set.InputDir != "" {
		in = resolve(set.InputDir)
	}
	out := in
	if set.OutputDir != "" {
		out = resolve(set.OutputDir)
	}
	return in, out
}

func appendResolved(dst, entries []string, resolve func(string) string) []string {
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		p := resolve(e)
		if !slices.Contains(dst, p) {
			dst = append(dst, p)
		}
	}
	return dst
}

func resolveOptional(p string, resolve func(string) string) string {
	if p == "" {
		return ""
	}
	return resolve(p)
}

// resolvePath expands a leading "~" and anchors relative paths at baseDir.
func resolvePath(p, baseDir, home string) string {
	if home != "" && (p == "~" || strings.HasPrefix(p, "~/")) {
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, filepath.FromSlash(p)))
}

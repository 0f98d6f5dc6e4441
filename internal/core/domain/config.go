package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Goal selects which set of classes a run processes.
type Goal string

const (
	// GoalMain processes the production classes.
	GoalMain Goal = "main"
	// GoalTest processes the test classes.
	GoalTest Goal = "test"
)

// Override property names, mirroring the plugin parameters users already know.
const (
	DefineSkip              = "skip"
	DefineFork              = "fork"
	DefineJava8Home         = "java8home"
	DefineTarget            = "retrolambdaTarget"
	DefineDefaultMethods    = "retrolambdaDefaultMethods"
	DefineJavacHacks        = "retrolambdaJavacHacks"
	DefineQuiet             = "retrolambdaQuiet"
	DefineFixJava8Classpath = "fixJava8Classpath"
)

// Parameters are the raw, unvalidated build parameters of one run.
type Parameters struct {
	Skip              bool
	Target            string
	DefaultMethods    bool
	Quiet             bool
	JavacHacks        bool
	FixJava8Classpath bool
	Fork              bool
	RuntimeHome       string

	InputDir  string
	OutputDir string
	Classpath []string

	// BuildDir is the build output directory; the tool artifact is cached beneath it.
	BuildDir   string
	Toolchains ToolchainSettings
	Repository RepositorySettings
}

// BuildConfig is the validated configuration of one run. It is passed by value and never mutated.
type BuildConfig struct {
	Target            Target
	DefaultMethods    bool
	Quiet             bool
	JavacHacks        bool
	FixJava8Classpath bool
	InputDir          string
	OutputDir         string
	Classpath         []string
	Fork              bool
	RuntimeHome       string
}

// Warning is a non-fatal condition discovered while preparing a run.
type Warning string

// WarnForcedFork is emitted when embedded invocation is impossible on the host runtime.
const WarnForcedFork Warning = "host runtime is not Java 8 or newer - forced to fork the process"

// Validate turns raw parameters into a BuildConfig.
// It never touches the filesystem; missing directories surface when the tool runs.
func Validate(p Parameters, host Host) (BuildConfig, []Warning, error) {
	target, err := ParseTarget(p.Target)
	if err != nil {
		return BuildConfig{}, nil, err
	}

	cfg := BuildConfig{
		Target:            target,
		DefaultMethods:    p.DefaultMethods,
		Quiet:             p.Quiet,
		JavacHacks:        p.JavacHacks,
		FixJava8Classpath: p.FixJava8Classpath,
		InputDir:          p.InputDir,
		OutputDir:         p.OutputDir,
		Classpath:         slices.Clone(p.Classpath),
		Fork:              p.Fork,
		RuntimeHome:       p.RuntimeHome,
	}

	var warnings []Warning
	if !cfg.Fork && !host.AtLeast(RequiredJavaMajor) {
		cfg.Fork = true
		warnings = append(warnings, WarnForcedFork)
	}

	return cfg, warnings, nil
}

// ApplyDefines applies -D style overrides on top of the loaded parameters.
// A define without a value sets a boolean property to true.
func (p *Parameters) ApplyDefines(defines map[string]string) error {
	keys := make([]string, 0, len(defines))
	for k := range defines {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := defines[key]
		switch key {
		case DefineTarget:
			p.Target = value
		case DefineJava8Home:
			p.RuntimeHome = value
		case DefineSkip:
			if err := parseDefineBool(key, value, &p.Skip); err != nil {
				return err
			}
		case DefineFork:
			if err := parseDefineBool(key, value, &p.Fork); err != nil {
				return err
			}
		case DefineDefaultMethods:
			if err := parseDefineBool(key, value, &p.DefaultMethods); err != nil {
				return err
			}
		case DefineJavacHacks:
			if err := parseDefineBool(key, value, &p.JavacHacks); err != nil {
				return err
			}
		case DefineQuiet:
			if err := parseDefineBool(key, value, &p.Quiet); err != nil {
				return err
			}
		case DefineFixJava8Classpath:
			if err := parseDefineBool(key, value, &p.FixJava8Classpath); err != nil {
				return err
			}
		default:
			return zerr.With(ErrUnknownDefine, "property", key)
		}
	}
	return nil
}

// ParseDefines splits "key=value" (or bare "key") arguments into a map.
func ParseDefines(args []string) (map[string]string, error) {
	defines := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, zerr.With(ErrInvalidDefine, "define", arg)
		}
		defines[key] = value
	}
	return defines, nil
}

func parseDefineBool(key, value string, dst *bool) error {
	if value == "" {
		*dst = true
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, ErrInvalidDefine.Error()), "property", key)
	}
	*dst = b
	return nil
}

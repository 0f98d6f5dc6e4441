package domain

// Invocation bundles everything a backend needs for one run.
type Invocation struct {
	Config     BuildConfig
	Host       Host
	BuildDir   string
	Toolchains ToolchainSettings
	Repository RepositorySettings
	// ToolVersion is the version of the backporting tool to run in a forked process.
	ToolVersion string
}

// NewInvocation pairs a validated config with the run context taken from the raw parameters.
func NewInvocation(cfg BuildConfig, p Parameters, host Host, toolVersion string) Invocation {
	return Invocation{
		Config:      cfg,
		Host:        host,
		BuildDir:    p.BuildDir,
		Toolchains:  p.Toolchains,
		Repository:  p.Repository,
		ToolVersion: toolVersion,
	}
}

// Command is a fully resolved subprocess invocation.
type Command struct {
	Executable string
	Args       []string
	Dir        string
	// Env holds KEY=VALUE overrides applied on top of the inherited environment.
	Env []string
}

// InvocationPlan is the forked command line together with the classpath file it references.
// The plan owns the classpath file; it must be removed once the process has terminated.
type InvocationPlan struct {
	Command       Command
	ClasspathFile string
	ToolJar       string
}

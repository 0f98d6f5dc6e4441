package process

// Exported for white-box testing of environment handling.
var (
	ResolveEnvironment = resolveEnvironment
	LookPath           = lookPath
)

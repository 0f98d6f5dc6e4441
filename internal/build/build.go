// Package build holds build-time information.
package build

// Version is the application version. It also selects the tool artifact fetched for forked runs.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the VCS revision the binary was built from.
var Commit = "none"

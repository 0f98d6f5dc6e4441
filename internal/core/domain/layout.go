package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "retro.yaml"

	// ConfigFileNameTOML is the TOML flavour of the project configuration file.
	ConfigFileNameTOML = "retro.toml"

	// DefaultBuildDir is the build output directory relative to the project root.
	DefaultBuildDir = "target"

	// DefaultClassesDir is the main classes directory relative to the build directory.
	DefaultClassesDir = "classes"

	// DefaultTestClassesDir is the test classes directory relative to the build directory.
	DefaultTestClassesDir = "test-classes"

	// ToolCacheDirName is the directory under the build directory that caches the tool jar.
	ToolCacheDirName = "retrolambda"

	// ToolJarName is the file name of the cached tool jar.
	ToolJarName = "retrolambda.jar"

	// DefaultToolchainsFile is the toolchains registry location relative to the user's home.
	DefaultToolchainsFile = ".retro/toolchains.yaml"

	// DefaultLocalRepository is the local repository location relative to the user's home.
	DefaultLocalRepository = ".m2/repository"

	// ClasspathFilePattern is the os.CreateTemp pattern for forked classpath files.
	ClasspathFilePattern = "retrolambda*classpath"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ToolCacheDir returns the directory the tool jar is copied into.
func ToolCacheDir(buildDir string) string {
	return filepath.Join(buildDir, ToolCacheDirName)
}

// ToolJarPath returns the path of the cached tool jar.
func ToolJarPath(buildDir string) string {
	return filepath.Join(ToolCacheDir(buildDir), ToolJarName)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retro/internal/adapters/config"
	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, home string) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger)
	loader.HomeDir = func() (string, error) { return home, nil }
	return loader, mockLogger
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	root := t.TempDir()
	home := t.TempDir()
	loader, _ := newLoader(t, home)

	params, err := loader.Load(root, "", domain.GoalMain)
	require.NoError(t, err)

	classes := filepath.Join(root, "target", "classes")
	assert.Equal(t, "1.7", params.Target)
	assert.False(t, params.Skip)
	assert.False(t, params.Fork)
	assert.Equal(t, filepath.Join(root, "target"), params.BuildDir)
	assert.Equal(t, classes, params.InputDir)
	assert.Equal(t, classes, params.OutputDir)
	assert.Equal(t, []string{classes}, params.Classpath)
	assert.Empty(t, params.RuntimeHome)
	assert.Equal(t, filepath.Join(home, ".retro", "toolchains.yaml"), params.Toolchains.File)
	assert.Equal(t, filepath.Join(home, ".m2", "repository"), params.Repository.Local)
	assert.Equal(t, domain.DefaultRemoteRepository, params.Repository.Remote)
}

func TestLoader_Load_YAML(t *testing.T) {
	root := t.TempDir()
	home := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
target: "1.8"
defaultMethods: true
javacHacks: true
quiet: true
fork: true
fixJava8Classpath: true
java8home: ~/jdk8
toolchains: toolchains.yaml
toolchain:
  version: "11"
repository:
  local: repo
  remote: ""
project:
  buildDir: out
  main:
    inputDir: out/main
    outputDir: out/main-backported
    classpath: [libs/a.jar, /opt/b.jar]
`)
	loader, _ := newLoader(t, home)

	params, err := loader.Load(root, "", domain.GoalMain)
	require.NoError(t, err)

	mainIn := filepath.Join(root, "out", "main")
	assert.Equal(t, "1.8", params.Target)
	assert.True(t, params.DefaultMethods)
	assert.True(t, params.JavacHacks)
	assert.True(t, params.Quiet)
	assert.True(t, params.Fork)
	assert.True(t, params.FixJava8Classpath)
	assert.Equal(t, filepath.Join(home, "jdk8"), params.RuntimeHome)
	assert.Equal(t, filepath.Join(root, "out"), params.BuildDir)
	assert.Equal(t, mainIn, params.InputDir)
	assert.Equal(t, filepath.Join(root, "out", "main-backported"), params.OutputDir)
	assert.Equal(t, []string{mainIn, filepath.Join(root, "libs", "a.jar"), "/opt/b.jar"}, params.Classpath)
	assert.Equal(t, filepath.Join(root, "toolchains.yaml"), params.Toolchains.File)
	assert.Equal(t, map[string]string{"version": "11"}, params.Toolchains.Context)
	assert.Equal(t, filepath.Join(root, "repo"), params.Repository.Local)
	assert.Empty(t, params.Repository.Remote)
}

func TestLoader_Load_TestGoal(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
project:
  main:
    classpath: [lib/main.jar]
  test:
    classpath: [lib/junit.jar, lib/main.jar]
`)
	loader, _ := newLoader(t, t.TempDir())

	params, err := loader.Load(root, "", domain.GoalTest)
	require.NoError(t, err)

	testClasses := filepath.Join(root, "target", "test-classes")
	assert.Equal(t, testClasses, params.InputDir)
	assert.Equal(t, testClasses, params.OutputDir)
	assert.Equal(t, []string{
		testClasses,
		filepath.Join(root, "target", "classes"),
		filepath.Join(root, "lib", "main.jar"),
		filepath.Join(root, "lib", "junit.jar"),
	}, params.Classpath)
}

func TestLoader_Load_TOML(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileNameTOML, `
target = "1.6"
skip = true

[repository]
remote = "https://maven.example.com/releases"

[project.main]
inputDir = "build/classes"
`)
	loader, _ := newLoader(t, t.TempDir())

	params, err := loader.Load(root, "", domain.GoalMain)
	require.NoError(t, err)

	assert.Equal(t, "1.6", params.Target)
	assert.True(t, params.Skip)
	assert.Equal(t, "https://maven.example.com/releases", params.Repository.Remote)
	assert.Equal(t, filepath.Join(root, "build", "classes"), params.InputDir)
}

func TestLoader_Load_TOMLUnknownKeyWarns(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileNameTOML, "target = \"1.8\"\nbogus = 1\n")
	loader, mockLogger := newLoader(t, t.TempDir())
	mockLogger.EXPECT().Warn("unknown key 'bogus' in retro.toml is ignored")

	params, err := loader.Load(root, "", domain.GoalMain)
	require.NoError(t, err)
	assert.Equal(t, "1.8", params.Target)
}

func TestLoader_Load_DiscoversParentConfig(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "target: \"1.5\"\n")
	nested := filepath.Join(root, "module", "src")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	loader, _ := newLoader(t, t.TempDir())

	params, err := loader.Load(nested, "", domain.GoalMain)
	require.NoError(t, err)

	assert.Equal(t, "1.5", params.Target)
	assert.Equal(t, filepath.Join(root, "target"), params.BuildDir, "paths resolve against the config file directory")
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, "conf/custom.yaml", "target: \"1.8\"\n")
	loader, _ := newLoader(t, t.TempDir())

	params, err := loader.Load(root, "conf/custom.yaml", domain.GoalMain)
	require.NoError(t, err)

	assert.Equal(t, "1.8", params.Target)
	assert.Equal(t, filepath.Join(root, "conf", "target"), params.BuildDir)
}

func TestLoader_Load_ExplicitPathMissing(t *testing.T) {
	loader, _ := newLoader(t, t.TempDir())

	_, err := loader.Load(t.TempDir(), "missing.yaml", domain.GoalMain)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not find config file")
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "target: [unclosed\n")
	loader, _ := newLoader(t, t.TempDir())

	_, err := loader.Load(root, "", domain.GoalMain)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileNameTOML, "target = \n")
	loader, _ := newLoader(t, t.TempDir())

	_, err := loader.Load(root, "", domain.GoalMain)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoader_Load_TargetIsNotValidatedHere(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "target: \"9.9\"\nskip: true\n")
	loader, _ := newLoader(t, t.TempDir())

	params, err := loader.Load(root, "", domain.GoalMain)

	require.NoError(t, err)
	assert.Equal(t, "9.9", params.Target)
	assert.True(t, params.Skip)
}

package toolchain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retro/internal/adapters/toolchain"
	"go.trai.ch/retro/internal/core/domain"
)

const registry = `
toolchains:
  - type: jdk
    provides: { version: "1.8", vendor: openjdk }
    configuration: { jdkHome: /opt/jdk8 }
  - type: jdk
    provides: { version: "11.0.2", vendor: temurin }
    configuration: { jdkHome: jdks/11 }
  - type: protobuf
    provides: { version: "3.21" }
    configuration: {}
  - type: jdk
    provides: { version: "8", vendor: zulu }
    configuration: { jdkHome: /opt/zulu8 }
`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toolchains.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestManager_Find(t *testing.T) {
	path := writeRegistry(t, registry)
	settings := domain.ToolchainSettings{File: path}

	tests := []struct {
		name      string
		reqs      map[string]string
		wantHomes []string
	}{
		{
			name:      "exact version",
			reqs:      map[string]string{"version": "1.8"},
			wantHomes: []string{"/opt/jdk8"},
		},
		{
			name:      "alternate version name",
			reqs:      map[string]string{"version": "8"},
			wantHomes: []string{"/opt/zulu8"},
		},
		{
			name:      "range keeps registry order",
			reqs:      map[string]string{"version": "[1.8,)"},
			wantHomes: []string{"/opt/jdk8", filepath.Join(filepath.Dir(path), "jdks", "11"), "/opt/zulu8"},
		},
		{
			name:      "vendor and version",
			reqs:      map[string]string{"version": "[11,12)", "vendor": "temurin"},
			wantHomes: []string{filepath.Join(filepath.Dir(path), "jdks", "11")},
		},
		{
			name:      "unknown requirement key",
			reqs:      map[string]string{"arch": "arm64"},
			wantHomes: nil,
		},
	}

	m := toolchain.NewManager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Find(settings, domain.ToolchainTypeJDK, tt.reqs)
			require.NoError(t, err)

			var homes []string
			for _, tc := range got {
				assert.Equal(t, domain.ToolchainTypeJDK, tc.Type)
				homes = append(homes, tc.Home)
			}
			assert.Equal(t, tt.wantHomes, homes)
		})
	}
}

func TestManager_Find_MissingRegistry(t *testing.T) {
	m := toolchain.NewManager()

	got, err := m.Find(domain.ToolchainSettings{File: filepath.Join(t.TempDir(), "none.yaml")}, "jdk", nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestManager_Find_NoRegistryConfigured(t *testing.T) {
	got, err := toolchain.NewManager().Find(domain.ToolchainSettings{}, "jdk", map[string]string{"version": "1.8"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestManager_Find_InvalidRegistry(t *testing.T) {
	path := writeRegistry(t, "toolchains: {not: [a list")

	_, err := toolchain.NewManager().Find(domain.ToolchainSettings{File: path}, "jdk", nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse toolchains file")
}

func TestManager_Find_InvalidRange(t *testing.T) {
	path := writeRegistry(t, registry)

	_, err := toolchain.NewManager().Find(domain.ToolchainSettings{File: path}, "jdk", map[string]string{"version": "[1.8"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid version range")
}

func TestManager_Find_CachesRegistry(t *testing.T) {
	path := writeRegistry(t, registry)
	settings := domain.ToolchainSettings{File: path}
	m := toolchain.NewManager()

	first, err := m.Find(settings, "jdk", map[string]string{"version": "1.8"})
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	second, err := m.Find(settings, "jdk", map[string]string{"version": "1.8"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestManager_FromBuildContext(t *testing.T) {
	path := writeRegistry(t, registry)
	m := toolchain.NewManager()

	tc, err := m.FromBuildContext(domain.ToolchainSettings{File: path}, "jdk")
	require.NoError(t, err)
	assert.Nil(t, tc, "no build-wide toolchain selected")

	tc, err = m.FromBuildContext(domain.ToolchainSettings{
		File:    path,
		Context: map[string]string{"vendor": "zulu"},
	}, "jdk")
	require.NoError(t, err)
	require.NotNil(t, tc)
	assert.Equal(t, "/opt/zulu8", tc.Home)

	tc, err = m.FromBuildContext(domain.ToolchainSettings{
		File:    path,
		Context: map[string]string{"version": "17"},
	}, "jdk")
	require.NoError(t, err)
	assert.Nil(t, tc)
}

func TestManager_FindTool(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "bin"), 0o750))
	java := filepath.Join(home, "bin", "java")
	require.NoError(t, os.WriteFile(java, []byte("#!/bin/sh\n"), 0o600))

	m := toolchain.NewManager()
	tc := domain.Toolchain{Type: "jdk", Home: home}

	assert.Equal(t, java, m.FindTool(tc, "java", "linux"))
	assert.Empty(t, m.FindTool(tc, "java", "windows"), "java.exe does not exist")
	assert.Empty(t, m.FindTool(tc, "javac", "linux"))
	assert.Empty(t, m.FindTool(domain.Toolchain{}, "java", "linux"))
}

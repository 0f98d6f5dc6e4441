// Package toolchain implements the ToolchainManager port over a YAML toolchains registry.
package toolchain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/retro/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ToolchainManager = (*Manager)(nil)

// Manager reads toolchain registries and caches them by path.
type Manager struct {
	mu    sync.Mutex
	cache map[string][]domain.Toolchain
}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{cache: make(map[string][]domain.Toolchain)}
}

// Find returns the toolchains of the given type that satisfy all requirements, in registry order.
// A missing registry file yields no toolchains.
func (m *Manager) Find(
	settings domain.ToolchainSettings,
	toolchainType string,
	requirements map[string]string,
) ([]domain.Toolchain, error) {
	all, err := m.load(settings.File)
	if err != nil {
		return nil, err
	}

	var matches []domain.Toolchain
	for _, tc := range all {
		if tc.Type != toolchainType {
			continue
		}
		ok, err := tc.Matches(requirements)
		if err != nil {
			return nil, zerr.With(err, "toolchains", settings.File)
		}
		if ok {
			matches = append(matches, tc)
		}
	}
	return matches, nil
}

// FromBuildContext returns the first toolchain matching the build-wide requirements.
// It returns nil when no build-wide toolchain is configured or none matches.
func (m *Manager) FromBuildContext(settings domain.ToolchainSettings, toolchainType string) (*domain.Toolchain, error) {
	if len(settings.Context) == 0 {
		return nil, nil
	}

	matches, err := m.Find(settings, toolchainType, settings.Context)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// FindTool returns the path of an executable inside the toolchain, or "" if it is absent.
func (m *Manager) FindTool(tc domain.Toolchain, tool, goos string) string {
	if tc.Home == "" {
		return ""
	}

	name := tool
	if goos == "windows" && !strings.HasSuffix(name, ".exe") {
		name += ".exe"
	}
	path := filepath.Join(tc.Home, "bin", name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}

func (m *Manager) load(path string) ([]domain.Toolchain, error) {
	if path == "" {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cached, ok := m.cache[path]; ok {
		return cached, nil
	}

	toolchains, err := readRegistry(path)
	if err != nil {
		return nil, err
	}
	m.cache[path] = toolchains
	return toolchains, nil
}

func readRegistry(path string) ([]domain.Toolchain, error) {
	//nolint:gosec // path comes from user configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolchainsReadFailed.Error()), "path", path)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolchainsParseFailed.Error()), "path", path)
	}

	baseDir := filepath.Dir(path)
	toolchains := make([]domain.Toolchain, 0, len(file.Toolchains))
	for _, dto := range file.Toolchains {
		home := dto.Configuration.JDKHome
		if home != "" && !filepath.IsAbs(home) {
			home = filepath.Join(baseDir, home)
		}
		toolchains = append(toolchains, domain.Toolchain{
			Type:     dto.Type,
			Provides: dto.Provides,
			Home:     home,
		})
	}
	return toolchains, nil
}

package ports

import "go.trai.ch/retro/internal/core/domain"

// ToolchainManager looks up managed runtime installations.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainManager interface {
	// Find returns the toolchains of the given type that satisfy all requirements, in registry order.
	Find(settings domain.ToolchainSettings, toolchainType string, requirements map[string]string) ([]domain.Toolchain, error)

	// FromBuildContext returns the toolchain selected for the whole build, if any.
	FromBuildContext(settings domain.ToolchainSettings, toolchainType string) (*domain.Toolchain, error)

	// FindTool returns the path of a tool inside the toolchain, or "" if it does not exist.
	FindTool(tc domain.Toolchain, tool, goos string) string
}

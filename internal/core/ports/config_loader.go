package ports

import "go.trai.ch/retro/internal/core/domain"

// ConfigLoader defines the interface for loading build parameters.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the parameters for the given goal.
	// An empty path discovers the config file by walking up from cwd.
	Load(cwd, path string, goal domain.Goal) (domain.Parameters, error)
}

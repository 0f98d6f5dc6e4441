package ports

import "go.trai.ch/retro/internal/core/domain"

// HostDetector inspects the environment for the host runtime.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostDetector interface {
	// Detect describes the host runtime relative to the working directory.
	Detect(cwd string) (domain.Host, error)
}

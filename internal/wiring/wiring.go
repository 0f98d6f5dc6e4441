// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/retro/internal/adapters/artifact"
	_ "go.trai.ch/retro/internal/adapters/config"
	_ "go.trai.ch/retro/internal/adapters/fs"
	_ "go.trai.ch/retro/internal/adapters/host"
	_ "go.trai.ch/retro/internal/adapters/logger"
	_ "go.trai.ch/retro/internal/adapters/process"
	_ "go.trai.ch/retro/internal/adapters/telemetry"
	_ "go.trai.ch/retro/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/retro/internal/app"
	_ "go.trai.ch/retro/internal/engine/backend"
	_ "go.trai.ch/retro/internal/engine/resolver"
)

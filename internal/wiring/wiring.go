// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/provenv/internal/adapters/cache"
	_ "go.trai.ch/provenv/internal/adapters/config"
	_ "go.trai.ch/provenv/internal/adapters/fs"
	_ "go.trai.ch/provenv/internal/adapters/logger"
	_ "go.trai.ch/provenv/internal/adapters/pip"
	_ "go.trai.ch/provenv/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/provenv/internal/adapters/venv"
	// Register app and engine nodes.
	_ "go.trai.ch/provenv/internal/app"
	_ "go.trai.ch/provenv/internal/engine/provision"
)

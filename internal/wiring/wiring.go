// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depsnap/internal/adapters/logger"
	_ "go.trai.ch/depsnap/internal/adapters/manifest"
	_ "go.trai.ch/depsnap/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/depsnap/internal/app"
)

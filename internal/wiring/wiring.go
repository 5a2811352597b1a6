// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xcsync/internal/adapters/filelist"
	_ "go.trai.ch/xcsync/internal/adapters/logger"
	_ "go.trai.ch/xcsync/internal/adapters/manifest"
	_ "go.trai.ch/xcsync/internal/adapters/project"
	_ "go.trai.ch/xcsync/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/xcsync/internal/app"
	_ "go.trai.ch/xcsync/internal/engine/integrator"
)

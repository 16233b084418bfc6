// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lessco/internal/adapters/cas"
	_ "go.trai.ch/lessco/internal/adapters/config"
	_ "go.trai.ch/lessco/internal/adapters/fs"
	_ "go.trai.ch/lessco/internal/adapters/lessc"
	_ "go.trai.ch/lessco/internal/adapters/logger"
	_ "go.trai.ch/lessco/internal/adapters/telemetry"
	_ "go.trai.ch/lessco/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/lessco/internal/app"
	_ "go.trai.ch/lessco/internal/engine/compiler"
)

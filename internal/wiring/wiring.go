// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crucible/internal/adapters/config"
	_ "go.trai.ch/crucible/internal/adapters/locator"
	_ "go.trai.ch/crucible/internal/adapters/logger"
	_ "go.trai.ch/crucible/internal/adapters/msbuild"
	_ "go.trai.ch/crucible/internal/adapters/report"
	_ "go.trai.ch/crucible/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/crucible/internal/adapters/template"
	// Register app and engine nodes.
	_ "go.trai.ch/crucible/internal/app"
	_ "go.trai.ch/crucible/internal/engine/generator"
)

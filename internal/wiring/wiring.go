// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/explorer/internal/adapters/config"
	_ "go.trai.ch/explorer/internal/adapters/fetchcache"
	_ "go.trai.ch/explorer/internal/adapters/logger"
	_ "go.trai.ch/explorer/internal/adapters/snapshot"
	_ "go.trai.ch/explorer/internal/adapters/stacksapi"
	_ "go.trai.ch/explorer/internal/adapters/telemetry"
	// Register app, engine and store nodes.
	_ "go.trai.ch/explorer/internal/app"
	_ "go.trai.ch/explorer/internal/engine/inview"
	_ "go.trai.ch/explorer/internal/store"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sdkres/internal/adapters/config"
	_ "go.trai.ch/sdkres/internal/adapters/logger"
	_ "go.trai.ch/sdkres/internal/adapters/nix"
	_ "go.trai.ch/sdkres/internal/adapters/resolvers"
	_ "go.trai.ch/sdkres/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/sdkres/internal/app"
)

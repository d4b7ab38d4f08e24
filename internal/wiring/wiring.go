// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/freshness/internal/adapters/config"
	_ "go.trai.ch/freshness/internal/adapters/logger"
	_ "go.trai.ch/freshness/internal/adapters/nix"
	_ "go.trai.ch/freshness/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/freshness/internal/app"
)

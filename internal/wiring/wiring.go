// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/checker/internal/adapters/config"
	_ "go.trai.ch/checker/internal/adapters/logger"
	_ "go.trai.ch/checker/internal/adapters/scan"
	_ "go.trai.ch/checker/internal/adapters/vcs"
	// Register app nodes.
	_ "go.trai.ch/checker/internal/app"
)

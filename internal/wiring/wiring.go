// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/refract-dev/refract/internal/adapters/config"
	_ "github.com/refract-dev/refract/internal/adapters/interp"
	_ "github.com/refract-dev/refract/internal/adapters/logger"
	_ "github.com/refract-dev/refract/internal/adapters/notify"
	_ "github.com/refract-dev/refract/internal/adapters/telemetry"
	_ "github.com/refract-dev/refract/internal/adapters/watcher"
	// Register the app node.
	_ "github.com/refract-dev/refract/internal/app"
)

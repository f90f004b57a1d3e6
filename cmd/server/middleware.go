package main

import (
	"log/slog"

	"github.com/adventmirror/adventd/internal/config"
	"github.com/adventmirror/adventd/internal/middleware"
)

// buildMiddleware creates the middleware stack with logging and CORS.
func buildMiddleware(cfg *config.Config, logger *slog.Logger) middleware.System {
	sys := middleware.New()
	sys.Use(middleware.TrimSlash())
	sys.Use(middleware.Logger(logger))
	sys.Use(middleware.CORS(&cfg.CORS))
	return sys
}

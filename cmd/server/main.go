package main

import (
	"os"

	"github.com/adventmirror/adventd/internal/config"
	"github.com/adventmirror/adventd/internal/content"
	"github.com/adventmirror/adventd/internal/server"
	"github.com/adventmirror/adventd/internal/site"
	"github.com/adventmirror/adventd/pkg/logging"
)

func main() {
	logger := logging.New(os.Stdout, &logging.Config{
		Level:  logging.LevelInfo,
		Format: logging.FormatText,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger = logging.New(os.Stdout, &cfg.Logging)

	contentSys, err := content.New(&cfg.Content, logger)
	if err != nil {
		logger.Error("failed to initialize content system", "error", err)
		os.Exit(1)
	}

	siteHandler := site.NewHandler(contentSys, logger)
	router := buildRouter(siteHandler, cfg, logger)

	srv := server.New(cfg, router, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

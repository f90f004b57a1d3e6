package main

import (
	"log/slog"
	"net/http"

	"github.com/adventmirror/adventd/internal/config"
	"github.com/adventmirror/adventd/internal/routes"
	"github.com/adventmirror/adventd/internal/site"
	pkgroutes "github.com/adventmirror/adventd/pkg/routes"
)

// buildRouter assembles the page routes and mounts the static asset subtree
// above them. The static wildcard lives on the outer mux because it would
// conflict with the year-rooted page patterns in a single mux.
func buildRouter(siteHandler *site.Handler, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := routes.New(logger)
	r.RegisterGroup(siteHandler.Routes())
	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})
	pages := r.Build()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /static/{asset...}", siteHandler.Static)
	mux.Handle("/", pages)

	return buildMiddleware(cfg, logger).Apply(mux)
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

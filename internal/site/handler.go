// Package site implements the HTTP surface of the content server: the root
// document, static assets, and the leaderboard and challenge pages.
package site

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/adventmirror/adventd/internal/content"
	"github.com/adventmirror/adventd/pkg/handlers"
	"github.com/adventmirror/adventd/pkg/routes"
)

var (
	errPageNotFound   = errors.New("page not found")
	errExportNotFound = errors.New("leaderboard export not found")
	errAssetNotFound  = errors.New("asset not found")
)

// Handler serves pre-rendered content resolved through a content.System.
type Handler struct {
	content content.System
	logger  *slog.Logger
}

// NewHandler creates a site handler backed by the given content system.
func NewHandler(content content.System, logger *slog.Logger) *Handler {
	return &Handler{
		content: content,
		logger:  logger.With("system", "site"),
	}
}

// Routes returns the page routes served by the handler. The static asset
// subtree is mounted separately via Static because its wildcard would
// otherwise overlap the year-rooted patterns.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Pre-rendered leaderboard and challenge pages",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.handleRoot},
			{Method: "GET", Pattern: "/favicon.png", Handler: h.handleFavicon},
			{Method: "GET", Pattern: "/{year}/leaderboard/day/{day}", Handler: h.handleGlobalLeaderboard},
			{Method: "GET", Pattern: "/{year}/leaderboard/private/view/{export}", Handler: h.handlePrivateLeaderboard},
			{Method: "GET", Pattern: "/{year}/day/{day}", Handler: h.handleChallenge},
		},
	}
}

// Static serves files from the static asset directory. Traversal outside the
// directory is rejected by the content system's containment check.
func (h *Handler) Static(w http.ResponseWriter, r *http.Request) {
	path, err := h.content.StaticPath(r.PathValue("asset"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrInvalidPath) {
			handlers.RespondError(w, h.logger, http.StatusNotFound, errAssetNotFound)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	http.ServeFile(w, r, path)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
}

func (h *Handler) handleFavicon(w http.ResponseWriter, r *http.Request) {
	r.SetPathValue("asset", "favicon.png")
	h.Static(w, r)
}

func (h *Handler) handleGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	year, day, ok := h.yearDay(w, r)
	if !ok {
		return
	}

	page, err := h.content.GlobalLeaderboard(r.Context(), year, day)
	if err != nil {
		h.respondDocumentError(w, err)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, page)
}

func (h *Handler) handleChallenge(w http.ResponseWriter, r *http.Request) {
	year, day, ok := h.yearDay(w, r)
	if !ok {
		return
	}

	page, err := h.content.Challenge(r.Context(), year, day)
	if err != nil {
		h.respondDocumentError(w, err)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, page)
}

func (h *Handler) handlePrivateLeaderboard(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errExportNotFound)
		return
	}

	// The route captures a whole segment; the export must be "{id}.json".
	name, found := strings.CutSuffix(r.PathValue("export"), ".json")
	if !found {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errExportNotFound)
		return
	}
	id, err := strconv.Atoi(name)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errExportNotFound)
		return
	}

	path, err := h.content.PrivateLeaderboardPath(year, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrInvalidPath) {
			handlers.RespondError(w, h.logger, http.StatusNotFound, errExportNotFound)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	http.ServeFile(w, r, path)
}

// yearDay parses the year and day path parameters, responding 404 when
// either is not an integer.
func (h *Handler) yearDay(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errPageNotFound)
		return 0, 0, false
	}

	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errPageNotFound)
		return 0, 0, false
	}

	return year, day, true
}

func (h *Handler) respondDocumentError(w http.ResponseWriter, err error) {
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrInvalidPath) {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errPageNotFound)
		return
	}
	handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
}

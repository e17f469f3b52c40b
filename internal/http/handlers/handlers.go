package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/app/search"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-shotchart-service/internal/roster"
)

// Searcher runs a search on behalf of a client session.
type Searcher interface {
	Submit(ctx context.Context, sessions search.Sessions, sessionID string, req search.Request) stats.Result[stats.Dataset]
}

// Directory resolves names against the loaded roster.
type Directory interface {
	Ready() bool
	ResolvePlayer(query string) (players.Identity, error)
	ResolveTeam(query string) (teams.Identity, error)
}

// SessionStore keeps the last committed dataset per session.
type SessionStore interface {
	search.Sessions
	Last(sessionID string) (stats.Dataset, bool)
}

// Handler wires HTTP routes to the search service.
type Handler struct {
	svc       Searcher
	directory Directory
	sessions  SessionStore
	logger    *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc Searcher, directory Directory, sessions SessionStore, logger *slog.Logger) *Handler {
	return &Handler{
		svc:       svc,
		directory: directory,
		sessions:  sessions,
		logger:    logger,
	}
}

// ServeHTTP dispatches by path so the Handler can be mounted directly.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/players/resolve":
		h.ResolvePlayer(w, r)
	case "/teams/resolve":
		h.ResolveTeam(w, r)
	case "/search":
		h.Search(w, r)
	case "/search/last":
		h.LastSearch(w, r)
	case "/search/last/shotchart.svg":
		h.LastShotChart(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the roster finished loading.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.directory == nil || !h.directory.Ready() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "roster not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ResolvePlayer maps ?q= to a roster entry.
func (h *Handler) ResolvePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	query, ok := requireQuery(w, r, h.logger)
	if !ok {
		return
	}
	player, err := h.directory.ResolvePlayer(query)
	if err != nil {
		writeResolveError(w, r, err, "player", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// ResolveTeam maps ?q= to a franchise. Queries of up to three letters match abbreviations.
func (h *Handler) ResolveTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	query, ok := requireQuery(w, r, h.logger)
	if !ok {
		return
	}
	team, err := h.directory.ResolveTeam(query)
	if err != nil {
		writeResolveError(w, r, err, "team", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

func requireQuery(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) (string, bool) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing q parameter", logger)
		return "", false
	}
	return query, true
}

func writeResolveError(w nethttp.ResponseWriter, r *nethttp.Request, err error, kind string, logger *slog.Logger) {
	if errors.Is(err, roster.ErrNotFound) {
		writeError(w, r, nethttp.StatusNotFound, kind+" not found", logger)
		return
	}
	writeError(w, r, nethttp.StatusInternalServerError, "failed to resolve "+kind, logger)
}

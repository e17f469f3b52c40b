package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/aggregate"
	"github.com/preston-bernstein/nba-shotchart-service/internal/app/search"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-shotchart-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/render"
	"github.com/preston-bernstein/nba-shotchart-service/internal/roster"
	"github.com/preston-bernstein/nba-shotchart-service/internal/store"
)

// searchResponse is the payload for every search outcome. Failures carry the empty views.
type searchResponse struct {
	Status     string                 `json:"status"`
	Error      string                 `json:"error,omitempty"`
	RequestID  string                 `json:"requestId,omitempty"`
	Player     *players.Identity      `json:"player"`
	Team       *teams.Identity        `json:"team,omitempty"`
	Season     string                 `json:"season,omitempty"`
	Detail     *players.Detail        `json:"detail"`
	SeasonType stats.SeasonType       `json:"seasonType"`
	Table      []stats.SeasonTableRow `json:"table"`
	Scatter    stats.ShotScatter      `json:"scatter"`
	TopShots   []stats.RankedShotType `json:"topShots"`
	Seasons    []stats.FetchedSeason  `json:"seasons"`
}

// Search runs a new search for the caller's session.
func (h *Handler) Search(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	sessionID := h.session(w, r)
	logger := loggerFromContext(r, h.logger)

	q := r.URL.Query()
	seasonType, err := parseSeasonType(q)
	if err != nil {
		res := stats.Failed[stats.Dataset](err)
		h.writeResult(w, r, res, stats.RegularSeason)
		return
	}
	req := search.Request{
		PlayerQuery: q.Get("player"),
		TeamQuery:   q.Get("team"),
		SeasonQuery: q.Get("season"),
		Playoffs:    seasonType == stats.Playoffs,
	}

	ctx := r.Context()
	if logger != nil {
		ctx = logging.WithLogger(ctx, logger.With(slog.String(logging.FieldSessionID, sessionID)))
	}
	res := h.svc.Submit(ctx, h.sessions, sessionID, req)
	h.writeResult(w, r, res, req.SeasonType())
}

// LastSearch re-aggregates the session's last dataset under the requested toggle without refetching.
func (h *Handler) LastSearch(w nethttp.ResponseWriter, r *nethttp.Request) {
	ds, seasonType, ok := h.lastDataset(w, r)
	if !ok {
		return
	}
	state := stats.StatePopulated
	if len(ds.Lines) == 0 {
		state = stats.StateEmpty
	}
	h.writeResult(w, r, stats.Result[stats.Dataset]{State: state, Value: ds}, seasonType)
}

// LastShotChart renders the session's last scatter as SVG.
func (h *Handler) LastShotChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	ds, seasonType, ok := h.lastDataset(w, r)
	if !ok {
		return
	}
	scatter := aggregate.PartitionShots(ds.Shots, seasonType)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(nethttp.StatusOK)
	render.ShotChart(w, chartTitle(ds, seasonType), scatter)
}

func (h *Handler) lastDataset(w nethttp.ResponseWriter, r *nethttp.Request) (stats.Dataset, stats.SeasonType, bool) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return stats.Dataset{}, "", false
	}
	sessionID := h.session(w, r)
	seasonType, err := parseSeasonType(r.URL.Query())
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return stats.Dataset{}, "", false
	}
	ds, ok := h.sessions.Last(sessionID)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "no search for session", h.logger)
		return stats.Dataset{}, "", false
	}
	return ds, seasonType, true
}

// session returns the caller's session id, issuing one when the header is missing or malformed.
func (h *Handler) session(w nethttp.ResponseWriter, r *nethttp.Request) string {
	id := requestutil.SessionID(r)
	if id == "" {
		id = store.NewSessionID()
	}
	w.Header().Set(requestutil.HeaderSessionID, id)
	return id
}

func (h *Handler) writeResult(w nethttp.ResponseWriter, r *nethttp.Request, res stats.Result[stats.Dataset], seasonType stats.SeasonType) {
	resp := newSearchResponse(res, seasonType)
	resp.RequestID = requestID(r)
	status := nethttp.StatusOK
	if res.State == stats.StateFailed {
		status = statusFor(res.Err)
		if rlErr, ok := providers.AsRateLimitError(res.Err); ok && rlErr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
		}
	}
	writeJSON(w, status, resp, h.logger)
}

func newSearchResponse(res stats.Result[stats.Dataset], seasonType stats.SeasonType) searchResponse {
	if res.State == stats.StateFailed {
		views := stats.EmptyViews(seasonType)
		return searchResponse{
			Status:     search.Outcome(res),
			Error:      errorMessage(res.Err),
			SeasonType: seasonType,
			Table:      views.Table,
			Scatter:    views.Scatter,
			TopShots:   views.TopShots,
			Seasons:    []stats.FetchedSeason{},
		}
	}

	ds := res.Value
	views := aggregate.BuildViews(ds, seasonType)
	seasons := ds.FetchedSeasons
	if seasons == nil {
		seasons = []stats.FetchedSeason{}
	}
	return searchResponse{
		Status:     string(res.State),
		Player:     &ds.Player,
		Team:       ds.Team,
		Season:     ds.Season,
		Detail:     &ds.Detail,
		SeasonType: seasonType,
		Table:      views.Table,
		Scatter:    views.Scatter,
		TopShots:   views.TopShots,
		Seasons:    seasons,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrMalformedInput):
		return nethttp.StatusBadRequest
	case errors.Is(err, roster.ErrNotFound):
		return nethttp.StatusNotFound
	case errors.Is(err, store.ErrSuperseded):
		return nethttp.StatusConflict
	case errors.Is(err, context.Canceled):
		return nethttp.StatusServiceUnavailable
	default:
		return nethttp.StatusBadGateway
	}
}

func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, search.ErrMalformedInput), errors.Is(err, roster.ErrNotFound), errors.Is(err, store.ErrSuperseded):
		return err.Error()
	default:
		return "failed to fetch player data"
	}
}

// parseSeasonType reads seasonType when present and falls back to the playoffs toggle.
func parseSeasonType(q url.Values) (stats.SeasonType, error) {
	if raw := strings.TrimSpace(q.Get("seasonType")); raw != "" {
		st, ok := stats.ParseSeasonType(raw)
		if !ok {
			return "", fmt.Errorf("%w: unknown season type %q", search.ErrMalformedInput, raw)
		}
		return st, nil
	}
	playoffs, err := parseToggle(q.Get("playoffs"))
	if err != nil {
		return "", err
	}
	return stats.SeasonTypeFromToggle(playoffs), nil
}

func parseToggle(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: playoffs must be true or false", search.ErrMalformedInput)
	}
	return v, nil
}

func chartTitle(ds stats.Dataset, seasonType stats.SeasonType) string {
	parts := []string{ds.Player.FullName}
	if ds.Team != nil {
		parts = append(parts, ds.Team.Abbreviation)
	}
	if ds.Season != "" {
		parts = append(parts, ds.Season)
	}
	parts = append(parts, string(seasonType))
	return strings.Join(parts, " ")
}

package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	Timeout      time.Duration
	RosterSeason string
}

// Client fetches player listings, career totals, bios and shot charts from stats.nba.com.
type Client struct {
	baseURL      string
	httpClient   httpDoer
	rosterSeason string
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		rosterSeason: resolveRosterSeason(cfg.RosterSeason),
	}
}

// FetchPlayers lists every player, historical and current, in provider order.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Identity, error) {
	params := url.Values{}
	params.Set("LeagueID", defaultLeagueID)
	params.Set("Season", c.rosterSeason)
	params.Set("IsOnlyCurrentSeason", "0")

	payload, err := c.get(ctx, endpointAllPlayers, params)
	if err != nil {
		return nil, err
	}
	set, err := payload.set(setAllPlayers)
	if err != nil {
		return nil, err
	}

	out := make([]players.Identity, 0, len(set.RowSet))
	for _, r := range set.rows() {
		p := mapPlayer(r)
		if p.ID == 0 || p.FullName == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FetchSeasonStats returns season totals for both season types, regular season first.
func (c *Client) FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", "Totals")
	params.Set("LeagueID", defaultLeagueID)

	payload, err := c.get(ctx, endpointCareerStats, params)
	if err != nil {
		return nil, err
	}

	var out []stats.SeasonStatLine
	for _, part := range []struct {
		name       string
		seasonType stats.SeasonType
	}{
		{setRegularSeason, stats.RegularSeason},
		{setPostSeason, stats.Playoffs},
	} {
		set, err := payload.set(part.name)
		if err != nil {
			// the postseason set is optional
			if part.seasonType == stats.Playoffs {
				continue
			}
			return nil, err
		}
		lines := make([]stats.SeasonStatLine, 0, len(set.RowSet))
		for _, r := range set.rows() {
			lines = append(lines, mapSeasonLine(r))
		}
		out = append(out, stats.TagSeasonType(lines, part.seasonType)...)
	}
	return out, nil
}

// FetchPlayerDetail returns biographical info with the birthdate truncated to a date.
func (c *Client) FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("LeagueID", defaultLeagueID)

	payload, err := c.get(ctx, endpointPlayerInfo, params)
	if err != nil {
		return players.Detail{}, err
	}
	set, err := payload.set(setPlayerInfo)
	if err != nil {
		return players.Detail{}, err
	}
	rows := set.rows()
	if len(rows) == 0 {
		return players.Detail{}, fmt.Errorf("nbastats: player %d: %w", playerID, providers.ErrEmptyResult)
	}
	return mapDetail(rows[0]), nil
}

// FetchShots returns every field-goal attempt plus league averages for one season and season type.
// Rows are not season-stamped here; callers stamp them with the query.
func (c *Client) FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error) {
	payload, err := c.get(ctx, endpointShotChart, shotChartParams(q))
	if err != nil {
		return stats.ShotChart{}, err
	}
	shotSet, err := payload.set(setShotChartDetail)
	if err != nil {
		return stats.ShotChart{}, err
	}

	chart := stats.ShotChart{
		Shots:          make([]stats.ShotAttempt, 0, len(shotSet.RowSet)),
		LeagueAverages: []stats.LeagueAverage{},
	}
	for _, r := range shotSet.rows() {
		chart.Shots = append(chart.Shots, mapShot(r))
	}
	if avgSet, err := payload.set(setLeagueAverages); err == nil {
		for _, r := range avgSet.rows() {
			chart.LeagueAverages = append(chart.LeagueAverages, mapLeagueAverage(r))
		}
	}
	return chart, nil
}

func shotChartParams(q stats.ShotQuery) url.Values {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(q.PlayerID))
	params.Set("TeamID", strconv.Itoa(q.TeamID))
	params.Set("Season", q.SeasonID)
	params.Set("SeasonType", string(q.SeasonType))
	params.Set("ContextMeasure", "FGA")
	params.Set("LeagueID", defaultLeagueID)
	// The endpoint rejects requests that omit its filter parameters, even when unused.
	for _, key := range []string{"LastNGames", "Month", "OpponentTeamID", "Period"} {
		params.Set(key, "0")
	}
	for _, key := range []string{
		"DateFrom", "DateTo", "GameID", "GameSegment", "Location", "Outcome",
		"PlayerPosition", "RookieYear", "SeasonSegment", "VsConference", "VsDivision",
	} {
		params.Set(key, "")
	}
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return response{}, err
	}
	req.URL.RawQuery = params.Encode()
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return response{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return response{}, fmt.Errorf("nbastats: %s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return response{}, fmt.Errorf("nbastats: %s: decode: %w", endpoint, err)
	}
	return payload, nil
}

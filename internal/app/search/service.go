package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// ErrMalformedInput is returned for a missing player query or a season not shaped like 2015-16.
var ErrMalformedInput = errors.New("malformed input")

const (
	defaultShotSeasonLimit  = 5
	defaultShotSeasonBudget = 8
	defaultShotFetchWorkers = 4
)

// Resolver maps free-text names to roster identities.
type Resolver interface {
	ResolvePlayer(query string) (players.Identity, error)
	ResolveTeam(query string) (teams.Identity, error)
}

// Config bounds the shot chart fan-out.
type Config struct {
	// ShotSeasonBudget is the most distinct seasons fetched in full.
	ShotSeasonBudget int
	// ShotSeasonLimit is how many of the most recent seasons are fetched once the budget is exceeded.
	ShotSeasonLimit int
	// ShotFetchWorkers caps concurrent shot chart requests.
	ShotFetchWorkers int
}

// Request is one search submitted by a client.
type Request struct {
	PlayerQuery string
	TeamQuery   string
	SeasonQuery string
	Playoffs    bool
}

// SeasonType is the season type the client toggled on.
func (r Request) SeasonType() stats.SeasonType {
	return stats.SeasonTypeFromToggle(r.Playoffs)
}

// Service resolves a search to provider ids and fetches everything the views need.
type Service struct {
	resolver Resolver
	provider providers.StatsProvider
	cfg      Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service. Zero config values fall back to defaults.
func NewService(resolver Resolver, provider providers.StatsProvider, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if cfg.ShotSeasonBudget <= 0 {
		cfg.ShotSeasonBudget = defaultShotSeasonBudget
	}
	if cfg.ShotSeasonLimit <= 0 {
		cfg.ShotSeasonLimit = defaultShotSeasonLimit
	}
	if cfg.ShotFetchWorkers <= 0 {
		cfg.ShotFetchWorkers = defaultShotFetchWorkers
	}
	return &Service{
		resolver: resolver,
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Search resolves the request and fetches season totals, player detail and every shot chart
// for the seasons that survive the team and season filters. Both season types are fetched
// so the client can flip the toggle without a new search.
func (s *Service) Search(ctx context.Context, req Request) (stats.Dataset, error) {
	playerQuery := strings.TrimSpace(req.PlayerQuery)
	teamQuery := strings.TrimSpace(req.TeamQuery)
	season := strings.TrimSpace(req.SeasonQuery)

	if playerQuery == "" {
		return stats.Dataset{}, fmt.Errorf("player query is required: %w", ErrMalformedInput)
	}
	if season != "" && !stats.ValidSeasonID(season) {
		return stats.Dataset{}, fmt.Errorf("season %q: %w", season, ErrMalformedInput)
	}

	player, err := s.resolver.ResolvePlayer(playerQuery)
	if err != nil {
		return stats.Dataset{}, err
	}
	ds := stats.Dataset{Player: player, Season: season}
	if teamQuery != "" {
		team, err := s.resolver.ResolveTeam(teamQuery)
		if err != nil {
			return stats.Dataset{}, err
		}
		ds.Team = &team
	}

	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(
			slog.Int(logging.FieldPlayerID, player.ID),
			slog.Int(logging.FieldTeamID, ds.TeamID()),
			slog.String(logging.FieldSeason, season),
		)
	}

	lines, detail, err := s.fetchStats(ctx, player.ID)
	if err != nil {
		return stats.Dataset{}, err
	}
	ds.Detail = detail
	ds.Lines = FilterLines(lines, ds.TeamID(), season)

	ds.FetchedSeasons = SelectSeasons(ds.Lines, s.cfg.ShotSeasonBudget, s.cfg.ShotSeasonLimit)
	s.recorder.RecordShotFanout(len(ds.FetchedSeasons))
	logging.Debug(logger, "fetching shot charts", slog.Int(logging.FieldCount, len(ds.FetchedSeasons)))

	chart, err := s.fetchShots(ctx, player.ID, ds.TeamID(), ds.FetchedSeasons)
	if err != nil {
		return stats.Dataset{}, err
	}
	ds.Shots = chart.Shots
	ds.LeagueAverages = chart.LeagueAverages

	logging.Info(logger, "search complete",
		slog.Int("lines", len(ds.Lines)),
		slog.Int("shots", len(ds.Shots)),
	)
	return ds, nil
}

// Run executes Search and classifies the outcome. A search whose filters leave no season rows is Empty.
func (s *Service) Run(ctx context.Context, req Request) stats.Result[stats.Dataset] {
	start := s.now()
	ds, err := s.Search(ctx, req)
	var res stats.Result[stats.Dataset]
	switch {
	case err != nil:
		res = stats.Failed[stats.Dataset](err)
	case len(ds.Lines) == 0:
		res = stats.Result[stats.Dataset]{State: stats.StateEmpty, Value: ds}
	default:
		res = stats.Populated(ds)
	}
	s.recorder.RecordSearch(Outcome(res), s.now().Sub(start))
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "search failed",
			slog.String("player_query", req.PlayerQuery),
			slog.Any("err", err),
		)
	}
	return res
}

func (s *Service) fetchStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, players.Detail, error) {
	var (
		lines  []stats.SeasonStatLine
		detail players.Detail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = s.provider.FetchSeasonStats(gctx, playerID)
		if err != nil {
			return providers.NewFetchFailed(playerID, providers.OpSeasonStats, err)
		}
		if len(lines) == 0 {
			return providers.NewFetchFailed(playerID, providers.OpSeasonStats, providers.ErrEmptyResult)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		detail, err = s.provider.FetchPlayerDetail(gctx, playerID)
		if err != nil {
			return providers.NewFetchFailed(playerID, providers.OpPlayerDetail, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, players.Detail{}, err
	}
	return lines, detail, nil
}

// fetchShots fetches one chart per season with bounded concurrency. The first failure cancels
// the remaining fetches and fails the whole search. Results are concatenated in season order.
func (s *Service) fetchShots(ctx context.Context, playerID, teamID int, seasons []stats.FetchedSeason) (stats.ShotChart, error) {
	charts := make([]stats.ShotChart, len(seasons))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ShotFetchWorkers)
	for i, season := range seasons {
		i, season := i, season
		g.Go(func() error {
			q := stats.ShotQuery{
				PlayerID:   playerID,
				TeamID:     teamID,
				SeasonID:   season.SeasonID,
				SeasonType: season.SeasonType,
			}
			chart, err := s.provider.FetchShots(gctx, q)
			if err != nil {
				return providers.NewFetchFailed(playerID, providers.OpShots, err)
			}
			charts[i] = chart.Stamp(q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats.ShotChart{}, err
	}

	out := stats.ShotChart{
		Shots:          []stats.ShotAttempt{},
		LeagueAverages: []stats.LeagueAverage{},
	}
	for _, c := range charts {
		out.Shots = append(out.Shots, c.Shots...)
		out.LeagueAverages = append(out.LeagueAverages, c.LeagueAverages...)
	}
	return out, nil
}

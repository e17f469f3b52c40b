package providers

import (
	"context"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// Operation names used in errors, logs and metrics.
const (
	OpPlayers      = "players"
	OpSeasonStats  = "season_stats"
	OpPlayerDetail = "player_detail"
	OpShots        = "shots"
)

// PlayerProvider lists every known player in provider order.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Identity, error)
}

// StatsProvider fetches per-player statistics.
// FetchSeasonStats returns regular season and playoff totals, each line tagged with its season type.
// FetchShots returns the raw shot chart for one (player, team, season, season type) query.
type StatsProvider interface {
	FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error)
	FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error)
	FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerProvider
	StatsProvider
}

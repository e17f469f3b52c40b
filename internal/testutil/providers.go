package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// ErrProvider fails every call with Err.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.Identity, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error) {
	return players.Detail{}, p.Err
}

func (p ErrProvider) FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error) {
	return stats.ShotChart{}, p.Err
}

// UnavailableProvider fails every call with ErrProviderUnavailable.
func UnavailableProvider() ErrProvider {
	return ErrProvider{Err: providers.ErrProviderUnavailable}
}

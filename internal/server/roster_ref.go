package server

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/roster"
)

// rosterRef publishes the roster once the startup load finishes. Lookups before then miss.
type rosterRef struct {
	current atomic.Pointer[roster.Roster]
}

func (r *rosterRef) Ready() bool {
	return r.current.Load().Ready()
}

func (r *rosterRef) ResolvePlayer(query string) (players.Identity, error) {
	return r.current.Load().ResolvePlayer(query)
}

func (r *rosterRef) ResolveTeam(query string) (teams.Identity, error) {
	return r.current.Load().ResolveTeam(query)
}

func (r *rosterRef) load(ctx context.Context, src roster.PlayerSource, logger *slog.Logger) error {
	loaded, err := roster.Load(ctx, src)
	r.current.Store(loaded)
	if err != nil {
		logging.Error(logger, "roster load failed", err)
		return err
	}
	logging.Info(logger, "roster loaded", slog.Int(logging.FieldCount, len(loaded.Players())))
	return nil
}

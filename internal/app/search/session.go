package search

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/store"
)

// Sessions tracks the latest search per client session.
type Sessions interface {
	Begin(sessionID string) string
	Commit(sessionID, token string, ds stats.Dataset) bool
}

// Submit runs req on behalf of sessionID. Only the most recently submitted search of a session
// is stored; a search overtaken by a newer one fails with store.ErrSuperseded and its result is dropped.
// Empty results are stored too so the session reflects what the client last asked for.
func (s *Service) Submit(ctx context.Context, sessions Sessions, sessionID string, req Request) stats.Result[stats.Dataset] {
	token := sessions.Begin(sessionID)
	res := s.Run(ctx, req)
	if res.State == stats.StateFailed {
		return res
	}
	if !sessions.Commit(sessionID, token, res.Value) {
		s.recorder.RecordStaleSearch()
		logging.Info(logging.FromContext(ctx, s.logger), "discarding superseded search",
			slog.String(logging.FieldSessionID, sessionID),
			slog.Int(logging.FieldPlayerID, res.Value.Player.ID),
		)
		return stats.Failed[stats.Dataset](store.ErrSuperseded)
	}
	return res
}

package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// StubProvider is a test double for providers.DataProvider.
// Shots are keyed by season id; ShotErrs fails the fetch for a given season.
type StubProvider struct {
	Players   []players.Identity
	Lines     []stats.SeasonStatLine
	Detail    players.Detail
	Shots     map[string]stats.ShotChart
	Err       error
	ShotErrs  map[string]error
	DetailErr error
	// Block, when set, holds every FetchShots call until closed or ctx is done.
	Block chan struct{}

	Calls       atomic.Int32
	ShotCalls   atomic.Int32
	MaxInFlight atomic.Int32
	inFlight    atomic.Int32

	mu      sync.Mutex
	queries []stats.ShotQuery
}

func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Identity, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Players, s.Err
}

func (s *StubProvider) FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error) {
	_ = ctx
	_ = playerID
	s.Calls.Add(1)
	return s.Lines, s.Err
}

func (s *StubProvider) FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.DetailErr != nil {
		return players.Detail{}, s.DetailErr
	}
	d := s.Detail
	if d.PlayerID == 0 {
		d.PlayerID = playerID
	}
	return d, s.Err
}

// FetchShots returns the configured chart for q.SeasonID and records the query.
func (s *StubProvider) FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error) {
	s.Calls.Add(1)
	s.ShotCalls.Add(1)
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()

	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		max := s.MaxInFlight.Load()
		if n <= max || s.MaxInFlight.CompareAndSwap(max, n) {
			break
		}
	}

	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return stats.ShotChart{}, ctx.Err()
		}
	}
	if err := s.ShotErrs[q.SeasonID]; err != nil {
		return stats.ShotChart{}, err
	}
	if s.Err != nil {
		return stats.ShotChart{}, s.Err
	}
	return s.Shots[q.SeasonID], nil
}

// ShotQueries returns a copy of every shot query received, in arrival order.
func (s *StubProvider) ShotQueries() []stats.ShotQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stats.ShotQuery(nil), s.queries...)
}

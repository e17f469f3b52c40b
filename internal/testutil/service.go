package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-shotchart-service/internal/app/search"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-shotchart-service/internal/roster"
	"github.com/preston-bernstein/nba-shotchart-service/internal/store"
)

// FixtureStack is a search service wired to the fixture provider.
type FixtureStack struct {
	Provider *fixture.Provider
	Roster   *roster.Roster
	Service  *search.Service
	Sessions *store.SessionStore
	Recorder *metrics.Recorder
}

// NewFixtureStack loads the fixture roster and builds a search service with default limits.
func NewFixtureStack(t *testing.T) FixtureStack {
	t.Helper()
	p := fixture.New()
	r, err := roster.Load(context.Background(), p)
	if err != nil {
		t.Fatalf("failed to load fixture roster: %v", err)
	}
	rec := metrics.NewRecorder()
	return FixtureStack{
		Provider: p,
		Roster:   r,
		Service:  search.NewService(r, p, search.Config{}, nil, rec),
		Sessions: store.NewSessionStore(store.DefaultCapacity),
		Recorder: rec,
	}
}

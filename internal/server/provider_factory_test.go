package server

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/config"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/nbastats"
)

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider by default")
	}
	if _, ok := selectProvider(config.Config{Provider: "unknown"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for unknown provider")
	}
	got := selectProvider(config.Config{
		Provider: " NBAStats ",
		NBAStats: config.NBAStatsConfig{BaseURL: "http://example.com", Timeout: time.Second},
	}, nil)
	if _, ok := got.(*nbastats.Client); !ok {
		t.Fatalf("expected nbastats client, got %T", got)
	}
}

func TestProviderFactoryInstrumentsFixture(t *testing.T) {
	rec := metrics.NewRecorder()
	prov := newProviderFactory(nil, rec).build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, err := prov.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := rec.ProviderCalls("fixture"); got != 1 {
		t.Fatalf("expected one recorded call, got %d", got)
	}
}

func TestProviderFactoryThrottlesUpstream(t *testing.T) {
	cfg := config.Config{
		Provider: "nbastats",
		NBAStats: config.NBAStatsConfig{BaseURL: "http://127.0.0.1:1", RatePerSec: 1, Burst: 1},
	}
	prov := newProviderFactory(nil, metrics.NewRecorder()).build(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := prov.FetchPlayers(ctx); err == nil {
		t.Fatalf("expected canceled context to stop the throttled call")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" NBAStats", nil); got != "nbastats" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected type-derived name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic name, got %q", got)
	}
}

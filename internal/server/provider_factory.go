package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/config"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/nbastats"
)

const (
	providerFixture  = "fixture"
	providerNBAStats = "nbastats"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case providerFixture, "":
		return fixture.New()
	case providerNBAStats:
		return nbastats.NewClient(nbastats.Config{
			BaseURL:      cfg.NBAStats.BaseURL,
			Timeout:      cfg.NBAStats.Timeout,
			RosterSeason: cfg.NBAStats.RosterSeason,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// providerFactory assembles the provider with shared wrappers (instrumentation + rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap instruments base and throttles it when it is the upstream API.
// Recorded latency excludes limiter waits.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider, base)
	instrumented := providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
	if _, upstream := base.(*nbastats.Client); !upstream {
		return instrumented
	}
	return providers.NewRateLimitedProvider(instrumented, cfg.NBAStats.RatePerSec, cfg.NBAStats.Burst, f.logger)
}

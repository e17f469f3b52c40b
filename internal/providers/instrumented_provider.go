package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
)

// instrumentedProvider records metrics for every upstream call and classifies failures.
// Each call is attempted exactly once.
type instrumentedProvider struct {
	inner    DataProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner so every call is timed, counted and logged on failure.
// Stats and shot errors come back as *FetchFailedError.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	return &instrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context) ([]players.Identity, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	out, err := p.inner.FetchPlayers(ctx)
	p.observe(ctx, OpPlayers, 0, start, err, slog.Int(logging.FieldCount, len(out)))
	return out, err
}

func (p *instrumentedProvider) FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error) {
	if p.inner == nil {
		return nil, NewFetchFailed(playerID, OpSeasonStats, ErrProviderUnavailable)
	}
	start := p.now()
	out, err := p.inner.FetchSeasonStats(ctx, playerID)
	p.observe(ctx, OpSeasonStats, playerID, start, err, slog.Int(logging.FieldCount, len(out)))
	if err != nil {
		return nil, NewFetchFailed(playerID, OpSeasonStats, err)
	}
	return out, nil
}

func (p *instrumentedProvider) FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error) {
	if p.inner == nil {
		return players.Detail{}, NewFetchFailed(playerID, OpPlayerDetail, ErrProviderUnavailable)
	}
	start := p.now()
	out, err := p.inner.FetchPlayerDetail(ctx, playerID)
	p.observe(ctx, OpPlayerDetail, playerID, start, err)
	if err != nil {
		return players.Detail{}, NewFetchFailed(playerID, OpPlayerDetail, err)
	}
	return out, nil
}

func (p *instrumentedProvider) FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error) {
	if p.inner == nil {
		return stats.ShotChart{}, NewFetchFailed(q.PlayerID, OpShots, ErrProviderUnavailable)
	}
	start := p.now()
	out, err := p.inner.FetchShots(ctx, q)
	p.observe(ctx, OpShots, q.PlayerID, start, err,
		slog.String(logging.FieldSeason, q.SeasonID),
		slog.String(logging.FieldSeasonType, string(q.SeasonType)),
		slog.Int(logging.FieldCount, len(out.Shots)),
	)
	if err != nil {
		return stats.ShotChart{}, NewFetchFailed(q.PlayerID, OpShots, err)
	}
	return out, nil
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, playerID int, start time.Time, err error, attrs ...any) {
	elapsed := p.now().Sub(start)
	p.recorder.RecordProviderAttempt(p.name, op, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	args := append([]any{
		slog.String("operation", op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}, attrs...)
	if playerID != 0 {
		args = append(args, slog.Int(logging.FieldPlayerID, playerID))
	}

	if err == nil {
		logWithProvider(ctx, logger, slog.LevelDebug, p.name, "provider fetch ok", args...)
		return
	}
	if rlErr, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(p.name, rlErr.RetryAfter)
		args = append(args, slog.Duration("retry_after", rlErr.RetryAfter))
	}
	args = append(args, slog.Any("err", err))
	logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed", args...)
}

package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

const (
	defaultRatePerSecond = 2
	defaultBurst         = 1
)

// rateLimitedProvider wraps a DataProvider with a token bucket shared by every call.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that waits for a token before each upstream call.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, perSecond float64, burst int, logger *slog.Logger) DataProvider {
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable", slog.String("operation", op))
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", slog.String("operation", op))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.Identity, error) {
	if err := p.wait(ctx, OpPlayers); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedProvider) FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error) {
	if err := p.wait(ctx, OpSeasonStats); err != nil {
		return nil, err
	}
	return p.next.FetchSeasonStats(ctx, playerID)
}

func (p *rateLimitedProvider) FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error) {
	if err := p.wait(ctx, OpPlayerDetail); err != nil {
		return players.Detail{}, err
	}
	return p.next.FetchPlayerDetail(ctx, playerID)
}

func (p *rateLimitedProvider) FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error) {
	if err := p.wait(ctx, OpShots); err != nil {
		return stats.ShotChart{}, err
	}
	return p.next.FetchShots(ctx, q)
}

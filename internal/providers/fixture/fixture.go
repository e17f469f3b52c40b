package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// Provider returns a static roster, season totals and generated shot charts
// useful for local testing and bootstrapping without reaching stats.nba.com.
// Generated shot charts contain exactly FGA attempts, FGM of them made, for the matching season line.
type Provider struct {
	players []players.Identity
	details map[int]players.Detail
	lines   map[int][]stats.SeasonStatLine
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		players: roster,
		details: details,
		lines:   careerLines,
	}
}

// FetchPlayers returns a deterministic player listing.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Identity, error) {
	_ = ctx
	return append([]players.Identity(nil), p.players...), nil
}

// FetchSeasonStats returns canned season totals; players without data get an empty slice.
func (p *Provider) FetchSeasonStats(ctx context.Context, playerID int) ([]stats.SeasonStatLine, error) {
	_ = ctx
	src := p.lines[playerID]
	out := make([]stats.SeasonStatLine, len(src))
	copy(out, src)
	return out, nil
}

// FetchPlayerDetail returns canned biographical info.
func (p *Provider) FetchPlayerDetail(ctx context.Context, playerID int) (players.Detail, error) {
	_ = ctx
	d, ok := p.details[playerID]
	if !ok {
		return players.Detail{}, fmt.Errorf("fixture: no detail for player %d", playerID)
	}
	return d, nil
}

// FetchShots generates the attempts behind the season lines matching q.
// A zero TeamID covers every team the player appeared for. Combined TOT lines
// generate nothing since their attempts are the per-team attempts.
func (p *Provider) FetchShots(ctx context.Context, q stats.ShotQuery) (stats.ShotChart, error) {
	_ = ctx
	chart := stats.ShotChart{
		Shots:          []stats.ShotAttempt{},
		LeagueAverages: leagueAverages(),
	}
	for _, line := range p.lines[q.PlayerID] {
		if line.SeasonID != q.SeasonID || line.SeasonType != q.SeasonType || line.Combined() {
			continue
		}
		if q.TeamID != 0 && line.TeamID != q.TeamID {
			continue
		}
		chart.Shots = append(chart.Shots, generateShots(line)...)
	}
	return chart, nil
}

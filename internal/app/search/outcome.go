package search

import (
	"errors"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/roster"
	"github.com/preston-bernstein/nba-shotchart-service/internal/store"
)

// Outcome names the metrics outcome for res.
func Outcome(res stats.Result[stats.Dataset]) string {
	switch res.State {
	case stats.StatePopulated:
		return metrics.OutcomePopulated
	case stats.StateEmpty:
		return metrics.OutcomeEmpty
	}
	switch {
	case errors.Is(res.Err, ErrMalformedInput):
		return metrics.OutcomeMalformed
	case errors.Is(res.Err, roster.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(res.Err, store.ErrSuperseded):
		return metrics.OutcomeSuperseded
	default:
		return metrics.OutcomeFailed
	}
}

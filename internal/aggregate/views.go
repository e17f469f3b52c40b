package aggregate

import "github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"

// BuildViews derives all three views of ds for seasonType.
func BuildViews(ds stats.Dataset, seasonType stats.SeasonType) stats.Views {
	return stats.Views{
		SeasonType: seasonType,
		Table:      SeasonTable(ds.Lines, seasonType),
		Scatter:    PartitionShots(ds.Shots, seasonType),
		TopShots:   RankShotTypes(ds.Shots, seasonType),
	}
}

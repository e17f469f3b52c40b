package aggregate

import (
	"sort"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// MaxShotRank is the deepest dense rank kept per season.
const MaxShotRank = 3

type shotGroup struct {
	seasonID   string
	actionType string
	attempts   int
	made       int
}

// RankShotTypes ranks action types by attempts within each season for seasonType.
// Ranks are dense (ties share a rank, no gaps) and only ranks up to MaxShotRank are kept.
// Output is ordered by season ascending, then attempts descending; ties keep first-seen order.
func RankShotTypes(shots []stats.ShotAttempt, seasonType stats.SeasonType) []stats.RankedShotType {
	bySeason := make(map[string][]*shotGroup)
	index := make(map[[2]string]*shotGroup)
	var seasons []string

	for _, shot := range shots {
		if shot.SeasonType != seasonType {
			continue
		}
		key := [2]string{shot.SeasonID, shot.ActionType}
		g, ok := index[key]
		if !ok {
			g = &shotGroup{seasonID: shot.SeasonID, actionType: shot.ActionType}
			index[key] = g
			if _, seen := bySeason[shot.SeasonID]; !seen {
				seasons = append(seasons, shot.SeasonID)
			}
			bySeason[shot.SeasonID] = append(bySeason[shot.SeasonID], g)
		}
		g.attempts++
		g.made += shot.ShotMadeFlag
	}

	sort.Strings(seasons)
	out := make([]stats.RankedShotType, 0)
	for _, season := range seasons {
		out = append(out, rankSeason(bySeason[season])...)
	}
	return out
}

func rankSeason(groups []*shotGroup) []stats.RankedShotType {
	sorted := make([]*shotGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].attempts > sorted[j].attempts
	})

	out := make([]stats.RankedShotType, 0, MaxShotRank)
	rank := 0
	prev := -1
	for _, g := range sorted {
		if g.attempts != prev {
			rank++
			prev = g.attempts
		}
		if rank > MaxShotRank {
			break
		}
		out = append(out, stats.RankedShotType{
			SeasonID:   g.seasonID,
			ActionType: g.actionType,
			Attempts:   g.attempts,
			Made:       g.made,
			FGPct:      Ratio(g.made, g.attempts),
			Rank:       rank,
		})
	}
	return out
}

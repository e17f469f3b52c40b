package search

import (
	"sort"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// FilterLines keeps the rows for teamID (0 keeps every team) and seasonID ("" keeps every season).
// Without a team filter, a season traded through is reduced to its combined TOT row.
func FilterLines(lines []stats.SeasonStatLine, teamID int, seasonID string) []stats.SeasonStatLine {
	combined := make(map[stats.FetchedSeason]bool)
	if teamID == 0 {
		for _, line := range lines {
			if line.Combined() {
				combined[seasonKey(line)] = true
			}
		}
	}

	out := make([]stats.SeasonStatLine, 0, len(lines))
	for _, line := range lines {
		if teamID != 0 && line.TeamID != teamID {
			continue
		}
		if combined[seasonKey(line)] && !line.Combined() {
			continue
		}
		if seasonID != "" && line.SeasonID != seasonID {
			continue
		}
		out = append(out, line)
	}
	return out
}

func seasonKey(line stats.SeasonStatLine) stats.FetchedSeason {
	return stats.FetchedSeason{SeasonID: line.SeasonID, SeasonType: line.SeasonType}
}

// SelectSeasons returns the distinct (season, season type) pairs reported by lines, ordered by
// season then season type. When more than budget distinct seasons are present only the
// limit most recent seasons are kept.
func SelectSeasons(lines []stats.SeasonStatLine, budget, limit int) []stats.FetchedSeason {
	seen := make(map[stats.FetchedSeason]bool)
	seasonIDs := make(map[string]bool)
	var pairs []stats.FetchedSeason
	for _, line := range lines {
		if line.SeasonID == "" {
			continue
		}
		pair := seasonKey(line)
		if seen[pair] {
			continue
		}
		seen[pair] = true
		seasonIDs[line.SeasonID] = true
		pairs = append(pairs, pair)
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].SeasonID != pairs[j].SeasonID {
			return pairs[i].SeasonID < pairs[j].SeasonID
		}
		return seasonTypeOrder(pairs[i].SeasonType) < seasonTypeOrder(pairs[j].SeasonType)
	})

	if budget <= 0 || len(seasonIDs) <= budget || limit <= 0 {
		return pairs
	}

	ids := make([]string, 0, len(seasonIDs))
	for id := range seasonIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if limit < len(ids) {
		ids = ids[len(ids)-limit:]
	}
	cutoff := ids[0]

	out := make([]stats.FetchedSeason, 0, len(pairs))
	for _, p := range pairs {
		if p.SeasonID >= cutoff {
			out = append(out, p)
		}
	}
	return out
}

func seasonTypeOrder(st stats.SeasonType) int {
	for i, known := range stats.SeasonTypes {
		if known == st {
			return i
		}
	}
	return len(stats.SeasonTypes)
}

package aggregate

import "github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"

// SeasonTable selects the rows for seasonType and normalizes counting stats per game.
func SeasonTable(lines []stats.SeasonStatLine, seasonType stats.SeasonType) []stats.SeasonTableRow {
	rows := make([]stats.SeasonTableRow, 0, len(lines))
	for _, line := range lines {
		if line.SeasonType != seasonType {
			continue
		}
		rows = append(rows, tableRow(line))
	}
	return rows
}

func tableRow(line stats.SeasonStatLine) stats.SeasonTableRow {
	gp := line.GP
	return stats.SeasonTableRow{
		Season:           line.SeasonID,
		TeamAbbreviation: line.TeamAbbreviation,
		GP:               gp,
		FGA:              line.FGA,
		FGPct:            line.FGPct,
		FG3Pct:           line.FG3Pct,
		FTPct:            line.FTPct,
		MIN:              PerGame(line.MIN, gp),
		PTS:              PerGame(line.PTS, gp),
		REB:              PerGame(line.REB, gp),
		AST:              PerGame(line.AST, gp),
		STL:              PerGame(line.STL, gp),
		BLK:              PerGame(line.BLK, gp),
		TOV:              PerGame(line.TOV, gp),
		PF:               PerGame(line.PF, gp),
	}
}

package fixture

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

const (
	stephenCurry = 201939
	kevinDurant  = 201142
	lebronJames  = 2544
)

var roster = []players.Identity{
	{ID: 76003, FullName: "Kareem Abdul-Jabbar"},
	{ID: stephenCurry, FullName: "Stephen Curry"},
	{ID: 203552, FullName: "Seth Curry"},
	{ID: kevinDurant, FullName: "Kevin Durant"},
	{ID: lebronJames, FullName: "LeBron James"},
	{ID: 202691, FullName: "Klay Thompson"},
}

var details = map[int]players.Detail{
	stephenCurry: {PlayerID: stephenCurry, Name: "Stephen Curry", Birthdate: "1988-03-14", Position: "Guard", TeamAbbreviation: "GSW", Height: "6-2", Weight: "185"},
	203552:       {PlayerID: 203552, Name: "Seth Curry", Birthdate: "1990-08-23", Position: "Guard", TeamAbbreviation: "CHA", Height: "6-2", Weight: "185"},
	kevinDurant:  {PlayerID: kevinDurant, Name: "Kevin Durant", Birthdate: "1988-09-29", Position: "Forward", TeamAbbreviation: "PHX", Height: "6-11", Weight: "240"},
	lebronJames:  {PlayerID: lebronJames, Name: "LeBron James", Birthdate: "1984-12-30", Position: "Forward", TeamAbbreviation: "LAL", Height: "6-9", Weight: "250"},
	202691:       {PlayerID: 202691, Name: "Klay Thompson", Birthdate: "1990-02-08", Position: "Guard", TeamAbbreviation: "DAL", Height: "6-6", Weight: "220"},
}

// careerLines holds season totals keyed by player id, regular season rows first.
var careerLines = map[int][]stats.SeasonStatLine{
	stephenCurry: {
		{PlayerID: stephenCurry, SeasonID: "2014-15", SeasonType: stats.RegularSeason, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 80, MIN: 2613, FGM: 653, FGA: 1341, FGPct: 0.487, FG3M: 286, FG3A: 646, FG3Pct: 0.443, FTM: 308, FTA: 337, FTPct: 0.914,
			REB: 341, AST: 619, STL: 163, BLK: 16, TOV: 249, PF: 158, PTS: 1900},
		{PlayerID: stephenCurry, SeasonID: "2015-16", SeasonType: stats.RegularSeason, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 79, MIN: 2700, FGM: 805, FGA: 1598, FGPct: 0.504, FG3M: 402, FG3A: 886, FG3Pct: 0.454, FTM: 363, FTA: 400, FTPct: 0.908,
			REB: 430, AST: 527, STL: 169, BLK: 15, TOV: 262, PF: 161, PTS: 2375},
		{PlayerID: stephenCurry, SeasonID: "2016-17", SeasonType: stats.RegularSeason, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 79, MIN: 2638, FGM: 675, FGA: 1443, FGPct: 0.468, FG3M: 324, FG3A: 789, FG3Pct: 0.41, FTM: 325, FTA: 362, FTPct: 0.898,
			REB: 353, AST: 523, STL: 142, BLK: 17, TOV: 239, PF: 183, PTS: 1999},
		{PlayerID: stephenCurry, SeasonID: "2014-15", SeasonType: stats.Playoffs, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 21, MIN: 826, FGM: 205, FGA: 447, FGPct: 0.456, FG3M: 98, FG3A: 231, FG3Pct: 0.422, FTM: 84, FTA: 90, FTPct: 0.933,
			REB: 107, AST: 134, STL: 39, BLK: 5, TOV: 82, PF: 55, PTS: 592},
		{PlayerID: stephenCurry, SeasonID: "2015-16", SeasonType: stats.Playoffs, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 18, MIN: 622, FGM: 140, FGA: 320, FGPct: 0.438, FG3M: 83, FG3A: 207, FG3Pct: 0.401, FTM: 94, FTA: 102, FTPct: 0.922,
			REB: 99, AST: 94, STL: 25, BLK: 5, TOV: 76, PF: 44, PTS: 457},
		{PlayerID: stephenCurry, SeasonID: "2016-17", SeasonType: stats.Playoffs, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 17, MIN: 605, FGM: 148, FGA: 305, FGPct: 0.485, FG3M: 71, FG3A: 169, FG3Pct: 0.42, FTM: 86, FTA: 95, FTPct: 0.905,
			REB: 105, AST: 115, STL: 34, BLK: 4, TOV: 56, PF: 39, PTS: 453},
	},
	kevinDurant: {
		{PlayerID: kevinDurant, SeasonID: "2015-16", SeasonType: stats.RegularSeason, TeamID: 1610612760, TeamAbbreviation: "OKC",
			GP: 72, MIN: 2578, FGM: 698, FGA: 1381, FGPct: 0.505, FG3M: 186, FG3A: 480, FG3Pct: 0.388, FTM: 447, FTA: 498, FTPct: 0.898,
			REB: 589, AST: 361, STL: 69, BLK: 85, TOV: 250, PF: 137, PTS: 2029},
		{PlayerID: kevinDurant, SeasonID: "2016-17", SeasonType: stats.RegularSeason, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 62, MIN: 2070, FGM: 563, FGA: 1026, FGPct: 0.537, FG3M: 117, FG3A: 312, FG3Pct: 0.375, FTM: 336, FTA: 384, FTPct: 0.875,
			REB: 513, AST: 300, STL: 66, BLK: 99, TOV: 138, PF: 117, PTS: 1555},
		{PlayerID: kevinDurant, SeasonID: "2015-16", SeasonType: stats.Playoffs, TeamID: 1610612760, TeamAbbreviation: "OKC",
			GP: 18, MIN: 726, FGM: 191, FGA: 443, FGPct: 0.431, FG3M: 40, FG3A: 141, FG3Pct: 0.284, FTM: 140, FTA: 158, FTPct: 0.886,
			REB: 127, AST: 59, STL: 18, BLK: 18, TOV: 60, PF: 43, PTS: 522},
		{PlayerID: kevinDurant, SeasonID: "2016-17", SeasonType: stats.Playoffs, TeamID: 1610612744, TeamAbbreviation: "GSW",
			GP: 15, MIN: 526, FGM: 157, FGA: 283, FGPct: 0.556, FG3M: 39, FG3A: 88, FG3Pct: 0.443, FTM: 82, FTA: 91, FTPct: 0.901,
			REB: 119, AST: 64, STL: 12, BLK: 19, TOV: 36, PF: 32, PTS: 435},
		// traded from Brooklyn to Phoenix in February 2023
		{PlayerID: kevinDurant, SeasonID: "2022-23", SeasonType: stats.RegularSeason, TeamID: 1610612751, TeamAbbreviation: "BKN",
			GP: 39, MIN: 1403, FGM: 404, FGA: 721, FGPct: 0.56, FG3M: 73, FG3A: 194, FG3Pct: 0.376, FTM: 276, FTA: 296, FTPct: 0.932,
			REB: 262, AST: 207, STL: 30, BLK: 57, TOV: 136, PF: 81, PTS: 1157},
		{PlayerID: kevinDurant, SeasonID: "2022-23", SeasonType: stats.RegularSeason, TeamID: 1610612756, TeamAbbreviation: "PHX",
			GP: 8, MIN: 264, FGM: 75, FGA: 133, FGPct: 0.564, FG3M: 15, FG3A: 28, FG3Pct: 0.536, FTM: 37, FTA: 40, FTPct: 0.925,
			REB: 52, AST: 28, STL: 5, BLK: 12, TOV: 28, PF: 16, PTS: 202},
		{PlayerID: kevinDurant, SeasonID: "2022-23", SeasonType: stats.RegularSeason, TeamID: 0, TeamAbbreviation: stats.TotalTeamAbbreviation,
			GP: 47, MIN: 1667, FGM: 479, FGA: 854, FGPct: 0.561, FG3M: 88, FG3A: 222, FG3Pct: 0.396, FTM: 313, FTA: 336, FTPct: 0.932,
			REB: 314, AST: 235, STL: 35, BLK: 69, TOV: 164, PF: 97, PTS: 1359},
	},
	lebronJames: {
		{PlayerID: lebronJames, SeasonID: "2019-20", SeasonType: stats.RegularSeason, TeamID: 1610612747, TeamAbbreviation: "LAL",
			GP: 67, MIN: 2316, FGM: 643, FGA: 1303, FGPct: 0.493, FG3M: 148, FG3A: 425, FG3Pct: 0.348, FTM: 264, FTA: 381, FTPct: 0.693,
			REB: 525, AST: 684, STL: 78, BLK: 36, TOV: 261, PF: 118, PTS: 1698},
		{PlayerID: lebronJames, SeasonID: "2019-20", SeasonType: stats.Playoffs, TeamID: 1610612747, TeamAbbreviation: "LAL",
			GP: 21, MIN: 763, FGM: 219, FGA: 390, FGPct: 0.56, FG3M: 44, FG3A: 119, FG3Pct: 0.37, FTM: 113, FTA: 157, FTPct: 0.72,
			REB: 226, AST: 184, STL: 25, BLK: 19, TOV: 84, PF: 38, PTS: 595},
	},
}

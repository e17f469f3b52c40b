package testutil

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

// SampleStatLine returns a season line with round totals so per-game values are easy to assert.
func SampleStatLine(playerID int, season string, seasonType stats.SeasonType) stats.SeasonStatLine {
	return stats.SeasonStatLine{
		PlayerID:         playerID,
		SeasonID:         season,
		SeasonType:       seasonType,
		TeamID:           1610612744,
		TeamAbbreviation: "GSW",
		GP:               10,
		MIN:              350,
		FGM:              4,
		FGA:              10,
		FGPct:            0.4,
		PTS:              250,
		REB:              50,
		AST:              60,
	}
}

// SampleShot returns one attempt stamped for season and seasonType.
func SampleShot(playerID int, season string, seasonType stats.SeasonType, made bool) stats.ShotAttempt {
	flag := 0
	if made {
		flag = 1
	}
	return stats.ShotAttempt{
		PlayerID:      playerID,
		TeamID:        1610612744,
		SeasonID:      season,
		SeasonType:    seasonType,
		LocX:          -220,
		LocY:          40,
		ShotMadeFlag:  flag,
		ActionType:    "Jump Shot",
		ShotZoneRange: "24+ ft.",
		GameID:        "0021500001",
	}
}

// SampleDataset returns a populated dataset for one regular season.
func SampleDataset(playerID int, name, season string) stats.Dataset {
	return stats.Dataset{
		Player: players.Identity{ID: playerID, FullName: name},
		Detail: players.Detail{PlayerID: playerID, Name: name},
		Lines:  []stats.SeasonStatLine{SampleStatLine(playerID, season, stats.RegularSeason)},
		Shots: []stats.ShotAttempt{
			SampleShot(playerID, season, stats.RegularSeason, true),
			SampleShot(playerID, season, stats.RegularSeason, false),
		},
		FetchedSeasons: []stats.FetchedSeason{{SeasonID: season, SeasonType: stats.RegularSeason}},
	}
}

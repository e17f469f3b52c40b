package nbastats

import (
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-shotchart-service/internal/timeutil"
)

func mapPlayer(r row) players.Identity {
	return players.Identity{
		ID:       r.int("PERSON_ID"),
		FullName: r.str("DISPLAY_FIRST_LAST"),
	}
}

func mapSeasonLine(r row) stats.SeasonStatLine {
	return stats.SeasonStatLine{
		PlayerID:         r.int("PLAYER_ID"),
		SeasonID:         r.str("SEASON_ID"),
		TeamID:           r.int("TEAM_ID"),
		TeamAbbreviation: r.str("TEAM_ABBREVIATION"),
		GP:               r.int("GP"),
		MIN:              r.float("MIN"),
		FGM:              r.int("FGM"),
		FGA:              r.int("FGA"),
		FGPct:            r.float("FG_PCT"),
		FG3M:             r.int("FG3M"),
		FG3A:             r.int("FG3A"),
		FG3Pct:           r.float("FG3_PCT"),
		FTM:              r.int("FTM"),
		FTA:              r.int("FTA"),
		FTPct:            r.float("FT_PCT"),
		REB:              r.float("REB"),
		AST:              r.float("AST"),
		STL:              r.float("STL"),
		BLK:              r.float("BLK"),
		TOV:              r.float("TOV"),
		PF:               r.float("PF"),
		PTS:              r.float("PTS"),
	}
}

func mapDetail(r row) players.Detail {
	return players.Detail{
		PlayerID:         r.int("PERSON_ID"),
		Name:             r.str("DISPLAY_FIRST_LAST"),
		Birthdate:        timeutil.DateOnly(r.str("BIRTHDATE")),
		Position:         r.str("POSITION"),
		TeamAbbreviation: r.str("TEAM_ABBREVIATION"),
		Height:           r.str("HEIGHT"),
		Weight:           r.str("WEIGHT"),
	}
}

func mapShot(r row) stats.ShotAttempt {
	return stats.ShotAttempt{
		PlayerID:      r.int("PLAYER_ID"),
		TeamID:        r.int("TEAM_ID"),
		GameID:        r.str("GAME_ID"),
		LocX:          r.int("LOC_X"),
		LocY:          r.int("LOC_Y"),
		ShotMadeFlag:  r.int("SHOT_MADE_FLAG"),
		ActionType:    strings.TrimSpace(r.str("ACTION_TYPE")),
		ShotZoneRange: r.str("SHOT_ZONE_RANGE"),
	}
}

func mapLeagueAverage(r row) stats.LeagueAverage {
	return stats.LeagueAverage{
		ShotZoneBasic: r.str("SHOT_ZONE_BASIC"),
		ShotZoneArea:  r.str("SHOT_ZONE_AREA"),
		ShotZoneRange: r.str("SHOT_ZONE_RANGE"),
		FGA:           r.int("FGA"),
		FGM:           r.int("FGM"),
		FGPct:         r.float("FG_PCT"),
	}
}

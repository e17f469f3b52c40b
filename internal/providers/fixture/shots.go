package fixture

import (
	"fmt"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"
)

type shotKind struct {
	actionType string
	zoneRange  string
	x, y       int
	weight     int
}

// shotMix is cycled through in order; weights set how many consecutive attempts each kind gets.
var shotMix = []shotKind{
	{actionType: "Jump Shot", zoneRange: "24+ ft.", x: -200, y: 120, weight: 5},
	{actionType: "Pullup Jump shot", zoneRange: "16-24 ft.", x: 150, y: 110, weight: 3},
	{actionType: "Driving Layup Shot", zoneRange: "Less Than 8 ft.", x: 0, y: 10, weight: 2},
	{actionType: "Step Back Jump shot", zoneRange: "24+ ft.", x: 220, y: 40, weight: 2},
	{actionType: "Floating Jump shot", zoneRange: "8-16 ft.", x: -60, y: 90, weight: 1},
}

var shotCycle = func() []int {
	var out []int
	for i, k := range shotMix {
		for j := 0; j < k.weight; j++ {
			out = append(out, i)
		}
	}
	return out
}()

const shotsPerGame = 20

// generateShots returns line.FGA attempts with exactly line.FGM made, spread evenly.
func generateShots(line stats.SeasonStatLine) []stats.ShotAttempt {
	out := make([]stats.ShotAttempt, 0, line.FGA)
	gamePrefix := "002"
	if line.SeasonType == stats.Playoffs {
		gamePrefix = "004"
	}
	yy := ""
	if len(line.SeasonID) >= 4 {
		yy = line.SeasonID[2:4]
	}
	for i := 0; i < line.FGA; i++ {
		kind := shotMix[shotCycle[i%len(shotCycle)]]
		made := 0
		if (i+1)*line.FGM/line.FGA > i*line.FGM/line.FGA {
			made = 1
		}
		out = append(out, stats.ShotAttempt{
			PlayerID:      line.PlayerID,
			TeamID:        line.TeamID,
			SeasonID:      line.SeasonID,
			SeasonType:    line.SeasonType,
			GameID:        fmt.Sprintf("%s%s%05d", gamePrefix, yy, i/shotsPerGame+1),
			LocX:          kind.x + (i*37)%61 - 30,
			LocY:          kind.y + (i*53)%41 - 20,
			ShotMadeFlag:  made,
			ActionType:    kind.actionType,
			ShotZoneRange: kind.zoneRange,
		})
	}
	return out
}

func leagueAverages() []stats.LeagueAverage {
	return []stats.LeagueAverage{
		{ShotZoneBasic: "Restricted Area", ShotZoneArea: "Center(C)", ShotZoneRange: "Less Than 8 ft.", FGA: 1000, FGM: 620, FGPct: 0.62},
		{ShotZoneBasic: "Mid-Range", ShotZoneArea: "Center(C)", ShotZoneRange: "16-24 ft.", FGA: 1000, FGM: 410, FGPct: 0.41},
		{ShotZoneBasic: "Above the Break 3", ShotZoneArea: "Center(C)", ShotZoneRange: "24+ ft.", FGA: 1000, FGM: 355, FGPct: 0.355},
	}
}

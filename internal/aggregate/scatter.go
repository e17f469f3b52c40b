package aggregate

import "github.com/preston-bernstein/nba-shotchart-service/internal/domain/stats"

// labelSeparator joins action type and zone range in hover labels.
const labelSeparator = "<br>"

// PartitionShots splits the attempts for seasonType into made and missed series.
func PartitionShots(shots []stats.ShotAttempt, seasonType stats.SeasonType) stats.ShotScatter {
	scatter := stats.ShotScatter{
		Made:   []stats.ShotPoint{},
		Missed: []stats.ShotPoint{},
	}
	for _, shot := range shots {
		if shot.SeasonType != seasonType {
			continue
		}
		point := stats.ShotPoint{
			X:        shot.LocX,
			Y:        shot.LocY,
			SeasonID: shot.SeasonID,
			Label:    shot.ActionType + labelSeparator + shot.ShotZoneRange,
		}
		if shot.Made() {
			scatter.Made = append(scatter.Made, point)
		} else {
			scatter.Missed = append(scatter.Missed, point)
		}
	}
	return scatter
}

// ShotsForSeason returns the attempts belonging to seasonID, in input order.
func ShotsForSeason(shots []stats.ShotAttempt, seasonID string) []stats.ShotAttempt {
	out := make([]stats.ShotAttempt, 0)
	for _, shot := range shots {
		if shot.SeasonID == seasonID {
			out = append(out, shot)
		}
	}
	return out
}

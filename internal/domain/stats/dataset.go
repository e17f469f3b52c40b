package stats

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/teams"
)

// FetchedSeason records one (season, season type) pair whose shots were fetched.
type FetchedSeason struct {
	SeasonID   string     `json:"seasonId"`
	SeasonType SeasonType `json:"seasonType"`
}

// Dataset is everything fetched for one search, before any season type filter is applied.
type Dataset struct {
	Player         players.Identity `json:"player"`
	Team           *teams.Identity  `json:"team,omitempty"`
	Season         string           `json:"season,omitempty"`
	Detail         players.Detail   `json:"detail"`
	Lines          []SeasonStatLine `json:"lines"`
	Shots          []ShotAttempt    `json:"shots"`
	LeagueAverages []LeagueAverage  `json:"leagueAverages"`
	FetchedSeasons []FetchedSeason  `json:"fetchedSeasons"`
}

// TeamID returns the team filter id, or 0 when the search is not team-scoped.
func (d Dataset) TeamID() int {
	if d.Team == nil {
		return 0
	}
	return d.Team.ID
}

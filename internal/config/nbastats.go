package config

import "time"

// NBAStatsConfig controls how we talk to stats.nba.com.
type NBAStatsConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RatePerSec   float64
	Burst        int
	RosterSeason string // season used for the all-players listing; empty means the provider default
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:      envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout:      durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		RatePerSec:   floatEnvOrDefault(envStatsRate, defaultStatsRate),
		Burst:        intEnvOrDefault(envStatsBurst, defaultStatsBurst),
		RosterSeason: envOrDefault(envRosterSeason, ""),
	}
}

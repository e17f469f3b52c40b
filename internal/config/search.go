package config

import "time"

// SearchConfig bounds the per-search shot fan-out and the state kept between searches.
type SearchConfig struct {
	ShotSeasonLimit     int // seasons fetched when the budget is exceeded (most recent first)
	ShotSeasonBudget    int // seasons fetched in full before the limit kicks in
	ShotFetchWorkers    int // concurrent shot fetches per search
	SessionCapacity     int // sessions remembered before the least recently used is dropped
	RosterLoadTimeout   time.Duration
	RosterRetryInterval time.Duration
}

func loadSearch() SearchConfig {
	return SearchConfig{
		ShotSeasonLimit:     intEnvOrDefault(envShotSeasonLimit, defaultShotSeasonLimit),
		ShotSeasonBudget:    intEnvOrDefault(envShotSeasonBudget, defaultShotSeasonBudget),
		ShotFetchWorkers:    intEnvOrDefault(envShotFetchWorkers, defaultShotFetchWorkers),
		SessionCapacity:     intEnvOrDefault(envSessionCapacity, defaultSessionCapacity),
		RosterLoadTimeout:   durationEnvOrDefault(envRosterLoadTimeout, defaultRosterLoadTimeout),
		RosterRetryInterval: durationEnvOrDefault(envRosterRetryInterval, defaultRosterRetryInterval),
	}
}

package config

import "time"

const (
	envPort                = "PORT"
	envProvider            = "PROVIDER"
	envMetricsPort         = "METRICS_PORT"
	envMetricsOn           = "METRICS_ENABLED"
	envOtelEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService         = "OTEL_SERVICE_NAME"
	envOtelInsecure        = "OTEL_EXPORTER_OTLP_INSECURE"
	envStatsBaseURL        = "NBA_STATS_BASE_URL"
	envStatsTimeout        = "NBA_STATS_TIMEOUT"
	envStatsRate           = "NBA_STATS_RATE_PER_SEC"
	envStatsBurst          = "NBA_STATS_BURST"
	envRosterSeason        = "ROSTER_SEASON"
	envShotSeasonLimit     = "SHOT_SEASON_LIMIT"
	envShotSeasonBudget    = "SHOT_SEASON_BUDGET"
	envShotFetchWorkers    = "SHOT_FETCH_WORKERS"
	envSessionCapacity     = "SESSION_CAPACITY"
	envRosterLoadTimeout   = "ROSTER_LOAD_TIMEOUT"
	envRosterRetryInterval = "ROSTER_RETRY_INTERVAL"

	dotEnvFile = ".env"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-shotchart-service"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultStatsTimeout = 15 * time.Second
	// stats.nba.com starts answering 429 above a few calls per second.
	defaultStatsRate  = 2
	defaultStatsBurst = 3

	defaultShotSeasonLimit     = 5
	defaultShotSeasonBudget    = 8
	defaultShotFetchWorkers    = 4
	defaultSessionCapacity     = 1000
	defaultRosterLoadTimeout   = 30 * time.Second
	defaultRosterRetryInterval = 15 * time.Second
)

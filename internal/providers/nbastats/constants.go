package nbastats

import "time"

const (
	providerName        = "nbastats"
	defaultBaseURL      = "https://stats.nba.com/stats"
	defaultHTTPTimeout  = 15 * time.Second
	defaultLeagueID     = "00"
	defaultRosterSeason = "2023-24"

	// stats.nba.com rejects requests that do not look like they come from nba.com.
	headerReferer   = "https://www.nba.com/"
	headerOrigin    = "https://www.nba.com"
	headerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	maxErrorBody = 512
)

// Endpoint paths.
const (
	endpointAllPlayers  = "/commonallplayers"
	endpointCareerStats = "/playercareerstats"
	endpointPlayerInfo  = "/commonplayerinfo"
	endpointShotChart   = "/shotchartdetail"
)

// Result set names.
const (
	setAllPlayers      = "CommonAllPlayers"
	setRegularSeason   = "SeasonTotalsRegularSeason"
	setPostSeason      = "SeasonTotalsPostSeason"
	setPlayerInfo      = "CommonPlayerInfo"
	setShotChartDetail = "Shot_Chart_Detail"
	setLeagueAverages  = "LeagueAverages"
)

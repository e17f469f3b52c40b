package stats

// SeasonStatLine is one provider row of season totals for a (player, season, season type, team).
type SeasonStatLine struct {
	PlayerID         int        `json:"playerId"`
	SeasonID         string     `json:"seasonId"`
	SeasonType       SeasonType `json:"seasonType"`
	TeamID           int        `json:"teamId"`
	TeamAbbreviation string     `json:"teamAbbreviation"`
	GP               int        `json:"gp"`
	MIN              float64    `json:"min"`
	FGM              int        `json:"fgm"`
	FGA              int        `json:"fga"`
	FGPct            float64    `json:"fgPct"`
	FG3M             int        `json:"fg3m"`
	FG3A             int        `json:"fg3a"`
	FG3Pct           float64    `json:"fg3Pct"`
	FTM              int        `json:"ftm"`
	FTA              int        `json:"fta"`
	FTPct            float64    `json:"ftPct"`
	REB              float64    `json:"reb"`
	AST              float64    `json:"ast"`
	STL              float64    `json:"stl"`
	BLK              float64    `json:"blk"`
	TOV              float64    `json:"tov"`
	PF               float64    `json:"pf"`
	PTS              float64    `json:"pts"`
}

// TotalTeamAbbreviation marks the combined row reported for a season split across teams.
const TotalTeamAbbreviation = "TOT"

// Combined reports whether the line sums a season the player split across several teams.
func (l SeasonStatLine) Combined() bool {
	return l.TeamID == 0 || l.TeamAbbreviation == TotalTeamAbbreviation
}

// ShotAttempt is a single field-goal attempt from the shot chart feed.
type ShotAttempt struct {
	PlayerID      int        `json:"playerId"`
	TeamID        int        `json:"teamId"`
	SeasonID      string     `json:"seasonId"`
	SeasonType    SeasonType `json:"seasonType"`
	GameID        string     `json:"gameId"`
	LocX          int        `json:"locX"`
	LocY          int        `json:"locY"`
	ShotMadeFlag  int        `json:"shotMadeFlag"`
	ActionType    string     `json:"actionType"`
	ShotZoneRange string     `json:"shotZoneRange"`
}

// Made reports whether the attempt went in.
func (s ShotAttempt) Made() bool {
	return s.ShotMadeFlag == 1
}

// LeagueAverage is the league-wide shooting benchmark for one zone in a season.
type LeagueAverage struct {
	SeasonID      string     `json:"seasonId"`
	SeasonType    SeasonType `json:"seasonType"`
	ShotZoneBasic string     `json:"shotZoneBasic"`
	ShotZoneArea  string     `json:"shotZoneArea"`
	ShotZoneRange string     `json:"shotZoneRange"`
	FGA           int        `json:"fga"`
	FGM           int        `json:"fgm"`
	FGPct         float64    `json:"fgPct"`
}

// ShotQuery identifies one shot chart fetch.
type ShotQuery struct {
	PlayerID   int
	TeamID     int // 0 means every team the player appeared for
	SeasonID   string
	SeasonType SeasonType
}

// ShotChart is the raw result of one shot chart fetch.
type ShotChart struct {
	Shots          []ShotAttempt   `json:"shots"`
	LeagueAverages []LeagueAverage `json:"leagueAverages"`
}

// Stamp returns a copy of the chart with every row tagged with the query's season.
// The provider does not reliably carry season fields, so fetchers call this after decoding.
func (c ShotChart) Stamp(q ShotQuery) ShotChart {
	out := ShotChart{
		Shots:          make([]ShotAttempt, len(c.Shots)),
		LeagueAverages: make([]LeagueAverage, len(c.LeagueAverages)),
	}
	for i, shot := range c.Shots {
		shot.SeasonID = q.SeasonID
		shot.SeasonType = q.SeasonType
		out.Shots[i] = shot
	}
	for i, avg := range c.LeagueAverages {
		avg.SeasonID = q.SeasonID
		avg.SeasonType = q.SeasonType
		out.LeagueAverages[i] = avg
	}
	return out
}

// TagSeasonType returns copies of lines tagged with seasonType.
func TagSeasonType(lines []SeasonStatLine, seasonType SeasonType) []SeasonStatLine {
	out := make([]SeasonStatLine, len(lines))
	for i, line := range lines {
		line.SeasonType = seasonType
		out[i] = line
	}
	return out
}

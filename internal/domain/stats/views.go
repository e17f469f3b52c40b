package stats

// SeasonTableRow is a display row: identifiers and percentages pass through, counting stats are per game.
type SeasonTableRow struct {
	Season           string  `json:"SEASON"`
	TeamAbbreviation string  `json:"TEAM"`
	GP               int     `json:"GP"`
	FGA              int     `json:"FGA"`
	FGPct            float64 `json:"FG_PCT"`
	FG3Pct           float64 `json:"FG3_PCT"`
	FTPct            float64 `json:"FT_PCT"`
	MIN              float64 `json:"MIN"`
	PTS              float64 `json:"PTS"`
	REB              float64 `json:"REB"`
	AST              float64 `json:"AST"`
	STL              float64 `json:"STL"`
	BLK              float64 `json:"BLK"`
	TOV              float64 `json:"TOV"`
	PF               float64 `json:"PF"`
}

// ShotPoint is one plotted attempt.
type ShotPoint struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	SeasonID string `json:"seasonId"`
	Label    string `json:"label"`
}

// ShotScatter splits attempts into the two plotted series.
type ShotScatter struct {
	Made   []ShotPoint `json:"made"`
	Missed []ShotPoint `json:"missed"`
}

// Total is the number of plotted points across both series.
func (s ShotScatter) Total() int {
	return len(s.Made) + len(s.Missed)
}

// RankedShotType is a derived top shot type for a season.
type RankedShotType struct {
	SeasonID   string  `json:"seasonId"`
	ActionType string  `json:"actionType"`
	Attempts   int     `json:"attempts"`
	Made       int     `json:"made"`
	FGPct      float64 `json:"fgPct"`
	Rank       int     `json:"rank"`
}

// Views bundles everything the presentation layer renders for one season type.
type Views struct {
	SeasonType SeasonType       `json:"seasonType"`
	Table      []SeasonTableRow `json:"table"`
	Scatter    ShotScatter      `json:"scatter"`
	TopShots   []RankedShotType `json:"topShots"`
}

// EmptyViews is the empty-result state: an empty table and empty charts.
func EmptyViews(seasonType SeasonType) Views {
	return Views{
		SeasonType: seasonType,
		Table:      []SeasonTableRow{},
		Scatter:    ShotScatter{Made: []ShotPoint{}, Missed: []ShotPoint{}},
		TopShots:   []RankedShotType{},
	}
}

package stats

import (
	"regexp"
	"strings"
)

// SeasonType partitions nearly every provider query.
type SeasonType string

const (
	RegularSeason SeasonType = "Regular Season"
	Playoffs      SeasonType = "Playoffs"
)

// SeasonTypes lists every season type in display order.
var SeasonTypes = []SeasonType{RegularSeason, Playoffs}

// SeasonTypeFromToggle maps the client's playoffs toggle to a season type.
func SeasonTypeFromToggle(playoffs bool) SeasonType {
	if playoffs {
		return Playoffs
	}
	return RegularSeason
}

// ParseSeasonType accepts the provider spelling or the short forms "regular"/"playoffs".
func ParseSeasonType(raw string) (SeasonType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "regular season", "regular", "rs":
		return RegularSeason, true
	case "playoffs", "playoff", "po":
		return Playoffs, true
	default:
		return "", false
	}
}

var seasonIDPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidSeasonID reports whether s matches the provider's season id format (e.g. 2022-23).
func ValidSeasonID(s string) bool {
	return seasonIDPattern.MatchString(s)
}

package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly truncates a timestamp such as "1988-03-14T00:00:00" to its date part.
// Values whose date part does not parse are returned as "".
func DateOnly(value string) string {
	datePart, _, _ := strings.Cut(strings.TrimSpace(value), "T")
	t, err := ParseDate(datePart)
	if err != nil {
		return ""
	}
	return FormatDate(t)
}

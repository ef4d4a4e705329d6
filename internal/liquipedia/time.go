package liquipedia

import (
	"strings"
	"time"

	"github.com/mahmoodhamdi/scraper-api/internal/domain"
)

// The wiki shows group-stage times in one of two shapes: a full timestamp
// with a timezone abbreviation, or just a date.
var matchTimeLayouts = []string{
	"January 2, 2006 - 15:04 MST",
	"January 2, 2006",
}

// ParseMatchTime parses a display time into a sortable timestamp. The bool
// reports whether any layout matched.
func ParseMatchTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range matchTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MatchDateOf derives the YYYY-MM-DD bucket for a display time. Unparseable
// times land in the "Unknown Date" bucket, which sorts after every real date.
func MatchDateOf(s string) string {
	if t, ok := ParseMatchTime(s); ok {
		return t.Format("2006-01-02")
	}
	return domain.UnknownDate
}

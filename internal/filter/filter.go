package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sport-predict/internal/client"
)

// DateRange restricts matches to a window around now
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"

	// AllSports disables the sport predicate
	AllSports = "all"
)

// ParseDateRange normalises user input into a DateRange. Empty input means
// RangeAll.
func ParseDateRange(s string) (DateRange, error) {
	switch DateRange(strings.ToLower(strings.TrimSpace(s))) {
	case "", RangeAll:
		return RangeAll, nil
	case RangeToday:
		return RangeToday, nil
	case RangeWeek:
		return RangeWeek, nil
	default:
		return "", fmt.Errorf("unknown date range %q (want all, today or week)", s)
	}
}

// Options are the three client-side predicates
type Options struct {
	Sport     string
	DateRange DateRange
	Search    string
}

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseMatchDate parses the date forms the API and legacy data use.
// Zone-less forms are read in loc.
func ParseMatchDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekBounds returns the Monday 00:00 and the following Monday 00:00 around now
func weekBounds(now time.Time) (time.Time, time.Time) {
	today := startOfDay(now)
	sinceMonday := (int(today.Weekday()) + 6) % 7
	start := today.AddDate(0, 0, -sinceMonday)
	return start, start.AddDate(0, 0, 7)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (o Options) keep(m client.Match, now time.Time, weekStart, weekEnd time.Time) bool {
	if o.Sport != "" && o.Sport != AllSports && m.SportName != o.Sport {
		return false
	}

	if m.MatchDate != "" && o.DateRange != "" && o.DateRange != RangeAll {
		date, ok := ParseMatchDate(m.MatchDate, now.Location())
		if !ok {
			return false
		}
		date = date.In(now.Location())

		switch o.DateRange {
		case RangeToday:
			if !sameDay(date, now) {
				return false
			}
		case RangeWeek:
			if date.Before(weekStart) || !date.Before(weekEnd) {
				return false
			}
		}
	}

	if o.Search != "" {
		needle := strings.ToLower(o.Search)
		if !strings.Contains(strings.ToLower(m.HomeTeamName), needle) &&
			!strings.Contains(strings.ToLower(m.AwayTeamName), needle) {
			return false
		}
	}

	return true
}

// FilterMatches returns the matches satisfying every predicate in opts,
// ordered by date. Matches without a date sort last; unparsable dates keep
// their relative order.
func FilterMatches(matches []client.Match, opts Options, now time.Time) []client.Match {
	weekStart, weekEnd := weekBounds(now)

	result := make([]client.Match, 0, len(matches))
	for _, m := range matches {
		if opts.keep(m, now, weekStart, weekEnd) {
			result = append(result, m)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i].MatchDate, result[j].MatchDate, now.Location())
	})
	return result
}

func less(a, b string, loc *time.Location) bool {
	if a == "" || b == "" {
		return a != "" && b == ""
	}
	ta, okA := ParseMatchDate(a, loc)
	tb, okB := ParseMatchDate(b, loc)
	if !okA || !okB {
		return false
	}
	return ta.Before(tb)
}

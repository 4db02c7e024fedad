package dates

import (
	"fmt"
	"math"
	"time"
)

const (
	// DateLayout is the civil date wire format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout is the civil time-of-day wire format (HH:MM).
	ClockLayout = "15:04"
)

// ParseCivilDate parses a YYYY-MM-DD string at midnight in loc.
func ParseCivilDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil date %q: %w", s, err)
	}
	return t, nil
}

// ParseClock validates an HH:MM string.
func ParseClock(s string) error {
	if _, err := time.Parse(ClockLayout, s); err != nil {
		return fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return nil
}

// FormatCivilDate renders t as a YYYY-MM-DD string in t's location.
func FormatCivilDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today is the civil date of the given instant.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// EndOfDay returns the last instant of t's civil day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfDay returns midnight of t's civil day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil counts whole civil days from now's day to date's day.
// Same day is 0, yesterday is -1. The delta is rounded, not truncated,
// so a DST transition inside the span cannot shift the count by a day.
func DaysUntil(now, date time.Time) int {
	from := StartOfDay(now)
	to := StartOfDay(date.In(now.Location()))
	return int(math.Round(to.Sub(from).Hours() / 24))
}

package dates

import (
	"testing"
	"time"
)

func TestParseCivilDate(t *testing.T) {
	d, err := ParseCivilDate("2025-01-10", time.UTC)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 10 {
		t.Fatalf("unexpected date: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}

	for _, bad := range []string{"", "10-01-2025", "2025/01/10", "2025-13-01", "hoy"} {
		if _, err := ParseCivilDate(bad, time.UTC); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseClock(t *testing.T) {
	if err := ParseClock("19:30"); err != nil {
		t.Fatalf("valid clock rejected: %v", err)
	}
	for _, bad := range []string{"", "25:00", "7pm", "19:60"} {
		if err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 1, 6, 15, 30, 0, 0, time.UTC)

	cases := map[string]int{
		"2025-01-06": 0,
		"2025-01-07": 1,
		"2025-01-11": 5,
		"2025-01-05": -1,
		"2024-12-31": -6,
	}
	for date, expected := range cases {
		d, err := ParseCivilDate(date, time.UTC)
		if err != nil {
			t.Fatalf("parse %s: %v", date, err)
		}
		if got := DaysUntil(now, d); got != expected {
			t.Fatalf("DaysUntil(%s) expected %d got %d", date, expected, got)
		}
	}
}

func TestEndOfDayBoundary(t *testing.T) {
	d, _ := ParseCivilDate("2025-01-10", time.UTC)
	end := EndOfDay(d)

	lateSameDay := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	if end.Before(lateSameDay) {
		t.Fatalf("end of day %v is before %v", end, lateSameDay)
	}
	nextMidnight := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	if !end.Before(nextMidnight) {
		t.Fatalf("end of day %v leaked into next day", end)
	}
}

func TestDaysUntilAcrossClockChange(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// Chile springs forward the night of 2025-09-06 to 07 (the span is an
	// hour short) and falls back the night of 2025-04-05 to 06 (an hour
	// long). Neither may shift the civil-day count.
	cases := []struct {
		from, to string
		want     int
	}{
		{"2025-09-03", "2025-09-09", 6},
		{"2025-09-06", "2025-09-07", 1},
		{"2025-04-03", "2025-04-09", 6},
		{"2025-04-05", "2025-04-06", 1},
	}
	for _, c := range cases {
		from, err := ParseCivilDate(c.from, loc)
		if err != nil {
			t.Fatalf("parse %s: %v", c.from, err)
		}
		to, err := ParseCivilDate(c.to, loc)
		if err != nil {
			t.Fatalf("parse %s: %v", c.to, err)
		}
		if got := DaysUntil(from.Add(10*time.Hour), to); got != c.want {
			t.Fatalf("%s to %s: expected %d days, got %d", c.from, c.to, c.want, got)
		}
	}
}

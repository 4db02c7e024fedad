package calendar

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/ironclub/gym-server/internal/domain/dto"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
)

// icalWeekdays maps weekday numbers (0 = Sunday) to RRULE BYDAY codes.
var icalWeekdays = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// ExportWeekToICS serializes the weekly class schedule as recurring
// iCalendar events, one VEVENT with a weekly RRULE per block.
func ExportWeekToICS(blocks []dto.CalendarBlock) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Iron Club//EN")
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	now := time.Now().In(location.Location())
	for _, block := range blocks {
		if block.DayOfWeek < 0 || block.DayOfWeek > 6 {
			continue
		}

		start, err := nextOccurrence(now, block.DayOfWeek, block.StartTime)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", block.ID, err)
		}
		end, err := nextOccurrence(now, block.DayOfWeek, block.EndTime)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", block.ID, err)
		}
		if !end.After(start) {
			end = start.Add(time.Hour)
		}

		e := cal.AddEvent(fmt.Sprintf("%s@ironclub", block.ID))
		e.SetDtStampTime(now)
		e.SetStartAt(start)
		e.SetEndAt(end)
		e.SetSummary(block.Type)
		if block.ProfessorName != "" {
			e.SetDescription("Profesor: " + block.ProfessorName)
		}
		e.SetStatus(ics.ObjectStatusConfirmed)
		e.SetTimeTransparency(ics.TransparencyOpaque)
		e.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;BYDAY="+icalWeekdays[block.DayOfWeek])
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, fmt.Errorf("error serializing calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// nextOccurrence finds the first date on or after ref falling on the
// given weekday, at the given clock time.
func nextOccurrence(ref time.Time, weekday int, clock string) (time.Time, error) {
	t, err := time.Parse(dates.ClockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}

	daysAhead := (weekday - int(ref.Weekday()) + 7) % 7
	day := ref.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), nil
}

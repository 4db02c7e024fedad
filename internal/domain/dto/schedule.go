package dto

import (
	"github.com/ironclub/gym-server/internal/domain/entity"
)

// CalendarBlock is a class block decorated for calendar rendering.
type CalendarBlock struct {
	ID            string `json:"id"`
	DayOfWeek     int    `json:"dayOfWeek"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Type          string `json:"type"`
	Color         string `json:"color"`
	ProfessorName string `json:"professorName"`
	MaxCapacity   int    `json:"maxCapacity"`
	Active        bool   `json:"active"`
	Permanent     bool   `json:"permanent"`
}

func NewCalendarBlockFromEntity(block entity.ClassBlock, color string) CalendarBlock {
	day := -1
	if block.DayOfWeek != nil {
		day = *block.DayOfWeek
	}
	return CalendarBlock{
		ID:            block.ID,
		DayOfWeek:     day,
		StartTime:     block.StartTime,
		EndTime:       block.EndTime,
		Type:          block.Type,
		Color:         color,
		ProfessorName: block.ProfessorName,
		MaxCapacity:   block.MaxCapacity,
		Active:        block.IsActive(),
		Permanent:     block.IsPermanent(),
	}
}

// WeekView groups calendar blocks by weekday together with the derived
// active-day set.
type WeekView struct {
	ActiveWeekdays []int                   `json:"activeWeekdays"`
	Blocks         map[int][]CalendarBlock `json:"blocks"`
}

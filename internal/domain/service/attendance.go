package service

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type AttendanceStorage interface {
	Get(ctx context.Context, date string, userID string) (*entity.Attendance, error)
	Create(ctx context.Context, record *entity.Attendance) (*entity.Attendance, error)
	Update(ctx context.Context, record *entity.Attendance) (*entity.Attendance, error)
	ListForDate(ctx context.Context, date string) ([]entity.Attendance, error)
}

type attendanceFeed interface {
	PublishMark(ctx context.Context, record entity.Attendance) error
}

type AttendanceService struct {
	logger *types.Logger

	storage AttendanceStorage
	feed    attendanceFeed
}

func NewAttendanceService(logger *types.Logger, storage AttendanceStorage, feed attendanceFeed) *AttendanceService {
	return &AttendanceService{
		logger:  logger,
		storage: storage,
		feed:    feed,
	}
}

// MarkPresent records a presence mark for a user on a civil date,
// creating the record or merging into the existing one. Marking twice for
// the same date leaves one record with the latest time; the stored display
// name survives when the new mark omits it.
func (s *AttendanceService) MarkPresent(ctx context.Context, date, userID, name, clock string) (*entity.Attendance, error) {
	if _, err := dates.ParseCivilDate(date, location.Location()); err != nil {
		return nil, errorz.ErrInvalidDate
	}

	existing, err := s.storage.Get(ctx, date, userID)
	switch {
	case err == nil:
		existing.Present = true
		existing.Time = clock
		if name != "" {
			existing.Name = name
		}
		existing, err = s.storage.Update(ctx, existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing, err = s.storage.Create(ctx, &entity.Attendance{
			Date:    date,
			UserID:  userID,
			Present: true,
			Time:    clock,
			Name:    name,
		})
	default:
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		if pubErr := s.feed.PublishMark(ctx, *existing); pubErr != nil {
			s.logger.Errorf("failed to publish attendance mark for %s/%s: %v", date, userID, pubErr)
		}
	}
	return existing, nil
}

// ListForDate returns the marks for one civil date ordered by time
// ascending. A date nobody attended yields an empty list, not an error.
func (s *AttendanceService) ListForDate(ctx context.Context, date string) ([]entity.Attendance, error) {
	return s.storage.ListForDate(ctx, date)
}

// ExportXLSX renders the attendance report for one date as a spreadsheet
// for admin download.
func (s *AttendanceService) ExportXLSX(ctx context.Context, date string) (*bytes.Buffer, error) {
	records, err := s.storage.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	_ = f.SetCellValue(sheet, "A1", "Nombre")
	_ = f.SetCellValue(sheet, "B1", "Hora")
	_ = f.SetCellValue(sheet, "C1", "Presente")
	for i, record := range records {
		row := strconv.Itoa(i + 2)
		_ = f.SetCellValue(sheet, "A"+row, record.Name)
		_ = f.SetCellValue(sheet, "B"+row, record.Time)
		_ = f.SetCellValue(sheet, "C"+row, record.Present)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

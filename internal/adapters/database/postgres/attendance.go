package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

type AttendanceStorage struct {
	db *gorm.DB
}

func NewAttendanceStorage(db *gorm.DB) *AttendanceStorage {
	return &AttendanceStorage{
		db: db,
	}
}

func (s *AttendanceStorage) Create(ctx context.Context, record *entity.Attendance) (*entity.Attendance, error) {
	err := s.db.WithContext(ctx).Create(&record).Error
	return record, err
}

func (s *AttendanceStorage) Get(ctx context.Context, date string, userID string) (*entity.Attendance, error) {
	var record entity.Attendance
	err := s.db.WithContext(ctx).Where("date = ? AND user_id = ?", date, userID).First(&record).Error
	return &record, err
}

func (s *AttendanceStorage) Update(ctx context.Context, record *entity.Attendance) (*entity.Attendance, error) {
	err := s.db.WithContext(ctx).Save(&record).Error
	return record, err
}

func (s *AttendanceStorage) ListForDate(ctx context.Context, date string) ([]entity.Attendance, error) {
	var records []entity.Attendance
	err := s.db.WithContext(ctx).Where("date = ?", date).Order("time").Find(&records).Error
	return records, err
}

package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

type ReservationStorage struct {
	db *gorm.DB
}

func NewReservationStorage(db *gorm.DB) *ReservationStorage {
	return &ReservationStorage{
		db: db,
	}
}

func (s *ReservationStorage) Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error) {
	err := s.db.WithContext(ctx).Create(&reservation).Error
	return reservation, err
}

func (s *ReservationStorage) Get(ctx context.Context, date, blockID, userID string) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := s.db.WithContext(ctx).
		Where("date = ? AND block_id = ? AND user_id = ?", date, blockID, userID).
		First(&reservation).Error
	return &reservation, err
}

func (s *ReservationStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Reservation{}).Error
}

func (s *ReservationStorage) ListForDate(ctx context.Context, date string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := s.db.WithContext(ctx).Preload("User").Preload("Block").Where("date = ?", date).Find(&reservations).Error
	return reservations, err
}

func (s *ReservationStorage) ListForUser(ctx context.Context, userID string) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := s.db.WithContext(ctx).Preload("Block").Where("user_id = ?", userID).Order("date").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationStorage) CountForSlot(ctx context.Context, date, blockID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Reservation{}).
		Where("date = ? AND block_id = ?", date, blockID).
		Count(&count).Error
	return count, err
}

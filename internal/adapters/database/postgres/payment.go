package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

type PaymentStorage struct {
	db *gorm.DB
}

func NewPaymentStorage(db *gorm.DB) *PaymentStorage {
	return &PaymentStorage{
		db: db,
	}
}

func (s *PaymentStorage) Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	err := s.db.WithContext(ctx).Create(&payment).Error
	return payment, err
}

func (s *PaymentStorage) GetByUser(ctx context.Context, userID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (s *PaymentStorage) GetAll(ctx context.Context, limit, offset int) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := s.db.WithContext(ctx).Order("created_at desc").Offset(offset).Limit(limit).Find(&payments).Error
	return payments, err
}

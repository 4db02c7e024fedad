package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

type ClassBlockStorage struct {
	db *gorm.DB
}

func NewClassBlockStorage(db *gorm.DB) *ClassBlockStorage {
	return &ClassBlockStorage{
		db: db,
	}
}

func (s *ClassBlockStorage) Create(ctx context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error) {
	err := s.db.WithContext(ctx).Create(&block).Error
	return block, err
}

func (s *ClassBlockStorage) Get(ctx context.Context, id string) (*entity.ClassBlock, error) {
	var block entity.ClassBlock
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&block).Error
	return &block, err
}

func (s *ClassBlockStorage) GetAll(ctx context.Context) ([]entity.ClassBlock, error) {
	var blocks []entity.ClassBlock
	err := s.db.WithContext(ctx).Order("day_of_week, start_time").Find(&blocks).Error
	return blocks, err
}

func (s *ClassBlockStorage) Update(ctx context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error) {
	err := s.db.WithContext(ctx).Save(&block).Error
	return block, err
}

func (s *ClassBlockStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ClassBlock{}).Error
}

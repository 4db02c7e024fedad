package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

type ProductStorage struct {
	db *gorm.DB
}

func NewProductStorage(db *gorm.DB) *ProductStorage {
	return &ProductStorage{
		db: db,
	}
}

func (s *ProductStorage) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	err := s.db.WithContext(ctx).Create(&product).Error
	return product, err
}

func (s *ProductStorage) Get(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	return &product, err
}

func (s *ProductStorage) GetAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := s.db.WithContext(ctx).Order("title").Find(&products).Error
	return products, err
}

func (s *ProductStorage) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	err := s.db.WithContext(ctx).Save(&product).Error
	return product, err
}

func (s *ProductStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{}).Error
}

package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Create(&notification).Error
	return notification, err
}

func (s *NotificationStorage) ListForUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (s *NotificationStorage) MarkRead(ctx context.Context, id string, at time.Time) error {
	return s.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("id = ?", id).
		Update("read_at", at).Error
}

func (s *NotificationStorage) GetLatestByUserAndType(ctx context.Context, userID string, t entity.NotificationType) (*entity.Notification, error) {
	var notification entity.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, t).
		Order("created_at desc").
		First(&notification).Error
	return &notification, err
}

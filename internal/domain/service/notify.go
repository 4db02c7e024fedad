package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
	GetLatestByUserAndType(ctx context.Context, userID string, t entity.NotificationType) (*entity.Notification, error)
}

type notifyUserStorage interface {
	GetAll(ctx context.Context) ([]entity.User, error)
}

type notifySMTPClient interface {
	SendMembershipExpiring(to, name, expiryDate string)
	SendPaymentReceipt(to, name, concept string, amount int)
}

type NotifyService struct {
	logger *types.Logger

	notificationStorage NotificationStorage
	userStorage         notifyUserStorage
	smtpClient          notifySMTPClient
}

func NewNotifyService(
	logger *types.Logger,
	notificationStorage NotificationStorage,
	userStorage notifyUserStorage,
	smtpClient notifySMTPClient,
) *NotifyService {
	return &NotifyService{
		logger:              logger,
		notificationStorage: notificationStorage,
		userStorage:         userStorage,
		smtpClient:          smtpClient,
	}
}

func (s *NotifyService) ListForUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	return s.notificationStorage.ListForUser(ctx, userID)
}

func (s *NotifyService) MarkRead(ctx context.Context, id string, at time.Time) error {
	return s.notificationStorage.MarkRead(ctx, id, at)
}

// PaymentRegistered stores a receipt notice and emails it to the member.
func (s *NotifyService) PaymentRegistered(ctx context.Context, user *entity.User, payment *entity.Payment) {
	concept := Receipt(payment)
	_, err := s.notificationStorage.Create(ctx, &entity.Notification{
		UserID: user.ID,
		Type:   entity.NotificationTypePayment,
		Title:  "Pago registrado",
		Body:   fmt.Sprintf("%s. Membresía vigente hasta %s.", concept, user.ExpiryDate),
	})
	if err != nil {
		s.logger.Errorf("failed to store payment notification for %s: %v", user.ID, err)
	}
	s.smtpClient.SendPaymentReceipt(user.Email, user.Name, concept, payment.Amount)
}

// StartExpiryScheduler checks once a day for memberships inside the
// expiring window and notifies each member a single time per window.
func (s *NotifyService) StartExpiryScheduler() {
	s.logger.Info("Starting membership expiry scheduler")
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		s.checkAndNotify(context.Background())
		for range ticker.C {
			s.checkAndNotify(context.Background())
		}
	}()
}

func (s *NotifyService) checkAndNotify(ctx context.Context) {
	now := location.Now()

	users, err := s.userStorage.GetAll(ctx)
	if err != nil {
		s.logger.Errorf("failed to load users for expiry check: %v", err)
		return
	}

	for _, user := range users {
		if MembershipState(&user, now) != MembershipExpiring {
			continue
		}

		last, err := s.notificationStorage.GetLatestByUserAndType(ctx, user.ID, entity.NotificationTypeExpiring)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Errorf("failed to check last expiry notice for %s: %v", user.ID, err)
			continue
		}
		// One notice per expiring window.
		if err == nil && now.Sub(last.CreatedAt) < ExpiringWindowDays*24*time.Hour {
			continue
		}

		_, err = s.notificationStorage.Create(ctx, &entity.Notification{
			UserID: user.ID,
			Type:   entity.NotificationTypeExpiring,
			Title:  "Tu membresía está por vencer",
			Body:   fmt.Sprintf("Tu membresía vence el %s. Acércate a recepción para renovarla.", user.ExpiryDate),
		})
		if err != nil {
			s.logger.Errorf("failed to store expiry notification for %s: %v", user.ID, err)
			continue
		}
		s.smtpClient.SendMembershipExpiring(user.Email, user.Name, user.ExpiryDate)
	}
}

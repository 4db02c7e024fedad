package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
)

type fakeNotificationStorage struct {
	created []entity.Notification
}

func (f *fakeNotificationStorage) Create(_ context.Context, n *entity.Notification) (*entity.Notification, error) {
	n.ID = "n1"
	n.CreatedAt = location.Now()
	f.created = append(f.created, *n)
	return n, nil
}

func (f *fakeNotificationStorage) ListForUser(_ context.Context, userID string) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStorage) MarkRead(_ context.Context, id string, at time.Time) error {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].ReadAt = &at
		}
	}
	return nil
}

func (f *fakeNotificationStorage) GetLatestByUserAndType(_ context.Context, userID string, t entity.NotificationType) (*entity.Notification, error) {
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID && f.created[i].Type == t {
			return &f.created[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeNotifyUsers struct {
	users []entity.User
}

func (f *fakeNotifyUsers) GetAll(_ context.Context) ([]entity.User, error) {
	return f.users, nil
}

type fakeMailer struct {
	expiring int
	receipts int
}

func (f *fakeMailer) SendMembershipExpiring(_, _, _ string) { f.expiring++ }

func (f *fakeMailer) SendPaymentReceipt(_, _, _ string, _ int) { f.receipts++ }

func TestExpiryCheckNotifiesOncePerWindow(t *testing.T) {
	now := location.Now()
	users := &fakeNotifyUsers{users: []entity.User{
		{
			ID:         "u1",
			Name:       "Carla Soto",
			Email:      "carla@example.com",
			Authorized: true,
			ExpiryDate: dates.FormatCivilDate(now.AddDate(0, 0, 3)),
		},
		{
			ID:         "u2",
			Authorized: true,
			ExpiryDate: dates.FormatCivilDate(now.AddDate(0, 1, 0)),
		},
		{
			ID:         "u3",
			Authorized: true,
			ExpiryDate: dates.FormatCivilDate(now.AddDate(0, 0, -2)),
		},
	}}
	notifications := &fakeNotificationStorage{}
	mailer := &fakeMailer{}
	s := NewNotifyService(testLogger(), notifications, users, mailer)

	s.checkAndNotify(context.Background())

	if len(notifications.created) != 1 {
		t.Fatalf("expected one notice, got %d", len(notifications.created))
	}
	if notifications.created[0].UserID != "u1" {
		t.Fatalf("expected notice for the expiring member, got %s", notifications.created[0].UserID)
	}
	if notifications.created[0].Type != entity.NotificationTypeExpiring {
		t.Fatalf("unexpected notice type %s", notifications.created[0].Type)
	}
	if mailer.expiring != 1 {
		t.Fatalf("expected one email, got %d", mailer.expiring)
	}

	// A second run inside the same window must stay silent.
	s.checkAndNotify(context.Background())
	if len(notifications.created) != 1 || mailer.expiring != 1 {
		t.Fatalf("repeat run must not re-notify: %d notices, %d emails", len(notifications.created), mailer.expiring)
	}
}

func TestPaymentRegisteredStoresReceipt(t *testing.T) {
	notifications := &fakeNotificationStorage{}
	mailer := &fakeMailer{}
	s := NewNotifyService(testLogger(), notifications, &fakeNotifyUsers{}, mailer)

	user := &entity.User{ID: "u1", Name: "Carla Soto", Email: "carla@example.com", ExpiryDate: "2025-04-15"}
	payment := &entity.Payment{ID: "p1", UserID: "u1", Amount: 30000, Months: 1, Method: entity.PaymentMethodCash}

	s.PaymentRegistered(context.Background(), user, payment)

	if len(notifications.created) != 1 {
		t.Fatalf("expected a stored receipt notice, got %d", len(notifications.created))
	}
	if notifications.created[0].Type != entity.NotificationTypePayment {
		t.Fatalf("unexpected notice type %s", notifications.created[0].Type)
	}
	if mailer.receipts != 1 {
		t.Fatalf("expected one receipt email, got %d", mailer.receipts)
	}
}

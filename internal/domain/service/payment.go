package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type PaymentStorage interface {
	Create(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	GetByUser(ctx context.Context, userID string) ([]entity.Payment, error)
	GetAll(ctx context.Context, limit, offset int) ([]entity.Payment, error)
}

type paymentUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type paymentNotifier interface {
	PaymentRegistered(ctx context.Context, user *entity.User, payment *entity.Payment)
}

type PaymentService struct {
	logger *types.Logger

	paymentStorage PaymentStorage
	userStorage    paymentUserStorage
	notifier       paymentNotifier
}

func NewPaymentService(
	logger *types.Logger,
	paymentStorage PaymentStorage,
	userStorage paymentUserStorage,
	notifier paymentNotifier,
) *PaymentService {
	return &PaymentService{
		logger:         logger,
		paymentStorage: paymentStorage,
		userStorage:    userStorage,
		notifier:       notifier,
	}
}

// Register records a membership payment: extends the paid-through date by
// the covered months, stamps the payment time and stores the Payment row.
// The extension counts from the current expiry when it is still in the
// future, otherwise from today.
func (s *PaymentService) Register(ctx context.Context, userID string, amount, months int, method, concept string, now time.Time) (*entity.Payment, error) {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	base := dates.StartOfDay(now)
	if user.ExpiryDate != "" {
		if expiry, parseErr := dates.ParseCivilDate(user.ExpiryDate, now.Location()); parseErr == nil && expiry.After(base) {
			base = expiry
		}
	}
	user.ExpiryDate = dates.FormatCivilDate(base.AddDate(0, months, 0))
	user.LastPaymentAt = &now

	if user, err = s.userStorage.Update(ctx, user); err != nil {
		return nil, err
	}

	payment, err := s.paymentStorage.Create(ctx, &entity.Payment{
		UserID:  userID,
		Amount:  amount,
		Months:  months,
		Method:  method,
		Concept: concept,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.PaymentRegistered(ctx, user, payment)
	}
	s.logger.Infof("payment registered for user %s: %d (%d months), expiry now %s", userID, amount, months, user.ExpiryDate)
	return payment, nil
}

// RegisterStorePurchase records a storefront checkout as a payment with no
// membership extension.
func (s *PaymentService) RegisterStorePurchase(ctx context.Context, userID string, amount int, concept string) (*entity.Payment, error) {
	return s.paymentStorage.Create(ctx, &entity.Payment{
		UserID:  userID,
		Amount:  amount,
		Method:  entity.PaymentMethodStore,
		Concept: concept,
	})
}

func (s *PaymentService) GetByUser(ctx context.Context, userID string) ([]entity.Payment, error) {
	return s.paymentStorage.GetByUser(ctx, userID)
}

func (s *PaymentService) GetAll(ctx context.Context, limit, offset int) ([]entity.Payment, error) {
	return s.paymentStorage.GetAll(ctx, limit, offset)
}

// Receipt builds the one-line human concept used in emails and notices.
func Receipt(payment *entity.Payment) string {
	if payment.Months > 0 {
		return fmt.Sprintf("Pago de membresía por %d mes(es)", payment.Months)
	}
	if payment.Concept != "" {
		return payment.Concept
	}
	return "Compra en tienda"
}

package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/utils/dates"
)

type ReservationStorage interface {
	Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error)
	Get(ctx context.Context, date, blockID, userID string) (*entity.Reservation, error)
	Delete(ctx context.Context, id string) error
	ListForDate(ctx context.Context, date string) ([]entity.Reservation, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Reservation, error)
	CountForSlot(ctx context.Context, date, blockID string) (int64, error)
}

type reservationUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type ReservationService struct {
	reservationStorage ReservationStorage
	blockStorage       ClassBlockStorage
	userStorage        reservationUserStorage
}

func NewReservationService(
	reservationStorage ReservationStorage,
	blockStorage ClassBlockStorage,
	userStorage reservationUserStorage,
) *ReservationService {
	return &ReservationService{
		reservationStorage: reservationStorage,
		blockStorage:       blockStorage,
		userStorage:        userStorage,
	}
}

// Book reserves a class slot for one civil date. Booking requires an
// authorized user whose membership is not expired, an active block and a
// free place under the block's capacity.
func (s *ReservationService) Book(ctx context.Context, userID, blockID, date string, now time.Time) (*entity.Reservation, error) {
	if _, err := dates.ParseCivilDate(date, now.Location()); err != nil {
		return nil, errorz.ErrInvalidDate
	}

	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if MembershipState(user, now) == MembershipExpired {
		return nil, errorz.ErrMembershipExpired
	}

	block, err := s.blockStorage.Get(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if !block.IsActive() {
		return nil, errorz.ErrNotFound
	}

	if _, err = s.reservationStorage.Get(ctx, date, blockID, userID); err == nil {
		return nil, errorz.ErrAlreadyBooked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if block.MaxCapacity > 0 {
		count, countErr := s.reservationStorage.CountForSlot(ctx, date, blockID)
		if countErr != nil {
			return nil, countErr
		}
		if count >= int64(block.MaxCapacity) {
			return nil, errorz.ErrClassFull
		}
	}

	return s.reservationStorage.Create(ctx, &entity.Reservation{
		Date:    date,
		BlockID: blockID,
		UserID:  userID,
	})
}

func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	return s.reservationStorage.Delete(ctx, id)
}

func (s *ReservationService) ListForDate(ctx context.Context, date string) ([]entity.Reservation, error) {
	return s.reservationStorage.ListForDate(ctx, date)
}

func (s *ReservationService) ListForUser(ctx context.Context, userID string) ([]entity.Reservation, error) {
	return s.reservationStorage.ListForUser(ctx, userID)
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/entity"
)

type fakeBlockStorage struct {
	blocks map[string]*entity.ClassBlock
}

func newFakeBlockStorage(blocks ...*entity.ClassBlock) *fakeBlockStorage {
	f := &fakeBlockStorage{blocks: make(map[string]*entity.ClassBlock)}
	for _, b := range blocks {
		f.blocks[b.ID] = b
	}
	return f
}

func (f *fakeBlockStorage) Create(_ context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error) {
	f.blocks[block.ID] = block
	return block, nil
}

func (f *fakeBlockStorage) Get(_ context.Context, id string) (*entity.ClassBlock, error) {
	b, ok := f.blocks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (f *fakeBlockStorage) GetAll(_ context.Context) ([]entity.ClassBlock, error) {
	var out []entity.ClassBlock
	for _, b := range f.blocks {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBlockStorage) Update(_ context.Context, block *entity.ClassBlock) (*entity.ClassBlock, error) {
	f.blocks[block.ID] = block
	return block, nil
}

func (f *fakeBlockStorage) Delete(_ context.Context, id string) error {
	delete(f.blocks, id)
	return nil
}

type fakeReservationStorage struct {
	reservations map[string]*entity.Reservation
	nextID       int
}

func newFakeReservationStorage() *fakeReservationStorage {
	return &fakeReservationStorage{reservations: make(map[string]*entity.Reservation)}
}

func (f *fakeReservationStorage) Create(_ context.Context, r *entity.Reservation) (*entity.Reservation, error) {
	f.nextID++
	r.ID = fmt.Sprintf("r%03d", f.nextID)
	f.reservations[r.ID] = r
	return r, nil
}

func (f *fakeReservationStorage) Get(_ context.Context, date, blockID, userID string) (*entity.Reservation, error) {
	for _, r := range f.reservations {
		if r.Date == date && r.BlockID == blockID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReservationStorage) Delete(_ context.Context, id string) error {
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationStorage) ListForDate(_ context.Context, date string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	for _, r := range f.reservations {
		if r.Date == date {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationStorage) ListForUser(_ context.Context, userID string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationStorage) CountForSlot(_ context.Context, date, blockID string) (int64, error) {
	var count int64
	for _, r := range f.reservations {
		if r.Date == date && r.BlockID == blockID {
			count++
		}
	}
	return count, nil
}

func reservationFixture() (*ReservationService, *fakeUserStorage) {
	day := 5
	users := newFakeUserStorage(
		&entity.User{ID: "activa", Authorized: true, ExpiryDate: "2025-12-31"},
		&entity.User{ID: "vencido", Authorized: true, ExpiryDate: "2024-01-01"},
	)
	blocks := newFakeBlockStorage(
		&entity.ClassBlock{ID: "b1", DayOfWeek: &day, StartTime: "19:00", EndTime: "20:00", Type: "BOXEO", MaxCapacity: 2},
		&entity.ClassBlock{ID: "b2", DayOfWeek: &day, StartTime: "20:00", EndTime: "21:00", Type: "SPARRING", Active: boolPtr(false)},
	)
	return NewReservationService(newFakeReservationStorage(), blocks, users), users
}

func TestBook(t *testing.T) {
	svc, _ := reservationFixture()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	r, err := svc.Book(context.Background(), "activa", "b1", "2025-03-07", now)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if r.Date != "2025-03-07" || r.BlockID != "b1" || r.UserID != "activa" {
		t.Fatalf("unexpected reservation %+v", r)
	}
}

func TestBookRejections(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	svc, _ := reservationFixture()
	if _, err := svc.Book(ctx, "vencido", "b1", "2025-03-07", now); err != errorz.ErrMembershipExpired {
		t.Fatalf("expired membership expected rejection, got %v", err)
	}
	if _, err := svc.Book(ctx, "activa", "b2", "2025-03-07", now); err != errorz.ErrNotFound {
		t.Fatalf("inactive block expected not found, got %v", err)
	}
	if _, err := svc.Book(ctx, "activa", "b1", "07-03-2025", now); err != errorz.ErrInvalidDate {
		t.Fatalf("bad date expected rejection, got %v", err)
	}

	if _, err := svc.Book(ctx, "activa", "b1", "2025-03-07", now); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := svc.Book(ctx, "activa", "b1", "2025-03-07", now); err != errorz.ErrAlreadyBooked {
		t.Fatalf("double booking expected rejection, got %v", err)
	}
}

func TestBookCapacity(t *testing.T) {
	day := 5
	users := newFakeUserStorage(
		&entity.User{ID: "a", Authorized: true, ExpiryDate: "2025-12-31"},
		&entity.User{ID: "b", Authorized: true, ExpiryDate: "2025-12-31"},
		&entity.User{ID: "c", Authorized: true, ExpiryDate: "2025-12-31"},
	)
	blocks := newFakeBlockStorage(&entity.ClassBlock{ID: "b1", DayOfWeek: &day, MaxCapacity: 2})
	svc := NewReservationService(newFakeReservationStorage(), blocks, users)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	if _, err := svc.Book(ctx, "a", "b1", "2025-03-07", now); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Book(ctx, "b", "b1", "2025-03-07", now); err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if _, err := svc.Book(ctx, "c", "b1", "2025-03-07", now); err != errorz.ErrClassFull {
		t.Fatalf("expected class full, got %v", err)
	}
	// Same block, another date: capacity counts per slot.
	if _, err := svc.Book(ctx, "c", "b1", "2025-03-14", now); err != nil {
		t.Fatalf("other date booking: %v", err)
	}
}

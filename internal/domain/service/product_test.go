package service

import (
	"context"
	"testing"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/dto"
	"github.com/ironclub/gym-server/internal/domain/entity"
)

type fakeCartStorage struct {
	carts map[string][]dto.CartItem
}

func newFakeCartStorage() *fakeCartStorage {
	return &fakeCartStorage{carts: make(map[string][]dto.CartItem)}
}

func (f *fakeCartStorage) Get(_ context.Context, userID string) ([]dto.CartItem, error) {
	return f.carts[userID], nil
}

func (f *fakeCartStorage) Set(_ context.Context, userID string, items []dto.CartItem) error {
	f.carts[userID] = items
	return nil
}

func (f *fakeCartStorage) Clear(_ context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

func TestSaveCartNormalizesImages(t *testing.T) {
	carts := newFakeCartStorage()
	payments := &fakePaymentStorage{}
	svc := NewProductService(nil, carts, paymentsRegistrar(payments))

	items, err := svc.SaveCart(context.Background(), "u1", []dto.CartItemInput{
		{ID: "p1", Title: "Guantes", Price: 15000, ImageUrl: "a.png", Image: "c.png", Qty: 2},
		{ID: "p2", Title: "Vendas", Price: 5000, ImageURL: "b.png"},
		{ID: "p3", Title: "Protector", Price: 8000, Image: "c.png", Qty: 0},
	})
	if err != nil {
		t.Fatalf("save cart: %v", err)
	}

	if items[0].ImageURL != "a.png" {
		t.Fatalf("imageUrl must win, got %s", items[0].ImageURL)
	}
	if items[1].ImageURL != "b.png" {
		t.Fatalf("imageURL is the second fallback, got %s", items[1].ImageURL)
	}
	if items[2].ImageURL != "c.png" {
		t.Fatalf("image is the last fallback, got %s", items[2].ImageURL)
	}
	if items[1].Qty != 1 || items[2].Qty != 1 {
		t.Fatalf("quantities must clamp to 1, got %d/%d", items[1].Qty, items[2].Qty)
	}
}

func TestCheckout(t *testing.T) {
	carts := newFakeCartStorage()
	payments := &fakePaymentStorage{}
	svc := NewProductService(nil, carts, paymentsRegistrar(payments))
	ctx := context.Background()

	_, err := svc.SaveCart(ctx, "u1", []dto.CartItemInput{
		{ID: "p1", Price: 15000, Qty: 2},
		{ID: "p2", Price: 5000, Qty: 1},
	})
	if err != nil {
		t.Fatalf("save cart: %v", err)
	}

	payment, total, err := svc.Checkout(ctx, "u1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if total != 35000 {
		t.Fatalf("expected total 35000, got %d", total)
	}
	if payment.Method != entity.PaymentMethodStore || payment.Amount != 35000 {
		t.Fatalf("unexpected payment %+v", payment)
	}

	left, _ := svc.GetCart(ctx, "u1")
	if len(left) != 0 {
		t.Fatalf("checkout must clear the cart, got %v", left)
	}

	if _, _, err = svc.Checkout(ctx, "u1"); err != errorz.ErrEmptyCart {
		t.Fatalf("empty cart expected rejection, got %v", err)
	}
}

// paymentsRegistrar adapts the payment storage fake to the narrow checkout
// interface without pulling in the whole payment service.
type paymentsRegistrarFunc struct{ storage *fakePaymentStorage }

func paymentsRegistrar(storage *fakePaymentStorage) *paymentsRegistrarFunc {
	return &paymentsRegistrarFunc{storage: storage}
}

func (p *paymentsRegistrarFunc) RegisterStorePurchase(ctx context.Context, userID string, amount int, concept string) (*entity.Payment, error) {
	return p.storage.Create(ctx, &entity.Payment{
		UserID:  userID,
		Amount:  amount,
		Method:  entity.PaymentMethodStore,
		Concept: concept,
	})
}

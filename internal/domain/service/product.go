package service

import (
	"context"
	"fmt"

	"github.com/ironclub/gym-server/internal/domain/common/errorz"
	"github.com/ironclub/gym-server/internal/domain/dto"
	"github.com/ironclub/gym-server/internal/domain/entity"
)

type ProductStorage interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	GetAll(ctx context.Context) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

type CartStorage interface {
	Get(ctx context.Context, userID string) ([]dto.CartItem, error)
	Set(ctx context.Context, userID string, items []dto.CartItem) error
	Clear(ctx context.Context, userID string) error
}

type storePaymentRegistrar interface {
	RegisterStorePurchase(ctx context.Context, userID string, amount int, concept string) (*entity.Payment, error)
}

type ProductService struct {
	productStorage ProductStorage
	cartStorage    CartStorage
	payments       storePaymentRegistrar
}

func NewProductService(productStorage ProductStorage, cartStorage CartStorage, payments storePaymentRegistrar) *ProductService {
	return &ProductService{
		productStorage: productStorage,
		cartStorage:    cartStorage,
		payments:       payments,
	}
}

func (s *ProductService) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	return s.productStorage.Create(ctx, product)
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.productStorage.Get(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context) ([]entity.Product, error) {
	return s.productStorage.GetAll(ctx)
}

func (s *ProductService) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	return s.productStorage.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.productStorage.Delete(ctx, id)
}

func (s *ProductService) GetCart(ctx context.Context, userID string) ([]dto.CartItem, error) {
	return s.cartStorage.Get(ctx, userID)
}

// SaveCart normalizes the incoming items and persists them as the user's
// cart.
func (s *ProductService) SaveCart(ctx context.Context, userID string, inputs []dto.CartItemInput) ([]dto.CartItem, error) {
	items := make([]dto.CartItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.Normalize())
	}
	if err := s.cartStorage.Set(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Checkout drains the cart into a store payment and returns it together
// with the charged total.
func (s *ProductService) Checkout(ctx context.Context, userID string) (*entity.Payment, int, error) {
	items, err := s.cartStorage.Get(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return nil, 0, errorz.ErrEmptyCart
	}

	total := dto.CartTotal(items)
	payment, err := s.payments.RegisterStorePurchase(ctx, userID, total, fmt.Sprintf("Compra en tienda (%d artículos)", len(items)))
	if err != nil {
		return nil, 0, err
	}

	if err = s.cartStorage.Clear(ctx, userID); err != nil {
		return nil, 0, err
	}
	return payment, total, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/pricing"
	"kushi_services_backend/internal/repositories"
)

var (
	ErrCartNotFound   = errors.New("cart not found")
	ErrCartValidation = errors.New("cart data validation error")
)

// CartView is a cart plus its server-side quote.
type CartView struct {
	Cart  models.Cart   `json:"cart"`
	Quote pricing.Quote `json:"quote"`
}

// --- CartService Interface ---
type CartService interface {
	GetCart(ctx context.Context, cartID string) (*CartView, error)
	PutCart(ctx context.Context, cartID string, userID *int64, items []models.CartItem) (*CartView, error)
	ClearCart(ctx context.Context, cartID string) error
}

type cartService struct {
	store repositories.CartStore
	now   func() time.Time
}

// NewCartService creates a new instance of CartService.
func NewCartService(store repositories.CartStore) CartService {
	return &cartService{store: store, now: time.Now}
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	if cartID == "" {
		return nil, fmt.Errorf("%w: cart id is required", ErrCartValidation)
	}
	cart, err := s.store.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return s.view(cart), nil
}

// PutCart replaces the stored cart with the submitted one. The newest write
// wins; there is no merging with whatever was stored before. Lines with a
// quantity below one are dropped rather than rejected, so a client can remove
// an item by sending it with quantity zero.
func (s *cartService) PutCart(ctx context.Context, cartID string, userID *int64, items []models.CartItem) (*CartView, error) {
	if cartID == "" {
		return nil, fmt.Errorf("%w: cart id is required", ErrCartValidation)
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if item.ServiceID <= 0 {
			return nil, fmt.Errorf("%w: cart item is missing a service id", ErrCartValidation)
		}
		if item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: cart item has a negative price", ErrCartValidation)
		}
		kept = append(kept, item)
	}

	cart := &models.Cart{
		ID:        cartID,
		UserID:    userID,
		Items:     kept,
		UpdatedAt: s.now(),
	}
	if err := s.store.PutCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return s.view(cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return fmt.Errorf("%w: cart id is required", ErrCartValidation)
	}
	if err := s.store.DeleteCart(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *cartService) view(cart *models.Cart) *CartView {
	lines := make([]pricing.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, pricing.LineItem{
			UnitPrice:     item.UnitPrice,
			OriginalPrice: item.OriginalPrice,
			Quantity:      item.Quantity,
		})
	}
	return &CartView{Cart: *cart, Quote: pricing.Calculate(lines)}
}

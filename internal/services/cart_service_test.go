package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
)

type memoryCartStore struct {
	carts map[string]models.Cart
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: map[string]models.Cart{}}
}

func (m *memoryCartStore) GetCart(_ context.Context, cartID string) (*models.Cart, error) {
	cart, ok := m.carts[cartID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &cart, nil
}

func (m *memoryCartStore) PutCart(_ context.Context, cart *models.Cart) error {
	m.carts[cart.ID] = *cart
	return nil
}

func (m *memoryCartStore) DeleteCart(_ context.Context, cartID string) error {
	delete(m.carts, cartID)
	return nil
}

func item(serviceID int64, price int64, qty int) models.CartItem {
	return models.CartItem{ServiceID: serviceID, Name: "svc", UnitPrice: price, Quantity: qty}
}

func TestPutCartLastWriteWins(t *testing.T) {
	store := newMemoryCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	if _, err := svc.PutCart(ctx, "c1", nil, []models.CartItem{item(1, 500, 2), item(2, 300, 1)}); err != nil {
		t.Fatalf("first PutCart failed: %v", err)
	}
	view, err := svc.PutCart(ctx, "c1", nil, []models.CartItem{item(3, 999, 1)})
	if err != nil {
		t.Fatalf("second PutCart failed: %v", err)
	}

	if len(view.Cart.Items) != 1 || view.Cart.Items[0].ServiceID != 3 {
		t.Errorf("second write did not replace the cart: %+v", view.Cart.Items)
	}
	stored, _ := svc.GetCart(ctx, "c1")
	if len(stored.Cart.Items) != 1 {
		t.Errorf("stored cart has %d items, want 1", len(stored.Cart.Items))
	}
}

func TestPutCartDropsZeroQuantityLines(t *testing.T) {
	svc := NewCartService(newMemoryCartStore())

	view, err := svc.PutCart(context.Background(), "c1", nil, []models.CartItem{
		item(1, 500, 2),
		item(2, 300, 0),
		item(3, 100, -4),
	})
	if err != nil {
		t.Fatalf("PutCart failed: %v", err)
	}
	if len(view.Cart.Items) != 1 || view.Cart.Items[0].ServiceID != 1 {
		t.Errorf("kept items = %+v, want only service 1", view.Cart.Items)
	}
}

func TestPutCartValidation(t *testing.T) {
	svc := NewCartService(newMemoryCartStore())
	ctx := context.Background()

	if _, err := svc.PutCart(ctx, "", nil, nil); !errors.Is(err, ErrCartValidation) {
		t.Errorf("empty cart id: got %v, want ErrCartValidation", err)
	}
	if _, err := svc.PutCart(ctx, "c1", nil, []models.CartItem{item(0, 100, 1)}); !errors.Is(err, ErrCartValidation) {
		t.Errorf("missing service id: got %v, want ErrCartValidation", err)
	}
	if _, err := svc.PutCart(ctx, "c1", nil, []models.CartItem{item(1, -5, 1)}); !errors.Is(err, ErrCartValidation) {
		t.Errorf("negative price: got %v, want ErrCartValidation", err)
	}
}

func TestCartQuoteComputedServerSide(t *testing.T) {
	svc := NewCartService(newMemoryCartStore())

	view, err := svc.PutCart(context.Background(), "c1", nil, []models.CartItem{
		{ServiceID: 1, UnitPrice: 333, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("PutCart failed: %v", err)
	}
	if view.Quote.Subtotal != 999 || view.Quote.Tax != 180 || view.Quote.Total != 1179 {
		t.Errorf("quote = %+v, want subtotal 999, tax 180, total 1179", view.Quote)
	}
}

func TestPutCartStampsUpdatedAt(t *testing.T) {
	store := newMemoryCartStore()
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := &cartService{store: store, now: func() time.Time { return fixed }}

	view, err := svc.PutCart(context.Background(), "c1", nil, []models.CartItem{item(1, 100, 1)})
	if err != nil {
		t.Fatalf("PutCart failed: %v", err)
	}
	if !view.Cart.UpdatedAt.Equal(fixed) {
		t.Errorf("UpdatedAt = %v, want %v", view.Cart.UpdatedAt, fixed)
	}
}

func TestGetCartMissing(t *testing.T) {
	svc := NewCartService(newMemoryCartStore())
	if _, err := svc.GetCart(context.Background(), "nope"); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("got %v, want ErrCartNotFound", err)
	}
}

func TestClearCart(t *testing.T) {
	store := newMemoryCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	if _, err := svc.PutCart(ctx, "c1", nil, []models.CartItem{item(1, 100, 1)}); err != nil {
		t.Fatalf("PutCart failed: %v", err)
	}
	if err := svc.ClearCart(ctx, "c1"); err != nil {
		t.Fatalf("ClearCart failed: %v", err)
	}
	if _, err := svc.GetCart(ctx, "c1"); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("cart still present after clear: %v", err)
	}
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kushi_services_backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// CartStore persists customer carts. Writes are last-write-wins: Put replaces
// the whole cart unconditionally, matching the browser-storage semantics the
// customer site relies on.
type CartStore interface {
	GetCart(ctx context.Context, cartID string) (*models.Cart, error)
	PutCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, cartID string) error
}

// Carts older than this are considered abandoned and expire.
const cartTTL = 30 * 24 * time.Hour

type redisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a CartStore backed by Redis.
func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *redisCartStore) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: reading cart %s: %v", ErrDatabaseError, cartID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("%w: decoding cart %s: %v", ErrDatabaseError, cartID, err)
	}
	return &cart, nil
}

func (s *redisCartStore) PutCart(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart %s: %w", cart.ID, err)
	}
	if err := s.client.Set(ctx, cartKey(cart.ID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("%w: writing cart %s: %v", ErrDatabaseError, cart.ID, err)
	}
	return nil
}

func (s *redisCartStore) DeleteCart(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("%w: deleting cart %s: %v", ErrDatabaseError, cartID, err)
	}
	return nil
}

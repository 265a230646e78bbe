package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/crypto-storefront/internal/cart/domain"
)

// CartRepo keeps one cart in process memory for the lifetime of the
// storefront session.
type CartRepo struct {
	mu   sync.RWMutex
	cart domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		cart: domain.Cart{
			ID:        uuid.NewString(),
			UpdatedAt: time.Now(),
		},
	}
}

func (r *CartRepo) Get(ctx context.Context) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cart.Clone(), nil
}

func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart.ID = r.cart.ID
	r.cart = cart.Clone()
	return nil
}

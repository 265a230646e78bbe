package app

import (
	"context"

	"github.com/dwikikusuma/crypto-storefront/internal/cart/domain"
)

// CartRepo holds the single cart of a storefront session.
type CartRepo interface {
	Get(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

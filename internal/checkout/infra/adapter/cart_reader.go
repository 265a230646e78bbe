package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/crypto-storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/crypto-storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/crypto-storefront/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context) (string, []checkoutapp.CartItem, error) {
	cart, err := r.svc.GetCart(ctx)
	if err != nil {
		return "", nil, err
	}
	return cart.ID, toItems(cart), nil
}

func (r *CartServiceReader) TakeCart(ctx context.Context, fn func(cartID string, items []checkoutapp.CartItem) error) error {
	_, err := r.svc.ClearAfter(ctx, func(cart cartdomain.Cart) error {
		return fn(cart.ID, toItems(cart))
	})
	return err
}

func toItems(cart cartdomain.Cart) []checkoutapp.CartItem {
	items := make([]checkoutapp.CartItem, 0, len(cart.Lines))
	for _, ln := range cart.Lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: ln.ProductID,
			Quantity:  int64(ln.Quantity),
		})
	}
	return items
}

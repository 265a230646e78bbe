package memory

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/crypto-storefront/internal/catalog/app"
	"github.com/dwikikusuma/crypto-storefront/internal/catalog/domain"
)

// DefaultProducts is the demo storefront catalog.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "T-Shirt", PriceUSD: decimal.RequireFromString("25.00"), ImageRef: "/file.svg"},
		{ID: 2, Name: "Mug", PriceUSD: decimal.RequireFromString("15.00"), ImageRef: "/window.svg"},
		{ID: 3, Name: "Sticker Pack", PriceUSD: decimal.RequireFromString("5.00"), ImageRef: "/globe.svg"},
	}
}

// ProductRepo serves a fixed, read-only product list. Listing keeps the
// order the products were supplied in.
type ProductRepo struct {
	products []domain.Product
	byID     map[int64]int
}

func NewProductRepo(products []domain.Product) (*ProductRepo, error) {
	r := &ProductRepo{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	for _, p := range products {
		if p.ID <= 0 || p.PriceUSD.IsNegative() {
			return nil, errors.Wrapf(app.ErrInvalidInput, "product %d", p.ID)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, errors.Errorf("duplicate product id %d", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r, nil
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, errors.Wrapf(app.ErrNotFound, "product %d", id)
	}
	return r.products[idx], nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

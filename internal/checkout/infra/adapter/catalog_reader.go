package adapter

import (
	"context"

	"github.com/go-faster/errors"

	catalogapp "github.com/dwikikusuma/crypto-storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/crypto-storefront/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID int64) (checkoutapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return checkoutapp.Product{}, errors.Wrapf(checkoutapp.ErrUnknownProduct, "id %d", productID)
	}
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		ImageRef: p.ImageRef,
		PriceUSD: p.PriceUSD,
	}, nil
}

package app

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/crypto-storefront/internal/checkout/domain"
	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
)

type CartItem struct {
	ProductID int64
	Quantity  int64
}

type CartReader interface {
	GetCart(ctx context.Context) (cartID string, items []CartItem, err error)
	// TakeCart passes the current cart to fn and clears it only if fn
	// returns nil. No cart mutation runs between the read and the clear.
	TakeCart(ctx context.Context, fn func(cartID string, items []CartItem) error) error
}

type Product struct {
	ID       int64
	Name     string
	ImageRef string
	PriceUSD decimal.Decimal
}

// CatalogReader returns ErrUnknownProduct for ids outside the catalog.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (Product, error)
}

// Quoter prices a USD total on a chain.
type Quoter interface {
	Quote(totalUSD decimal.Decimal, chain pricing.Chain) (pricing.ChainQuote, error)
}

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnknownProduct means the cart references a product the catalog
	// does not have. The cart and catalog are out of sync; the line is
	// never skipped.
	ErrUnknownProduct = errors.New("cart references unknown product")
)

type Service struct {
	Cart    CartReader
	Catalog CatalogReader
	Quoter  Quoter

	maxConcurrent int
	now           func() time.Time
}

func NewService(cart CartReader, catalog CatalogReader, quoter Quoter, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		Quoter:        quoter,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

// View joins the current cart with the catalog. An empty cart yields an
// empty view with a zero total.
func (s *Service) View(ctx context.Context) (domain.View, error) {
	cartID, items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.View{}, err
	}
	return s.join(ctx, cartID, items)
}

func (s *Service) join(ctx context.Context, cartID string, items []CartItem) (domain.View, error) {
	lines := make([]domain.Line, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if err := ctx.Err(); err != nil {
				return err
			}
			if it.Quantity <= 0 {
				return errors.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return errors.Wrapf(err, "product %d", it.ProductID)
			}

			lines[idx] = domain.Line{
				ProductID:    product.ID,
				Name:         product.Name,
				ImageRef:     product.ImageRef,
				Quantity:     it.Quantity,
				UnitPriceUSD: product.PriceUSD,
				LineTotalUSD: product.PriceUSD.Mul(decimal.NewFromInt(it.Quantity)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.View{}, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotalUSD)
	}

	return domain.View{
		CartID:   cartID,
		Lines:    lines,
		TotalUSD: total,
	}, nil
}

// Quote prices the current cart on chain.
func (s *Service) Quote(ctx context.Context, chain pricing.Chain) (domain.Checkout, error) {
	cartID, items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.Checkout{}, err
	}
	return s.quote(ctx, cartID, items, chain)
}

func (s *Service) quote(ctx context.Context, cartID string, items []CartItem, chain pricing.Chain) (domain.Checkout, error) {
	view, err := s.join(ctx, cartID, items)
	if err != nil {
		return domain.Checkout{}, err
	}
	if view.IsEmpty() {
		return domain.Checkout{}, ErrEmptyCart
	}

	q, err := s.Quoter.Quote(view.TotalUSD, chain)
	if err != nil {
		return domain.Checkout{}, err
	}

	return domain.Checkout{View: view, Quote: q}, nil
}

// Complete quotes the cart one last time and clears it in the same cart
// mutation, so an item added meanwhile is either on the receipt or still in
// the cart afterwards. A failed quote leaves the cart as it was.
func (s *Service) Complete(ctx context.Context, chain pricing.Chain) (domain.Receipt, error) {
	var checkout domain.Checkout
	err := s.Cart.TakeCart(ctx, func(cartID string, items []CartItem) error {
		co, err := s.quote(ctx, cartID, items, chain)
		if err != nil {
			return err
		}
		checkout = co
		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	return domain.Receipt{
		ID:          uuid.NewString(),
		Checkout:    checkout,
		CompletedAt: s.now(),
	}, nil
}

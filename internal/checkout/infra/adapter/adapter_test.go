package adapter

import (
	"context"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/dwikikusuma/crypto-storefront/internal/cart/app"
	cartmem "github.com/dwikikusuma/crypto-storefront/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/crypto-storefront/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/crypto-storefront/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/crypto-storefront/internal/checkout/app"
	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
)

func newCheckout(t *testing.T) (*cartapp.Service, *checkoutapp.Service) {
	t.Helper()

	repo, err := catalogmem.NewProductRepo(catalogmem.DefaultProducts())
	require.NoError(t, err)
	catalogSvc := catalogapp.NewService(repo)
	cartSvc := cartapp.NewService(cartmem.NewCartRepo())

	rates, err := pricing.NewRateTable(map[pricing.Chain]pricing.ChainConfig{
		pricing.Bitcoin: {RateUSDPerUnit: decimal.NewFromInt(60000), Address: "bc1q"},
		pricing.Solana:  {RateUSDPerUnit: decimal.NewFromInt(150), Address: "So1"},
	})
	require.NoError(t, err)

	checkoutSvc := checkoutapp.NewService(
		NewCartServiceReader(cartSvc),
		NewCatalogServiceReader(catalogSvc),
		rates,
		10,
	)
	return cartSvc, checkoutSvc
}

func TestEndToEndSolanaQuote(t *testing.T) {
	ctx := context.Background()
	cartSvc, checkoutSvc := newCheckout(t)

	_, err := cartSvc.AddToCart(ctx, 1)
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, 2)
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, 2)
	require.NoError(t, err)

	co, err := checkoutSvc.Quote(ctx, pricing.Solana)
	require.NoError(t, err)
	assert.Equal(t, "55.00", co.View.TotalUSD.StringFixed(2))
	assert.Equal(t, "0.36666667", co.Quote.Amount)
	assert.Equal(t, "solana:So1?amount=0.36666667", co.Quote.URI)
}

func TestCompleteClearsCart(t *testing.T) {
	ctx := context.Background()
	cartSvc, checkoutSvc := newCheckout(t)

	_, err := cartSvc.AddToCart(ctx, 3)
	require.NoError(t, err)

	_, err = checkoutSvc.Complete(ctx, pricing.Bitcoin)
	require.NoError(t, err)

	cart, err := cartSvc.GetCart(ctx)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartWithProductOutsideCatalog(t *testing.T) {
	ctx := context.Background()
	cartSvc, checkoutSvc := newCheckout(t)

	_, err := cartSvc.AddToCart(ctx, 404)
	require.NoError(t, err)

	_, err = checkoutSvc.View(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, checkoutapp.ErrUnknownProduct))
}

// hookedCatalog runs hook once, on the first product lookup.
type hookedCatalog struct {
	checkoutapp.CatalogReader
	once sync.Once
	hook func()
}

func (c *hookedCatalog) GetProduct(ctx context.Context, id int64) (checkoutapp.Product, error) {
	c.once.Do(c.hook)
	return c.CatalogReader.GetProduct(ctx, id)
}

func TestCompleteKeepsItemAddedDuringCheckout(t *testing.T) {
	ctx := context.Background()

	repo, err := catalogmem.NewProductRepo(catalogmem.DefaultProducts())
	require.NoError(t, err)
	cartSvc := cartapp.NewService(cartmem.NewCartRepo())
	rates, err := pricing.NewRateTable(map[pricing.Chain]pricing.ChainConfig{
		pricing.Bitcoin: {RateUSDPerUnit: decimal.NewFromInt(60000), Address: "bc1q"},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	catalog := &hookedCatalog{
		CatalogReader: NewCatalogServiceReader(catalogapp.NewService(repo)),
		hook: func() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cartSvc.AddToCart(ctx, 3)
				assert.NoError(t, err)
			}()
		},
	}
	checkoutSvc := checkoutapp.NewService(NewCartServiceReader(cartSvc), catalog, rates, 10)

	_, err = cartSvc.AddToCart(ctx, 1)
	require.NoError(t, err)

	receipt, err := checkoutSvc.Complete(ctx, pricing.Bitcoin)
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, receipt.Checkout.View.Lines, 1)
	assert.Equal(t, int64(1), receipt.Checkout.View.Lines[0].ProductID)
	assert.Equal(t, "25.00", receipt.Checkout.View.TotalUSD.StringFixed(2))

	cart, err := cartSvc.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1, "item added during checkout must survive the clear")
	assert.Equal(t, int64(3), cart.Lines[0].ProductID)
	assert.Equal(t, int32(1), cart.Lines[0].Quantity)
}

func TestCompleteFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	cartSvc, checkoutSvc := newCheckout(t)

	_, err := cartSvc.AddToCart(ctx, 1)
	require.NoError(t, err)
	_, err = cartSvc.AddToCart(ctx, 404)
	require.NoError(t, err)

	_, err = checkoutSvc.Complete(ctx, pricing.Bitcoin)
	require.ErrorIs(t, err, checkoutapp.ErrUnknownProduct)

	cart, err := cartSvc.GetCart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
)

type Line struct {
	ProductID    int64
	Name         string
	ImageRef     string
	Quantity     int64
	UnitPriceUSD decimal.Decimal
	LineTotalUSD decimal.Decimal
}

// View is the cart joined with the catalog, in cart order.
type View struct {
	CartID   string
	Lines    []Line
	TotalUSD decimal.Decimal
}

func (v View) IsEmpty() bool {
	return len(v.Lines) == 0
}

type Checkout struct {
	View  View
	Quote pricing.ChainQuote
}

// Receipt is returned once a checkout is completed and the cart cleared.
type Receipt struct {
	ID          string
	Checkout    Checkout
	CompletedAt time.Time
}

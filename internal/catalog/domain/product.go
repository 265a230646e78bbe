package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID       int64
	Name     string
	PriceUSD decimal.Decimal
	ImageRef string
}

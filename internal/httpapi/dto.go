package httpapi

import (
	"time"

	catalogdomain "github.com/dwikikusuma/crypto-storefront/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/crypto-storefront/internal/checkout/domain"
)

type productResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PriceUSD string `json:"priceUsd"`
	Image    string `json:"image"`
}

type cartLineResponse struct {
	ProductID    int64  `json:"productId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Quantity     int64  `json:"quantity"`
	UnitPriceUSD string `json:"unitPriceUsd"`
	LineTotalUSD string `json:"lineTotalUsd"`
}

type cartResponse struct {
	CartID   string             `json:"cartId"`
	Lines    []cartLineResponse `json:"lines"`
	TotalUSD string             `json:"totalUsd"`
}

type quoteResponse struct {
	Chain   string       `json:"chain"`
	Symbol  string       `json:"symbol"`
	Address string       `json:"address"`
	Amount  string       `json:"amount"`
	URI     string       `json:"uri"`
	Cart    cartResponse `json:"cart"`
}

type receiptResponse struct {
	ID          string        `json:"id"`
	CompletedAt time.Time     `json:"completedAt"`
	Quote       quoteResponse `json:"quote"`
}

func toProductResponse(p catalogdomain.Product) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		PriceUSD: p.PriceUSD.StringFixed(2),
		Image:    p.ImageRef,
	}
}

func toCartResponse(v checkoutdomain.View) cartResponse {
	lines := make([]cartLineResponse, 0, len(v.Lines))
	for _, ln := range v.Lines {
		lines = append(lines, cartLineResponse{
			ProductID:    ln.ProductID,
			Name:         ln.Name,
			Image:        ln.ImageRef,
			Quantity:     ln.Quantity,
			UnitPriceUSD: ln.UnitPriceUSD.StringFixed(2),
			LineTotalUSD: ln.LineTotalUSD.StringFixed(2),
		})
	}
	return cartResponse{
		CartID:   v.CartID,
		Lines:    lines,
		TotalUSD: v.TotalUSD.StringFixed(2),
	}
}

func toQuoteResponse(c checkoutdomain.Checkout) quoteResponse {
	return quoteResponse{
		Chain:   c.Quote.Chain.String(),
		Symbol:  c.Quote.Chain.Symbol(),
		Address: c.Quote.Address,
		Amount:  c.Quote.Amount,
		URI:     c.Quote.URI,
		Cart:    toCartResponse(c.View),
	}
}

package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/skip2/go-qrcode"

	cartapp "github.com/dwikikusuma/crypto-storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/crypto-storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/crypto-storefront/internal/checkout/app"
	"github.com/dwikikusuma/crypto-storefront/internal/pricing"
	"github.com/dwikikusuma/crypto-storefront/pkg/metrics"
)

// Deps wires the handler. Log and Metrics are optional; a nil Metrics records
// into a private registry that nothing exposes.
type Deps struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Checkout *checkoutapp.Service
	Metrics  *metrics.ServerMetrics
	Log      *slog.Logger
	QRSize   int
}

type Handler struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	checkout *checkoutapp.Service
	metrics  *metrics.ServerMetrics
	log      *slog.Logger
	qrSize   int
}

func NewHandler(d Deps) *Handler {
	if d.QRSize <= 0 {
		d.QRSize = 180
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewServerMetrics(prometheus.NewRegistry(), "storefront")
	}
	return &Handler{
		catalog:  d.Catalog,
		cart:     d.Cart,
		checkout: d.Checkout,
		metrics:  d.Metrics,
		log:      d.Log,
		qrSize:   d.QRSize,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r)
}

// AddItem only adds products that exist in the catalog, so the cart never
// holds an id the checkout join cannot resolve.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.catalog.GetProduct(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.cart.AddToCart(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeCart(w, r)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.cart.RemoveFromCart(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeCart(w, r)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if _, err := h.cart.ClearCart(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeCart(w, r)
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	chain, err := pricing.ParseChain(chi.URLParam(r, "chain"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	co, err := h.checkout.Quote(r.Context(), chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.Quotes.WithLabelValues(chain.String()).Inc()
	writeJSON(w, http.StatusOK, toQuoteResponse(co))
}

func (h *Handler) QuoteQR(w http.ResponseWriter, r *http.Request) {
	chain, err := pricing.ParseChain(chi.URLParam(r, "chain"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	co, err := h.checkout.Quote(r.Context(), chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	png, err := qrcode.Encode(co.Quote.URI, qrcode.Medium, h.qrSize)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "encode qr"))
		return
	}
	h.metrics.Quotes.WithLabelValues(chain.String()).Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) CompleteCheckout(w http.ResponseWriter, r *http.Request) {
	chain, err := pricing.ParseChain(chi.URLParam(r, "chain"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	receipt, err := h.checkout.Complete(r.Context(), chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.log.Info("checkout completed",
		slog.String("receipt_id", receipt.ID),
		slog.String("chain", chain.String()),
		slog.String("total_usd", receipt.Checkout.View.TotalUSD.StringFixed(2)),
		slog.String("amount", receipt.Checkout.Quote.Amount),
	)
	writeJSON(w, http.StatusOK, receiptResponse{
		ID:          receipt.ID,
		CompletedAt: receipt.CompletedAt,
		Quote:       toQuoteResponse(receipt.Checkout),
	})
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.checkout.View(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(view))
}

func productIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(errInvalidProductID, "%q", raw)
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

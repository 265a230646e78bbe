package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	CartMutations *prometheus.CounterVec
	CartLines     prometheus.Gauge
	CartItems     prometheus.Gauge
	Quotes        *prometheus.CounterVec
}

func NewServerMetrics(reg prometheus.Registerer, service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"handler"})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "cart_mutations_total",
		Help:      "Cart mutations by operation.",
	}, []string{"op"})
	lines := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "cart_lines",
		Help:      "Distinct products currently in the cart.",
	})
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "cart_items",
		Help:      "Total units currently in the cart.",
	})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "quotes_total",
		Help:      "Payment quotes issued by chain.",
	}, []string{"chain"})

	reg.MustRegister(requests, latency, mutations, lines, items, quotes)
	return &ServerMetrics{
		Requests:      requests,
		LatencyMS:     latency,
		CartMutations: mutations,
		CartLines:     lines,
		CartItems:     items,
		Quotes:        quotes,
	}
}

// RecordCart updates the cart gauges after a mutation.
func (m *ServerMetrics) RecordCart(op string, lines, items int) {
	m.CartMutations.WithLabelValues(op).Inc()
	m.CartLines.Set(float64(lines))
	m.CartItems.Set(float64(items))
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

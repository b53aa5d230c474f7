// Package metrics exposes the Prometheus collectors of the POS service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrdersCreated *prometheus.CounterVec
	StatusChanges *prometheus.CounterVec
	RegisterOpen  prometheus.Gauge
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pos",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		OrdersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "orders_created_total",
			Help:      "Orders rung up, by payment method.",
		}, []string{"method"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "order_status_changes_total",
			Help:      "Order status transitions, by target status.",
		}, []string{"status"}),
		RegisterOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pos",
			Name:      "register_open",
			Help:      "1 while a cash register session is open.",
		}),
	}
	reg.MustRegister(m.Requests, m.LatencyMS, m.OrdersCreated, m.StatusChanges, m.RegisterOpen)
	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}

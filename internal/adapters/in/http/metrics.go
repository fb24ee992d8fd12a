package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP and workflow collectors.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	statusChanges    *prometheus.CounterVec
	reassignedOrders prometheus.Counter
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "storefront",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "storefront",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Request latency in seconds.",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "storefront",
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of requests being served.",
			},
		),
		statusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "storefront",
				Subsystem: "workflow",
				Name:      "status_changes_total",
				Help:      "Order status changes by target status.",
			},
			[]string{"status"},
		),
		reassignedOrders: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "storefront",
				Subsystem: "workflow",
				Name:      "reassigned_orders_total",
				Help:      "Orders moved off a deleted status.",
			},
		),
	}
}

// Middleware records request counts and latency labelled by route template,
// so path parameters do not blow up cardinality.
func (m *Metrics) Middleware(skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip[c.Request().URL.Path] {
				return next(c)
			}

			m.requestsInFlight.Inc()
			defer m.requestsInFlight.Dec()

			start := time.Now()
			err := next(c)

			code := c.Response().Status
			if err != nil {
				code, _ = ErrorStatus(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.requestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(code)).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func (m *Metrics) statusChanged(slug string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(slug).Inc()
}

func (m *Metrics) ordersReassigned(n int) {
	if m == nil || n == 0 {
		return
	}
	m.reassignedOrders.Add(float64(n))
}

package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "storefront"

// Metrics holds the notification collectors.
type Metrics struct {
	dispatched *prometheus.CounterVec
	dropped    prometheus.Counter
	reg        prometheus.Registerer
}

// NewMetrics registers the collectors on reg. A nil reg leaves them unregistered,
// which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		dispatched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "notifications",
				Name:      "dispatched_total",
				Help:      "Status notifications processed, by outcome.",
			},
			[]string{"outcome"},
		),
		dropped: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "notifications",
				Name:      "dropped_total",
				Help:      "Status notifications given up on after the last attempt.",
			},
		),
		reg: reg,
	}
}

// ObserveQueue exports the queue length as a gauge.
func (m *Metrics) ObserveQueue(q *Queue) {
	promauto.With(m.reg).NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "notifications",
			Name:      "queue_length",
			Help:      "Events waiting for dispatch.",
		},
		func() float64 { return float64(q.Len()) },
	)
}

func (m *Metrics) observe(o Outcome) {
	m.dispatched.WithLabelValues(string(o)).Inc()
}

// Dropped counts an event that exhausted its attempts.
func (m *Metrics) Dropped() {
	m.dropped.Inc()
}

// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the server's Prometheus collectors.
type Metrics struct {
	RPCTotal         *prometheus.CounterVec
	RPCDuration      *prometheus.HistogramVec
	SessionsActive   prometheus.Gauge
	AllocationsTotal *prometheus.CounterVec
	UploadsTotal     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg uses the default registerer.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		RPCTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_ms",
			Help:      "RPC latency distribution in milliseconds.",
			Buckets:   []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"procedure"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of bill-splitting sessions held in memory.",
		}),
		AllocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocation calculator runs by outcome.",
		}, []string{"result"}),
		UploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Receipt uploads persisted by outcome.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.RPCTotal, m.RPCDuration, m.SessionsActive, m.AllocationsTotal, m.UploadsTotal)
	return m
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.RPCTotal.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(float64(d) / float64(time.Millisecond))
}

// Outcome returns the result label for an error.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

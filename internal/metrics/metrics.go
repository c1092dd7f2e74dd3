// Package metrics holds the Prometheus collectors for the bill service.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every collector name.
const Namespace = "billsplit"

// Metrics groups the collectors exported on /metrics.
type Metrics struct {
	RPCTotal   *prometheus.CounterVec
	RPCDur     *prometheus.HistogramVec
	Unbalanced prometheus.Counter
}

// New registers and returns the collectors. A nil reg uses the default
// registerer; registering twice reuses the existing collectors.
func New(buckets []float64, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if len(buckets) == 0 {
		buckets = []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500}
	} else {
		sort.Float64s(buckets)
	}
	m := &Metrics{
		RPCTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "rpc_duration_ms",
			Help:      "RPC latency distribution in milliseconds.",
			Buckets:   buckets,
		}, []string{"procedure"}),
		Unbalanced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "unbalanced_summaries_total",
			Help:      "Summaries whose person totals did not add up to the bill total.",
		}),
	}
	mustRegister(reg, &m.RPCTotal, &m.RPCDur, &m.Unbalanced)
	return m
}

// ObserveRPC records one finished RPC. code is "ok" on success.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.RPCTotal.WithLabelValues(procedure, code).Inc()
	m.RPCDur.WithLabelValues(procedure).Observe(DurationMillis(d))
}

// ObserveSummary counts summaries that failed the consistency check.
func (m *Metrics) ObserveSummary(balanced bool) {
	if m == nil || balanced {
		return
	}
	m.Unbalanced.Inc()
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func mustRegister(reg prometheus.Registerer, counter **prometheus.CounterVec, histo **prometheus.HistogramVec, plain *prometheus.Counter) {
	if err := reg.Register(*counter); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register counter: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			*counter = existing
		}
	}
	if err := reg.Register(*histo); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register histogram: %w", err))
		}
		if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
			*histo = existing
		}
	}
	if err := reg.Register(*plain); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(fmt.Errorf("register counter: %w", err))
		}
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			*plain = existing
		}
	}
}

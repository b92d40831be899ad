// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogama/retryx/policy"
)

// Decision label values used by the attempt outcome counter.
const (
	labelOK      = "ok"
	labelRepeat  = "repeat"
	labelWait    = "wait"
	labelForward = "forward"
)

// Metrics contains the collectors fed by the decorator handlers. It
// implements prometheus.Collector, so register it directly:
//
//	m := metric.New()
//	prometheus.MustRegister(m)
//
// One Metrics value may back any number of decorated handlers.
type Metrics struct {
	// Decisions counts attempt outcomes by the decision made about
	// them: "ok" for successes, and "repeat", "wait" or "forward" for
	// failures, keyed by the handler's answer.
	Decisions *prometheus.CounterVec
	// Wait observes the wait durations scheduled between attempts, in
	// seconds. Only wait decisions feed it.
	Wait prometheus.Histogram
}

// New constructs a Metrics instance with all collectors initialized
// and unregistered.
func New() *Metrics {
	return &Metrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "retryx",
				Subsystem: "attempts",
				Name:      "decisions_total",
				Help:      "Total attempt outcomes, by the retry decision made about them.",
			},
			[]string{"decision"},
		),
		Wait: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "retryx",
				Subsystem: "attempts",
				Name:      "wait_seconds",
				Help:      "Wait durations scheduled between retry attempts, in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
			},
		),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Decisions.Describe(ch)
	m.Wait.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Decisions.Collect(ch)
	m.Wait.Collect(ch)
}

func (m *Metrics) record(d policy.Decision) {
	switch {
	case d.Terminal():
		m.Decisions.WithLabelValues(labelForward).Inc()
	case d.Delayed():
		m.Decisions.WithLabelValues(labelWait).Inc()
		m.Wait.Observe(d.Delay().Seconds())
	default:
		m.Decisions.WithLabelValues(labelRepeat).Inc()
	}
}

// Handler returns a handler that makes the same decisions as next and
// records each one in m. Handler panics if m or next is nil.
func Handler(m *Metrics, next policy.Handler) policy.Handler {
	if m == nil {
		panic("retryx/metric: metrics may not be nil")
	}
	if next == nil {
		panic("retryx/metric: next handler may not be nil")
	}
	return handler{metrics: m, next: next}
}

type handler struct {
	metrics *Metrics
	next    policy.Handler
}

func (h handler) Handle(err error) policy.Decision {
	d := h.next.Handle(err)
	h.metrics.record(d)
	return d
}

func (h handler) OK() {
	h.metrics.Decisions.WithLabelValues(labelOK).Inc()
	h.next.OK()
}

// StreamHandler is the stream-side counterpart of Handler. It panics
// if m or next is nil.
func StreamHandler(m *Metrics, next policy.StreamHandler) policy.StreamHandler {
	if m == nil {
		panic("retryx/metric: metrics may not be nil")
	}
	if next == nil {
		panic("retryx/metric: next handler may not be nil")
	}
	return streamHandler{metrics: m, next: next}
}

type streamHandler struct {
	metrics *Metrics
	next    policy.StreamHandler
}

func (h streamHandler) Handle(attempt int, err error) policy.Decision {
	d := h.next.Handle(attempt, err)
	h.metrics.record(d)
	return d
}

func (h streamHandler) OK(attempt int) {
	h.metrics.Decisions.WithLabelValues(labelOK).Inc()
	h.next.OK(attempt)
}

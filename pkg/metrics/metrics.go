// Package metrics counts classification outcomes with Prometheus collectors.
//
// ped is a short-lived process, so metrics are not served over HTTP. Instead
// WriteTextfile dumps the registry in the text exposition format for the
// node_exporter textfile collector.
package metrics

import (
	"strconv"

	"github.com/ped-tools/ped-go/pkg/ped"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ped"

// Recorder receives classification outcomes. The service depends on this
// interface so metrics can be disabled with Nop.
type Recorder interface {
	Classified(result ped.Result, seconds float64)
	Rejected(code ped.ErrorCode)
	ChartRendered(ruleID string, err error)
}

// Nop discards all observations.
type Nop struct{}

func (Nop) Classified(ped.Result, float64) {}
func (Nop) Rejected(ped.ErrorCode)         {}
func (Nop) ChartRendered(string, error)    {}

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	charts          *prometheus.CounterVec
	duration        prometheus.Histogram
}

// New creates collectors registered with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classifications performed, by fluid state, fluid group and category.",
		}, []string{"state", "group", "category"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Requests rejected before classification, by error code.",
		}, []string{"code"}),
		charts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charts_total",
			Help:      "Charts rendered, by rule and result.",
		}, []string{"rule", "result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Time spent evaluating a rule.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 6),
		}),
	}
	m.registry.MustRegister(m.classifications, m.rejected, m.charts, m.duration)
	return m
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Classified counts a successful classification.
func (m *Metrics) Classified(result ped.Result, seconds float64) {
	m.classifications.WithLabelValues(
		result.State.String(),
		strconv.Itoa(int(result.Group)),
		result.Category.String(),
	).Inc()
	if seconds >= 0 {
		m.duration.Observe(seconds)
	}
}

// Rejected counts a request refused by input validation.
func (m *Metrics) Rejected(code ped.ErrorCode) {
	if code == "" {
		code = "UNKNOWN"
	}
	m.rejected.WithLabelValues(string(code)).Inc()
}

// ChartRendered counts a chart render attempt.
func (m *Metrics) ChartRendered(ruleID string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.charts.WithLabelValues(ruleID, result).Inc()
}

// WriteTextfile writes all metrics to path atomically in the Prometheus text
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Compile-time interface satisfaction checks.
var (
	_ Recorder = (*Metrics)(nil)
	_ Recorder = Nop{}
)

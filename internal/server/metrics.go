package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"textlens/internal/domain"
)

// Metrics holds the analysis counters. Each server owns its registry.
type Metrics struct {
	registry   *prometheus.Registry
	analyses   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// NewMetrics creates and registers the analysis metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textlens",
			Name:      "analyses_total",
			Help:      "Completed analyses by origin.",
		}, []string{"origin"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "textlens",
			Name:      "rejections_total",
			Help:      "Inputs rejected by validation, by reason.",
		}, []string{"reason"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "textlens",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent in one analyze request.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"origin"}),
	}
	m.registry.MustRegister(
		m.analyses,
		m.rejections,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveReport records one finished analysis.
func (m *Metrics) ObserveReport(origin domain.Origin, elapsed time.Duration) {
	m.analyses.WithLabelValues(string(origin)).Inc()
	m.latency.WithLabelValues(string(origin)).Observe(elapsed.Seconds())
}

// ObserveRejection records one rejected input.
func (m *Metrics) ObserveRejection(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

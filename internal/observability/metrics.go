package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "vibeproxy"

// Metrics holds the proxy collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	streamFrames     prometheus.Counter
	streamsInflight  prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Time until the upstream gateway answered, by mode and outcome",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"mode", "outcome"},
		),
		streamFrames: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "stream_frames_total",
				Help:      "Total number of event-stream frames relayed to callers",
			},
		),
		streamsInflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "streams_inflight",
				Help:      "Number of event streams currently open",
			},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.upstreamDuration,
		m.streamFrames,
		m.streamsInflight,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest counts a finished HTTP request.
func (m *Metrics) ObserveRequest(route string, code int) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// ObserveUpstream records how long the upstream took to answer.
func (m *Metrics) ObserveUpstream(mode, outcome string, elapsed time.Duration) {
	m.upstreamDuration.WithLabelValues(mode, outcome).Observe(elapsed.Seconds())
}

// StreamStarted marks an event stream as open.
func (m *Metrics) StreamStarted() { m.streamsInflight.Inc() }

// StreamEnded marks an event stream as closed.
func (m *Metrics) StreamEnded() { m.streamsInflight.Dec() }

// FrameRelayed counts one relayed event-stream frame.
func (m *Metrics) FrameRelayed() { m.streamFrames.Inc() }

// RequestsTotal exposes the request counter for inspection.
func (m *Metrics) RequestsTotal() *prometheus.CounterVec { return m.requestsTotal }

// StreamFrames exposes the frame counter for inspection.
func (m *Metrics) StreamFrames() prometheus.Counter { return m.streamFrames }

// StreamsInflight exposes the in-flight gauge for inspection.
func (m *Metrics) StreamsInflight() prometheus.Gauge { return m.streamsInflight }

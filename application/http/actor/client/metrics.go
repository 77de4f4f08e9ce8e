package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cc_curl"

type outcome string

const (
	outcomeSuccess      outcome = "success"
	outcomeDialError    outcome = "dial_error"
	outcomeWriteError   outcome = "write_error"
	outcomeReadError    outcome = "read_error"
	outcomeFramingError outcome = "framing_error"
)

// Metrics counts exchanges made by a [Client].
// Each instance owns its registry, so nothing is registered globally.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	bytesSent       prometheus.Counter
	bytesReceived   prometheus.Counter
	durationSeconds prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Requests sent, by outcome.",
			},
			[]string{"outcome"},
		),
		bytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sent_bytes_total",
			Help:      "Bytes of requests written to connections.",
		}),
		bytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "received_bytes_total",
			Help:      "Bytes of responses read from connections.",
		}),
		durationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Time from dialing to the framed response.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.bytesSent,
		m.bytesReceived,
		m.durationSeconds,
	)

	return m
}

func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteToTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(o outcome, d time.Duration) {
	m.requestsTotal.WithLabelValues(string(o)).Inc()
	m.durationSeconds.Observe(d.Seconds())
}

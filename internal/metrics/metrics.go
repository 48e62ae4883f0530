// Package metrics exposes Prometheus collectors for the render server.
//
// Every method is safe on a nil *Metrics so callers can leave metrics unwired.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rbright/windowcaster/internal/fsm"
)

const namespace = "windowcaster"

var listenerStates = []fsm.State{fsm.StateStopped, fsm.StateStarting, fsm.StateRunning, fsm.StateStopping}

// Metrics holds the server collectors and the registry they are registered in.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	framesIn        prometheus.Counter
	framesOut       prometheus.Counter
	bytesIn         prometheus.Counter
	decodeErrors    prometheus.Counter
	frameErrors     prometheus.Counter
	connections     *prometheus.CounterVec
	clientConnected prometheus.Gauge
	listenerState   *prometheus.GaugeVec
}

// New registers all collectors in a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Dispatched requests by kind and outcome",
		}, []string{"kind", "outcome"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Handler duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		}, []string{"kind"}),

		framesIn: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_received_total",
			Help:      "Complete frames decoded from clients",
		}),

		framesOut: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_sent_total",
			Help:      "Reply frames written to clients",
		}),

		bytesIn: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "received_bytes_total",
			Help:      "Raw bytes read from client connections",
		}),

		decodeErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Frame payloads that could not be decoded as a request",
		}),

		frameErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frame_errors_total",
			Help:      "Connections closed because of an oversized frame",
		}),

		connections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_events_total",
			Help:      "Client connection lifecycle events",
		}, []string{"event"}),

		clientConnected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "client_connected",
			Help:      "1 while a client holds the session",
		}),

		listenerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "listener_state",
			Help:      "1 for the current listener lifecycle state",
		}, []string{"state"}),
	}
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one dispatched request.
func (m *Metrics) ObserveRequest(kind string, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.requestsTotal.WithLabelValues(kind, outcome).Inc()
	m.requestDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// BytesReceived counts raw bytes read from a client.
func (m *Metrics) BytesReceived(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.bytesIn.Add(float64(n))
}

// FrameReceived counts one decoded inbound frame.
func (m *Metrics) FrameReceived() {
	if m == nil {
		return
	}
	m.framesIn.Inc()
}

// FrameSent counts one written reply frame.
func (m *Metrics) FrameSent() {
	if m == nil {
		return
	}
	m.framesOut.Inc()
}

// DecodeFailed counts a payload dropped without reply.
func (m *Metrics) DecodeFailed() {
	if m == nil {
		return
	}
	m.decodeErrors.Inc()
}

// FrameRejected counts a connection closed for an oversized frame.
func (m *Metrics) FrameRejected() {
	if m == nil {
		return
	}
	m.frameErrors.Inc()
}

func (m *Metrics) ClientConnected(string) {
	if m == nil {
		return
	}
	m.connections.WithLabelValues("connected").Inc()
	m.clientConnected.Set(1)
}

func (m *Metrics) ClientEvicted(string) {
	if m == nil {
		return
	}
	m.connections.WithLabelValues("evicted").Inc()
}

func (m *Metrics) ClientDisconnected(string) {
	if m == nil {
		return
	}
	m.connections.WithLabelValues("disconnected").Inc()
	m.clientConnected.Set(0)
}

func (m *Metrics) StateChanged(state fsm.State) {
	if m == nil {
		return
	}
	for _, s := range listenerStates {
		value := 0.0
		if s == state {
			value = 1
		}
		m.listenerState.WithLabelValues(string(s)).Set(value)
	}
}

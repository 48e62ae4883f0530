package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/rbright/windowcaster/internal/fsm"
)

func TestObserveRequestCountsByOutcome(t *testing.T) {
	m := New()

	m.ObserveRequest("render", true, 3*time.Millisecond)
	m.ObserveRequest("render", false, time.Millisecond)
	m.ObserveRequest("render", false, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("render", "success")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("render", "failure")))
	require.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestClientLifecycleGauge(t *testing.T) {
	m := New()

	m.ClientConnected("127.0.0.1:5000")
	require.Equal(t, 1.0, testutil.ToFloat64(m.clientConnected))

	m.ClientEvicted("127.0.0.1:5000")
	m.ClientDisconnected("127.0.0.1:5000")
	require.Equal(t, 0.0, testutil.ToFloat64(m.clientConnected))
	require.Equal(t, 1.0, testutil.ToFloat64(m.connections.WithLabelValues("evicted")))
}

func TestStateChangedMarksOnlyCurrentState(t *testing.T) {
	m := New()

	m.StateChanged(fsm.StateRunning)
	require.Equal(t, 1.0, testutil.ToFloat64(m.listenerState.WithLabelValues("running")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.listenerState.WithLabelValues("stopped")))

	m.StateChanged(fsm.StateStopped)
	require.Equal(t, 0.0, testutil.ToFloat64(m.listenerState.WithLabelValues("running")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.listenerState.WithLabelValues("stopped")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	m.ObserveRequest("render", true, time.Millisecond)
	m.BytesReceived(10)
	m.FrameReceived()
	m.FrameSent()
	m.DecodeFailed()
	m.FrameRejected()
	m.ClientConnected("x")
	m.ClientEvicted("x")
	m.ClientDisconnected("x")
	m.StateChanged(fsm.StateRunning)
	require.Nil(t, m.Registry())
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.FrameReceived()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "windowcaster_frames_received_total 1")
}

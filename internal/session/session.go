// Package session owns the single client slot: its transport, the pending
// receive buffer, and reply framing.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/rbright/windowcaster/internal/frame"
	"github.com/rbright/windowcaster/internal/logging"
	"github.com/rbright/windowcaster/internal/metrics"
	"github.com/rbright/windowcaster/internal/wire"
)

// ErrNoTransport reports a reply dropped because no client is attached.
var ErrNoTransport = errors.New("session has no transport")

// Session is the server-side state of the one active client.
//
// OnBytesReceived and OnDisconnected must be called from a single goroutine,
// the read pump of the attached transport. Replies are written from that same
// goroutine, so they leave in request order.
type Session struct {
	handler Handler
	decoder frame.Decoder
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu   sync.Mutex
	conn net.Conn

	pending []byte
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxFrame bounds the declared length of inbound frames.
func WithMaxFrame(n int) Option {
	return func(s *Session) { s.decoder.MaxPayload = n }
}

// WithMetrics wires frame counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// New constructs a session with no transport attached.
func New(handler Handler, opts ...Option) *Session {
	s := &Session{
		handler: handler,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach installs conn as the live transport with an empty pending buffer.
// The caller must have closed and drained any previous transport first.
func (s *Session) Attach(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = conn
	s.pending = nil
}

// Connected reports whether a transport is attached.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// RemoteAddr returns the attached client address, or "" without a client.
func (s *Session) RemoteAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remoteAddr(s.conn)
}

// Buffered returns the number of bytes waiting for a frame boundary.
func (s *Session) Buffered() int {
	return len(s.pending)
}

// OnBytesReceived appends chunk to the pending buffer and dispatches every
// complete frame in arrival order. A non-nil error is fatal to the connection.
func (s *Session) OnBytesReceived(ctx context.Context, chunk []byte) error {
	s.metrics.BytesReceived(len(chunk))
	s.pending = append(s.pending, chunk...)

	for {
		payload, consumed, ok, err := s.decoder.Next(s.pending)
		if err != nil {
			s.metrics.FrameRejected()
			s.pending = nil
			return err
		}
		if !ok {
			break
		}
		s.metrics.FrameReceived()
		s.dispatch(ctx, payload)
		s.pending = s.pending[consumed:]
	}

	if len(s.pending) == 0 {
		s.pending = nil
	}
	return nil
}

// OnDisconnected forgets the transport and drops any partial frame.
func (s *Session) OnDisconnected() {
	s.mu.Lock()
	s.conn = nil
	s.mu.Unlock()
	s.pending = nil
}

// Send frames resp onto the live transport. Without a transport the reply is
// dropped and ErrNoTransport is returned.
func (s *Session) Send(resp wire.Response) error {
	payload, err := wire.MarshalResponse(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrNoTransport
	}

	if _, err := conn.Write(frame.Encode(payload)); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	s.metrics.FrameSent()
	return nil
}

// Close closes the live transport, unblocking its read pump. The pump still
// owns the OnDisconnected call.
func (s *Session) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (s *Session) dispatch(ctx context.Context, payload []byte) {
	resp, ok := s.handler.Handle(ctx, payload)
	if !ok {
		return
	}
	if err := s.Send(resp); err != nil {
		s.logger.Warn("reply dropped", "error", err.Error())
	}
}

func remoteAddr(conn net.Conn) string {
	if conn == nil || conn.RemoteAddr() == nil {
		return ""
	}
	return conn.RemoteAddr().String()
}

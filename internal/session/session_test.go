package session

import (
	"bytes"
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/windowcaster/internal/frame"
	"github.com/rbright/windowcaster/internal/wire"
)

type fakeAddr string

func (a fakeAddr) Network() string { return "tcp" }
func (a fakeAddr) String() string  { return string(a) }

type recordingConn struct {
	net.Conn

	mu       sync.Mutex
	written  bytes.Buffer
	closed   bool
	writeErr error
}

func (c *recordingConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return c.written.Write(p)
}

func (c *recordingConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *recordingConn) RemoteAddr() net.Addr { return fakeAddr("10.0.0.2:40000") }

func (c *recordingConn) replies(t *testing.T) []wire.Response {
	t.Helper()
	c.mu.Lock()
	buf := append([]byte(nil), c.written.Bytes()...)
	c.mu.Unlock()

	var out []wire.Response
	for len(buf) > 0 {
		payload, consumed, ok := frame.TryDecode(buf)
		require.True(t, ok, "partial reply frame")
		resp, err := wire.UnmarshalResponse(payload)
		require.NoError(t, err)
		out = append(out, resp)
		buf = buf[consumed:]
	}
	return out
}

type payloadRecorder struct {
	payloads [][]byte
	reply    bool
}

func (r *payloadRecorder) Handle(_ context.Context, payload []byte) (wire.Response, bool) {
	r.payloads = append(r.payloads, append([]byte(nil), payload...))
	if !r.reply {
		return wire.Response{}, false
	}
	return wire.StatusResponse(true, string(payload)), true
}

func TestOnBytesReceivedSplitAtEveryBoundary(t *testing.T) {
	encoded := frame.Encode([]byte("hello window"))

	for cut := 0; cut <= len(encoded); cut++ {
		rec := &payloadRecorder{}
		s := New(rec)
		s.Attach(&recordingConn{})

		require.NoError(t, s.OnBytesReceived(context.Background(), encoded[:cut]))
		require.NoError(t, s.OnBytesReceived(context.Background(), encoded[cut:]))

		require.Len(t, rec.payloads, 1, "cut=%d", cut)
		require.Equal(t, []byte("hello window"), rec.payloads[0], "cut=%d", cut)
		require.Zero(t, s.Buffered(), "cut=%d", cut)
	}
}

func TestOnBytesReceivedMultipleFramesInOneChunk(t *testing.T) {
	rec := &payloadRecorder{reply: true}
	conn := &recordingConn{}
	s := New(rec)
	s.Attach(conn)

	chunk := append(frame.Encode([]byte("first")), frame.Encode([]byte("second"))...)
	chunk = append(chunk, frame.Encode([]byte("thi"))[:5]...)
	require.NoError(t, s.OnBytesReceived(context.Background(), chunk))

	require.Equal(t, [][]byte{[]byte("first"), []byte("second")}, rec.payloads)
	require.Equal(t, 5, s.Buffered())

	replies := conn.replies(t)
	require.Len(t, replies, 2)
	require.Equal(t, "first", replies[0].Status.Message)
	require.Equal(t, "second", replies[1].Status.Message)
}

func TestOnBytesReceivedRejectsOversizedFrame(t *testing.T) {
	rec := &payloadRecorder{}
	s := New(rec, WithMaxFrame(4))
	s.Attach(&recordingConn{})

	err := s.OnBytesReceived(context.Background(), frame.Encode([]byte("too long")))
	require.ErrorIs(t, err, frame.ErrFrameTooLarge)
	require.Empty(t, rec.payloads)
	require.Zero(t, s.Buffered())
}

func TestHandlerWithoutReplySendsNothing(t *testing.T) {
	conn := &recordingConn{}
	s := New(HandlerFunc(func(context.Context, []byte) (wire.Response, bool) {
		return wire.Response{}, false
	}))
	s.Attach(conn)

	require.NoError(t, s.OnBytesReceived(context.Background(), frame.Encode([]byte("junk"))))
	require.Empty(t, conn.replies(t))
}

func TestDisconnectClearsPartialFrame(t *testing.T) {
	rec := &payloadRecorder{}
	s := New(rec)
	s.Attach(&recordingConn{})

	stale := frame.Encode([]byte("stale-partial"))
	require.NoError(t, s.OnBytesReceived(context.Background(), stale[:7]))
	require.Equal(t, 7, s.Buffered())

	s.OnDisconnected()
	require.False(t, s.Connected())
	require.Zero(t, s.Buffered())

	s.Attach(&recordingConn{})
	require.NoError(t, s.OnBytesReceived(context.Background(), frame.Encode([]byte("fresh"))))
	require.Equal(t, [][]byte{[]byte("fresh")}, rec.payloads)
}

func TestAttachResetsPendingBuffer(t *testing.T) {
	rec := &payloadRecorder{}
	s := New(rec)
	s.Attach(&recordingConn{})
	require.NoError(t, s.OnBytesReceived(context.Background(), []byte{9, 0}))

	s.Attach(&recordingConn{})
	require.Zero(t, s.Buffered())
	require.Equal(t, "10.0.0.2:40000", s.RemoteAddr())
}

func TestSendWithoutTransport(t *testing.T) {
	s := New(&payloadRecorder{})

	err := s.Send(wire.StatusResponse(true, ""))
	require.ErrorIs(t, err, ErrNoTransport)
	require.Equal(t, "", s.RemoteAddr())
	require.NoError(t, s.Close())
}

func TestSendRejectsEmptyResponse(t *testing.T) {
	s := New(&payloadRecorder{})
	s.Attach(&recordingConn{})

	require.Error(t, s.Send(wire.Response{}))
}

func TestSendWrapsWriteFailure(t *testing.T) {
	s := New(&payloadRecorder{})
	s.Attach(&recordingConn{writeErr: errors.New("broken pipe")})

	err := s.Send(wire.StatusResponse(false, "x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken pipe")
}

func TestCloseClosesTransport(t *testing.T) {
	conn := &recordingConn{}
	s := New(&payloadRecorder{})
	s.Attach(conn)

	require.NoError(t, s.Close())
	require.True(t, conn.closed)
}

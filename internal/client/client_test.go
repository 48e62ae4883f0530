package client

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rbright/windowcaster/internal/config"
	"github.com/rbright/windowcaster/internal/directory"
	"github.com/rbright/windowcaster/internal/dispatch"
	"github.com/rbright/windowcaster/internal/frame"
	"github.com/rbright/windowcaster/internal/render"
	"github.com/rbright/windowcaster/internal/server"
	"github.com/rbright/windowcaster/internal/session"
	"github.com/rbright/windowcaster/internal/wire"
)

type harness struct {
	addr string
	sink render.FileSink
}

func startServer(t *testing.T, windows ...config.StaticWindow) harness {
	t.Helper()

	sink := render.FileSink{Dir: t.TempDir()}
	d := dispatch.New(directory.NewStatic(windows), render.New(sink, nil))
	sess := session.New(d)
	ln := server.NewListener("127.0.0.1:0", sess)
	require.NoError(t, ln.Start(context.Background()))
	t.Cleanup(func() { _ = ln.Stop() })

	return harness{addr: ln.Addr().String(), sink: sink}
}

func dial(t *testing.T, addr string) *Client {
	t.Helper()
	c, err := Dial(context.Background(), addr, WithReplyTimeout(3*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClientListWindows(t *testing.T) {
	h := startServer(t,
		config.StaticWindow{Handle: 0x10, Title: "Firefox", ClassName: "firefox"},
		config.StaticWindow{Handle: 0x11, Title: "kitty", ClassName: "kitty"},
	)
	c := dial(t, h.addr)

	entries, err := c.ListWindows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []wire.WindowEntry{
		{Handle: 0x10, Title: "Firefox", ClassName: "firefox"},
		{Handle: 0x11, Title: "kitty", ClassName: "kitty"},
	}, entries)
}

func TestClientListWindowsEmpty(t *testing.T) {
	h := startServer(t)
	c := dial(t, h.addr)

	entries, err := c.ListWindows(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestClientRenderAndStop(t *testing.T) {
	h := startServer(t, config.StaticWindow{Handle: 0x2a, Title: "target"})
	c := dial(t, h.addr)

	status, err := c.Render(context.Background(), wire.RenderCommand{
		TargetWindow: 0x2a,
		Content:      wire.ContentImage,
		Data:         []byte{255, 0, 0, 0, 255, 0},
		Width:        2,
		Height:       1,
	})
	require.NoError(t, err)
	require.Equal(t, wire.Status{Success: true}, status)

	data, err := os.ReadFile(h.sink.Path(0x2a))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())

	status, err = c.StopRender(context.Background(), 0x2a)
	require.NoError(t, err)
	require.True(t, status.Success)
}

func TestClientRenderInvalidWindow(t *testing.T) {
	h := startServer(t, config.StaticWindow{Handle: 1, Title: "only"})
	c := dial(t, h.addr)

	status, err := c.Render(context.Background(), wire.RenderCommand{
		TargetWindow: 99,
		Content:      wire.ContentImage,
		Data:         []byte{1, 2, 3},
		Width:        1,
		Height:       1,
	})
	require.NoError(t, err)
	require.Equal(t, wire.Status{Success: false, Message: dispatch.MsgInvalidWindow}, status)
}

func TestClientStreamVideo(t *testing.T) {
	h := startServer(t, config.StaticWindow{Handle: 5, Title: "video"})
	c := dial(t, h.addr)

	s := Stream{Target: 5, Width: 2, Height: 2, FPS: 200}
	raw := bytes.Repeat([]byte{0x40}, s.FrameSize()*3+5)

	var results []FrameResult
	sent, err := c.StreamVideo(context.Background(), s, bytes.NewReader(raw), func(r FrameResult) {
		results = append(results, r)
	})
	require.NoError(t, err)
	require.Equal(t, 3, sent)
	require.Len(t, results, 3)
	for i, r := range results {
		require.Equal(t, i, r.Index)
		require.True(t, r.Status.Success)
	}
}

func TestClientStreamVideoRejectsZeroSize(t *testing.T) {
	c := New(nil)
	_, err := c.StreamVideo(context.Background(), Stream{Target: 1}, bytes.NewReader(nil), nil)
	require.Error(t, err)
}

func TestRoundtripRejectsOversizedReply(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { _ = serverConn.Close() })

	go func() {
		header := make([]byte, frame.HeaderSize)
		_, _ = serverConn.Read(header)
		buf := make([]byte, 64)
		_, _ = serverConn.Read(buf)
		_, _ = serverConn.Write([]byte{0xff, 0xff, 0x00, 0x00})
	}()

	c := New(clientConn, WithMaxFrame(16), WithReplyTimeout(2*time.Second))
	defer c.Close()

	_, err := c.Roundtrip(context.Background(), wire.ListWindowsRequest())
	require.ErrorIs(t, err, frame.ErrFrameTooLarge)
}

func TestRoundtripRejectsEmptyReply(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { _ = serverConn.Close() })

	go func() {
		buf := make([]byte, 64)
		_, _ = serverConn.Read(buf)
		_, _ = serverConn.Write(frame.Encode(nil))
	}()

	c := New(clientConn, WithReplyTimeout(2*time.Second))
	defer c.Close()

	_, err := c.Roundtrip(context.Background(), wire.ListWindowsRequest())
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestRoundtripHonorsContextCancel(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { _ = serverConn.Close() })

	go func() {
		buf := make([]byte, 64)
		_, _ = serverConn.Read(buf)
	}()

	c := New(clientConn)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Roundtrip(ctx, wire.ListWindowsRequest())
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded) || isTimeout(err), "unexpected error: %v", err)
}

func TestListWindowsStatusReplyIsError(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	t.Cleanup(func() { _ = serverConn.Close() })

	go func() {
		buf := make([]byte, 64)
		_, _ = serverConn.Read(buf)
		payload, _ := wire.MarshalResponse(wire.StatusResponse(false, dispatch.MsgEnumerationFailed))
		_, _ = serverConn.Write(frame.Encode(payload))
	}()

	c := New(clientConn, WithReplyTimeout(2*time.Second))
	defer c.Close()

	_, err := c.ListWindows(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, dispatch.MsgEnumerationFailed, statusErr.Message)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Package client speaks the framed request/reply protocol to a windowcaster
// server.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rbright/windowcaster/internal/frame"
	"github.com/rbright/windowcaster/internal/wire"
)

// ErrUnexpectedResponse reports a reply variant the request does not produce.
var ErrUnexpectedResponse = errors.New("unexpected response")

// StatusError is a server Status reply with Success=false where a window list
// was expected.
type StatusError struct {
	Message string
}

func (e *StatusError) Error() string {
	return "server: " + e.Message
}

// Client holds one connection. Round trips are serialized.
type Client struct {
	conn         net.Conn
	maxFrame     int
	replyTimeout time.Duration

	mu sync.Mutex
}

type Option func(*Client)

// WithMaxFrame bounds the reply payload size.
func WithMaxFrame(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxFrame = n
		}
	}
}

// WithReplyTimeout bounds each round trip when ctx carries no deadline.
func WithReplyTimeout(d time.Duration) Option {
	return func(c *Client) { c.replyTimeout = d }
}

// Dial connects to addr. ctx bounds only the connect.
func Dial(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return New(conn, opts...), nil
}

// New wraps an established connection.
func New(conn net.Conn, opts ...Option) *Client {
	c := &Client{conn: conn, maxFrame: frame.DefaultMaxPayload}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Roundtrip writes req as one frame and reads exactly one reply frame.
func (c *Client) Roundtrip(ctx context.Context, req wire.Request) (wire.Response, error) {
	payload, err := wire.MarshalRequest(req)
	if err != nil {
		return wire.Response{}, fmt.Errorf("encode request: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok && c.replyTimeout > 0 {
		deadline = time.Now().Add(c.replyTimeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return wire.Response{}, fmt.Errorf("set deadline: %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	if _, err := c.conn.Write(frame.Encode(payload)); err != nil {
		return wire.Response{}, c.wrap(ctx, "write request", err)
	}

	reply, err := frame.ReadFrom(c.conn, c.maxFrame)
	if err != nil {
		return wire.Response{}, c.wrap(ctx, "read reply", err)
	}

	resp, err := wire.UnmarshalResponse(reply)
	if err != nil {
		return wire.Response{}, fmt.Errorf("decode reply: %w", err)
	}
	if resp.Kind == wire.ResponseNone {
		return wire.Response{}, fmt.Errorf("%w: empty reply", ErrUnexpectedResponse)
	}
	return resp, nil
}

// ListWindows returns the server's window directory.
func (c *Client) ListWindows(ctx context.Context) ([]wire.WindowEntry, error) {
	resp, err := c.Roundtrip(ctx, wire.ListWindowsRequest())
	if err != nil {
		return nil, err
	}
	switch resp.Kind {
	case wire.ResponseWindowList:
		return resp.WindowList, nil
	case wire.ResponseStatus:
		return nil, &StatusError{Message: resp.Status.Message}
	default:
		return nil, ErrUnexpectedResponse
	}
}

// Render paints one frame and returns the server's status.
func (c *Client) Render(ctx context.Context, cmd wire.RenderCommand) (wire.Status, error) {
	return c.status(ctx, wire.RenderRequest(cmd))
}

// StopRender clears target and returns the server's status.
func (c *Client) StopRender(ctx context.Context, target uint64) (wire.Status, error) {
	return c.status(ctx, wire.StopRenderRequest(target))
}

func (c *Client) status(ctx context.Context, req wire.Request) (wire.Status, error) {
	resp, err := c.Roundtrip(ctx, req)
	if err != nil {
		return wire.Status{}, err
	}
	if resp.Kind != wire.ResponseStatus {
		return wire.Status{}, fmt.Errorf("%w: %s reply to %s", ErrUnexpectedResponse, kindName(resp.Kind), req.Kind)
	}
	return resp.Status, nil
}

// wrap prefers the context error when cancellation forced the deadline.
func (c *Client) wrap(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func kindName(k wire.ResponseKind) string {
	switch k {
	case wire.ResponseWindowList:
		return "window list"
	case wire.ResponseStatus:
		return "status"
	default:
		return "empty"
	}
}

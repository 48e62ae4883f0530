// Package server accepts TCP clients and binds each to the shared session.
//
// Only one client is served at a time. An incoming connection evicts the
// live one: its transport is closed and its read pump fully torn down before
// the new transport is attached with an empty buffer.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/rbright/windowcaster/internal/fsm"
	"github.com/rbright/windowcaster/internal/logging"
	"github.com/rbright/windowcaster/internal/session"
)

// DefaultReadBufferSize is the per-read chunk size of the read pump.
const DefaultReadBufferSize = 4096

const maxAcceptDelay = time.Second

// Listener owns the accept loop and the read pump of the live client.
type Listener struct {
	addr       string
	session    *session.Session
	logger     *slog.Logger
	observer   Observers
	readBuffer int

	mu         sync.Mutex
	state      fsm.State
	ln         net.Listener
	cancel     context.CancelFunc
	startDone  chan struct{}
	acceptDone chan struct{}
	stopDone   chan struct{}
	pumpDone   chan struct{}
}

// Option customizes a Listener.
type Option func(*Listener)

// WithLogger sets the listener logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Listener) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObserver registers lifecycle observers.
func WithObserver(obs ...Observer) Option {
	return func(l *Listener) {
		l.observer = append(l.observer, obs...)
	}
}

// WithReadBufferSize sets the read chunk size.
func WithReadBufferSize(n int) Option {
	return func(l *Listener) {
		if n > 0 {
			l.readBuffer = n
		}
	}
}

// NewListener prepares a stopped listener for addr.
func NewListener(addr string, sess *session.Session, opts ...Option) *Listener {
	l := &Listener{
		addr:       addr,
		session:    sess,
		logger:     logging.Discard(),
		readBuffer: DefaultReadBufferSize,
		state:      fsm.StateStopped,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the lifecycle state snapshot.
func (l *Listener) State() fsm.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Addr returns the bound address while running, or nil.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

// Start binds the listening socket and launches the accept loop. A bind
// failure leaves the listener stopped and is returned. Request handling runs
// under ctx values but is cancelled only by Stop.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	next, err := fsm.Transition(l.state, fsm.EventStart)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	l.state = next
	startDone := make(chan struct{})
	l.startDone = startDone
	l.mu.Unlock()
	defer close(startDone)
	l.observer.StateChanged(next)

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", l.addr)
	if err != nil {
		_ = l.transition(fsm.EventFail)
		return fmt.Errorf("listen %s: %w", l.addr, err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	l.mu.Lock()
	l.ln = ln
	l.cancel = cancel
	l.acceptDone = make(chan struct{})
	l.stopDone = make(chan struct{})
	acceptDone := l.acceptDone
	l.mu.Unlock()

	if err := l.transition(fsm.EventStarted); err != nil {
		cancel()
		_ = ln.Close()
		return err
	}
	l.logger.Info("listening", "addr", ln.Addr().String())

	go l.acceptLoop(runCtx, ln, acceptDone)
	return nil
}

// Serve starts the listener and blocks until ctx is cancelled, then stops it.
func (l *Listener) Serve(ctx context.Context) error {
	if err := l.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return l.Stop()
}

// Stop closes the listening socket and the live client, waits for every
// loop to exit, and leaves the listener stopped. It is idempotent. A Stop
// during Start waits for the bind to settle first.
func (l *Listener) Stop() error {
	l.mu.Lock()
	for l.state == fsm.StateStarting {
		done := l.startDone
		l.mu.Unlock()
		<-done
		l.mu.Lock()
	}
	switch l.state {
	case fsm.StateStopped:
		l.mu.Unlock()
		return nil
	case fsm.StateStopping:
		done := l.stopDone
		l.mu.Unlock()
		<-done
		return nil
	}
	next, err := fsm.Transition(l.state, fsm.EventStop)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	l.state = next
	ln, cancel, acceptDone, stopDone := l.ln, l.cancel, l.acceptDone, l.stopDone
	l.mu.Unlock()
	l.observer.StateChanged(next)

	cancel()
	closeErr := ln.Close()
	<-acceptDone

	_ = l.session.Close()
	l.waitPump()

	l.mu.Lock()
	l.ln = nil
	l.mu.Unlock()
	_ = l.transition(fsm.EventStopped)
	close(stopDone)
	l.logger.Info("listener stopped")

	if closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		return fmt.Errorf("close listener: %w", closeErr)
	}
	return nil
}

func (l *Listener) acceptLoop(ctx context.Context, ln net.Listener, done chan struct{}) {
	defer close(done)

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return
			}
			delay = nextAcceptDelay(delay)
			l.logger.Warn("accept failed", "error", err.Error(), "retry_in", delay.String())
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			continue
		}
		delay = 0
		l.adopt(ctx, conn)
	}
}

// adopt evicts the live client, if any, then attaches conn.
func (l *Listener) adopt(ctx context.Context, conn net.Conn) {
	remote := conn.RemoteAddr().String()

	if l.pumpRunning() {
		previous := l.session.RemoteAddr()
		l.logger.Info("client evicted", "remote", previous, "incoming", remote)
		l.observer.ClientEvicted(previous)
		_ = l.session.Close()
	}
	l.waitPump()

	if ctx.Err() != nil {
		_ = conn.Close()
		return
	}

	l.session.Attach(conn)
	done := make(chan struct{})
	l.mu.Lock()
	l.pumpDone = done
	l.mu.Unlock()

	l.logger.Info("client connected", "remote", remote)
	l.observer.ClientConnected(remote)
	go l.pump(ctx, conn, remote, done)
}

// pump feeds transport reads into the session until EOF, a read error, or a
// fatal framing error.
func (l *Listener) pump(ctx context.Context, conn net.Conn, remote string, done chan struct{}) {
	defer close(done)

	buf := make([]byte, l.readBuffer)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if ferr := l.session.OnBytesReceived(ctx, buf[:n]); ferr != nil {
				l.logger.Warn("closing connection", "remote", remote, "error", ferr.Error())
				break
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				l.logger.Warn("read failed", "remote", remote, "error", err.Error())
			}
			break
		}
	}

	_ = conn.Close()
	l.session.OnDisconnected()
	l.logger.Info("client disconnected", "remote", remote)
	l.observer.ClientDisconnected(remote)
}

func (l *Listener) pumpRunning() bool {
	l.mu.Lock()
	done := l.pumpDone
	l.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

func (l *Listener) waitPump() {
	l.mu.Lock()
	done := l.pumpDone
	l.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (l *Listener) transition(event fsm.Event) error {
	l.mu.Lock()
	next, err := fsm.Transition(l.state, event)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	l.state = next
	l.mu.Unlock()

	l.observer.StateChanged(next)
	return nil
}

func nextAcceptDelay(current time.Duration) time.Duration {
	if current == 0 {
		return 5 * time.Millisecond
	}
	current *= 2
	if current > maxAcceptDelay {
		return maxAcceptDelay
	}
	return current
}

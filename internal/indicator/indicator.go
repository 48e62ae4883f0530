// Package indicator surfaces client lifecycle changes as desktop
// notifications and short audio cues.
package indicator

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rbright/windowcaster/internal/config"
	"github.com/rbright/windowcaster/internal/fsm"
	"github.com/rbright/windowcaster/internal/hypr"
)

const queueSize = 16

// Notifier reports listener lifecycle events through Hyprland or desktop DBus
// notifications based on config backend. It satisfies server.Observer.
//
// Events are queued and delivered by a single worker so listener goroutines
// never wait on hyprctl, busctl, or audio playback. Events arriving while the
// queue is full are dropped.
type Notifier struct {
	cfg      config.IndicatorConfig
	logger   *slog.Logger
	messages messages
	cue      func(context.Context, cueKind) error

	queue chan func()
	done  chan struct{}

	mu                    sync.Mutex
	closed                bool
	desktopNotificationID uint32
}

// New creates a notifier from config and starts its delivery worker.
func New(cfg config.IndicatorConfig, logger *slog.Logger) *Notifier {
	n := &Notifier{
		cfg:      cfg,
		logger:   logger,
		messages: indicatorMessagesFromEnv(),
		queue:    make(chan func(), queueSize),
		done:     make(chan struct{}),
	}
	n.cue = func(ctx context.Context, kind cueKind) error {
		return emitCue(ctx, kind, n.cfg)
	}
	go n.worker()
	return n
}

// ClientConnected announces a newly attached client.
func (n *Notifier) ClientConnected(remote string) {
	n.enqueue(func() {
		n.playCue(cueConnect)
		n.show(5, "rgb(a6e3a1)", n.messages.connected(remote))
	})
}

// ClientEvicted announces a client replaced by a newer connection.
func (n *Notifier) ClientEvicted(remote string) {
	n.enqueue(func() {
		n.playCue(cueEvict)
		n.show(0, "rgb(f9e2af)", n.messages.evicted(remote))
	})
}

// ClientDisconnected dismisses the client notification.
func (n *Notifier) ClientDisconnected(string) {
	n.enqueue(func() {
		n.playCue(cueDisconnect)
		if n.cfg.Enable {
			n.run(n.dismiss)
		}
	})
}

// StateChanged dismisses any visible notification once the listener stops.
func (n *Notifier) StateChanged(state fsm.State) {
	if state != fsm.StateStopped {
		return
	}
	n.enqueue(func() {
		if n.cfg.Enable {
			n.run(n.dismiss)
		}
	})
}

// Close drains queued events and stops the worker. Later events are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		<-n.done
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()
	<-n.done
}

func (n *Notifier) worker() {
	defer close(n.done)
	for fn := range n.queue {
		fn()
	}
}

func (n *Notifier) enqueue(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	select {
	case n.queue <- fn:
	default:
		n.log("indicator queue full; event dropped", nil)
	}
}

func (n *Notifier) show(icon int, color string, text string) {
	if !n.cfg.Enable {
		return
	}
	n.run(func(ctx context.Context) error {
		return n.notify(ctx, icon, n.cfg.TimeoutMS, color, text)
	})
}

// notify dispatches indicator output through the configured backend.
func (n *Notifier) notify(ctx context.Context, icon int, timeoutMS int, color string, text string) error {
	if n.desktopBackend() {
		return n.notifyDesktop(ctx, timeoutMS, text)
	}
	return hypr.Notify(ctx, icon, timeoutMS, color, text)
}

// dismiss removes indicator output from the configured backend.
func (n *Notifier) dismiss(ctx context.Context) error {
	if n.desktopBackend() {
		return n.dismissDesktop(ctx)
	}
	return hypr.DismissNotify(ctx)
}

func (n *Notifier) desktopBackend() bool {
	return strings.EqualFold(strings.TrimSpace(n.cfg.Backend), "desktop")
}

// notifyDesktop sends a replaceable desktop notification and stores its ID.
func (n *Notifier) notifyDesktop(ctx context.Context, timeoutMS int, text string) error {
	n.mu.Lock()
	replaceID := n.desktopNotificationID
	n.mu.Unlock()

	appName := strings.TrimSpace(n.cfg.DesktopAppName)
	if appName == "" {
		appName = "windowcaster"
	}

	id, err := desktopNotify(ctx, appName, replaceID, text, timeoutMS)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.desktopNotificationID = id
	n.mu.Unlock()
	return nil
}

// dismissDesktop closes the current desktop notification ID when present.
func (n *Notifier) dismissDesktop(ctx context.Context) error {
	n.mu.Lock()
	id := n.desktopNotificationID
	n.desktopNotificationID = 0
	n.mu.Unlock()

	if id == 0 {
		return nil
	}
	return desktopDismiss(ctx, id)
}

// run executes an indicator operation with a bounded timeout.
func (n *Notifier) run(fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	if err := fn(ctx); err != nil {
		n.log("indicator dispatch failed", err)
	}
}

func (n *Notifier) playCue(kind cueKind) {
	if !n.cfg.SoundEnable {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancel()
	if err := n.cue(ctx, kind); err != nil {
		n.log("indicator audio cue failed", err)
	}
}

// log emits debug-only indicator failures to the runtime logger.
func (n *Notifier) log(message string, err error) {
	if n.logger == nil {
		return
	}
	if err == nil {
		n.logger.Debug(message)
		return
	}
	n.logger.Debug(message, "error", err.Error())
}

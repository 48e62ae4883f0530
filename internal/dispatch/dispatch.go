// Package dispatch decodes request payloads, routes them to the window and
// render collaborators, and packages the reply.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rbright/windowcaster/internal/journal"
	"github.com/rbright/windowcaster/internal/logging"
	"github.com/rbright/windowcaster/internal/metrics"
	"github.com/rbright/windowcaster/internal/wire"
)

// Status messages returned to clients.
const (
	MsgUnknownRequest     = "unknown request type"
	MsgInvalidWindow      = "invalid window handle"
	MsgRendererInitFailed = "renderer initialization failed"
	MsgRenderFailed       = "render failed"
	MsgUnknownContent     = "unknown render content type"
	MsgEnumerationFailed  = "window enumeration failed"
	MsgClearFailed        = "clear failed"
	MsgTimedOut           = "request timed out"
)

const tracerName = "github.com/rbright/windowcaster/internal/dispatch"

// WindowDirectory lists and validates target windows.
type WindowDirectory interface {
	Enumerate(ctx context.Context) ([]wire.WindowEntry, error)
	IsValid(ctx context.Context, handle uint64) bool
}

// FrameRenderer paints frames onto one target window at a time. Initialize
// must be cheap and idempotent for a repeated target.
type FrameRenderer interface {
	Initialize(ctx context.Context, target uint64) error
	PaintFrame(ctx context.Context, data []byte, width, height uint32) error
	Clear(ctx context.Context) error
}

// Journal persists one record per dispatched request.
type Journal interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Dispatcher implements session.Handler over the injected collaborators.
type Dispatcher struct {
	directory WindowDirectory
	renderer  FrameRenderer
	logger    *slog.Logger
	metrics   *metrics.Metrics
	journal   Journal
	tracer    trace.Tracer
	timeout   time.Duration

	// busy serializes collaborator access, including handlers that outlived
	// their deadline.
	busy chan struct{}
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

func WithJournal(j Journal) Option {
	return func(d *Dispatcher) { d.journal = j }
}

func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// WithTimeout bounds each request. Zero disables the deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.timeout = timeout }
}

// New builds a dispatcher. The tracer defaults to the global provider.
func New(directory WindowDirectory, renderer FrameRenderer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		directory: directory,
		renderer:  renderer,
		logger:    logging.Discard(),
		tracer:    otel.Tracer(tracerName),
		busy:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle decodes payload and returns the reply owed for it. Payloads that do
// not decode are logged and get no reply.
func (d *Dispatcher) Handle(ctx context.Context, payload []byte) (wire.Response, bool) {
	req, err := wire.UnmarshalRequest(payload)
	if err != nil {
		d.metrics.DecodeFailed()
		d.logger.Warn("dropping undecodable payload", "bytes", len(payload), "error", err.Error())
		return wire.Response{}, false
	}

	started := time.Now()
	ctx, span := d.tracer.Start(ctx, "windowcaster."+req.Kind.String(),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(requestAttributes(req)...),
	)
	defer span.End()

	resp := d.execute(ctx, req)
	elapsed := time.Since(started)

	success := resp.Kind == wire.ResponseWindowList || resp.Status.Success
	span.SetAttributes(attribute.Bool("windowcaster.success", success))
	if !success {
		span.SetStatus(codes.Error, resp.Status.Message)
	}
	d.metrics.ObserveRequest(req.Kind.String(), success, elapsed)
	d.record(ctx, req, resp, success, started, elapsed)

	d.logger.Debug("request handled",
		"kind", req.Kind.String(),
		"success", success,
		"message", resp.Status.Message,
		"duration_ms", elapsed.Milliseconds(),
	)
	return resp, true
}

// execute runs route under the per-request deadline. A handler that misses
// its deadline keeps the collaborators busy until it returns.
func (d *Dispatcher) execute(ctx context.Context, req wire.Request) wire.Response {
	if d.timeout <= 0 {
		d.busy <- struct{}{}
		defer func() { <-d.busy }()
		return d.route(ctx, req)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	select {
	case d.busy <- struct{}{}:
	case <-ctx.Done():
		d.logger.Warn("request timed out waiting for previous handler", "kind", req.Kind.String())
		return wire.StatusResponse(false, MsgTimedOut)
	}

	result := make(chan wire.Response, 1)
	go func() {
		defer func() { <-d.busy }()
		result <- d.route(ctx, req)
	}()

	select {
	case resp := <-result:
		return resp
	case <-ctx.Done():
		d.logger.Warn("request timed out", "kind", req.Kind.String(), "timeout", d.timeout.String())
		return wire.StatusResponse(false, MsgTimedOut)
	}
}

func (d *Dispatcher) route(ctx context.Context, req wire.Request) wire.Response {
	switch req.Kind {
	case wire.RequestListWindows:
		return d.listWindows(ctx)
	case wire.RequestRender:
		if req.Render == nil {
			break
		}
		return d.render(ctx, *req.Render)
	case wire.RequestStopRender:
		if req.Stop == nil {
			break
		}
		return d.stopRender(ctx, *req.Stop)
	}
	return wire.StatusResponse(false, MsgUnknownRequest)
}

func (d *Dispatcher) record(ctx context.Context, req wire.Request, resp wire.Response, success bool, started time.Time, elapsed time.Duration) {
	if d.journal == nil {
		return
	}
	entry := journal.Entry{
		ReceivedAt: started,
		Kind:       req.Kind.String(),
		Success:    success,
		Message:    resp.Status.Message,
		Duration:   elapsed,
	}
	switch {
	case req.Render != nil:
		entry.TargetWindow = req.Render.TargetWindow
		entry.Content = req.Render.Content.String()
		entry.PayloadBytes = len(req.Render.Data)
	case req.Stop != nil:
		entry.TargetWindow = req.Stop.TargetWindow
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if err := d.journal.Record(recordCtx, entry); err != nil {
		d.logger.Warn("journal record failed", "error", err.Error())
	}
}

func requestAttributes(req wire.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("windowcaster.kind", req.Kind.String())}
	switch {
	case req.Render != nil:
		attrs = append(attrs,
			attribute.Int64("windowcaster.target_window", int64(req.Render.TargetWindow)),
			attribute.String("windowcaster.content", req.Render.Content.String()),
			attribute.Int("windowcaster.payload_bytes", len(req.Render.Data)),
		)
	case req.Stop != nil:
		attrs = append(attrs, attribute.Int64("windowcaster.target_window", int64(req.Stop.TargetWindow)))
	}
	return attrs
}

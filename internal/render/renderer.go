// Package render turns frame payloads into images and presents them to a sink
// on behalf of one target window at a time.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"sync"

	"github.com/rbright/windowcaster/internal/logging"
)

// ErrNotInitialized reports a paint or clear before Initialize.
var ErrNotInitialized = errors.New("renderer not initialized")

// Sink receives decoded frames for a target window.
type Sink interface {
	// Open prepares the sink for target. It is called once per target change.
	Open(ctx context.Context, target uint64) error
	Present(ctx context.Context, target uint64, img image.Image) error
}

// Snapshot is the renderer state reported by the admin status endpoint.
type Snapshot struct {
	Target      uint64 `json:"target"`
	Initialized bool   `json:"initialized"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Frames      uint64 `json:"frames"`
}

// Renderer paints frames for the most recently initialized target.
type Renderer struct {
	sink      Sink
	logger    *slog.Logger
	maxPixels int

	mu          sync.Mutex
	target      uint64
	initialized bool
	size        image.Point
	frames      uint64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxPixels bounds the dimensions of decoded frames.
func WithMaxPixels(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxPixels = n
		}
	}
}

// New constructs a renderer presenting to sink.
func New(sink Sink, logger *slog.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Renderer{sink: sink, logger: logger, maxPixels: DefaultMaxPixels}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize binds the renderer to target. Repeating the current target is a
// no-op; a new target drops the previous frame size.
func (r *Renderer) Initialize(ctx context.Context, target uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized && r.target == target {
		return nil
	}
	if err := r.sink.Open(ctx, target); err != nil {
		r.initialized = false
		return fmt.Errorf("open sink for 0x%x: %w", target, err)
	}
	r.target = target
	r.initialized = true
	r.size = image.Point{}
	r.logger.Info("renderer initialized", "target", fmt.Sprintf("0x%x", target))
	return nil
}

// PaintFrame decodes data and presents it to the current target.
func (r *Renderer) PaintFrame(ctx context.Context, data []byte, width, height uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	img, err := DecodeFrame(data, width, height, r.maxPixels)
	if err != nil {
		return err
	}
	if err := r.sink.Present(ctx, r.target, img); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	r.size = img.Bounds().Size()
	r.frames++
	return nil
}

// Clear presents a black frame at the last painted size. Without a painted
// frame there is nothing to clear.
func (r *Renderer) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}
	if r.size.X == 0 || r.size.Y == 0 {
		return nil
	}

	black := image.NewRGBA(image.Rectangle{Max: r.size})
	draw.Draw(black, black.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if err := r.sink.Present(ctx, r.target, black); err != nil {
		return fmt.Errorf("present clear frame: %w", err)
	}
	return nil
}

// Snapshot returns the current renderer state.
func (r *Renderer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Target:      r.target,
		Initialized: r.initialized,
		Width:       r.size.X,
		Height:      r.size.Y,
		Frames:      r.frames,
	}
}

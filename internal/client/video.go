package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rbright/windowcaster/internal/wire"
)

// Stream describes a raw RGB24 frame sequence.
type Stream struct {
	Target uint64
	Width  uint32
	Height uint32
	FPS    int
}

// FrameSize is the byte size of one packed RGB24 frame.
func (s Stream) FrameSize() int {
	return int(s.Width) * int(s.Height) * 3
}

// FrameResult reports the server status for one streamed frame.
type FrameResult struct {
	Index  int
	Status wire.Status
}

// StreamVideo reads whole frames from r and renders each as video content,
// waiting for every reply and pacing sends at s.FPS. A failed status does not
// stop the stream. A trailing partial frame is ignored. It returns the number
// of frames sent.
func (c *Client) StreamVideo(ctx context.Context, s Stream, r io.Reader, onFrame func(FrameResult)) (int, error) {
	size := s.FrameSize()
	if size <= 0 {
		return 0, fmt.Errorf("video stream needs non-zero width and height")
	}
	if s.FPS <= 0 {
		s.FPS = 30
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.FPS))
	defer ticker.Stop()

	sent := 0
	for {
		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return sent, nil
			}
			return sent, fmt.Errorf("read frame %d: %w", sent, err)
		}

		if sent > 0 {
			select {
			case <-ctx.Done():
				return sent, ctx.Err()
			case <-ticker.C:
			}
		}

		status, err := c.Render(ctx, wire.RenderCommand{
			TargetWindow: s.Target,
			Content:      wire.ContentVideo,
			Data:         buf,
			Width:        s.Width,
			Height:       s.Height,
		})
		if err != nil {
			return sent, fmt.Errorf("frame %d: %w", sent, err)
		}
		if onFrame != nil {
			onFrame(FrameResult{Index: sent, Status: status})
		}
		sent++
	}
}

package dispatch

import (
	"context"
	"fmt"

	"github.com/rbright/windowcaster/internal/wire"
)

func (d *Dispatcher) listWindows(ctx context.Context) wire.Response {
	windows, err := d.directory.Enumerate(ctx)
	if err != nil {
		d.logger.Warn("window enumeration failed", "error", err.Error())
		return wire.StatusResponse(false, MsgEnumerationFailed)
	}
	entries := make([]wire.WindowEntry, 0, len(windows))
	entries = append(entries, windows...)
	return wire.WindowListResponse(entries)
}

func (d *Dispatcher) render(ctx context.Context, cmd wire.RenderCommand) wire.Response {
	if resp, ok := d.prepare(ctx, cmd.TargetWindow); !ok {
		return resp
	}

	switch cmd.Content {
	case wire.ContentImage, wire.ContentVideo:
		if err := d.renderer.PaintFrame(ctx, cmd.Data, cmd.Width, cmd.Height); err != nil {
			d.logger.Warn("paint failed",
				"target", handleString(cmd.TargetWindow),
				"content", cmd.Content.String(),
				"error", err.Error(),
			)
			return wire.StatusResponse(false, MsgRenderFailed)
		}
		return wire.StatusResponse(true, "")
	default:
		return wire.StatusResponse(false, MsgUnknownContent)
	}
}

func (d *Dispatcher) stopRender(ctx context.Context, stop wire.StopRender) wire.Response {
	if resp, ok := d.prepare(ctx, stop.TargetWindow); !ok {
		return resp
	}
	if err := d.renderer.Clear(ctx); err != nil {
		d.logger.Warn("clear failed", "target", handleString(stop.TargetWindow), "error", err.Error())
		return wire.StatusResponse(false, MsgClearFailed)
	}
	return wire.StatusResponse(true, "")
}

// prepare validates target and initializes the renderer for it. An invalid
// target makes no renderer call.
func (d *Dispatcher) prepare(ctx context.Context, target uint64) (wire.Response, bool) {
	if !d.directory.IsValid(ctx, target) {
		return wire.StatusResponse(false, MsgInvalidWindow), false
	}
	if err := d.renderer.Initialize(ctx, target); err != nil {
		d.logger.Warn("renderer initialization failed", "target", handleString(target), "error", err.Error())
		return wire.StatusResponse(false, MsgRendererInitFailed), false
	}
	return wire.Response{}, true
}

func handleString(handle uint64) string {
	return fmt.Sprintf("0x%x", handle)
}

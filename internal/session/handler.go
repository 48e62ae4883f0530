package session

import (
	"context"

	"github.com/rbright/windowcaster/internal/wire"
)

// Handler turns one frame payload into an optional reply. ok=false means no
// reply is owed for the payload.
type Handler interface {
	Handle(ctx context.Context, payload []byte) (resp wire.Response, ok bool)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(context.Context, []byte) (wire.Response, bool)

func (f HandlerFunc) Handle(ctx context.Context, payload []byte) (wire.Response, bool) {
	return f(ctx, payload)
}

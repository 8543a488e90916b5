package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Detach returns a new background context that keeps the logger of ctx but
// not its cancellation. The scheduler hands detached contexts to in-flight
// download tasks so that cancelling the batch stops admission without
// aborting network calls that already started.
func Detach(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}

// Dispatch executes handler in a new goroutine with panic recovery. Panics
// and returned errors are logged via the context logger; they never
// propagate to the caller.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(ctx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(ctx); err != nil {
			ctxlog.From(ctx).Error("error in async handler", "error", err)
		}
	}()
}

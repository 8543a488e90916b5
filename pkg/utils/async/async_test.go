package async_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/bulkget/pkg/utils/async"
)

func TestDetach(t *testing.T) {
	t.Run("keeps the logger", func(t *testing.T) {
		logger := slog.Default()
		ctx := ctxlog.With(context.Background(), logger)

		detached := async.Detach(ctx)
		gt.NotNil(t, ctxlog.From(detached))
	})

	t.Run("drops cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		detached := async.Detach(ctx)

		cancel()

		select {
		case <-detached.Done():
			t.Error("detached context was cancelled")
		default:
		}
	})
}

func TestDispatch(t *testing.T) {
	t.Run("executes handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		wg.Wait()
		gt.True(t, executed)
	})

	t.Run("handles errors without crashing", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return errors.New("test error")
		})

		wg.Wait()
	})

	t.Run("recovers from panic", func(t *testing.T) {
		done := make(chan struct{}, 1)

		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer func() {
				done <- struct{}{}
			}()
			panic("test panic")
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler did not complete within timeout")
		}
	})
}

package events

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"thames/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBus_PublishAndConsume(t *testing.T) {
	bus := NewBus(discardLogger())
	defer bus.Close()

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, &service.DomainEvent{Name: "first"}))
	require.NoError(t, bus.Publish(ctx, &service.DomainEvent{Name: "second"}))

	assert.Equal(t, "first", (<-bus.Events()).Name)
	assert.Equal(t, "second", (<-bus.Events()).Name)
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus(discardLogger())
	defer bus.Close()

	ctx := context.Background()
	// Overfill the buffer; the overflow is dropped, not blocked on.
	for i := 0; i < defaultBufferSize+10; i++ {
		require.NoError(t, bus.Publish(ctx, &service.DomainEvent{Name: "flood"}))
	}

	received := 0
	for {
		select {
		case <-bus.Events():
			received++
		default:
			assert.Equal(t, defaultBufferSize, received)

			return
		}
	}
}

func TestBus_PublishAfterClose(t *testing.T) {
	bus := NewBus(discardLogger())
	require.NoError(t, bus.Close())

	// Dropped silently; side effects are best-effort.
	assert.NoError(t, bus.Publish(context.Background(), &service.DomainEvent{Name: "late"}))
}

func TestBus_ConcurrentPublishAndClose(t *testing.T) {
	// Publishers racing shutdown must never send on the closed channel.
	for i := 0; i < 100; i++ {
		bus := NewBus(discardLogger())
		ctx := context.Background()

		var wg sync.WaitGroup
		for p := 0; p < 4; p++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					assert.NoError(t, bus.Publish(ctx, &service.DomainEvent{Name: "racing"}))
				}
			}()
		}

		require.NoError(t, bus.Close())
		wg.Wait()
	}
}

func TestBus_CloseIsIdempotent(t *testing.T) {
	bus := NewBus(discardLogger())
	require.NoError(t, bus.Close())
	assert.NoError(t, bus.Close())

	// A closed bus yields a closed channel so the dispatcher loop terminates.
	_, open := <-bus.Events()
	assert.False(t, open)
}

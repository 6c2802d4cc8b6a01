// Package events provides the in-process event bus that decouples state
// changes from their side effects (mail, audit writes).
package events

import (
	"context"
	"log/slog"
	"sync"

	"thames/internal/domain/service"
)

const defaultBufferSize = 256

// Bus implements service.EventPublisher with a buffered channel.
// Publishing never blocks the caller: when the buffer is full the event is
// dropped with a warning, because side effects are best-effort by contract.
type Bus struct {
	ch     chan *service.DomainEvent
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBus creates an event bus with the default buffer size.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		ch:     make(chan *service.DomainEvent, defaultBufferSize),
		logger: logger,
	}
}

// Publish hands an event to the dispatcher without blocking. The read lock
// keeps the send from racing Close: the channel cannot be closed while any
// publisher holds it.
func (b *Bus) Publish(_ context.Context, event *service.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.logger.Warn("Event dropped: bus closed", slog.String("event", event.Name))

		return nil
	}

	select {
	case b.ch <- event:
	default:
		b.logger.Warn("Event dropped: bus full", slog.String("event", event.Name))
	}

	return nil
}

// Events exposes the consuming side of the bus to the dispatcher.
func (b *Bus) Events() <-chan *service.DomainEvent {
	return b.ch
}

// Close stops accepting events and lets the dispatcher drain the buffer.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.ch)
	}

	return nil
}

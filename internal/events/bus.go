package events

import (
	"sync"
	"time"
)

// Handler processes a single event. Handlers run synchronously on the
// emitting goroutine, preserving channel arrival order.
type Handler func(Event)

// Bus distributes events to subscribed handlers in subscription order.
// Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	now      func() time.Time
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscribe registers a handler for all subsequent events.
// There is no unsubscribe; the bus lives for the process lifetime.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Emit delivers an event to every subscribed handler, stamping the receipt
// timestamp if the producer has not already set one.
func (b *Bus) Emit(e Event) {
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = b.now()
	}

	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

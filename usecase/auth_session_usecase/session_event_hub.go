package auth_session_usecase

import (
	"sync"

	"safeqr/domain"
	"safeqr/utils/metrics"
)

// SessionEventHub fans session lifecycle events out to subscribers. A single
// dispatch goroutine owns the subscriber set, so publishers never block on a
// slow consumer: events to a full subscriber channel are dropped.
type SessionEventHub struct {
	events chan domain.SessionEvent

	mu          sync.Mutex
	subscribers map[int]chan domain.SessionEvent
	nextID      int
	closed      bool
}

// NewSessionEventHub creates a hub and starts its dispatch goroutine
func NewSessionEventHub() *SessionEventHub {
	hub := &SessionEventHub{
		events:      make(chan domain.SessionEvent, 16),
		subscribers: make(map[int]chan domain.SessionEvent),
	}
	go hub.dispatch()
	return hub
}

// Subscribe registers a listener. The returned function unsubscribes;
// callers must invoke it when done or the subscriber channel leaks.
func (h *SessionEventHub) Subscribe() (<-chan domain.SessionEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan domain.SessionEvent, 4)
	h.subscribers[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish enqueues an event for delivery. Publishing never blocks the
// session flow; if the hub's queue is full the event is dropped.
func (h *SessionEventHub) Publish(event domain.SessionEvent) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return
	}

	metrics.RecordAuthEvent(string(event.Kind))
	select {
	case h.events <- event:
	default:
	}
}

// Close stops dispatch and closes all subscriber channels
func (h *SessionEventHub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()
	close(h.events)
}

func (h *SessionEventHub) dispatch() {
	for event := range h.events {
		h.mu.Lock()
		for _, sub := range h.subscribers {
			select {
			case sub <- event:
			default:
			}
		}
		h.mu.Unlock()
	}

	h.mu.Lock()
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub)
	}
	h.mu.Unlock()
}

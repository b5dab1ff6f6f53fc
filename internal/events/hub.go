// Package events implements the change-notification hub. Mutations
// publish events into the hub; connected subscribers receive them over
// their own buffered queues. Delivery is fire-and-forget: there is no
// persistence, no replay, and no acknowledgment, and Publish never
// blocks or fails the caller.
package events

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Envelope is the wire frame delivered to subscribers.
// Data is marshaled once at publish time so later mutation of the
// payload cannot race with slow subscribers.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Hub fans out published events to all current subscribers.
// A Hub is constructed explicitly and injected where needed; there is
// no package-level instance.
type Hub struct {
	log     *slog.Logger
	bufSize int

	mu   sync.Mutex
	subs map[chan Envelope]struct{}
}

// NewHub creates a hub whose subscribers each get a queue of bufSize
// pending events.
func NewHub(logger *slog.Logger, bufSize int) *Hub {
	if bufSize <= 0 {
		bufSize = 16
	}
	return &Hub{
		log:     logger.With("component", "events"),
		bufSize: bufSize,
		subs:    make(map[chan Envelope]struct{}),
	}
}

// Subscribe registers a new subscriber and returns its event channel
// plus a cancel function. Cancel closes the channel and must be called
// exactly once when the subscriber disconnects.
func (h *Hub) Subscribe() (<-chan Envelope, func()) {
	ch := make(chan Envelope, h.bufSize)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish broadcasts an event to all current subscribers. Subscribers
// whose queue is full miss the event. Marshal failures are logged and
// swallowed; the caller's mutation already succeeded and must not be
// failed by notification problems.
func (h *Hub) Publish(event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.log.Warn("drop event: marshal payload", slog.String("event", event), slog.String("error", err.Error()))
		return
	}

	env := Envelope{Event: event, Data: raw}

	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- env:
		default:
			// Queue full: this subscriber misses the event.
		}
	}
	h.mu.Unlock()
}

// SubscriberCount returns the number of currently connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

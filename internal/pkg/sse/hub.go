package sse

import (
	"sync"
)

// Event is one server-sent event on a job's progress stream.
type Event struct {
	Job   string
	Event string
	Data  interface{}
}

// Hub fans progress events out to SSE subscribers, keyed by job token. The
// publisher (the ingest pipeline) and the subscriber (the browser) race: the
// hub replays the job's last event on subscribe so a client that connects
// after ingestion started still sees the current state.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	last        map[string]Event
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		last:        make(map[string]Event),
	}
}

// Subscribe registers a subscriber for a job and returns the event channel
// and a cleanup function. The caller must call cleanup when done.
func (h *Hub) Subscribe(job string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16)

	if h.subscribers[job] == nil {
		h.subscribers[job] = make(map[chan Event]struct{})
	}
	h.subscribers[job][ch] = struct{}{}

	if last, ok := h.last[job]; ok {
		ch <- last
	}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[job], ch)
		close(ch)
		if len(h.subscribers[job]) == 0 {
			delete(h.subscribers, job)
		}
	}

	return ch, cleanup
}

// Publish sends an event to every subscriber of a job. A subscriber that
// cannot keep up misses the event; the next one supersedes it anyway.
func (h *Hub) Publish(job string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last[job] = event
	for ch := range h.subscribers[job] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Forget drops the retained last event for a finished job.
func (h *Hub) Forget(job string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.last, job)
}

// SubscriberCount returns the number of active subscribers for a job.
func (h *Hub) SubscriberCount(job string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[job])
}

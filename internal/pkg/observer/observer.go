package observer

import "sync"

// Listener receives store notifications. The payload is whatever the
// publishing store emits, typically a domain event.
type Listener func(event any)

// Registry is a synchronous publish-subscribe fan-out. Listeners run on
// the publisher's goroutine, in subscription order. A slow listener
// blocks publication, so listeners must be cheap.
type Registry struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Unsubscribing twice is harmless.
func (r *Registry) Subscribe(l Listener) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = l
	r.order = append(r.order, id)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
		for i, existing := range r.order {
			if existing == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
}

// Notify delivers the event to every subscribed listener, oldest
// subscription first. Listeners removed mid-delivery are skipped.
func (r *Registry) Notify(event any) {
	r.mu.Lock()
	snapshot := make([]Listener, 0, len(r.listeners))
	for _, id := range r.order {
		if l, ok := r.listeners[id]; ok {
			snapshot = append(snapshot, l)
		}
	}
	r.mu.Unlock()

	for _, l := range snapshot {
		l(event)
	}
}

// Len returns the number of active listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

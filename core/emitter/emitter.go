package emitter

import "sync"

// Listener is a callback invoked when an event fires
type Listener func(data any)

// Emitter is a simple synchronous in-process event bus
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// New creates a new Emitter
func New() *Emitter {
	return &Emitter{
		listeners: make(map[string][]Listener),
	}
}

// On registers a listener for the given event name
func (e *Emitter) On(event string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit invokes every listener registered for the event
func (e *Emitter) Emit(event string, data any) {
	e.mu.RLock()
	listeners := make([]Listener, len(e.listeners[event]))
	copy(listeners, e.listeners[event])
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Off removes all listeners for the given event name
func (e *Emitter) Off(event string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, event)
}

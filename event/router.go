package event

// Handler processes specific event types
// Presentation systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch from the game loop
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Unregister removes a handler from all its declared event types
// Registration and removal are symmetric so a consumer cannot leak
// subscriptions past its lifetime
func (r *Router) Unregister(handler Handler) {
	for _, t := range handler.EventTypes() {
		list := r.handlers[t]
		for i, h := range list {
			if h == handler {
				r.handlers[t] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// DispatchAll consumes all pending events and routes them to handlers
// Events are processed in FIFO order
func (r *Router) DispatchAll() {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

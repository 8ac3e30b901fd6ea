package events

// Handler reacts to the event types it declares
// HandleEvent runs on the dispatching goroutine, between ticks
type Handler[T any] interface {
	HandleEvent(ctx T, event GameEvent)
	EventTypes() []EventType
}

// HandlerFunc pairs a callback with the types it wants
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }

func (h HandlerFunc[T]) EventTypes() []EventType { return h.Types }

// Router fans queued events out to handlers, in queue order then registration order
// Not safe for concurrent Register and DispatchAll
type Router[T any] struct {
	queue     *EventQueue
	byType    [eventTypeCount][]Handler[T]
	delivered [eventTypeCount]uint64
}

func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes handler; out-of-range types are ignored
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		if t > EventNone && t < eventTypeCount {
			r.byType[t] = append(r.byType[t], handler)
		}
	}
}

// DispatchAll drains the queue and returns how many events were consumed
// Events nobody subscribed to are still consumed
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		if ev.Type <= EventNone || ev.Type >= eventTypeCount {
			continue
		}
		for _, h := range r.byType[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
		r.delivered[ev.Type]++
	}
	return len(pending)
}

func (r *Router[T]) HandlerCount(t EventType) int {
	if t <= EventNone || t >= eventTypeCount {
		return 0
	}
	return len(r.byType[t])
}

// Delivered returns how many events of type t have been dispatched
func (r *Router[T]) Delivered(t EventType) uint64 {
	if t <= EventNone || t >= eventTypeCount {
		return 0
	}
	return r.delivered[t]
}

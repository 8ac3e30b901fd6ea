package events

import (
	"sync"

	"github.com/lixenwraith/tabletennis/constant"
)

// EventQueue is a bounded FIFO of game events
// Producers may run on any goroutine; the game loop is the only consumer
// When full the oldest unread event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [constant.EventQueueSize]GameEvent
	start   int // index of the oldest pending event
	n       int // pending count
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends event, overwriting the oldest pending one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	idx := (eq.start + eq.n) & constant.EventBufferMask
	eq.ring[idx] = event
	if eq.n == constant.EventQueueSize {
		eq.start = (eq.start + 1) & constant.EventBufferMask
		eq.dropped++
	} else {
		eq.n++
	}
	eq.mu.Unlock()
}

// Consume drains pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	if eq.n == 0 {
		return nil
	}
	out := make([]GameEvent, eq.n)
	for i := range out {
		idx := (eq.start + i) & constant.EventBufferMask
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{}
	}
	eq.start, eq.n = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.n
}

// Dropped returns how many unread events were overwritten
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}

package engine

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback, zero is never issued
type TimerID uint64

// scheduledEvent is a deferred mutation keyed by due time on the sim clock
type scheduledEvent struct {
	id  TimerID
	at  time.Duration
	seq uint64 // FIFO among equal due times
	fn  func()

	index int
}

type eventHeap []*scheduledEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].at == h[j].at {
		return h[i].seq < h[j].seq
	}
	return h[i].at < h[j].at
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *eventHeap) Push(x any) {
	ev := x.(*scheduledEvent)
	ev.index = len(*h)
	*h = append(*h, ev)
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	ev.index = -1
	*h = old[:n-1]
	return ev
}

// Scheduler runs deferred callbacks against an engine-owned clock
// Single-threaded: Schedule, Cancel and Advance are called from the tick path only
type Scheduler struct {
	clock  *SimClock
	queue  eventHeap
	byID   map[TimerID]*scheduledEvent
	nextID TimerID
	seq    uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock *SimClock) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[TimerID]*scheduledEvent),
	}
}

// Clock returns the driving clock
func (s *Scheduler) Clock() *SimClock {
	return s.clock
}

// Schedule registers fn to run once the clock reaches at
func (s *Scheduler) Schedule(at time.Duration, fn func()) TimerID {
	s.nextID++
	s.seq++
	ev := &scheduledEvent{id: s.nextID, at: at, seq: s.seq, fn: fn}
	heap.Push(&s.queue, ev)
	s.byID[ev.id] = ev
	return ev.id
}

// After registers fn to run d after the current clock time
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.Schedule(s.clock.Now()+d, fn)
}

// Cancel removes a pending callback
// Unknown, fired and already-cancelled ids return false and change nothing
func (s *Scheduler) Cancel(id TimerID) bool {
	ev, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	heap.Remove(&s.queue, ev.index)
	return true
}

// CancelAll drops every pending callback
func (s *Scheduler) CancelAll() int {
	n := len(s.queue)
	s.queue = s.queue[:0]
	clear(s.byID)
	return n
}

// Pending returns the number of scheduled callbacks
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// IsPending reports whether id is still scheduled
func (s *Scheduler) IsPending(id TimerID) bool {
	_, ok := s.byID[id]
	return ok
}

// DueAt returns the due time of a pending callback
func (s *Scheduler) DueAt(id TimerID) (time.Duration, bool) {
	ev, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	return ev.at, true
}

// Advance runs every callback due at or before now in due order and returns the count run
// Callbacks scheduled by a running callback that are already due run in the same pass
func (s *Scheduler) Advance(now time.Duration) int {
	ran := 0
	for len(s.queue) > 0 && s.queue[0].at <= now {
		ev := heap.Pop(&s.queue).(*scheduledEvent)
		delete(s.byID, ev.id)
		ev.fn()
		ran++
	}
	return ran
}

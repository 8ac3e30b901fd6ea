package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/tabletennis/constant"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventPaddleHit, Frame: 1})
	q.Push(GameEvent{Type: EventScoreChanged, Frame: 2})

	if q.Len() != 2 {
		t.Errorf("Expected 2 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventPaddleHit || got[1].Type != EventScoreChanged {
		t.Errorf("Expected FIFO order, got %+v", got)
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constant.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventPaddleHit, Frame: uint64(i)})
	}

	got := q.Consume()
	if len(got) != constant.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constant.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", got[0].Frame)
	}
	if q.Dropped() == 0 {
		t.Error("Expected dropped counter to advance")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(GameEvent{Type: EventPowerUpSpawned})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 200 {
		t.Errorf("Expected 200 events, got %d", got)
	}
}

type recorder struct {
	seen []EventType
}

func (r *recorder) HandleEvent(_ *int, ev GameEvent) { r.seen = append(r.seen, ev.Type) }
func (r *recorder) EventTypes() []EventType          { return []EventType{EventGameOver, EventPaddleHit} }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	router := NewRouter[*int](q)
	rec := &recorder{}
	router.Register(rec)

	counted := 0
	router.Register(HandlerFunc[*int]{
		Types: []EventType{EventPaddleHit},
		Fn:    func(ctx *int, _ GameEvent) { *ctx++; counted++ },
	})

	q.Push(GameEvent{Type: EventPaddleHit})
	q.Push(GameEvent{Type: EventScoreChanged})
	q.Push(GameEvent{Type: EventGameOver})

	ctx := 0
	if n := router.DispatchAll(&ctx); n != 3 {
		t.Errorf("Expected 3 consumed, got %d", n)
	}
	if len(rec.seen) != 2 || rec.seen[0] != EventPaddleHit || rec.seen[1] != EventGameOver {
		t.Errorf("Unexpected recorder events %v", rec.seen)
	}
	if ctx != 1 || counted != 1 {
		t.Errorf("Expected func handler once, got %d", counted)
	}
	if router.HandlerCount(EventPaddleHit) != 2 {
		t.Errorf("Expected 2 handlers, got %d", router.HandlerCount(EventPaddleHit))
	}
}

func TestEventTypeNames(t *testing.T) {
	for i := EventNone; i < eventTypeCount; i++ {
		got, ok := ParseEventType(i.String())
		if !ok || got != i {
			t.Errorf("Expected %s to round trip", i)
		}
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected Unknown for out of range type")
	}
}

func TestRouterIgnoresOutOfRangeTypes(t *testing.T) {
	q := NewEventQueue()
	router := NewRouter[*int](q)
	router.Register(HandlerFunc[*int]{
		Types: []EventType{EventNone, EventType(999)},
		Fn:    func(*int, GameEvent) { t.Error("Expected no delivery") },
	})
	q.Push(GameEvent{Type: EventType(999)})
	q.Push(GameEvent{Type: EventPaddleHit})

	ctx := 0
	if n := router.DispatchAll(&ctx); n != 2 {
		t.Errorf("Expected 2 consumed, got %d", n)
	}
	if router.HandlerCount(EventType(999)) != 0 {
		t.Error("Expected no handlers for out of range type")
	}
	if router.Delivered(EventPaddleHit) != 1 {
		t.Errorf("Expected 1 paddle hit delivered, got %d", router.Delivered(EventPaddleHit))
	}
}

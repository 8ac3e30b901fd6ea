package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed, got %v", got)
	}

	pc.Pause()
	mock.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected elapsed frozen at 2s, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s paused, got %v", got)
	}

	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed, got %v", got)
	}
	if pc.IsPaused() {
		t.Error("Expected clock running")
	}
}

func TestPausableClockIdempotentToggles(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(mock)

	pc.Resume()
	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	if got := pc.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s paused, got %v", got)
	}
}

package engine

import (
	"sync"
	"time"
)

// PausableClock is host-side game time: real time minus time spent paused
// Frame deltas measured against it are zero across a pause
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time

	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock on the given provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns game time since creation, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime
	}
	return pc.provider.Now().Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

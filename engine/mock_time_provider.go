package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-cranked clock for tests and replays
// Time only moves through Advance; safe for concurrent use
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds since base
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: startTime}
}

// Now implements TimeProvider
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// Advance moves time forward by d; negative values are ignored to keep time monotonic
func (m *MockTimeProvider) Advance(d time.Duration) {
	if d > 0 {
		m.offset.Add(int64(d))
	}
}

// Since returns the total time advanced
func (m *MockTimeProvider) Since() time.Duration {
	return time.Duration(m.offset.Load())
}

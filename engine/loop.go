package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Stepper advances the game by one frame of dt
type Stepper interface {
	Step(dt time.Duration)
}

// StepperFunc adapts a function to Stepper
type StepperFunc func(dt time.Duration)

// Step implements Stepper
func (f StepperFunc) Step(dt time.Duration) { f(dt) }

// Loop drives a Stepper at a fixed frame interval
// Frame deltas come from a PausableClock so a paused host produces zero-length frames
type Loop struct {
	clock    *PausableClock
	interval time.Duration
	stepper  Stepper

	lastElapsed time.Duration
	frames      atomic.Uint64
	recovered   atomic.Uint64

	// onPanic receives recovered step panics, the loop keeps running
	onPanic func(any)
}

// NewLoop creates a loop, interval <= 0 falls back to 60 frames per second
func NewLoop(clock *PausableClock, interval time.Duration, stepper Stepper) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		clock:       clock,
		interval:    interval,
		stepper:     stepper,
		lastElapsed: clock.Elapsed(),
	}
}

// SetPanicHandler installs the callback for recovered step panics
func (l *Loop) SetPanicHandler(fn func(any)) {
	l.onPanic = fn
}

// Frame measures the delta since the previous frame and runs one step
func (l *Loop) Frame() time.Duration {
	elapsed := l.clock.Elapsed()
	dt := elapsed - l.lastElapsed
	l.lastElapsed = elapsed
	if dt < 0 {
		dt = 0
	}

	l.safeStep(dt)
	l.frames.Add(1)
	return dt
}

func (l *Loop) safeStep(dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			l.recovered.Add(1)
			if l.onPanic != nil {
				l.onPanic(r)
			}
		}
	}()
	l.stepper.Step(dt)
}

// Run blocks, running one frame per interval until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Frame()
		}
	}
}

// Frames returns the number of frames run
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Recovered returns the number of step panics swallowed
func (l *Loop) Recovered() uint64 {
	return l.recovered.Load()
}

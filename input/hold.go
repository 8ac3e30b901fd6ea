package input

import "time"

// HoldTracker turns key press events into held-key state
// Terminals report presses and auto-repeat but no releases, so a key counts as held
// until holdWindow passes without a repeat
type HoldTracker struct {
	holdWindow time.Duration
	lastPress  [intentCount]time.Time
}

// DefaultHoldWindow outlasts typical terminal auto-repeat gaps
const DefaultHoldWindow = 150 * time.Millisecond

// NewHoldTracker creates a tracker, window <= 0 uses DefaultHoldWindow
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{holdWindow: window}
}

// Press records a movement press at now, non-movement intents are ignored
func (h *HoldTracker) Press(i Intent, now time.Time) {
	if !i.IsMovement() {
		return
	}
	h.lastPress[i] = now
	// Opposite directions cancel immediately
	switch i {
	case IntentMoveLeft:
		h.lastPress[IntentMoveRight] = time.Time{}
	case IntentMoveRight:
		h.lastPress[IntentMoveLeft] = time.Time{}
	case IntentMoveForward:
		h.lastPress[IntentMoveBack] = time.Time{}
	case IntentMoveBack:
		h.lastPress[IntentMoveForward] = time.Time{}
	}
}

// Held returns the movement intents still held at now
func (h *HoldTracker) Held(now time.Time) Intents {
	var s Intents
	for i := IntentMoveLeft; i <= IntentMoveBack; i++ {
		t := h.lastPress[i]
		if !t.IsZero() && now.Sub(t) <= h.holdWindow {
			s.Set(i)
		}
	}
	return s
}

// Reset releases every key
func (h *HoldTracker) Reset() {
	h.lastPress = [intentCount]time.Time{}
}

package input

// Intent is a semantic action decoupled from the device that produced it
type Intent uint8

const (
	IntentNone Intent = iota

	// Paddle movement, held-key semantics: re-issued every tick while held
	IntentMoveLeft
	IntentMoveRight
	IntentMoveForward // toward the net
	IntentMoveBack    // away from the net

	// Host-level intents, consumed once per press
	IntentStart
	IntentPause
	IntentMute
	IntentQuit

	intentCount
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentMoveLeft:    "moveLeft",
	IntentMoveRight:   "moveRight",
	IntentMoveForward: "moveForward",
	IntentMoveBack:    "moveBack",
	IntentStart:       "start",
	IntentPause:       "pause",
	IntentMute:        "mute",
	IntentQuit:        "quit",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// Valid reports whether i is a known non-empty intent
func (i Intent) Valid() bool {
	return i > IntentNone && i < intentCount
}

// IsMovement reports whether i is one of the four paddle moves
func (i Intent) IsMovement() bool {
	return i >= IntentMoveLeft && i <= IntentMoveBack
}

// ParseIntent maps a name to its intent, unknown names return ok=false
func ParseIntent(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name && Intent(i) != IntentNone {
			return Intent(i), true
		}
	}
	return IntentNone, false
}

// Intents is the set of intents active during one tick
type Intents uint16

// Set marks i active, invalid intents are ignored
func (s *Intents) Set(i Intent) {
	if !i.Valid() {
		return
	}
	*s |= 1 << i
}

// Clear marks i inactive
func (s *Intents) Clear(i Intent) {
	if !i.Valid() {
		return
	}
	*s &^= 1 << i
}

// Has reports whether i is active
func (s Intents) Has(i Intent) bool {
	if !i.Valid() {
		return false
	}
	return s&(1<<i) != 0
}

// Of builds a set from a list of intents
func Of(list ...Intent) Intents {
	var s Intents
	for _, i := range list {
		s.Set(i)
	}
	return s
}

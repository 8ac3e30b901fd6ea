package input

// PointerDelta is pointer or touch drag movement since the previous tick, in pixels
// DY is screen-down, which maps to away from the net
type PointerDelta struct {
	DX float64
	DY float64
}

// IsZero reports whether there was no drag this tick
func (d PointerDelta) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// State is the input consumed by one simulation tick
type State struct {
	Intents Intents
	Drag    PointerDelta
}

package constant

import "time"

// Paddle movement
const (
	// PaddleMoveSpeed is the distance moved per reference frame while a move intent is held
	PaddleMoveSpeed = 0.1

	// PointerDragGain converts pointer pixels to world units
	PointerDragGain = 0.01

	// ComputerTrackingGain is the proportional gain of the opponent's x tracker
	ComputerTrackingGain = 0.1
)

// Paddle boundaries
const (
	// PaddleBoundaryZMin keeps the player paddle away from the net
	PaddleBoundaryZMin = 2.0
	// PaddleBoundaryZMax lets the player paddle move slightly beyond the table edge
	PaddleBoundaryZMax = TableBoundary + 1

	ComputerPaddleBoundaryZMin = -TableBoundary - 1
	ComputerPaddleBoundaryZMax = -4.0

	PlayerPaddleStartZ   = TableBoundary
	ComputerPaddleStartZ = -TableBoundary
)

// Match
const (
	// WinScore ends the match when either side reaches it, no deuce rule
	WinScore = 11

	PointValue       = 1
	DoublePointValue = 2
)

// Host loop
const (
	DefaultTickRate = 60

	// FrameUpdateInterval is the host render cadence
	FrameUpdateInterval = time.Second / DefaultTickRate
)

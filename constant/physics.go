package constant

import (
	"time"

	"github.com/lixenwraith/tabletennis/vmath"
)

// Ball
var (
	// BallInitialVelocity is the serve velocity with an upward angle
	// The serve starts inside the net band, so the first net check flips z toward the computer
	BallInitialVelocity = vmath.V3(1, 6.0, 3.0)

	// BallStartPosition is the center of the table, just above the surface
	BallStartPosition = vmath.V3(0, 0.4, 0)

	// Gravity is applied to the ball every tick
	Gravity = vmath.V3(0, -9.8, 0)
)

const (
	BallRadius = 0.2

	// MaxBallSpeed caps the ball velocity magnitude after every integration step
	MaxBallSpeed = 15.0

	// MaxBallHeight caps the ball altitude; hitting it forces the ball downward
	MaxBallHeight = 4.0

	// MinBounceVelocity is the minimum upward speed after a table bounce
	MinBounceVelocity = 1.5

	// MaxHeightVelocity caps vertical velocity after a paddle hit
	MaxHeightVelocity = 5.0
)

// Table geometry
const (
	WallBoundary  = 2.5
	TableBoundary = 5.0
	TableHeight   = 0.2

	NetHeight    = 0.5
	NetHalfDepth = 0.1
)

// Paddle hit response
const (
	VelocityIncrementMin = 1.1
	VelocityIncrementMax = 1.3
	HeightIncrementMin   = 1.0
	HeightIncrementMax   = 1.5

	// AngleAdjustmentFactor scales lateral deflection by hit offset
	AngleAdjustmentFactor = 2.0

	// SpinEffectFactor scales lateral paddle motion into ball spin
	SpinEffectFactor = 0.5

	// Hit box half extents around the paddle center (x is multiplied by width scale)
	PaddleHitDepth  = 0.3
	PaddleHitHeight = 0.1

	// PaddleBaseWidth is the blade width before the extend modifier
	PaddleBaseWidth = 1.0

	// PaddleBounceDelay suppresses repeat hits during a single contact
	PaddleBounceDelay = 500 * time.Millisecond
)

// Integration limits
const (
	// MaxStep bounds a single integration step to keep the ball from tunneling
	MaxStep = 100 * time.Millisecond

	// ReferenceFrame is the frame length that per-tick tuning values are expressed in
	ReferenceFrame = time.Second / 60
)

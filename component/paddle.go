package component

import (
	"time"

	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/vmath"
)

// Side identifies which end of the table an entity belongs to
type Side uint8

const (
	SidePlayer Side = iota
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideComputer
	}
	return SidePlayer
}

// Bounds is the z range a paddle may occupy
type Bounds struct {
	ZMin float64
	ZMax float64
}

// Paddle is one blade; player and computer share the shape
type Paddle struct {
	Side     Side
	Position vmath.Vec3
	// LastPosition is the previous tick's position, used for spin
	LastPosition vmath.Vec3

	// WidthScale is multiplied by the extend power-up
	WidthScale float64
	// Speed is the movement multiplier, multiplied by the speed power-up
	Speed float64

	Boundary Bounds

	// LastBounceTime is the sim time of the last registered hit, valid when HasBounced
	LastBounceTime time.Duration
	HasBounced     bool
}

// NewPaddle returns a paddle at its side's start position with neutral modifiers
func NewPaddle(side Side) *Paddle {
	p := &Paddle{Side: side}
	switch side {
	case SideComputer:
		p.Boundary = Bounds{ZMin: constant.ComputerPaddleBoundaryZMin, ZMax: constant.ComputerPaddleBoundaryZMax}
	default:
		p.Boundary = Bounds{ZMin: constant.PaddleBoundaryZMin, ZMax: constant.PaddleBoundaryZMax}
	}
	p.Reset()
	return p
}

// Reset restores start position and clears modifiers and bounce history
func (p *Paddle) Reset() {
	z := constant.PlayerPaddleStartZ
	if p.Side == SideComputer {
		z = constant.ComputerPaddleStartZ
	}
	p.Position = vmath.V3(0, constant.BallStartPosition.Y(), z)
	p.LastPosition = p.Position
	p.WidthScale = 1
	p.Speed = 1
	p.LastBounceTime = 0
	p.HasBounced = false
}

// Width returns the current blade width
func (p *Paddle) Width() float64 {
	return constant.PaddleBaseWidth * p.WidthScale
}

// HalfWidth returns half the current blade width, the x extent of the hit box
func (p *Paddle) HalfWidth() float64 {
	return p.Width() / 2
}

// Clamp keeps the paddle inside the side walls and its own z range
func (p *Paddle) Clamp() {
	x := vmath.Clamp(p.Position.X(), -constant.WallBoundary, constant.WallBoundary)
	z := vmath.Clamp(p.Position.Z(), p.Boundary.ZMin, p.Boundary.ZMax)
	p.Position = vmath.V3(x, p.Position.Y(), z)
}

// Direction returns the z sign pointing at the opponent
func (p *Paddle) Direction() float64 {
	if p.Side == SidePlayer {
		return -1
	}
	return 1
}

package component

import (
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/vmath"
)

// Ball is the single physics body of a match
type Ball struct {
	Position vmath.Vec3
	Velocity vmath.Vec3

	// Scale is the render/collision scale, 0.5 while a shrink zone is active
	Scale float64

	// Radius is constant collision geometry, independent of Scale
	Radius float64
}

// NewBall returns a ball at the serve position
func NewBall() *Ball {
	b := &Ball{
		Scale:  1,
		Radius: constant.BallRadius,
	}
	b.Reset()
	return b
}

// Reset recenters the ball with the initial serve velocity, scale is left untouched
func (b *Ball) Reset() {
	b.Position = constant.BallStartPosition
	b.Velocity = constant.BallInitialVelocity
}

// Speed returns the velocity magnitude
func (b *Ball) Speed() float64 {
	return b.Velocity.Len()
}

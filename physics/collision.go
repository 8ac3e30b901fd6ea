package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/vmath"
)

// netEjectMargin places a reflected ball just outside the net band
const netEjectMargin = 0.01

// CheckWallCollision reflects velocity.x at the side walls, no energy loss
// The ball is pulled back to the wall plane so a slow ball cannot re-trigger while outside
func CheckWallCollision(ball *component.Ball) bool {
	x := ball.Position.X()
	if math.Abs(x) < constant.WallBoundary {
		return false
	}
	ball.Velocity[0] = -ball.Velocity[0]
	ball.Position[0] = vmath.Sign(x) * constant.WallBoundary
	return true
}

// CheckNetCollision reflects velocity.z when the ball is inside the net band below net height
// Balls above NetHeight pass over
func CheckNetCollision(ball *component.Ball) bool {
	z := ball.Position.Z()
	if z < -constant.NetHalfDepth || z > constant.NetHalfDepth {
		return false
	}
	if ball.Position.Y() > constant.NetHeight {
		return false
	}
	ball.Velocity[2] = -ball.Velocity[2]
	// Eject toward the side the ball is now heading so the next tick does not reflect it back
	ball.Position[2] = vmath.Sign(ball.Velocity[2]) * (constant.NetHalfDepth + netEjectMargin)
	return true
}

// Hit describes a registered paddle contact
type Hit struct {
	Side      component.Side
	HitOffset float64
	Speed     float64
}

// InPaddleBox reports whether the ball center lies inside the paddle's hit box
func InPaddleBox(ball *component.Ball, paddle *component.Paddle) bool {
	d := ball.Position.Sub(paddle.Position)
	return math.Abs(d.Z()) <= constant.PaddleHitDepth &&
		math.Abs(d.X()) <= paddle.HalfWidth() &&
		math.Abs(d.Y()) <= constant.PaddleHitHeight
}

// CheckPaddleCollision applies the hit response when the ball is in the paddle's box
// now is sim time; hits within PaddleBounceDelay of the previous one are suppressed
func CheckPaddleCollision(ball *component.Ball, paddle *component.Paddle, now time.Duration, rng Rand) (Hit, bool) {
	if !InPaddleBox(ball, paddle) {
		return Hit{}, false
	}
	if paddle.HasBounced && now-paddle.LastBounceTime < constant.PaddleBounceDelay {
		return Hit{}, false
	}
	paddle.LastBounceTime = now
	paddle.HasBounced = true

	offset := 0.0
	if half := paddle.HalfWidth(); half > 0 {
		offset = (ball.Position.X() - paddle.Position.X()) / half
	}

	v := ball.Velocity
	v[0] += offset * constant.AngleAdjustmentFactor

	velocityIncrement := Uniform(rng, constant.VelocityIncrementMin, constant.VelocityIncrementMax)
	v[2] = paddle.Direction() * math.Abs(v[2]) * velocityIncrement

	heightIncrement := Uniform(rng, constant.HeightIncrementMin, constant.HeightIncrementMax)
	v[1] = math.Min(math.Abs(v[1])*heightIncrement, constant.MaxHeightVelocity)

	if paddle.Side == component.SidePlayer {
		v[0] += (paddle.Position.X() - paddle.LastPosition.X()) * constant.SpinEffectFactor
	}

	ball.Velocity = vmath.Sanitize(v)
	return Hit{Side: paddle.Side, HitOffset: offset, Speed: ball.Speed()}, true
}

// CheckShieldCollision returns a ball heading past the shield plane back toward the opponent
func CheckShieldCollision(ball *component.Ball, shield *component.Shield) bool {
	if shield == nil || !shield.Active {
		return false
	}
	if ball.Position.Z() < shield.Z || ball.Velocity.Z() <= 0 {
		return false
	}
	ball.Velocity[2] = -ball.Velocity[2]
	ball.Position[2] = shield.Z
	return true
}

package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/vmath"
)

// Integrate advances the ball by dt under gravity
// Post-conditions:
//   - |velocity| <= MaxBallSpeed
//   - position.y <= MaxBallHeight
//   - a ball at table height has velocity.y >= MinBounceVelocity
//
// Returns true if non-finite state had to be repaired first
func Integrate(ball *component.Ball, dt time.Duration) bool {
	repaired := Sanitize(ball)
	step := ClampStep(dt).Seconds()

	v := ball.Velocity.Add(constant.Gravity.Mul(step))
	ball.Position = ball.Position.Add(v.Mul(step))
	ball.Velocity = v

	EnforceInvariants(ball)
	return repaired
}

// EnforceInvariants re-establishes the Integrate post-conditions in place
// Called again after mid-tick effects that scale or reflect the ball
func EnforceInvariants(ball *component.Ball) {
	p := ball.Position
	v := vmath.ClampLength(ball.Velocity, constant.MaxBallSpeed)

	if p.Y() > constant.MaxBallHeight {
		p[1] = constant.MaxBallHeight
		v[1] = -math.Abs(v[1])
	}

	// Table bounce: never tunnel, always rebound with minimum energy
	if p.Y() <= constant.TableHeight && v.Y() < constant.MinBounceVelocity {
		v[1] = math.Max(math.Abs(v[1]), constant.MinBounceVelocity)
		p[1] = constant.TableHeight
	}

	ball.Position = p
	ball.Velocity = limitHorizontal(v, constant.MaxBallSpeed)
}

// limitHorizontal rescales x/z so |v| <= max while keeping v.y
// Only reachable when the minimum rebound lifted v.y on a ball already at the speed cap
func limitHorizontal(v vmath.Vec3, max float64) vmath.Vec3 {
	if v.Len() <= max {
		return v
	}
	h := math.Hypot(v[0], v[2])
	allowed := math.Sqrt(math.Max(max*max-v[1]*v[1], 0))
	if h == 0 {
		return v
	}
	k := allowed / h
	return vmath.V3(v[0]*k, v[1], v[2]*k)
}

// ClampStep bounds dt to [0, MaxStep], non-positive deltas integrate nothing
func ClampStep(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > constant.MaxStep {
		return constant.MaxStep
	}
	return dt
}

// Sanitize repairs non-finite ball state in place
// A lost position recenters the ball, non-finite velocity components become zero
func Sanitize(ball *component.Ball) bool {
	repaired := false
	if !vmath.IsFinite(ball.Position) {
		ball.Reset()
		repaired = true
	}
	if !vmath.IsFinite(ball.Velocity) {
		ball.Velocity = vmath.Sanitize(ball.Velocity)
		repaired = true
	}
	if math.IsNaN(ball.Scale) || math.IsInf(ball.Scale, 0) || ball.Scale <= 0 {
		ball.Scale = 1
		repaired = true
	}
	return repaired
}

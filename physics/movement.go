package physics

import (
	"time"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/input"
	"github.com/lixenwraith/tabletennis/vmath"
)

// Frames converts dt to reference frames, per-tick tuning values scale by it
func Frames(dt time.Duration) float64 {
	return float64(ClampStep(dt)) / float64(constant.ReferenceFrame)
}

// MovePlayer applies held intents and pointer drag to the player paddle, then clamps it
// LastPosition receives the pre-move position for spin
func MovePlayer(p *component.Paddle, in input.State, frames float64) {
	p.LastPosition = p.Position

	step := constant.PaddleMoveSpeed * p.Speed * frames
	var dx, dz float64
	if in.Intents.Has(input.IntentMoveLeft) {
		dx -= step
	}
	if in.Intents.Has(input.IntentMoveRight) {
		dx += step
	}
	if in.Intents.Has(input.IntentMoveForward) {
		dz -= step
	}
	if in.Intents.Has(input.IntentMoveBack) {
		dz += step
	}
	if !in.Drag.IsZero() {
		dx += in.Drag.DX * constant.PointerDragGain * p.Speed
		dz += in.Drag.DY * constant.PointerDragGain * p.Speed
	}

	p.Position = vmath.Sanitize(p.Position.Add(vmath.V3(dx, 0, dz)))
	p.Clamp()
}

// TrackComputer moves the opponent paddle toward the ball x with a proportional gain
func TrackComputer(p *component.Paddle, ball *component.Ball, frames float64) {
	p.LastPosition = p.Position

	gain := constant.ComputerTrackingGain * frames
	if gain > 1 {
		gain = 1
	}
	x := p.Position.X() + (ball.Position.X()-p.Position.X())*gain
	p.Position = vmath.Sanitize(vmath.V3(x, p.Position.Y(), p.Position.Z()))
	p.Clamp()
}

// SnapToBall aligns the paddle height with the ball; height is not player controlled
func SnapToBall(p *component.Paddle, ball *component.Ball) {
	p.Position[1] = ball.Position.Y()
}

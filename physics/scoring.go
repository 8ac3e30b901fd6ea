package physics

import (
	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
)

// CheckScore reports the scoring side when the ball has left the table lengthwise
// Past the player's back line the computer scores, past the computer's the player scores
func CheckScore(ball *component.Ball) (component.Side, bool) {
	z := ball.Position.Z()
	switch {
	case z > constant.PaddleBoundaryZMax:
		return component.SideComputer, true
	case z < constant.ComputerPaddleBoundaryZMin:
		return component.SidePlayer, true
	default:
		return 0, false
	}
}

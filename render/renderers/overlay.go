package renderers

import (
	"github.com/lixenwraith/tabletennis/render"
)

// OverlayRenderer draws the idle, paused and game over prompts over the field
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// OverlayText returns the prompt for the snapshot, empty during play
func OverlayText(ctx render.Context) string {
	s := ctx.Snapshot
	switch s.Phase {
	case "idle":
		return " SPACE to serve   arrows/WASD move   p pause   m mute   q quit "
	case "gameOver":
		if s.PlayerScore > s.ComputerScore {
			return " YOU WIN   SPACE for a rematch "
		}
		return " CPU WINS   SPACE for a rematch "
	}
	if s.Paused {
		return " PAUSED   p to resume "
	}
	return ""
}

// Render implements render.SystemRenderer
func (r *OverlayRenderer) Render(ctx render.Context, c *render.Canvas) {
	if text := OverlayText(ctx); text != "" {
		c.TextCenter(ctx.Proj.CenterCol, ctx.Proj.CenterRow-2, text, styleOverlay)
	}
}

// RegisterDefaults installs the standard layers on o
func RegisterDefaults(o *render.Orchestrator) {
	o.Register(NewTableRenderer(), render.PriorityTable)
	o.Register(NewFieldRenderer(), render.PriorityField)
	o.Register(NewPaddleRenderer(), render.PriorityPaddle)
	o.Register(NewBallRenderer(), render.PriorityBall)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewStatsRenderer(nil), render.PriorityDebug)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}

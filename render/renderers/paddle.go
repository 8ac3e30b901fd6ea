package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/render"
)

// PaddleRenderer draws both paddles at their scaled width
type PaddleRenderer struct{}

func NewPaddleRenderer() *PaddleRenderer {
	return &PaddleRenderer{}
}

// Render implements render.SystemRenderer
func (r *PaddleRenderer) Render(ctx render.Context, c *render.Canvas) {
	drawPaddle(c, ctx.Proj, ctx.Snapshot.Player, stylePlayer)
	drawPaddle(c, ctx.Proj, ctx.Snapshot.Computer, styleComputer)
}

func drawPaddle(c *render.Canvas, p render.Projection, pv game.PaddleView, style tcell.Style) {
	span := p.Span(pv.Width)
	x0 := p.Col(pv.Position.X()) - span/2
	c.HLine(x0, x0+span-1, p.Row(pv.Position.Z()), '▀', style)
}

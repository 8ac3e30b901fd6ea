package renderers

import (
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/render"
)

// TableRenderer draws the table outline, center line and net
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// Render implements render.SystemRenderer
func (r *TableRenderer) Render(ctx render.Context, c *render.Canvas) {
	p := ctx.Proj
	left, right := p.Col(-constant.WallBoundary), p.Col(constant.WallBoundary)
	top, bottom := p.Row(-constant.TableBoundary), p.Row(constant.TableBoundary)
	mid := p.Col(0)

	c.HLine(left, right, top, '─', styleTable)
	c.HLine(left, right, bottom, '─', styleTable)
	c.VLine(left, top, bottom, '│', styleTable)
	c.VLine(right, top, bottom, '│', styleTable)
	c.SetCell(left, top, '┌', styleTable)
	c.SetCell(right, top, '┐', styleTable)
	c.SetCell(left, bottom, '└', styleTable)
	c.SetCell(right, bottom, '┘', styleTable)

	for y := top + 1; y < bottom; y++ {
		c.SetCell(mid, y, '┊', styleTable)
	}

	net := p.Row(0)
	c.HLine(left, right, net, '═', styleNet)
}

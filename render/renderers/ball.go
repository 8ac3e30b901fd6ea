package renderers

import (
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/render"
)

// BallRenderer draws the ball and its table shadow
// Height is not visible from above, so a lifted ball leaves a shadow on the table
type BallRenderer struct{}

func NewBallRenderer() *BallRenderer {
	return &BallRenderer{}
}

// BallGlyph picks the ball rune for its size modifier
func BallGlyph(scale float64) rune {
	switch {
	case scale > 1:
		return '●'
	case scale < 1:
		return '∙'
	default:
		return 'o'
	}
}

// Render implements render.SystemRenderer
func (r *BallRenderer) Render(ctx render.Context, c *render.Canvas) {
	b, p := ctx.Snapshot.Ball, ctx.Proj
	col, row := p.Col(b.Position.X()), p.Row(b.Position.Z())

	if lift := b.Position.Y() - constant.TableHeight - b.Radius; lift > 0.5 {
		// Shadow drifts one row toward the viewer per meter of height
		c.SetCell(col, row+int(lift), '·', styleShadow)
	}
	c.SetCell(col, row, BallGlyph(b.Scale), styleBall)
}

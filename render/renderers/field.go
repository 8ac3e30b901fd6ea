package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/render"
)

var powerUpGlyphs = map[string]rune{
	"speed":        'S',
	"extend":       'E',
	"slow":         'L',
	"doublePoints": 'D',
	"shield":       'H',
}

var obstacleGlyphs = map[string]rune{
	"barrier":    'b',
	"paddle":     'p',
	"wall":       'w',
	"bouncePad":  'j',
	"shrinkZone": 'z',
}

// PowerUpGlyph returns the map letter for a power-up kind
func PowerUpGlyph(kind string) rune {
	if g, ok := powerUpGlyphs[kind]; ok {
		return g
	}
	return '?'
}

// ObstacleGlyph returns the map letter for an obstacle kind
func ObstacleGlyph(kind string) rune {
	if g, ok := obstacleGlyphs[kind]; ok {
		return g
	}
	return '?'
}

// FieldRenderer draws power-ups, obstacles and the shield line
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Render implements render.SystemRenderer
func (r *FieldRenderer) Render(ctx render.Context, c *render.Canvas) {
	s, p := ctx.Snapshot, ctx.Proj

	if s.ShieldActive {
		row := p.Row(s.ShieldZ)
		c.HLine(p.Col(-constant.WallBoundary)+1, p.Col(constant.WallBoundary)-1, row, '━', styleShield)
	}

	drawEntities(c, p, s.PowerUps, PowerUpGlyph, stylePowerUp)
	drawEntities(c, p, s.Obstacles, ObstacleGlyph, styleObstacle)
}

func drawEntities(c *render.Canvas, p render.Projection, list []game.EntityView, glyph func(string) rune, style tcell.Style) {
	for _, e := range list {
		c.SetCell(p.Col(e.Position.X()), p.Row(e.Position.Z()), glyph(e.Kind), style)
	}
}

package render

import (
	"math"

	"github.com/lixenwraith/tabletennis/constant"
)

// HUDRows is the number of rows reserved above the table
const HUDRows = 2

// fieldDepth is the z extent shown: the table plus the scoring margin
const fieldDepth = 6.0

// Projection maps the table plane (x, z) onto screen cells, viewed from above
// The player's end (positive z) is at the bottom
type Projection struct {
	CenterCol, CenterRow int
	ScaleX, ScaleZ       float64
}

// NewProjection fits the field into a width x height screen below the HUD
// Terminal cells are roughly twice as tall as wide, so x gets twice the scale of z
func NewProjection(width, height int) Projection {
	avail := max(height-HUDRows-1, 3)
	scaleZ := float64(avail-1) / (2 * fieldDepth)
	scaleX := scaleZ * 2
	if maxX := float64(width-2) / (2 * constant.WallBoundary); scaleX > maxX {
		scaleX = max(maxX, 0.5)
	}
	return Projection{
		CenterCol: width / 2,
		CenterRow: HUDRows + avail/2,
		ScaleX:    scaleX,
		ScaleZ:    scaleZ,
	}
}

// Col returns the column for world x
func (p Projection) Col(x float64) int {
	return p.CenterCol + int(math.Round(x*p.ScaleX))
}

// Row returns the row for world z
func (p Projection) Row(z float64) int {
	return p.CenterRow + int(math.Round(z*p.ScaleZ))
}

// Span returns the number of columns covering a world width w, at least 1
func (p Projection) Span(w float64) int {
	return max(1, int(math.Round(w*p.ScaleX)))
}

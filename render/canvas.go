package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is a clipped drawing surface over a tcell screen
type Canvas struct {
	screen        tcell.Screen
	width, height int
}

// NewCanvas wraps screen at its current size
func NewCanvas(screen tcell.Screen) *Canvas {
	w, h := screen.Size()
	return &Canvas{screen: screen, width: w, height: h}
}

// Size returns the drawable area
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetCell draws r at (x, y), out-of-bounds writes are dropped
func (c *Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Text draws s starting at (x, y) and returns the column after the last rune
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetCell(x, y, r, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

// TextRight draws s ending at column right
func (c *Canvas) TextRight(right, y int, s string, style tcell.Style) {
	c.Text(right-runewidth.StringWidth(s), y, s, style)
}

// TextCenter draws s centered on column cx
func (c *Canvas) TextCenter(cx, y int, s string, style tcell.Style) {
	c.Text(cx-runewidth.StringWidth(s)/2, y, s, style)
}

// HLine draws r from x0 to x1 inclusive
func (c *Canvas) HLine(x0, x1, y int, r rune, style tcell.Style) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		c.SetCell(x, y, r, style)
	}
}

// VLine draws r from y0 to y1 inclusive
func (c *Canvas) VLine(x, y0, y1 int, r rune, style tcell.Style) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.SetCell(x, y, r, style)
	}
}

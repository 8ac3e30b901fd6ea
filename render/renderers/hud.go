package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tabletennis/render"
)

// HUDRenderer draws scores, rally and active modifiers on the top rows
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// ScoreLine formats the score header
func ScoreLine(player, computer, win int) string {
	return fmt.Sprintf("YOU %2d : %-2d CPU   first to %d", player, computer, win)
}

// Badges lists the active modifiers in display order
func Badges(ctx render.Context) []string {
	s := ctx.Snapshot
	var out []string
	if s.DoublePoints {
		out = append(out, "2x")
	}
	if s.ShieldActive {
		out = append(out, "SHIELD")
	}
	if s.Player.WidthScale > 1 {
		out = append(out, "WIDE")
	}
	if s.Player.Speed > 1 {
		out = append(out, "FAST")
	} else if s.Player.Speed < 1 {
		out = append(out, "SLOW")
	}
	if s.Ball.Scale < 1 {
		out = append(out, "TINY BALL")
	}
	if s.Paused {
		out = append(out, "PAUSED")
	}
	if ctx.Muted {
		out = append(out, "MUTED")
	}
	return out
}

// Render implements render.SystemRenderer
func (r *HUDRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Snapshot
	c.Text(1, 0, ScoreLine(s.PlayerScore, s.ComputerScore, s.WinScore), styleHUD)

	info := fmt.Sprintf("rally %d  speed %.1f  height %.1f", s.Rally, s.Ball.Velocity.Len(), s.Ball.Position.Y())
	if ctx.Spectators > 0 {
		info += fmt.Sprintf("  watching %d", ctx.Spectators)
	}
	c.Text(1, 1, info, styleHUDDim)

	x := ctx.Width - 1
	badges := Badges(ctx)
	for i := len(badges) - 1; i >= 0; i-- {
		label := " " + badges[i] + " "
		x -= len(label)
		c.Text(x, 0, label, styleBadge)
		x--
	}
}

// StatsRenderer lists status registry entries down the right edge
type StatsRenderer struct {
	visible func() bool
}

// NewStatsRenderer creates a stats panel shown while visible returns true; nil shows always
func NewStatsRenderer(visible func() bool) *StatsRenderer {
	return &StatsRenderer{visible: visible}
}

// IsVisible implements render.VisibilityToggle
func (r *StatsRenderer) IsVisible() bool {
	return r.visible == nil || r.visible()
}

// Render implements render.SystemRenderer
func (r *StatsRenderer) Render(ctx render.Context, c *render.Canvas) {
	if !ctx.ShowStats {
		return
	}
	y := render.HUDRows
	for _, e := range ctx.Stats {
		if y >= ctx.Height {
			return
		}
		line := e.Key + " " + e.Value
		if len(line) > 28 {
			line = line[:28]
		}
		c.TextRight(ctx.Width-1, y, strings.TrimSpace(line), styleHUDDim)
		y++
	}
}

package renderers

import "github.com/gdamore/tcell/v2"

var (
	styleTable    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleNet      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleShield   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleComputer = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleBall     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleShadow   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePowerUp  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUDDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBadge    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true)
)

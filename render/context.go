package render

import (
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/status"
)

// Context is the read-only input of one rendered frame
type Context struct {
	Snapshot *game.Snapshot
	Proj     Projection
	Width    int
	Height   int

	// Host state shown in the HUD
	Muted      bool
	Spectators int
	Stats      []status.Entry
	ShowStats  bool
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tabletennis/game"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Count returns the number of registered renderers
func (o *Orchestrator) Count() int {
	return len(o.renderers)
}

// Resize resyncs the screen after a terminal size change
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}

// Render draws one frame of snap; ctx supplies host state, its geometry is filled here
// A nil snapshot only clears the screen
func (o *Orchestrator) Render(snap *game.Snapshot, ctx Context) {
	o.screen.Clear()
	if snap != nil {
		canvas := NewCanvas(o.screen)
		ctx.Snapshot = snap
		ctx.Width, ctx.Height = canvas.Size()
		ctx.Proj = NewProjection(ctx.Width, ctx.Height)

		for _, e := range o.renderers {
			if v, ok := e.renderer.(VisibilityToggle); ok && !v.IsVisible() {
				continue
			}
			e.renderer.Render(ctx, canvas)
		}
	}
	o.screen.Show()
}

package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/audio"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/input"
	"github.com/lixenwraith/tabletennis/network"
	"github.com/lixenwraith/tabletennis/render"
	"github.com/lixenwraith/tabletennis/status"
)

// Approximate cell size in pixels, used to turn mouse drags into pointer deltas
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// host owns the match on the loop goroutine
// Terminal events arrive on events from the poller goroutine and are drained each frame
type host struct {
	match    *game.Match
	orch     *render.Orchestrator
	clock    *engine.PausableClock
	keys     *input.KeyTable
	hold     *input.HoldTracker
	events   chan tcell.Event
	audio    *audio.AudioEngine
	spectate *network.Service
	reg      *status.Registry
	log      *zap.Logger
	quit     context.CancelFunc

	showStats bool
	now       func() time.Time

	// Mouse drag state
	dragging bool
	lastX    int
	lastY    int
	drag     input.PointerDelta
}

// Step implements engine.Stepper
func (h *host) Step(dt time.Duration) {
	now := h.now()
	h.drainEvents(now)

	st := input.State{Intents: h.hold.Held(now), Drag: h.drag}
	h.drag = input.PointerDelta{}

	h.match.Tick(dt, st)
	h.match.Dispatch()
	h.orch.Render(h.match.Latest(), h.renderContext())
}

func (h *host) drainEvents(now time.Time) {
	for {
		select {
		case ev := <-h.events:
			h.handleEvent(ev, now)
		default:
			return
		}
	}
}

func (h *host) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := h.keys.Lookup(ev)
		if intent.IsMovement() {
			h.hold.Press(intent, now)
			return
		}
		h.handleIntent(intent)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.orch.Resize()
	case *tcell.EventFocus:
		if !ev.Focused && h.match.Phase() == engine.PhasePlaying {
			h.setPaused(true)
		}
	}
}

func (h *host) handleIntent(intent input.Intent) {
	switch intent {
	case input.IntentStart:
		if h.match.Phase() == engine.PhasePlaying {
			return
		}
		h.hold.Reset()
		if err := h.match.Start(); err != nil {
			h.log.Warn("start rejected", zap.Error(err))
		}
		h.clock.Resume()
	case input.IntentPause:
		if h.match.Phase() != engine.PhasePlaying {
			return
		}
		h.setPaused(!h.match.State().Paused)
	case input.IntentMute:
		if h.audio != nil {
			enabled := h.audio.ToggleMute()
			h.log.Debug("audio toggled", zap.Bool("enabled", enabled))
		}
	case input.IntentQuit:
		h.quit()
	}
}

// setPaused pauses the match and the host clock together so resume does not produce a long frame
func (h *host) setPaused(paused bool) {
	if paused {
		h.match.Pause()
		h.hold.Reset()
		h.clock.Pause()
		return
	}
	h.clock.Resume()
	h.match.Resume()
}

func (h *host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		h.dragging = false
		return
	}
	if h.dragging {
		h.drag.DX += float64((x - h.lastX) * cellPixelsX)
		h.drag.DY += float64((y - h.lastY) * cellPixelsY)
	}
	h.dragging = true
	h.lastX, h.lastY = x, y
}

func (h *host) renderContext() render.Context {
	ctx := render.Context{ShowStats: h.showStats}
	if h.audio != nil {
		ctx.Muted = h.audio.IsMuted()
	}
	if h.spectate != nil {
		ctx.Spectators = h.spectate.PeerCount()
	}
	if h.showStats {
		ctx.Stats = h.reg.Entries()
	}
	return ctx
}

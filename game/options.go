package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/events"
	"github.com/lixenwraith/tabletennis/physics"
	"github.com/lixenwraith/tabletennis/status"
	"github.com/lixenwraith/tabletennis/system"
)

// Options configures a Match; zero values fall back to defaults
// A zero Effects means standard cadence with spawning on
type Options struct {
	Logger   *zap.Logger
	Registry *status.Registry
	Queue    *events.EventQueue

	// Rand overrides the seeded source, used by tests for fixed draws
	Rand physics.Rand
	Seed uint64

	WinScore int
	Effects  system.Options
}

// DefaultOptions returns a silent match with standard rules
func DefaultOptions() Options {
	return Options{
		WinScore: constant.WinScore,
		Effects:  system.DefaultOptions(),
	}
}

func (o *Options) fill() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Registry == nil {
		o.Registry = status.NewRegistry()
	}
	if o.Queue == nil {
		o.Queue = events.NewEventQueue()
	}
	if o.Rand == nil {
		o.Rand = physics.NewRand(o.Seed)
	}
	if o.WinScore <= 0 {
		o.WinScore = constant.WinScore
	}
	if o.Effects == (system.Options{}) {
		o.Effects = system.DefaultOptions()
	}
}

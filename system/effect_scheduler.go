package system

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/events"
	"github.com/lixenwraith/tabletennis/physics"
	"github.com/lixenwraith/tabletennis/status"
)

// Publisher receives effect scheduler notifications
type Publisher interface {
	Publish(t events.EventType, payload any)
}

// PublisherFunc adapts a function to Publisher
type PublisherFunc func(t events.EventType, payload any)

// Publish implements Publisher
func (f PublisherFunc) Publish(t events.EventType, payload any) { f(t, payload) }

// Options configures spawn cadence
// Zero intervals fall back to the defaults
type Options struct {
	PowerUpInterval  time.Duration
	ObstacleInterval time.Duration
	SpawnsEnabled    bool
}

// DefaultOptions returns the standard cadence with spawning on
func DefaultOptions() Options {
	return Options{
		PowerUpInterval:  constant.PowerUpSpawnInterval,
		ObstacleInterval: constant.ObstacleSpawnInterval,
		SpawnsEnabled:    true,
	}
}

// EffectScheduler owns every timed mutation of a match: spawn cadence,
// entity expiry and compensating actions for applied effects
// All timers run on the engine scheduler, so they freeze with the sim clock
type EffectScheduler struct {
	state *engine.GameState
	sched *engine.Scheduler
	rng   physics.Rand
	pub   Publisher
	log   *zap.Logger
	opts  Options

	running bool

	powerUpTimer  engine.TimerID
	obstacleTimer engine.TimerID

	// Expiry timers of live entities, cancelled on consumption
	expiry map[uuid.UUID]engine.TimerID

	// Pending revert of last-applied-wins effects, replaced by a later activation
	exclusive map[string]engine.TimerID

	// Telemetry
	statApplied   *atomic.Int64
	statReverted  *atomic.Int64
	statCollected *atomic.Int64
	statHit       *atomic.Int64
	statSpawned   *atomic.Int64
}

// NewEffectScheduler binds the scheduler to a match state
// log and reg may be nil
func NewEffectScheduler(state *engine.GameState, sched *engine.Scheduler, rng physics.Rand, pub Publisher, log *zap.Logger, reg *status.Registry, opts Options) *EffectScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if pub == nil {
		pub = PublisherFunc(func(events.EventType, any) {})
	}
	if opts.PowerUpInterval <= 0 {
		opts.PowerUpInterval = constant.PowerUpSpawnInterval
	}
	if opts.ObstacleInterval <= 0 {
		opts.ObstacleInterval = constant.ObstacleSpawnInterval
	}

	return &EffectScheduler{
		state:     state,
		sched:     sched,
		rng:       rng,
		pub:       pub,
		log:       log.Named("effects"),
		opts:      opts,
		expiry:    make(map[uuid.UUID]engine.TimerID),
		exclusive: make(map[string]engine.TimerID),

		statApplied:   reg.Ints.Get("effects.applied"),
		statReverted:  reg.Ints.Get("effects.reverted"),
		statCollected: reg.Ints.Get("powerups.collected"),
		statHit:       reg.Ints.Get("obstacles.hit"),
		statSpawned:   reg.Ints.Get("entities.spawned"),
	}
}

// Start arms both periodic spawners
// Calling Start while running re-arms them from the current sim time
func (e *EffectScheduler) Start() {
	e.stopSpawners()
	e.running = true
	if !e.opts.SpawnsEnabled {
		return
	}
	now := e.now()
	e.armPowerUpSpawner(now + e.opts.PowerUpInterval)
	e.armObstacleSpawner(now + e.opts.ObstacleInterval)
}

// Running reports whether spawners are armed
func (e *EffectScheduler) Running() bool {
	return e.running
}

// Clear halts spawners, cancels every pending timer and empties both entity sets
// Effects already applied stay applied; match start resets the modifiers
func (e *EffectScheduler) Clear() {
	e.running = false
	e.powerUpTimer = 0
	e.obstacleTimer = 0
	n := e.sched.CancelAll()
	clear(e.expiry)
	clear(e.exclusive)
	e.state.PowerUps.Clear()
	e.state.Obstacles.Clear()
	e.log.Debug("effects cleared", zap.Int("timers", n))
}

// PendingExpiries returns the number of live entity expiry timers
func (e *EffectScheduler) PendingExpiries() int {
	return len(e.expiry)
}

func (e *EffectScheduler) stopSpawners() {
	e.sched.Cancel(e.powerUpTimer)
	e.sched.Cancel(e.obstacleTimer)
	e.powerUpTimer = 0
	e.obstacleTimer = 0
}

// Spawners re-arm from their own due time so a long tick does not drift the cadence
func (e *EffectScheduler) armPowerUpSpawner(at time.Duration) {
	e.powerUpTimer = e.sched.Schedule(at, func() {
		if !e.running {
			return
		}
		e.SpawnPowerUp()
		e.armPowerUpSpawner(at + e.opts.PowerUpInterval)
	})
}

func (e *EffectScheduler) armObstacleSpawner(at time.Duration) {
	e.obstacleTimer = e.sched.Schedule(at, func() {
		if !e.running {
			return
		}
		e.SpawnObstacle()
		e.armObstacleSpawner(at + e.opts.ObstacleInterval)
	})
}

func (e *EffectScheduler) now() time.Duration {
	return e.sched.Clock().Now()
}

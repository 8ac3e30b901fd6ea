package game

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/engine/fsm"
	"github.com/lixenwraith/tabletennis/events"
	"github.com/lixenwraith/tabletennis/input"
	"github.com/lixenwraith/tabletennis/physics"
	"github.com/lixenwraith/tabletennis/status"
	"github.com/lixenwraith/tabletennis/system"
)

// ErrNotPlaying is returned by operations that need a running match
var ErrNotPlaying = errors.New("match not playing")

// Trigger drives phase transitions
type Trigger uint8

const (
	TriggerStart Trigger = iota
	TriggerWin
	TriggerReset
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerWin:
		return "win"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Match owns a GameState and advances it one tick at a time
// Not safe for concurrent use; other goroutines read Latest()
type Match struct {
	state   *engine.GameState
	clock   *engine.SimClock
	sched   *engine.Scheduler
	phases  *fsm.Machine[engine.GamePhase, Trigger]
	effects *system.EffectScheduler
	queue   *events.EventQueue
	router  *events.Router[*Match]
	rng     physics.Rand
	log     *zap.Logger
	reg     *status.Registry

	winScore int
	frame    uint64
	rally    int

	latest atomic.Pointer[Snapshot]

	// Telemetry
	statTicks    *atomic.Int64
	statHits     *atomic.Int64
	statRally    *atomic.Int64
	statLongest  *atomic.Int64
	statTopSpeed *status.AtomicFloat
	statRepairs  *atomic.Int64
	statPhase    *status.AtomicString
}

// NewMatch creates an idle match
func NewMatch(opts Options) *Match {
	opts.fill()

	m := &Match{
		state:    engine.NewGameState(),
		clock:    engine.NewSimClock(),
		queue:    opts.Queue,
		rng:      opts.Rand,
		log:      opts.Logger.Named("match"),
		reg:      opts.Registry,
		winScore: opts.WinScore,

		statTicks:    opts.Registry.Ints.Get("match.ticks"),
		statHits:     opts.Registry.Ints.Get("paddle.hits"),
		statRally:    opts.Registry.Ints.Get("rally.current"),
		statLongest:  opts.Registry.Ints.Get("rally.longest"),
		statTopSpeed: opts.Registry.Floats.Get("ball.top_speed"),
		statRepairs:  opts.Registry.Ints.Get("ball.repairs"),
		statPhase:    opts.Registry.Strings.Get("match.phase"),
	}
	m.sched = engine.NewScheduler(m.clock)
	m.router = events.NewRouter[*Match](m.queue)
	m.effects = system.NewEffectScheduler(m.state, m.sched, m.rng, m, opts.Logger, opts.Registry, opts.Effects)

	m.phases = fsm.NewMachine[engine.GamePhase, Trigger](engine.PhaseIdle).
		Permit(engine.PhaseIdle, TriggerStart, engine.PhasePlaying).
		Permit(engine.PhaseGameOver, TriggerStart, engine.PhasePlaying).
		Permit(engine.PhasePlaying, TriggerWin, engine.PhaseGameOver).
		Permit(engine.PhaseGameOver, TriggerReset, engine.PhaseIdle).
		OnEnter(engine.PhasePlaying, func(_, _ engine.GamePhase, _ Trigger) { m.enterPlaying() }).
		OnEnter(engine.PhaseGameOver, func(_, _ engine.GamePhase, _ Trigger) { m.effects.Clear() }).
		OnTransition(m.onTransition)

	m.statPhase.Store(engine.PhaseIdle.String())
	m.publishSnapshot()
	return m
}

// State exposes the live game state; callers on the tick goroutine only
func (m *Match) State() *engine.GameState {
	return m.state
}

// Phase returns the lifecycle state
func (m *Match) Phase() engine.GamePhase {
	return m.state.Phase
}

// Effects returns the effect scheduler
func (m *Match) Effects() *system.EffectScheduler {
	return m.effects
}

// Clock returns the simulation clock
func (m *Match) Clock() *engine.SimClock {
	return m.clock
}

// Registry returns the stats registry
func (m *Match) Registry() *status.Registry {
	return m.reg
}

// Router returns the event router; handlers run during Dispatch
func (m *Match) Router() *events.Router[*Match] {
	return m.router
}

// Dispatch delivers queued events to registered handlers
func (m *Match) Dispatch() int {
	return m.router.DispatchAll(m)
}

// Publish implements system.Publisher
func (m *Match) Publish(t events.EventType, payload any) {
	m.queue.Push(events.GameEvent{Type: t, Payload: payload, Frame: m.frame})
}

// Start begins a new match from idle or after game over
// Scores, ball, paddle modifiers, entities and timers are reset and spawners restarted
func (m *Match) Start() error {
	if err := m.phases.Fire(TriggerStart); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	return nil
}

// Reset returns a finished match to idle
func (m *Match) Reset() error {
	if err := m.phases.Fire(TriggerReset); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func (m *Match) enterPlaying() {
	m.effects.Clear()
	m.state.ResetMatch()
	m.state.Paused = false
	m.rally = 0
	m.statRally.Store(0)
	m.effects.Start()
	m.Publish(events.EventScoreChanged, &events.ScoreChangedPayload{})
}

func (m *Match) onTransition(from, to engine.GamePhase, trigger Trigger) {
	m.state.Phase = to
	m.statPhase.Store(to.String())
	m.log.Info("phase changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("trigger", trigger))
	m.Publish(events.EventPhaseChanged, &events.PhaseChangedPayload{From: from.String(), To: to.String()})
	m.publishSnapshot()
}

// ScorePoint awards a point to side, two while double points is active
// Reaching the win score ends the match, otherwise the ball is served again
func (m *Match) ScorePoint(side component.Side) error {
	if m.state.Phase != engine.PhasePlaying {
		return ErrNotPlaying
	}

	points := constant.PointValue
	if m.state.DoublePointsActive {
		points = constant.DoublePointValue
	}
	if side == component.SideComputer {
		m.state.ComputerScore += points
	} else {
		m.state.PlayerScore += points
	}
	m.rally = 0
	m.statRally.Store(0)

	m.log.Debug("point scored",
		zap.Stringer("side", side),
		zap.Int("points", points),
		zap.Int("player", m.state.PlayerScore),
		zap.Int("computer", m.state.ComputerScore))
	m.Publish(events.EventScoreChanged, &events.ScoreChangedPayload{
		Scorer:        side.String(),
		Points:        points,
		PlayerScore:   m.state.PlayerScore,
		ComputerScore: m.state.ComputerScore,
	})

	if m.state.Score(side) >= m.winScore {
		if err := m.phases.Fire(TriggerWin); err != nil {
			return fmt.Errorf("score: %w", err)
		}
		m.Publish(events.EventGameOver, &events.GameOverPayload{
			Winner:        side.String(),
			PlayerScore:   m.state.PlayerScore,
			ComputerScore: m.state.ComputerScore,
		})
		return nil
	}

	m.state.ResetBall()
	return nil
}

// Pause freezes tick advancement and every effect timer with it
// Returns false when already paused
func (m *Match) Pause() bool {
	if m.state.Paused {
		return false
	}
	m.state.Paused = true
	m.Publish(events.EventPaused, nil)
	m.publishSnapshot()
	return true
}

// Resume restores tick advancement, returns false when not paused
func (m *Match) Resume() bool {
	if !m.state.Paused {
		return false
	}
	m.state.Paused = false
	m.Publish(events.EventResumed, nil)
	m.publishSnapshot()
	return true
}

// TogglePause flips the pause flag and returns the new value
func (m *Match) TogglePause() bool {
	if m.state.Paused {
		m.Resume()
	} else {
		m.Pause()
	}
	return m.state.Paused
}

// Tick advances the match by dt using the held intents
// No-op unless playing and not paused; never fails on bad numeric input
func (m *Match) Tick(dt time.Duration, in input.State) {
	gs := m.state
	if gs.Phase != engine.PhasePlaying || gs.Paused {
		return
	}

	step := physics.ClampStep(dt)
	frames := physics.Frames(step)
	m.frame++
	m.statTicks.Add(1)

	now := m.clock.Advance(step)
	m.sched.Advance(now)

	physics.MovePlayer(gs.Player, in, frames)
	physics.TrackComputer(gs.Computer, gs.Ball, frames)

	if physics.Integrate(gs.Ball, step) {
		m.statRepairs.Add(1)
		m.log.Warn("non-finite ball state repaired", zap.Uint64("frame", m.frame))
	}

	physics.SnapToBall(gs.Player, gs.Ball)
	physics.SnapToBall(gs.Computer, gs.Ball)

	physics.CheckWallCollision(gs.Ball)
	physics.CheckNetCollision(gs.Ball)

	for _, p := range [...]*component.Paddle{gs.Player, gs.Computer} {
		if hit, ok := physics.CheckPaddleCollision(gs.Ball, p, now, m.rng); ok {
			m.onPaddleHit(hit)
		}
	}

	if physics.CheckShieldCollision(gs.Ball, gs.Shield) {
		m.Publish(events.EventShieldBlock, nil)
	}

	m.effects.CheckObstacles()
	m.effects.CollectPowerUps()
	physics.EnforceInvariants(gs.Ball)

	m.statTopSpeed.Max(gs.Ball.Speed())

	if side, ok := physics.CheckScore(gs.Ball); ok {
		if err := m.ScorePoint(side); err != nil {
			m.log.Error("score failed", zap.Error(err))
		}
	}

	m.publishSnapshot()
}

func (m *Match) onPaddleHit(hit physics.Hit) {
	m.rally++
	m.statHits.Add(1)
	m.statRally.Store(int64(m.rally))
	if int64(m.rally) > m.statLongest.Load() {
		m.statLongest.Store(int64(m.rally))
	}
	m.Publish(events.EventPaddleHit, &events.PaddleHitPayload{
		Side:      hit.Side.String(),
		HitOffset: hit.HitOffset,
		Speed:     hit.Speed,
	})
}

// Step implements engine.Stepper with no held intents, used by headless hosts
func (m *Match) Step(dt time.Duration) {
	m.Tick(dt, input.State{})
}

// Frame returns the number of ticks simulated
func (m *Match) Frame() uint64 {
	return m.frame
}

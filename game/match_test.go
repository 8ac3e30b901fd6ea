package game

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/engine/fsm"
	"github.com/lixenwraith/tabletennis/events"
	"github.com/lixenwraith/tabletennis/input"
	"github.com/lixenwraith/tabletennis/vmath"
)

const frame = time.Second / 60

func newPlayingMatch(t *testing.T) *Match {
	t.Helper()
	m := NewMatch(DefaultOptions())
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return m
}

func drainTypes(m *Match) []events.EventType {
	var out []events.EventType
	for _, ev := range m.queue.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func contains(list []events.EventType, t events.EventType) bool {
	for _, e := range list {
		if e == t {
			return true
		}
	}
	return false
}

func TestNewMatchIsIdle(t *testing.T) {
	m := NewMatch(DefaultOptions())
	if m.Phase() != engine.PhaseIdle {
		t.Errorf("Expected idle, got %v", m.Phase())
	}

	before := m.State().Ball.Position
	m.Tick(frame, input.State{})
	if m.State().Ball.Position != before {
		t.Error("Expected no simulation while idle")
	}
	if m.Frame() != 0 {
		t.Errorf("Expected frame 0, got %d", m.Frame())
	}
}

func TestStartTransitions(t *testing.T) {
	m := NewMatch(DefaultOptions())

	if err := m.Reset(); !errors.Is(err, fsm.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition resetting idle match, got %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if m.Phase() != engine.PhasePlaying {
		t.Errorf("Expected playing, got %v", m.Phase())
	}
	if err := m.Start(); !errors.Is(err, fsm.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition starting twice, got %v", err)
	}
	if !m.Effects().Running() {
		t.Error("Expected spawners running")
	}
	if !contains(drainTypes(m), events.EventPhaseChanged) {
		t.Error("Expected PhaseChanged event")
	}
}

func TestScenarioPlayerWins(t *testing.T) {
	m := newPlayingMatch(t)
	m.Effects().AddPowerUp(component.PowerUpSpeed, vmath.V3(1, 0.5, 3))
	m.Effects().AddObstacle(component.ObstacleWall, vmath.V3(1, 0.5, -3))

	for i := 0; i < constant.WinScore-1; i++ {
		if err := m.ScorePoint(component.SidePlayer); err != nil {
			t.Fatalf("ScorePoint failed: %v", err)
		}
	}
	if m.Phase() != engine.PhasePlaying {
		t.Fatalf("Expected playing at 10 points, got %v", m.Phase())
	}
	drainTypes(m)

	if err := m.ScorePoint(component.SidePlayer); err != nil {
		t.Fatalf("ScorePoint failed: %v", err)
	}

	gs := m.State()
	if gs.PlayerScore != constant.WinScore {
		t.Errorf("Expected player score %d, got %d", constant.WinScore, gs.PlayerScore)
	}
	if m.Phase() != engine.PhaseGameOver {
		t.Errorf("Expected gameOver, got %v", m.Phase())
	}
	if gs.PowerUps.Len() != 0 || gs.Obstacles.Len() != 0 {
		t.Errorf("Expected empty entity lists, got %d power-ups %d obstacles", gs.PowerUps.Len(), gs.Obstacles.Len())
	}
	if m.sched.Pending() != 0 {
		t.Errorf("Expected all timers cancelled, got %d", m.sched.Pending())
	}

	evs := drainTypes(m)
	if !contains(evs, events.EventGameOver) || !contains(evs, events.EventScoreChanged) {
		t.Errorf("Expected ScoreChanged and GameOver, got %v", evs)
	}

	if err := m.ScorePoint(component.SidePlayer); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Expected ErrNotPlaying after game over, got %v", err)
	}
}

func TestScoringIsMonotonic(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	prevP, prevC := 0, 0

	sides := []component.Side{component.SideComputer, component.SidePlayer, component.SideComputer}
	for i := 0; m.Phase() == engine.PhasePlaying; i++ {
		side := sides[i%len(sides)]
		if i == 4 {
			m.Effects().ApplyPowerUp(component.PowerUpDoublePoints)
		}
		m.ScorePoint(side)

		dp, dc := gs.PlayerScore-prevP, gs.ComputerScore-prevC
		if dp < 0 || dc < 0 {
			t.Fatalf("Expected non-decreasing scores, got delta %d/%d", dp, dc)
		}
		if dp+dc != 1 && dp+dc != 2 {
			t.Fatalf("Expected increment of 1 or 2, got %d", dp+dc)
		}
		prevP, prevC = gs.PlayerScore, gs.ComputerScore
	}

	if gs.ComputerScore < constant.WinScore {
		t.Errorf("Expected computer to reach %d, got %d", constant.WinScore, gs.ComputerScore)
	}
}

func TestDoublePointsScoresTwo(t *testing.T) {
	m := newPlayingMatch(t)
	m.Effects().ApplyPowerUp(component.PowerUpDoublePoints)

	m.ScorePoint(component.SideComputer)
	if m.State().ComputerScore != 2 {
		t.Errorf("Expected 2 points for computer, got %d", m.State().ComputerScore)
	}

	m.clock.Advance(constant.DoublePointsDuration)
	m.sched.Advance(m.clock.Now())
	m.ScorePoint(component.SidePlayer)
	if m.State().PlayerScore != 1 {
		t.Errorf("Expected 1 point after double points expired, got %d", m.State().PlayerScore)
	}
}

func TestScoreRecentersBall(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	gs.Ball.Position = vmath.V3(0, 1, 6.5)
	gs.Ball.Velocity = vmath.V3(2, 0, 9)
	gs.Player.Position = vmath.V3(-2, 1, 2)

	m.Tick(0, input.State{})

	if gs.ComputerScore != 1 {
		t.Errorf("Expected computer to score, got %d", gs.ComputerScore)
	}
	if gs.Ball.Position != constant.BallStartPosition || gs.Ball.Velocity != constant.BallInitialVelocity {
		t.Errorf("Expected served ball, got p=%v v=%v", gs.Ball.Position, gs.Ball.Velocity)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	m.Effects().ApplyPowerUp(component.PowerUpExtend)
	m.Effects().ApplyObstacle(component.ObstacleShrinkZone)
	for gs.Phase == engine.PhasePlaying {
		m.ScorePoint(component.SideComputer)
	}

	if err := m.Start(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if gs.PlayerScore != 0 || gs.ComputerScore != 0 {
		t.Errorf("Expected 0-0, got %d-%d", gs.PlayerScore, gs.ComputerScore)
	}
	if gs.Player.WidthScale != 1 || gs.Ball.Scale != 1 {
		t.Errorf("Expected modifiers reset, got width=%v scale=%v", gs.Player.WidthScale, gs.Ball.Scale)
	}
	// Two spawners only
	if m.sched.Pending() != 2 {
		t.Errorf("Expected 2 spawner timers, got %d", m.sched.Pending())
	}
}

func TestResetToIdle(t *testing.T) {
	m := newPlayingMatch(t)
	for m.Phase() == engine.PhasePlaying {
		m.ScorePoint(component.SidePlayer)
	}
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if m.Phase() != engine.PhaseIdle {
		t.Errorf("Expected idle, got %v", m.Phase())
	}
}

func TestPauseFreezesTicksAndTimers(t *testing.T) {
	m := newPlayingMatch(t)
	m.Effects().ApplyPowerUp(component.PowerUpSpeed)
	gs := m.State()

	if !m.Pause() {
		t.Fatal("Expected pause")
	}
	if m.Pause() {
		t.Error("Expected second pause to report no change")
	}

	ball := *gs.Ball
	for i := 0; i < 60*30; i++ {
		m.Tick(frame, input.State{Intents: input.Of(input.IntentMoveLeft)})
	}
	if *gs.Ball != ball {
		t.Error("Expected ball frozen while paused")
	}
	if gs.Player.Speed != constant.SpeedMultiplier {
		t.Errorf("Expected speed effect still active, got %v", gs.Player.Speed)
	}
	if m.clock.Now() != 0 {
		t.Errorf("Expected sim clock frozen, got %v", m.clock.Now())
	}

	if m.TogglePause() {
		t.Error("Expected toggle to resume")
	}
	evs := drainTypes(m)
	if !contains(evs, events.EventPaused) || !contains(evs, events.EventResumed) {
		t.Errorf("Expected Paused and Resumed events, got %v", evs)
	}
}

func TestTickMovesPlayerWithinBounds(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	in := input.State{Intents: input.Of(input.IntentMoveLeft, input.IntentMoveBack)}

	for i := 0; i < 600 && m.Phase() == engine.PhasePlaying; i++ {
		m.Tick(frame, in)
		for _, p := range []*component.Paddle{gs.Player, gs.Computer} {
			x, z := p.Position.X(), p.Position.Z()
			if x < -constant.WallBoundary || x > constant.WallBoundary {
				t.Fatalf("tick %d: %v paddle x=%v out of bounds", i, p.Side, x)
			}
			if z < p.Boundary.ZMin || z > p.Boundary.ZMax {
				t.Fatalf("tick %d: %v paddle z=%v out of bounds", i, p.Side, z)
			}
		}
	}
}

func TestLongRunInvariants(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	m := NewMatch(opts)
	m.Start()
	gs := m.State()

	moves := []input.Intent{input.IntentMoveLeft, input.IntentMoveRight, input.IntentMoveForward, input.IntentMoveBack}
	prev := 0
	for i := 0; i < 60*60*5; i++ {
		if m.Phase() != engine.PhasePlaying {
			m.Start()
			prev = 0
		}
		m.Tick(frame, input.State{Intents: input.Of(moves[(i/45)%len(moves)])})

		if !vmath.IsFinite(gs.Ball.Position) || !vmath.IsFinite(gs.Ball.Velocity) {
			t.Fatalf("tick %d: non-finite ball state", i)
		}
		if gs.Ball.Position.Y() > constant.MaxBallHeight {
			t.Fatalf("tick %d: ball above height cap", i)
		}
		total := gs.PlayerScore + gs.ComputerScore
		if total < prev {
			t.Fatalf("tick %d: score decreased", i)
		}
		prev = total
	}
	if m.Frame() == 0 {
		t.Error("Expected frames simulated")
	}
}

func TestZeroOptionsArmSpawners(t *testing.T) {
	m := NewMatch(Options{})
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	gs := m.State()

	for i := 0; i < 31*60; i++ {
		gs.Ball.Position = vmath.V3(1.5, 1, 2.5)
		gs.Ball.Velocity = vmath.V3(0, 0, 0)
		m.Tick(frame, input.State{})
	}

	if m.Phase() != engine.PhasePlaying {
		t.Fatalf("Expected playing, got %v", m.Phase())
	}
	if got := m.Registry().Ints.Get("entities.spawned").Load(); got == 0 {
		t.Error("Expected a power-up spawned after 31s with zero options")
	}
}

func TestSlowPickupKeepsMinimumRebound(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	gs.Ball.Position = vmath.V3(1.5, 0.21, 2.5)
	gs.Ball.Velocity = vmath.V3(0, -1, 0)
	m.Effects().AddPowerUp(component.PowerUpSlow,
		vmath.V3(gs.Player.Position.X(), constant.TableHeight, gs.Player.Position.Z()))

	m.Tick(frame, input.State{})

	if gs.PowerUps.Len() != 0 {
		t.Fatalf("Expected slow power-up collected, %d left", gs.PowerUps.Len())
	}
	if gs.Ball.Position.Y() != constant.TableHeight {
		t.Errorf("Expected ball on the table, got y=%v", gs.Ball.Position.Y())
	}
	if gs.Ball.Velocity.Y() < constant.MinBounceVelocity {
		t.Errorf("Expected vy >= %v, got %v", constant.MinBounceVelocity, gs.Ball.Velocity.Y())
	}
}

func TestBouncePadKeepsSpeedCap(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	gs.Ball.Position = vmath.V3(1.5, 2, 2.5)
	gs.Ball.Velocity = vmath.V3(0, 10, 10)
	m.Effects().AddObstacle(component.ObstacleBouncePad, vmath.V3(1.5, 2.16, 2.67))

	m.Tick(frame, input.State{})

	if gs.Obstacles.Len() != 0 {
		t.Fatalf("Expected bounce pad consumed, %d left", gs.Obstacles.Len())
	}
	if s := gs.Ball.Speed(); s > constant.MaxBallSpeed+1e-9 {
		t.Errorf("Expected speed <= %v, got %v", constant.MaxBallSpeed, s)
	}
}

func TestPaddleHitEventAndStats(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	gs.Ball.Position = gs.Player.Position
	gs.Ball.Velocity = vmath.V3(0, 0, 0.1)

	m.Tick(0, input.State{})

	if !contains(drainTypes(m), events.EventPaddleHit) {
		t.Error("Expected PaddleHit event")
	}
	if got := m.Registry().Ints.Get("paddle.hits").Load(); got != 1 {
		t.Errorf("Expected 1 paddle hit, got %d", got)
	}
	if gs.Ball.Velocity.Z() >= 0 {
		t.Errorf("Expected ball returned toward computer, got vz=%v", gs.Ball.Velocity.Z())
	}
}

func TestShieldBlocksScore(t *testing.T) {
	m := newPlayingMatch(t)
	gs := m.State()
	m.Effects().ApplyPowerUp(component.PowerUpShield)
	gs.Player.Position = vmath.V3(-2.5, 1, 2)
	gs.Ball.Position = vmath.V3(1, 1, 5.85)
	gs.Ball.Velocity = vmath.V3(0, 0, 8)

	m.Tick(0, input.State{})

	if gs.ComputerScore != 0 {
		t.Errorf("Expected no point behind an active shield, got %d", gs.ComputerScore)
	}
	if gs.Ball.Velocity.Z() >= 0 {
		t.Errorf("Expected ball reflected, got vz=%v", gs.Ball.Velocity.Z())
	}
	if !contains(drainTypes(m), events.EventShieldBlock) {
		t.Error("Expected ShieldBlock event")
	}
}

func TestRouterDispatch(t *testing.T) {
	m := NewMatch(DefaultOptions())
	var phases []string
	m.Router().Register(events.HandlerFunc[*Match]{
		Types: []events.EventType{events.EventPhaseChanged},
		Fn: func(ctx *Match, ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.PhaseChangedPayload); ok {
				phases = append(phases, p.To)
			}
		},
	})

	m.Start()
	for m.Phase() == engine.PhasePlaying {
		m.ScorePoint(component.SideComputer)
	}
	m.Dispatch()

	want := []string{"playing", "gameOver"}
	if len(phases) != len(want) {
		t.Fatalf("Expected %v, got %v", want, phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, phases)
		}
	}
}

func TestSnapshot(t *testing.T) {
	m := newPlayingMatch(t)
	m.Effects().AddPowerUp(component.PowerUpExtend, vmath.V3(1, 0.5, 3))
	m.Tick(frame, input.State{})

	s := m.Latest()
	if s == nil {
		t.Fatal("Expected a published snapshot")
	}
	if s.Phase != "playing" || s.Frame != 1 {
		t.Errorf("Expected playing at frame 1, got %s at %d", s.Phase, s.Frame)
	}
	if len(s.PowerUps) != 1 || s.PowerUps[0].Kind != "extend" {
		t.Errorf("Expected one extend power-up, got %+v", s.PowerUps)
	}
	if s.PowerUps[0].TTL != constant.PowerUpLifetime-frame {
		t.Errorf("Expected ttl %v, got %v", constant.PowerUpLifetime-frame, s.PowerUps[0].TTL)
	}

	// Later mutation must not leak into the published copy
	m.State().Ball.Position = vmath.V3(9, 9, 9)
	if s.Ball.Position == m.State().Ball.Position {
		t.Error("Expected snapshot isolated from live state")
	}
}

package engine

import (
	"github.com/lixenwraith/tabletennis/component"
)

// GamePhase is the match's top-level lifecycle state
type GamePhase uint8

const (
	PhaseIdle GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// GameState centralizes match state with a single owner
// Only the tick path mutates it; other goroutines read published snapshots
type GameState struct {
	Ball     *component.Ball
	Player   *component.Paddle
	Computer *component.Paddle
	Shield   *component.Shield

	PowerUps  *component.EntitySet[*component.PowerUp]
	Obstacles *component.EntitySet[*component.Obstacle]

	PlayerScore   int
	ComputerScore int

	Phase GamePhase

	DoublePointsActive bool
	// ShieldActive mirrors Shield.Active for consumers that only read flags
	ShieldActive bool

	// Paused is orthogonal to Phase: ticks are frozen, nothing is reset
	Paused bool
}

// NewGameState creates an idle match with both paddles and the ball at their start positions
func NewGameState() *GameState {
	return &GameState{
		Ball:      component.NewBall(),
		Player:    component.NewPaddle(component.SidePlayer),
		Computer:  component.NewPaddle(component.SideComputer),
		Shield:    component.NewShield(),
		PowerUps:  component.NewEntitySet[*component.PowerUp](),
		Obstacles: component.NewEntitySet[*component.Obstacle](),
		Phase:     PhaseIdle,
	}
}

// ResetBall recenters the ball with the serve velocity
func (gs *GameState) ResetBall() {
	gs.Ball.Reset()
}

// ResetMatch restores scores, ball scale, paddles and effect flags for a new match
// Entity sets are emptied; timers are owned by the scheduler and cleared separately
func (gs *GameState) ResetMatch() {
	gs.PlayerScore = 0
	gs.ComputerScore = 0
	gs.Ball.Reset()
	gs.Ball.Scale = 1
	gs.Player.Reset()
	gs.Computer.Reset()
	gs.SetShield(false)
	gs.DoublePointsActive = false
	gs.PowerUps.Clear()
	gs.Obstacles.Clear()
}

// SetShield toggles the shield collider and its flag together
func (gs *GameState) SetShield(active bool) {
	gs.Shield.Active = active
	gs.ShieldActive = active
}

// Score returns the score of side
func (gs *GameState) Score(side component.Side) int {
	if side == component.SideComputer {
		return gs.ComputerScore
	}
	return gs.PlayerScore
}

// Paddle returns the paddle of side
func (gs *GameState) Paddle(side component.Side) *component.Paddle {
	if side == component.SideComputer {
		return gs.Computer
	}
	return gs.Player
}

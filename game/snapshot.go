package game

import (
	"time"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/vmath"
)

// BallView is the renderable ball
type BallView struct {
	Position vmath.Vec3 `msgpack:"p"`
	Velocity vmath.Vec3 `msgpack:"v"`
	Scale    float64    `msgpack:"s"`
	Radius   float64    `msgpack:"r"`
}

// PaddleView is the renderable paddle
type PaddleView struct {
	Position   vmath.Vec3 `msgpack:"p"`
	Width      float64    `msgpack:"w"`
	WidthScale float64    `msgpack:"ws"`
	Speed      float64    `msgpack:"sp"`
}

// EntityView is a power-up or obstacle
type EntityView struct {
	ID       string     `msgpack:"id"`
	Kind     string     `msgpack:"k"`
	Position vmath.Vec3 `msgpack:"p"`
	// Remaining lifetime
	TTL time.Duration `msgpack:"ttl"`
}

// Snapshot is a read-only copy of a match for renderers and spectators
type Snapshot struct {
	Frame uint64        `msgpack:"f"`
	Time  time.Duration `msgpack:"t"`
	Phase string        `msgpack:"phase"`

	Paused        bool `msgpack:"paused"`
	PlayerScore   int  `msgpack:"ps"`
	ComputerScore int  `msgpack:"cs"`
	WinScore      int  `msgpack:"win"`

	DoublePoints bool    `msgpack:"dp"`
	ShieldActive bool    `msgpack:"sh"`
	ShieldZ      float64 `msgpack:"shz"`

	Ball     BallView   `msgpack:"ball"`
	Player   PaddleView `msgpack:"player"`
	Computer PaddleView `msgpack:"computer"`

	PowerUps  []EntityView `msgpack:"pu"`
	Obstacles []EntityView `msgpack:"ob"`

	Rally int `msgpack:"rally"`
}

// Snapshot builds a fresh copy of the current state
func (m *Match) Snapshot() *Snapshot {
	gs := m.state
	now := m.clock.Now()

	s := &Snapshot{
		Frame:         m.frame,
		Time:          now,
		Phase:         gs.Phase.String(),
		Paused:        gs.Paused,
		PlayerScore:   gs.PlayerScore,
		ComputerScore: gs.ComputerScore,
		WinScore:      m.winScore,
		DoublePoints:  gs.DoublePointsActive,
		ShieldActive:  gs.ShieldActive,
		ShieldZ:       gs.Shield.Z,
		Ball: BallView{
			Position: gs.Ball.Position,
			Velocity: gs.Ball.Velocity,
			Scale:    gs.Ball.Scale,
			Radius:   gs.Ball.Radius,
		},
		Player:   paddleView(gs.Player),
		Computer: paddleView(gs.Computer),
		Rally:    m.rally,
	}

	for _, p := range gs.PowerUps.Items() {
		s.PowerUps = append(s.PowerUps, EntityView{
			ID: p.ID.String(), Kind: p.Kind.String(), Position: p.Position, TTL: p.ExpiresAt() - now,
		})
	}
	for _, o := range gs.Obstacles.Items() {
		s.Obstacles = append(s.Obstacles, EntityView{
			ID: o.ID.String(), Kind: o.Kind.String(), Position: o.Position, TTL: o.ExpiresAt() - now,
		})
	}
	return s
}

func paddleView(p *component.Paddle) PaddleView {
	return PaddleView{
		Position:   p.Position,
		Width:      p.Width(),
		WidthScale: p.WidthScale,
		Speed:      p.Speed,
	}
}

// Latest returns the snapshot published at the end of the last tick or transition
// Safe to call from any goroutine
func (m *Match) Latest() *Snapshot {
	return m.latest.Load()
}

func (m *Match) publishSnapshot() {
	m.latest.Store(m.Snapshot())
}

package system

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/events"
	"github.com/lixenwraith/tabletennis/physics"
	"github.com/lixenwraith/tabletennis/vmath"
)

// effect is an apply/revert pair; revert exactly undoes apply
type effect struct {
	duration time.Duration
	// exclusive effects are boolean: a later activation replaces the pending revert
	exclusive bool
	apply     func(gs *engine.GameState)
	revert    func(gs *engine.GameState)
}

var powerUpEffects = [component.PowerUpKindCount]effect{
	component.PowerUpSpeed: {
		duration: constant.SpeedDuration,
		apply:    func(gs *engine.GameState) { gs.Player.Speed *= constant.SpeedMultiplier },
		revert:   func(gs *engine.GameState) { gs.Player.Speed /= constant.SpeedMultiplier },
	},
	component.PowerUpExtend: {
		duration: constant.ExtendDuration,
		apply:    func(gs *engine.GameState) { gs.Player.WidthScale *= constant.ExtendMultiplier },
		revert:   func(gs *engine.GameState) { gs.Player.WidthScale /= constant.ExtendMultiplier },
	},
	component.PowerUpSlow: {
		duration: constant.SlowDuration,
		apply:    func(gs *engine.GameState) { gs.Ball.Velocity = gs.Ball.Velocity.Mul(constant.SlowMultiplier) },
		revert:   func(gs *engine.GameState) { gs.Ball.Velocity = gs.Ball.Velocity.Mul(1 / constant.SlowMultiplier) },
	},
	component.PowerUpDoublePoints: {
		duration:  constant.DoublePointsDuration,
		exclusive: true,
		apply:     func(gs *engine.GameState) { gs.DoublePointsActive = true },
		revert:    func(gs *engine.GameState) { gs.DoublePointsActive = false },
	},
	component.PowerUpShield: {
		duration:  constant.ShieldDuration,
		exclusive: true,
		apply:     func(gs *engine.GameState) { gs.SetShield(true) },
		revert:    func(gs *engine.GameState) { gs.SetShield(false) },
	},
}

// SpawnPowerUp places a random power-up on the player's half and arms its expiry
func (e *EffectScheduler) SpawnPowerUp() *component.PowerUp {
	kind := component.PowerUpKind(physics.Intn(e.rng, component.PowerUpKindCount))
	pos := vmath.V3(
		physics.Uniform(e.rng, -constant.SpawnHalfX, constant.SpawnHalfX),
		constant.SpawnHeight,
		physics.Uniform(e.rng, constant.PowerUpSpawnZMin, constant.PowerUpSpawnZMax),
	)
	return e.AddPowerUp(kind, pos)
}

// AddPowerUp inserts a power-up of kind at pos and arms its expiry
func (e *EffectScheduler) AddPowerUp(kind component.PowerUpKind, pos vmath.Vec3) *component.PowerUp {
	p := component.NewPowerUp(kind, pos, e.now())
	e.state.PowerUps.Add(p)
	e.expiry[p.ID] = e.sched.Schedule(p.ExpiresAt(), func() { e.expirePowerUp(p.ID) })
	e.statSpawned.Add(1)

	e.log.Debug("power-up spawned", zap.Stringer("kind", kind), zap.Stringer("id", p.ID))
	e.pub.Publish(events.EventPowerUpSpawned, &events.EntityPayload{ID: p.ID, Kind: kind.String()})
	return p
}

func (e *EffectScheduler) expirePowerUp(id uuid.UUID) {
	delete(e.expiry, id)
	p, ok := e.state.PowerUps.Get(id)
	if !ok || !e.state.PowerUps.Remove(id) {
		return
	}
	e.pub.Publish(events.EventPowerUpExpired, &events.EntityPayload{ID: id, Kind: p.Kind.String()})
}

// CollectPowerUps consumes every power-up within pickup range of the player paddle
// Scan order is insertion order; returns the number consumed
func (e *EffectScheduler) CollectPowerUps() int {
	paddle := e.state.Player.Position
	n := 0
	for _, p := range e.state.PowerUps.Items() {
		if vmath.Distance(paddle, p.Position) < constant.PickupRadius {
			if e.ConsumePowerUp(p.ID) {
				n++
			}
		}
	}
	return n
}

// ConsumePowerUp removes the power-up, cancels its expiry and applies its effect
// A second call for the same instance is a no-op returning false
func (e *EffectScheduler) ConsumePowerUp(id uuid.UUID) bool {
	p, ok := e.state.PowerUps.Get(id)
	if !ok || !e.state.PowerUps.Remove(id) {
		return false
	}
	e.cancelExpiry(id)
	e.statCollected.Add(1)

	e.pub.Publish(events.EventPowerUpCollected, &events.EntityPayload{ID: id, Kind: p.Kind.String()})
	e.activate(p.Kind.String(), powerUpEffects[p.Kind])
	return true
}

// ApplyPowerUp runs the effect of kind without a power-up entity
// Invalid kinds are ignored
func (e *EffectScheduler) ApplyPowerUp(kind component.PowerUpKind) bool {
	if !kind.Valid() {
		return false
	}
	e.activate(kind.String(), powerUpEffects[kind])
	return true
}

func (e *EffectScheduler) activate(name string, fx effect) {
	fx.apply(e.state)
	e.statApplied.Add(1)
	e.pub.Publish(events.EventEffectActivated, &events.EffectPayload{Kind: name, Duration: fx.duration})

	revert := func() {
		if fx.exclusive {
			delete(e.exclusive, name)
		}
		fx.revert(e.state)
		e.statReverted.Add(1)
		e.pub.Publish(events.EventEffectReverted, &events.EffectPayload{Kind: name, Duration: fx.duration})
	}

	if !fx.exclusive {
		e.sched.After(fx.duration, revert)
		return
	}
	// Last applied wins: drop the earlier activation's revert
	if prev, ok := e.exclusive[name]; ok {
		e.sched.Cancel(prev)
	}
	e.exclusive[name] = e.sched.After(fx.duration, revert)
}

func (e *EffectScheduler) cancelExpiry(id uuid.UUID) {
	if t, ok := e.expiry[id]; ok {
		e.sched.Cancel(t)
		delete(e.expiry, id)
	}
}

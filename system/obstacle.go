package system

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/component"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/events"
	"github.com/lixenwraith/tabletennis/physics"
	"github.com/lixenwraith/tabletennis/vmath"
)

// obstacleEffects are one-shot ball mutations
// bouncePad is not clamped to MaxHeightVelocity, unlike a paddle hit
var obstacleEffects = [component.ObstacleKindCount]func(gs *engine.GameState){
	component.ObstacleBarrier: func(gs *engine.GameState) {
		gs.Ball.Velocity[0] = -gs.Ball.Velocity[0]
	},
	component.ObstaclePaddle: func(gs *engine.GameState) {
		gs.Ball.Velocity[2] = -gs.Ball.Velocity[2]
	},
	component.ObstacleWall: func(gs *engine.GameState) {
		gs.Ball.Velocity[2] = -gs.Ball.Velocity[2] * constant.WallDamping
	},
	component.ObstacleBouncePad: func(gs *engine.GameState) {
		gs.Ball.Velocity[1] *= constant.BouncePadMultiplier
	},
	component.ObstacleShrinkZone: nil, // timed, see shrinkEffect
}

var shrinkEffect = effect{
	duration:  constant.ShrinkDuration,
	exclusive: true,
	apply:     func(gs *engine.GameState) { gs.Ball.Scale = constant.ShrinkScale },
	revert:    func(gs *engine.GameState) { gs.Ball.Scale = 1 },
}

// SpawnObstacle places a random obstacle away from the net band and arms its expiry
func (e *EffectScheduler) SpawnObstacle() *component.Obstacle {
	kind := component.ObstacleKind(physics.Intn(e.rng, component.ObstacleKindCount))
	x := physics.Uniform(e.rng, -constant.SpawnHalfX, constant.SpawnHalfX)
	z := physics.Uniform(e.rng, constant.ObstacleNetClearance, constant.ObstacleSpawnZMax)
	if e.rng.Float64() < 0.5 {
		z = -z
	}
	return e.AddObstacle(kind, vmath.V3(x, constant.SpawnHeight, z))
}

// AddObstacle inserts an obstacle of kind at pos and arms its expiry
func (e *EffectScheduler) AddObstacle(kind component.ObstacleKind, pos vmath.Vec3) *component.Obstacle {
	o := component.NewObstacle(kind, pos, e.now())
	e.state.Obstacles.Add(o)
	e.expiry[o.ID] = e.sched.Schedule(o.ExpiresAt(), func() { e.expireObstacle(o.ID) })
	e.statSpawned.Add(1)

	e.log.Debug("obstacle spawned", zap.Stringer("kind", kind), zap.Stringer("id", o.ID))
	e.pub.Publish(events.EventObstacleSpawned, &events.EntityPayload{ID: o.ID, Kind: kind.String()})
	return o
}

func (e *EffectScheduler) expireObstacle(id uuid.UUID) {
	delete(e.expiry, id)
	o, ok := e.state.Obstacles.Get(id)
	if !ok || !e.state.Obstacles.Remove(id) {
		return
	}
	e.pub.Publish(events.EventObstacleExpired, &events.EntityPayload{ID: id, Kind: o.Kind.String()})
}

// CheckObstacles consumes every obstacle within pickup range of the ball
// Scan order is insertion order; returns the number consumed
func (e *EffectScheduler) CheckObstacles() int {
	ball := e.state.Ball.Position
	n := 0
	for _, o := range e.state.Obstacles.Items() {
		if vmath.Distance(ball, o.Position) < constant.PickupRadius {
			if e.ConsumeObstacle(o.ID) {
				n++
			}
		}
	}
	return n
}

// ConsumeObstacle removes the obstacle, cancels its expiry and applies its effect
// A second call for the same instance is a no-op returning false
func (e *EffectScheduler) ConsumeObstacle(id uuid.UUID) bool {
	o, ok := e.state.Obstacles.Get(id)
	if !ok || !e.state.Obstacles.Remove(id) {
		return false
	}
	e.cancelExpiry(id)
	e.statHit.Add(1)

	e.pub.Publish(events.EventObstacleHit, &events.EntityPayload{ID: id, Kind: o.Kind.String()})
	e.ApplyObstacle(o.Kind)
	return true
}

// ApplyObstacle runs the effect of kind on the ball
// Invalid kinds are ignored
func (e *EffectScheduler) ApplyObstacle(kind component.ObstacleKind) bool {
	if !kind.Valid() {
		return false
	}
	if kind == component.ObstacleShrinkZone {
		e.activate(kind.String(), shrinkEffect)
		return true
	}
	obstacleEffects[kind](e.state)
	e.state.Ball.Velocity = vmath.Sanitize(e.state.Ball.Velocity)
	return true
}

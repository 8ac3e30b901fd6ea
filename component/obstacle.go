package component

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/vmath"
)

// ObstacleKind tags the effect applied when the ball touches an obstacle
type ObstacleKind uint8

const (
	ObstacleBarrier ObstacleKind = iota
	ObstaclePaddle
	ObstacleWall
	ObstacleBouncePad
	ObstacleShrinkZone
	obstacleKindCount
)

// ObstacleKindCount is the number of valid kinds
const ObstacleKindCount = int(obstacleKindCount)

var obstacleNames = [...]string{
	ObstacleBarrier:    "barrier",
	ObstaclePaddle:     "paddle",
	ObstacleWall:       "wall",
	ObstacleBouncePad:  "bouncePad",
	ObstacleShrinkZone: "shrinkZone",
}

func (k ObstacleKind) String() string {
	if k < obstacleKindCount {
		return obstacleNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known kind
func (k ObstacleKind) Valid() bool {
	return k < obstacleKindCount
}

// ParseObstacleKind maps a name to its kind
func ParseObstacleKind(name string) (ObstacleKind, bool) {
	for i, n := range obstacleNames {
		if n == name {
			return ObstacleKind(i), true
		}
	}
	return 0, false
}

// Obstacle is a transient table hazard consumed on ball contact
type Obstacle struct {
	ID        uuid.UUID
	Kind      ObstacleKind
	Position  vmath.Vec3
	SpawnedAt time.Duration
	Lifetime  time.Duration
}

// NewObstacle creates an obstacle with a fresh ID and the default lifetime
func NewObstacle(kind ObstacleKind, pos vmath.Vec3, now time.Duration) *Obstacle {
	return &Obstacle{
		ID:        uuid.New(),
		Kind:      kind,
		Position:  pos,
		SpawnedAt: now,
		Lifetime:  constant.ObstacleLifetime,
	}
}

// EntityID implements Entity
func (o *Obstacle) EntityID() uuid.UUID { return o.ID }

// ExpiresAt returns the sim time of natural expiry
func (o *Obstacle) ExpiresAt() time.Duration { return o.SpawnedAt + o.Lifetime }

package component

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/vmath"
)

// PowerUpKind tags the effect applied on pickup
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpExtend
	PowerUpSlow
	PowerUpDoublePoints
	PowerUpShield
	powerUpKindCount
)

// PowerUpKindCount is the number of valid kinds, used for uniform spawn draws
const PowerUpKindCount = int(powerUpKindCount)

var powerUpNames = [...]string{
	PowerUpSpeed:        "speed",
	PowerUpExtend:       "extend",
	PowerUpSlow:         "slow",
	PowerUpDoublePoints: "doublePoints",
	PowerUpShield:       "shield",
}

func (k PowerUpKind) String() string {
	if k < powerUpKindCount {
		return powerUpNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known kind
func (k PowerUpKind) Valid() bool {
	return k < powerUpKindCount
}

// ParsePowerUpKind maps a name to its kind
func ParsePowerUpKind(name string) (PowerUpKind, bool) {
	for i, n := range powerUpNames {
		if n == name {
			return PowerUpKind(i), true
		}
	}
	return 0, false
}

// PowerUp is a collectible on the player's half of the table
type PowerUp struct {
	ID        uuid.UUID
	Kind      PowerUpKind
	Position  vmath.Vec3
	SpawnedAt time.Duration
	Lifetime  time.Duration
}

// NewPowerUp creates a power-up with a fresh ID and the default lifetime
func NewPowerUp(kind PowerUpKind, pos vmath.Vec3, now time.Duration) *PowerUp {
	return &PowerUp{
		ID:        uuid.New(),
		Kind:      kind,
		Position:  pos,
		SpawnedAt: now,
		Lifetime:  constant.PowerUpLifetime,
	}
}

// EntityID implements Entity
func (p *PowerUp) EntityID() uuid.UUID { return p.ID }

// ExpiresAt returns the sim time of natural expiry
func (p *PowerUp) ExpiresAt() time.Duration { return p.SpawnedAt + p.Lifetime }

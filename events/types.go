package events

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and is never pushed
	EventNone EventType = iota

	// EventPhaseChanged signals a match lifecycle transition
	// Trigger: Match start, game over, reset
	// Consumer: UI | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventScoreChanged signals a point awarded
	// Trigger: Ball crossed a scoring line
	// Consumer: UI, AudioHandler | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventGameOver signals a side reached the winning score
	// Trigger: ScorePoint | Payload: *GameOverPayload
	EventGameOver

	// EventPaddleHit signals a registered paddle contact
	// Trigger: Paddle collision outside the bounce delay
	// Consumer: AudioHandler | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventShieldBlock signals the shield returned the ball
	// Consumer: AudioHandler | Payload: nil
	EventShieldBlock

	// EventPowerUpSpawned signals a new collectible
	// Payload: *EntityPayload
	EventPowerUpSpawned

	// EventPowerUpCollected signals a power-up picked up by the player paddle
	// Consumer: AudioHandler | Payload: *EntityPayload
	EventPowerUpCollected

	// EventPowerUpExpired signals a power-up reaching its lifetime uncollected
	// Payload: *EntityPayload
	EventPowerUpExpired

	// EventObstacleSpawned signals a new obstacle
	// Payload: *EntityPayload
	EventObstacleSpawned

	// EventObstacleHit signals the ball consumed an obstacle
	// Consumer: AudioHandler | Payload: *EntityPayload
	EventObstacleHit

	// EventObstacleExpired signals an obstacle reaching its lifetime
	// Payload: *EntityPayload
	EventObstacleExpired

	// EventEffectActivated signals a timed modifier taking effect
	// Payload: *EffectPayload
	EventEffectActivated

	// EventEffectReverted signals a compensating action restoring state
	// Payload: *EffectPayload
	EventEffectReverted

	// EventPaused signals tick advancement frozen
	// Payload: nil
	EventPaused

	// EventResumed signals tick advancement restored
	// Payload: nil
	EventResumed

	eventTypeCount
)

var eventNames = [...]string{
	EventNone:             "None",
	EventPhaseChanged:     "PhaseChanged",
	EventScoreChanged:     "ScoreChanged",
	EventGameOver:         "GameOver",
	EventPaddleHit:        "PaddleHit",
	EventShieldBlock:      "ShieldBlock",
	EventPowerUpSpawned:   "PowerUpSpawned",
	EventPowerUpCollected: "PowerUpCollected",
	EventPowerUpExpired:   "PowerUpExpired",
	EventObstacleSpawned:  "ObstacleSpawned",
	EventObstacleHit:      "ObstacleHit",
	EventObstacleExpired:  "ObstacleExpired",
	EventEffectActivated:  "EffectActivated",
	EventEffectReverted:   "EffectReverted",
	EventPaused:           "Paused",
	EventResumed:          "Resumed",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventNames[t]
	}
	return "Unknown"
}

// ParseEventType returns the EventType for a name
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventNames {
		if n == name {
			return EventType(i), true
		}
	}
	return EventNone, false
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	// Frame is the tick counter at push time
	Frame uint64
}

package audio

import "github.com/lixenwraith/tabletennis/events"

// Player is the minimal audio interface used by event handlers and hosts
type Player interface {
	Play(SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// eventSounds maps core notifications to the sound played for them
var eventSounds = map[events.EventType]SoundType{
	events.EventPaddleHit:        SoundHit,
	events.EventShieldBlock:      SoundHit,
	events.EventPowerUpCollected: SoundPowerUp,
	events.EventObstacleHit:      SoundObstacle,
	events.EventScoreChanged:     SoundScore,
	events.EventGameOver:         SoundGameOver,
}

// EventHandler plays a sound for each contact, score and game-over event
// Generic over the router context so the audio host does not depend on the match
type EventHandler[T any] struct {
	player Player
}

// NewEventHandler creates a handler playing through p
func NewEventHandler[T any](p Player) *EventHandler[T] {
	return &EventHandler[T]{player: p}
}

// EventTypes implements events.Handler
func (h *EventHandler[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPaddleHit,
		events.EventShieldBlock,
		events.EventPowerUpCollected,
		events.EventObstacleHit,
		events.EventScoreChanged,
		events.EventGameOver,
	}
}

// HandleEvent implements events.Handler
func (h *EventHandler[T]) HandleEvent(_ T, ev events.GameEvent) {
	if h.player == nil {
		return
	}
	// Match start publishes an empty score reset, which is silent
	if p, ok := ev.Payload.(*events.ScoreChangedPayload); ok && p.Points == 0 {
		return
	}
	if st, ok := eventSounds[ev.Type]; ok {
		h.player.Play(st)
	}
}

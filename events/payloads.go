package events

import (
	"time"

	"github.com/google/uuid"
)

// PhaseChangedPayload carries both ends of a lifecycle transition
type PhaseChangedPayload struct {
	From string
	To   string
}

// ScoreChangedPayload carries the scorer and both scores after the point
type ScoreChangedPayload struct {
	Scorer        string
	Points        int
	PlayerScore   int
	ComputerScore int
}

// GameOverPayload carries the final score
type GameOverPayload struct {
	Winner        string
	PlayerScore   int
	ComputerScore int
}

// PaddleHitPayload describes a registered paddle contact
type PaddleHitPayload struct {
	Side      string
	HitOffset float64
	Speed     float64
}

// EntityPayload identifies a power-up or obstacle
type EntityPayload struct {
	ID   uuid.UUID
	Kind string
}

// EffectPayload describes a timed modifier
type EffectPayload struct {
	Kind     string
	Duration time.Duration
}

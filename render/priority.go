package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityTable
	PriorityField
	PriorityEntities
	PriorityPaddle
	PriorityBall
	PriorityUI
	PriorityOverlay
	PriorityDebug
)

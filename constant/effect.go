package constant

import "time"

// Spawn cadence, active only while a match is playing
const (
	PowerUpSpawnInterval  = 30 * time.Second
	ObstacleSpawnInterval = 45 * time.Second

	PowerUpLifetime  = 10 * time.Second
	ObstacleLifetime = 15 * time.Second
)

// PickupRadius is the consumption distance for power-ups (paddle) and obstacles (ball)
const PickupRadius = 0.5

// Spawn areas
const (
	SpawnHeight = 0.5
	SpawnHalfX  = 2.0

	PowerUpSpawnZMin = PaddleBoundaryZMin
	PowerUpSpawnZMax = TableBoundary

	ObstacleSpawnZMax = 4.0
	// ObstacleNetClearance keeps obstacles out of the net band
	ObstacleNetClearance = 0.5
)

// Power-up effects
const (
	SpeedMultiplier  = 1.5
	SpeedDuration    = 10 * time.Second
	ExtendMultiplier = 1.5
	ExtendDuration   = 15 * time.Second

	SlowMultiplier = 0.5
	SlowDuration   = 10 * time.Second

	DoublePointsDuration = 20 * time.Second
	ShieldDuration       = 10 * time.Second

	// ShieldOffset places the shield plane behind the player's farthest paddle position
	ShieldOffset = 0.2
)

// Obstacle effects
const (
	BouncePadMultiplier = 1.5
	WallDamping         = 0.5

	ShrinkScale    = 0.5
	ShrinkDuration = 5 * time.Second
)

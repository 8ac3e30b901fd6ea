package constant

import "time"

// Audio synthesis
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond

	// AudioQueueSize bounds pending sounds, extra sounds are dropped
	AudioQueueSize = 16
)

// Sound shapes
const (
	HitSoundFreq     = 880.0
	HitSoundDuration = 50 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 30 * time.Millisecond

	PowerUpSoundNote1    = 987.77
	PowerUpSoundNote2    = 1318.51
	PowerUpSoundDuration = 80 * time.Millisecond
	PowerUpSoundAttack   = 5 * time.Millisecond
	PowerUpSoundRelease  = 40 * time.Millisecond

	ObstacleSoundFreq     = 140.0
	ObstacleSoundDuration = 120 * time.Millisecond
	ObstacleSoundAttack   = 5 * time.Millisecond
	ObstacleSoundRelease  = 80 * time.Millisecond

	ScoreSoundDuration = 150 * time.Millisecond
	ScoreSoundAttack   = 10 * time.Millisecond
	ScoreSoundRelease  = 100 * time.Millisecond

	GameOverSoundDuration = 400 * time.Millisecond
	GameOverSoundAttack   = 20 * time.Millisecond
	GameOverSoundRelease  = 250 * time.Millisecond
)

package audio

// SoundType represents the sound effects of a match
type SoundType int

const (
	SoundHit      SoundType = iota // Paddle or shield contact
	SoundPowerUp                   // Power-up collected
	SoundObstacle                  // Ball hit an obstacle
	SoundScore                     // Point awarded
	SoundGameOver                  // Match finished
	soundTypeCount
)

var soundNames = [...]string{
	SoundHit:      "hit",
	SoundPowerUp:  "powerup",
	SoundObstacle: "obstacle",
	SoundScore:    "score",
	SoundGameOver: "gameover",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType maps a name to its sound
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

package audio

import "github.com/lixenwraith/tabletennis/constant"

// AudioConfig holds synthesis and mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig starts muted at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundHit:      0.6,
			SoundPowerUp:  0.5,
			SoundObstacle: 0.5,
			SoundScore:    0.5,
			SoundGameOver: 0.7,
		},
	}
}

// volume returns the effective volume for st
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

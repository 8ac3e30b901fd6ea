package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tabletennis/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency slides linearly from start to end
type sweep struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	rate       beep.SampleRate
}

// NewSweep creates a sliding sine
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{start: start, end: end, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.duration)
		freq := s.start + (s.end-s.start)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound generates a short high click for paddle contact
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.HitSoundFreq, constant.HitSoundDuration, WaveSine, rate)
	click := NewOscillator(0, constant.HitSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(osc, 0.8), newVolume(click, 0.2))
	shaped := NewEnvelope(mixed, constant.HitSoundDuration, constant.HitSoundAttack, constant.HitSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundHit))
}

// CreatePowerUpSound generates a two-note chime for pickups
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constant.PowerUpSoundNote1, constant.PowerUpSoundDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.PowerUpSoundDuration, constant.PowerUpSoundAttack, constant.PowerUpSoundRelease, rate)

	n2 := NewOscillator(constant.PowerUpSoundNote2, constant.PowerUpSoundDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.PowerUpSoundDuration, constant.PowerUpSoundAttack, constant.PowerUpSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(SoundPowerUp))
}

// CreateObstacleSound generates a low thud
func CreateObstacleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.ObstacleSoundFreq, constant.ObstacleSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.ObstacleSoundDuration, constant.ObstacleSoundAttack, constant.ObstacleSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundObstacle))
}

// CreateScoreSound generates a rising blip
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sw := NewSweep(440, 880, constant.ScoreSoundDuration, rate)
	shaped := NewEnvelope(sw, constant.ScoreSoundDuration, constant.ScoreSoundAttack, constant.ScoreSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundScore))
}

// CreateGameOverSound generates a falling tone
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sw := NewSweep(660, 110, constant.GameOverSoundDuration, rate)
	shaped := NewEnvelope(sw, constant.GameOverSoundDuration, constant.GameOverSoundAttack, constant.GameOverSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case SoundObstacle:
		return CreateObstacleSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tabletennis/constant"
)

// ErrAlreadyRunning is returned by Start on a running engine
var ErrAlreadyRunning = errors.New("audio engine already running")

// Output is the device sounds are mixed into
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	// Add starts s, returns false when the output is saturated
	Add(s beep.Streamer) bool
	Close()
}

// speakerOutput plays through the system speaker via a shared mixer
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	o.mixer = &beep.Mixer{}
	speaker.Play(o.mixer)
	return nil
}

func (o *speakerOutput) Add(s beep.Streamer) bool {
	speaker.Lock()
	defer speaker.Unlock()
	if o.mixer.Len() >= constant.AudioQueueSize {
		return false
	}
	o.mixer.Add(s)
	return true
}

func (o *speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// AudioEngine synthesizes sound effects and plays them without blocking the caller
// A missing device puts the engine in silent mode instead of failing
type AudioEngine struct {
	config *AudioConfig
	output Output

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64

	mu sync.RWMutex // Protects config
}

// NewAudioEngine creates an engine on the system speaker
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	return NewAudioEngineWithOutput(cfg, &speakerOutput{})
}

// NewAudioEngineWithOutput creates an engine on a custom output
func NewAudioEngineWithOutput(cfg *AudioConfig, out Output) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config: cfg,
		output: out,
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start opens the output device; failure switches to silent mode
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	ae.mu.RLock()
	rate := beep.SampleRate(ae.config.SampleRate)
	ae.mu.RUnlock()

	if err := ae.output.Init(rate, rate.N(constant.AudioBufferSize)); err != nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return fmt.Errorf("audio output unavailable, running silent: %w", err)
	}

	ae.running.Store(true)
	return nil
}

// Stop closes the output, safe to call repeatedly
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if !ae.silentMode.Load() {
		ae.output.Close()
	}
}

// Play starts a sound, returns false when it was not played
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.IsEnabled() {
		return false
	}

	ae.mu.RLock()
	s := GetSoundEffect(st, ae.config)
	ae.mu.RUnlock()
	if s == nil {
		return false
	}

	if !ae.output.Add(s) {
		ae.dropped.Add(1)
		return false
	}
	ae.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	for {
		old := ae.muted.Load()
		if ae.muted.CompareAndSwap(old, !old) {
			return old
		}
	}
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and attached to a device
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// IsRunning returns true if engine is running, even in silent mode
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsSilent reports whether the device could not be opened
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// SetVolume updates master volume, clamped to [0, 1]
func (ae *AudioEngine) SetVolume(vol float64) {
	vol = min(max(vol, 0), 1)

	ae.mu.Lock()
	ae.config.MasterVolume = vol
	ae.mu.Unlock()
}

// Volume returns the master volume
func (ae *AudioEngine) Volume() float64 {
	ae.mu.RLock()
	defer ae.mu.RUnlock()
	return ae.config.MasterVolume
}

// GetStats returns played and dropped counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

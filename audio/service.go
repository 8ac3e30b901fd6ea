package audio

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// AudioService wraps AudioEngine as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	config      *AudioConfig
	output      Output
	audioEngine *AudioEngine
	log         *zap.Logger
	disabled    atomic.Bool
}

// NewService creates an audio service on the system speaker
// cfg nil uses the defaults; log nil discards
func NewService(cfg *AudioConfig, log *zap.Logger) *AudioService {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioService{config: cfg, log: log.Named("audio")}
}

// WithOutput replaces the speaker output, used by tests
func (s *AudioService) WithOutput(out Output) *AudioService {
	s.output = out
	return s
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - mute override (true = muted)
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.config.Enabled = !muted
		}
	}
	if s.output != nil {
		s.audioEngine = NewAudioEngineWithOutput(s.config, s.output)
	} else {
		s.audioEngine = NewAudioEngine(s.config)
	}
	return nil
}

// Start implements Service
// A device failure disables audio and is logged, not returned
func (s *AudioService) Start() error {
	if s.audioEngine == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.audioEngine.Start(); err != nil {
		s.disabled.Store(true)
		s.log.Warn("audio disabled", zap.Error(err))
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.audioEngine != nil {
		s.audioEngine.Stop()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Engine returns the underlying AudioEngine, nil before Init
func (s *AudioService) Engine() *AudioEngine {
	return s.audioEngine
}

// Player returns the engine as a Player; nil before Init
// A silent engine is still returned so mute toggles keep working
func (s *AudioService) Player() Player {
	if s.audioEngine == nil {
		return nil
	}
	return s.audioEngine
}

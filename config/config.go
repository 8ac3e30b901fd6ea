package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/tabletennis/audio"
	"github.com/lixenwraith/tabletennis/constant"
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/system"
)

// Environment overrides, applied after the file
const (
	EnvAudioEnabled  = "TABLETENNIS_AUDIO_ENABLED"
	EnvMasterVolume  = "TABLETENNIS_MASTER_VOLUME"
	EnvSpectateAddr  = "TABLETENNIS_SPECTATE_ADDR"
	DefaultLogPath   = "logs/tabletennis.log"
	DefaultSpectator = "127.0.0.1:7780"
)

var (
	ErrInvalidTickRate   = errors.New("tick_rate must be positive")
	ErrInvalidWinScore   = errors.New("win_score must be positive")
	ErrInvalidSampleRate = errors.New("sample_rate must be positive")
	ErrInvalidInterval   = errors.New("spawn intervals must be positive")
	ErrInvalidSendRate   = errors.New("send_rate must be positive")
)

// Duration decodes TOML strings such as "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Game is the [game] section
type Game struct {
	Seed             uint64   `toml:"seed"`
	WinScore         int      `toml:"win_score"`
	TickRate         int      `toml:"tick_rate"`
	PowerUpInterval  Duration `toml:"powerup_interval"`
	ObstacleInterval Duration `toml:"obstacle_interval"`
	SpawnsEnabled    bool     `toml:"spawns_enabled"`
}

// Audio is the [audio] section
type Audio struct {
	Enabled bool `toml:"enabled"`
	// MasterVolume is 0-100
	MasterVolume int `toml:"master_volume"`
	SampleRate   int `toml:"sample_rate"`
}

// Spectate is the [spectate] section
type Spectate struct {
	Enabled  bool   `toml:"enabled"`
	Address  string `toml:"address"`
	SendRate int    `toml:"send_rate"`
}

// Log is the [log] section
type Log struct {
	Debug bool   `toml:"debug"`
	Path  string `toml:"path"`
}

// Config is the host configuration
type Config struct {
	Game     Game     `toml:"game"`
	Audio    Audio    `toml:"audio"`
	Spectate Spectate `toml:"spectate"`
	Log      Log      `toml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: Game{
			WinScore:         constant.WinScore,
			TickRate:         constant.DefaultTickRate,
			PowerUpInterval:  Duration{constant.PowerUpSpawnInterval},
			ObstacleInterval: Duration{constant.ObstacleSpawnInterval},
			SpawnsEnabled:    true,
		},
		Audio: Audio{
			Enabled:      false,
			MasterVolume: 50,
			SampleRate:   constant.AudioSampleRate,
		},
		Spectate: Spectate{
			Address:  DefaultSpectator,
			SendRate: 20,
		},
		Log: Log{
			Path: DefaultLogPath,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode %s: unknown key %q", path, undecoded[0].String())
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults without environment overrides
func Decode(text string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from lookup; unparsable values are ignored
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = n
		}
	}
	if v, ok := lookup(EnvSpectateAddr); ok && v != "" {
		c.Spectate.Address = v
		c.Spectate.Enabled = true
	}
}

// Validate rejects unusable values and clamps volume into 0-100
func (c *Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	if c.Game.WinScore <= 0 {
		return ErrInvalidWinScore
	}
	if c.Game.PowerUpInterval.Duration <= 0 || c.Game.ObstacleInterval.Duration <= 0 {
		return ErrInvalidInterval
	}
	if c.Audio.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if c.Spectate.SendRate <= 0 {
		return ErrInvalidSendRate
	}
	c.Audio.MasterVolume = max(0, min(100, c.Audio.MasterVolume))
	return nil
}

// TickInterval is the loop frame interval
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.TickRate)
}

// SendInterval is the spectator frame interval
func (c *Config) SendInterval() time.Duration {
	return time.Second / time.Duration(c.Spectate.SendRate)
}

// MatchOptions converts the [game] section; logger, registry and queue are left to the caller
func (c *Config) MatchOptions() game.Options {
	opts := game.DefaultOptions()
	opts.Seed = c.Game.Seed
	opts.WinScore = c.Game.WinScore
	opts.Effects = system.Options{
		PowerUpInterval:  c.Game.PowerUpInterval.Duration,
		ObstacleInterval: c.Game.ObstacleInterval.Duration,
		SpawnsEnabled:    c.Game.SpawnsEnabled,
	}
	return opts
}

// AudioConfig converts the [audio] section
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.MasterVolume) / 100
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// Write encodes c as TOML to path
func (c *Config) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

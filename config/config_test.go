package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.Game.WinScore != 11 {
		t.Errorf("Expected win score 11, got %d", cfg.Game.WinScore)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("Expected 60Hz tick, got %v", cfg.TickInterval())
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio muted by default")
	}
}

func TestDecodeSections(t *testing.T) {
	cfg, err := Decode(`
[game]
seed = 42
win_score = 5
tick_rate = 120
powerup_interval = "10s"
obstacle_interval = "15s"
spawns_enabled = false

[audio]
enabled = true
master_volume = 80

[spectate]
enabled = true
address = ":9000"
send_rate = 10

[log]
debug = true
`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Game.Seed != 42 || cfg.Game.WinScore != 5 || cfg.Game.TickRate != 120 {
		t.Errorf("Expected game section applied, got %+v", cfg.Game)
	}
	if cfg.Game.PowerUpInterval.Duration != 10*time.Second {
		t.Errorf("Expected powerup interval 10s, got %v", cfg.Game.PowerUpInterval)
	}
	if cfg.Game.SpawnsEnabled {
		t.Error("Expected spawns disabled")
	}
	if !cfg.Audio.Enabled || cfg.Audio.MasterVolume != 80 {
		t.Errorf("Expected audio section applied, got %+v", cfg.Audio)
	}
	// Unset keys keep defaults
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
	if cfg.SendInterval() != 100*time.Millisecond {
		t.Errorf("Expected 100ms send interval, got %v", cfg.SendInterval())
	}
	if !cfg.Log.Debug || cfg.Log.Path != DefaultLogPath {
		t.Errorf("Expected log section applied, got %+v", cfg.Log)
	}

	opts := cfg.MatchOptions()
	if opts.Seed != 42 || opts.WinScore != 5 || opts.Effects.ObstacleInterval != 15*time.Second {
		t.Errorf("Expected match options from config, got %+v", opts)
	}
	ac := cfg.AudioConfig()
	if !ac.Enabled || ac.MasterVolume != 0.8 {
		t.Errorf("Expected audio config enabled at 0.8, got %v %v", ac.Enabled, ac.MasterVolume)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"tick rate", func(c *Config) { c.Game.TickRate = 0 }, ErrInvalidTickRate},
		{"win score", func(c *Config) { c.Game.WinScore = -1 }, ErrInvalidWinScore},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, ErrInvalidSampleRate},
		{"interval", func(c *Config) { c.Game.ObstacleInterval.Duration = 0 }, ErrInvalidInterval},
		{"send rate", func(c *Config) { c.Spectate.SendRate = 0 }, ErrInvalidSendRate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.edit(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateClampsVolume(t *testing.T) {
	cfg := Default()
	cfg.Audio.MasterVolume = 150
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Audio.MasterVolume != 100 {
		t.Errorf("Expected volume clamped to 100, got %d", cfg.Audio.MasterVolume)
	}
	cfg.Audio.MasterVolume = -5
	cfg.Validate()
	if cfg.Audio.MasterVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %d", cfg.Audio.MasterVolume)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAudioEnabled: "true",
		EnvMasterVolume: "75",
		EnvSpectateAddr: ":8181",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled from env")
	}
	if cfg.Audio.MasterVolume != 75 {
		t.Errorf("Expected volume 75, got %d", cfg.Audio.MasterVolume)
	}
	if !cfg.Spectate.Enabled || cfg.Spectate.Address != ":8181" {
		t.Errorf("Expected spectate enabled on :8181, got %+v", cfg.Spectate)
	}
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		return "not-a-number", true
	})
	if cfg.Audio.Enabled {
		t.Error("Expected audio unchanged on invalid bool")
	}
	if cfg.Audio.MasterVolume != 50 {
		t.Errorf("Expected volume unchanged, got %d", cfg.Audio.MasterVolume)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSpectateAddr, "")

	path := filepath.Join(t.TempDir(), "tabletennis.toml")
	if err := os.WriteFile(path, []byte("[game]\nwin_score = 21\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.WinScore != 21 {
		t.Errorf("Expected win score 21, got %d", cfg.Game.WinScore)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[game]\nwinscore = 21\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	t.Setenv(EnvSpectateAddr, "")
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Game.PowerUpInterval.Duration = 12 * time.Second
	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Game.PowerUpInterval.Duration != 12*time.Second {
		t.Errorf("Expected 12s after round trip, got %v", got.Game.PowerUpInterval)
	}
}

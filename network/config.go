package network

import "time"

// Config holds spectator stream configuration
type Config struct {
	// Address to bind, empty disables the stream
	Address string

	// SendInterval is the snapshot broadcast cadence
	SendInterval time.Duration

	// Connection limits
	MaxClients    int
	SendQueueSize int

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration
	PingInterval time.Duration
}

// DefaultConfig returns a disabled stream with production-safe limits
func DefaultConfig() *Config {
	return &Config{
		Address:       "",
		SendInterval:  50 * time.Millisecond,
		MaxClients:    16,
		SendQueueSize: 32,
		WriteTimeout:  5 * time.Second,
		PongTimeout:   30 * time.Second,
		PingInterval:  10 * time.Second,
	}
}

// DebugConfig returns an enabled stream on addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}

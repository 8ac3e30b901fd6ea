package service

// Service is a long-lived host subsystem managed by a Hub
// The hub calls Init on every service in dependency order, then Start, and finally Stop in reverse
type Service interface {
	// Name is the unique key used for Dependencies and Hub.Get
	Name() string

	// Dependencies names services that must be initialized and started first
	Dependencies() []string

	// Init applies configuration passed to Hub.Register
	// Args are service-specific: a mute flag for audio, a *network.Config for the spectator stream
	Init(args ...any) error

	// Start launches background work; a returned error rolls back services already started
	Start() error

	// Stop releases resources; must tolerate repeated calls and calls without Start
	Stop() error
}

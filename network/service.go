package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/core"
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/status"
)

// SpectatePath is the websocket endpoint
const SpectatePath = "/spectate"

var ErrAlreadyRunning = errors.New("spectator stream already running")

// Source provides the latest published snapshot, satisfied by *game.Match
type Source interface {
	Latest() *game.Snapshot
}

// Service streams match snapshots to websocket spectators as a hub-managed service
type Service struct {
	config   *Config
	source   Source
	log      *zap.Logger
	upgrader websocket.Upgrader
	peers    *peerSet

	server   *http.Server
	listener net.Listener

	// last is the snapshot most recently broadcast, compared by identity
	last *game.Snapshot
	seq  atomic.Uint32

	statClients *atomic.Int64
	statSent    *atomic.Int64
	statDropped *atomic.Int64

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
	// disabled is set when no address is configured
	disabled atomic.Bool
}

// NewService creates a spectator service (disabled until Init receives an address)
// reg nil skips metrics; log nil discards
func NewService(source Source, log *zap.Logger, reg *status.Registry) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Service{
		config: DefaultConfig(),
		source: source,
		log:    log.Named("spectate"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		statClients: reg.Ints.Get("spectate.clients"),
		statSent:    reg.Ints.Get("spectate.frames"),
		statDropped: reg.Ints.Get("spectate.dropped"),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "spectate"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config (optional, overrides default)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if cfg, ok := args[0].(*Config); ok && cfg != nil {
			s.config = cfg
		}
	}
	if s.config.SendInterval <= 0 {
		s.config.SendInterval = DefaultConfig().SendInterval
	}
	if s.config.SendQueueSize <= 0 {
		s.config.SendQueueSize = DefaultConfig().SendQueueSize
	}
	s.peers = newPeerSet(s.config.MaxClients)
	s.disabled.Store(s.config.Address == "")
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.peers == nil {
		return nil
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("listen %s: %w", s.config.Address, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.stopCh = make(chan struct{})

	s.wg.Add(2)
	core.Go(func() {
		defer s.wg.Done()
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("serve failed", zap.Error(err))
		}
	})
	core.Go(func() {
		defer s.wg.Done()
		s.broadcastLoop()
	})

	s.log.Info("spectator stream listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	close(s.stopCh)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)

	// Hijacked websocket connections are not closed by Shutdown
	s.peers.closeAll(func(p *Peer) { p.goodbye(s.config.WriteTimeout) })
	s.statClients.Store(0)
	s.wg.Wait()

	if err != nil {
		return fmt.Errorf("shutdown spectator stream: %w", err)
	}
	return nil
}

// Handler returns the HTTP handler serving SpectatePath
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(SpectatePath, s.serveSpectator)
	return mux
}

// Addr returns the bound address, empty when not listening
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsRunning returns true if the stream is listening
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// IsDisabled returns true if no address was configured
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// PeerCount returns connected spectator count
func (s *Service) PeerCount() int {
	if s.peers == nil {
		return 0
	}
	return s.peers.count()
}

// Stats returns frames queued and peers dropped for slowness
func (s *Service) Stats() (sent, dropped uint64) {
	if s.peers == nil {
		return 0, 0
	}
	return s.peers.sent.Load(), s.peers.dropped.Load()
}

func (s *Service) serveSpectator(w http.ResponseWriter, r *http.Request) {
	if s.peers == nil {
		http.Error(w, "spectator stream not initialized", http.StatusServiceUnavailable)
		return
	}
	if s.config.MaxClients > 0 && s.peers.count() >= s.config.MaxClients {
		http.Error(w, ErrTooManyClients.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("upgrade failed", zap.Error(err))
		return
	}

	p := newPeer(s.peers.nextPeerID(), conn, s.config.SendQueueSize)
	if err := s.peers.add(p); err != nil {
		p.goodbye(s.config.WriteTimeout)
		p.Close()
		return
	}
	s.statClients.Store(int64(s.peers.count()))
	s.log.Info("spectator connected", zap.Uint32("peer", uint32(p.ID)), zap.String("addr", p.Addr))

	// Hello and the current snapshot go out before the first broadcast
	s.sendTo(p, &Frame{Type: MsgHello, PeerID: uint32(p.ID)})
	if snap := s.source.Latest(); snap != nil {
		s.sendTo(p, &Frame{Type: MsgSnapshot, Snapshot: snap})
	}

	core.Go(func() { p.writeLoop(s.config) })
	core.Go(func() {
		p.readLoop(s.config)
		s.peers.remove(p.ID)
		s.statClients.Store(int64(s.peers.count()))
		s.log.Info("spectator disconnected", zap.Uint32("peer", uint32(p.ID)))
	})
}

func (s *Service) sendTo(p *Peer, f *Frame) {
	f.Seq = s.seq.Add(1)
	b, err := f.Encode()
	if err != nil {
		s.log.Error("frame encode failed", zap.Error(err))
		return
	}
	p.Send(b)
}

func (s *Service) broadcastLoop() {
	ticker := time.NewTicker(s.config.SendInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.BroadcastLatest()
		}
	}
}

// BroadcastLatest sends the latest snapshot if it changed since the last call
// Returns false when there was nothing new to send
func (s *Service) BroadcastLatest() bool {
	if s.source == nil || s.peers == nil {
		return false
	}
	snap := s.source.Latest()
	if snap == nil || snap == s.last {
		return false
	}
	s.last = snap

	if s.peers.count() == 0 {
		return false
	}

	f := &Frame{Type: MsgSnapshot, Seq: s.seq.Add(1), Snapshot: snap}
	b, err := f.Encode()
	if err != nil {
		s.log.Error("snapshot encode failed", zap.Error(err))
		return false
	}

	if dropped := s.peers.broadcast(b); dropped > 0 {
		s.log.Warn("dropped slow spectators", zap.Int("count", dropped))
		s.statClients.Store(int64(s.peers.count()))
	}
	s.statSent.Add(1)
	s.statDropped.Store(int64(s.peers.dropped.Load()))
	return true
}

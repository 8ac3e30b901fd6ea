package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// Peer is one spectator connection
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano

	conn   *websocket.Conn
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, sendQueueSize int) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues an encoded frame
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(b []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}
	select {
	case p.sendCh <- b:
		return true
	default:
		return false
	}
}

// Close stops both loops and the connection
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		if p.conn != nil {
			p.conn.Close()
		}
	})
}

// Done is closed once the peer is closed
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop discards inbound data, tracking liveness through pongs
// Spectators are receive-only; any read error ends the connection
func (p *Peer) readLoop(cfg *Config) {
	defer p.Close()

	p.conn.SetReadLimit(512)
	p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(cfg.PongTimeout))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
	}
}

// writeLoop sends queued frames and periodic pings
func (p *Peer) writeLoop(cfg *Config) {
	ping := time.NewTicker(cfg.PingInterval)
	defer func() {
		ping.Stop()
		p.Close()
	}()

	for {
		select {
		case <-p.closeCh:
			return
		case b := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				return
			}
		case <-ping.C:
			p.conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// goodbye writes a close frame directly, used during shutdown
func (p *Peer) goodbye(timeout time.Duration) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
	p.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(timeout))
}

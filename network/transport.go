package network

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
)

var ErrTooManyClients = errors.New("spectator limit reached")

// peerSet tracks connected spectators
// Broadcast never blocks; a peer whose queue is full is dropped
type peerSet struct {
	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	max      int
	nextID   atomic.Uint32
	sent     atomic.Uint64
	dropped  atomic.Uint64
	accepted atomic.Uint64
}

func newPeerSet(max int) *peerSet {
	return &peerSet{
		peers: make(map[PeerID]*Peer),
		max:   max,
	}
}

// nextPeerID allocates IDs starting at 1
func (ps *peerSet) nextPeerID() PeerID {
	return PeerID(ps.nextID.Add(1))
}

func (ps *peerSet) add(p *Peer) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.max > 0 && len(ps.peers) >= ps.max {
		return ErrTooManyClients
	}
	ps.peers[p.ID] = p
	ps.accepted.Add(1)
	return nil
}

func (ps *peerSet) remove(id PeerID) {
	ps.mu.Lock()
	delete(ps.peers, id)
	ps.mu.Unlock()
}

// broadcast queues b on every peer and returns the number of peers dropped
func (ps *peerSet) broadcast(b []byte) int {
	var slow []*Peer

	ps.mu.RLock()
	for _, p := range ps.peers {
		if p.Send(b) {
			ps.sent.Add(1)
		} else {
			slow = append(slow, p)
		}
	}
	ps.mu.RUnlock()

	for _, p := range slow {
		p.Close()
		ps.remove(p.ID)
		ps.dropped.Add(1)
	}
	return len(slow)
}

func (ps *peerSet) count() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return len(ps.peers)
}

// ids returns connected peer IDs in ascending order
func (ps *peerSet) ids() []PeerID {
	ps.mu.RLock()
	out := make([]PeerID, 0, len(ps.peers))
	for id := range ps.peers {
		out = append(out, id)
	}
	ps.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// closeAll empties the set, calling fn on each peer before closing it
func (ps *peerSet) closeAll(fn func(*Peer)) {
	ps.mu.Lock()
	peers := ps.peers
	ps.peers = make(map[PeerID]*Peer)
	ps.mu.Unlock()

	for _, p := range peers {
		if fn != nil {
			fn(p)
		}
		p.Close()
	}
}

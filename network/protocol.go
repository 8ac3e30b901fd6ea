package network

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/tabletennis/game"
)

// MessageType identifies the semantic meaning of a frame
type MessageType uint8

const (
	MsgHello    MessageType = 0x02 // First frame on a connection, carries the peer ID
	MsgSnapshot MessageType = 0x11 // Full match snapshot
)

var ErrEmptyFrame = errors.New("empty frame")

// Frame is one websocket binary message
type Frame struct {
	Type     MessageType    `msgpack:"type"`
	Seq      uint32         `msgpack:"seq"`
	PeerID   uint32         `msgpack:"peer,omitempty"`
	Snapshot *game.Snapshot `msgpack:"snap,omitempty"`
}

// Encode marshals a frame with msgpack
func (f *Frame) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return b, nil
}

// DecodeFrame unmarshals a frame produced by Encode
func DecodeFrame(b []byte) (*Frame, error) {
	if len(b) == 0 {
		return nil, ErrEmptyFrame
	}
	var f Frame
	if err := msgpack.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &f, nil
}

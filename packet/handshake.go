package packet

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/text"
	"github.com/Birdmc/bird-server/varint"
)

// NextState is Handshake's declared next-state enum: a VarInt key with
// implicit sequential values (1=Status, 2=Login), matching the real
// protocol's handshake next-state field.
type NextState int32

const (
	NextStateStatus NextState = 1
	NextStateLogin  NextState = 2
)

// Handshake is the sole Handshake-state, server-bound packet: protocol
// version, server address/port the client connected to, and the requested
// next state.
type Handshake struct {
	Base
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       NextState
}

const (
	handshakeID    = 0x00
	handshakeState = format.StateHandshake
	handshakeBound = format.BoundServer
)

// NewHandshake constructs a Handshake with its compile-time identity fields set.
func NewHandshake(protocolVersion int32, addr string, port uint16, next NextState) Handshake {
	return Handshake{
		Base:            Base{PacketID: handshakeID, PacketState: handshakeState, PacketBound: handshakeBound},
		ProtocolVersion: protocolVersion,
		ServerAddress:   addr,
		ServerPort:      port,
		NextState:       next,
	}
}

// ReadHandshake decodes a Handshake body (the id has already been consumed
// by the caller per the transport framing contract).
func ReadHandshake(c *cursor.Cursor) (Handshake, error) {
	var h Handshake
	h.Base = Base{PacketID: handshakeID, PacketState: handshakeState, PacketBound: handshakeBound}

	v, err := varint.ReadI32(c)
	if err != nil {
		return h, err
	}
	h.ProtocolVersion = v

	addr, err := text.ReadDefault(c)
	if err != nil {
		return h, err
	}
	h.ServerAddress = addr

	port, err := proto.ReadU16(c)
	if err != nil {
		return h, err
	}
	h.ServerPort = port

	next, err := varint.ReadI32(c)
	if err != nil {
		return h, err
	}
	h.NextState = NextState(next)

	return h, nil
}

// WriteHandshake encodes h's fields in declaration order.
func WriteHandshake(w cursor.Writer, h Handshake) error {
	if err := varint.WriteI32(w, h.ProtocolVersion); err != nil {
		return err
	}
	if err := text.WriteDefault(w, h.ServerAddress); err != nil {
		return err
	}
	if err := proto.WriteU16(w, h.ServerPort); err != nil {
		return err
	}

	return varint.WriteI32(w, int32(h.NextState))
}

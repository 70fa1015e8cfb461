// Package packet implements the per-packet framing contract: every packet
// type carries a compile-time (id, state, bound) identity and derives its
// read/write/size from its field declarations.
package packet

import "github.com/Birdmc/bird-server/format"

// Packet is implemented by every concrete packet type. ID, State, and Bound
// are compile-time identity, not wire data — the transport layer uses them
// to route a decoded payload to the right packet type and to pick the
// outbound id a value should be framed with.
type Packet interface {
	ID() int32
	State() format.State
	Bound() format.Bound
}

// Base is embedded by concrete packet types to satisfy the compile-time
// identity trio without repeating the three methods on every type.
type Base struct {
	PacketID    int32
	PacketState format.State
	PacketBound format.Bound
}

func (b Base) ID() int32           { return b.PacketID }
func (b Base) State() format.State { return b.PacketState }
func (b Base) Bound() format.Bound { return b.PacketBound }

package packet

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/variant"
)

// WorldEventKind names a semantic world event, mapping both ways to the
// wire's (event_id:i32, data:i32) pair.
type WorldEventKind int

const (
	WorldEventDispense WorldEventKind = iota
	WorldEventPlayRecord
	WorldEventWitherSpawns
	WorldEventSmoke
	WorldEventBlockBreak
	WorldEventSplashPotion
)

// worldEventID is the wire event_id for each WorldEventKind.
var worldEventID = map[WorldEventKind]int32{
	WorldEventDispense:     1000,
	WorldEventPlayRecord:   1010,
	WorldEventWitherSpawns: 1023,
	WorldEventSmoke:        2000,
	WorldEventBlockBreak:   2001,
	WorldEventSplashPotion: 2002,
}

// worldEventKindByID reverses worldEventID for decoding.
var worldEventKindByID = func() map[int32]WorldEventKind {
	out := make(map[int32]WorldEventKind, len(worldEventID))
	for k, v := range worldEventID {
		out[v] = k
	}

	return out
}()

// WorldEvent is the WorldEvent (0x21) packet: a semantic event, its integer
// data payload (record id / direction / block state / color depending on
// the event kind), a block position, and a disable-relative-volume flag.
type WorldEvent struct {
	Base
	Event                 WorldEventKind
	Data                  int32
	Location              variant.BlockPosition
	DisableRelativeVolume bool
}

const (
	worldEventPacketID = 0x21
	worldEventState    = format.StatePlay
	worldEventBound    = format.BoundClient
)

// ReadWorldEvent decodes a WorldEvent body in declaration order.
func ReadWorldEvent(c *cursor.Cursor) (WorldEvent, error) {
	var e WorldEvent
	e.Base = Base{PacketID: worldEventPacketID, PacketState: worldEventState, PacketBound: worldEventBound}

	id, err := proto.ReadI32(c)
	if err != nil {
		return e, err
	}
	kind, ok := worldEventKindByID[id]
	if !ok {
		return e, errs.ErrBadWorldEventID
	}
	e.Event = kind

	if e.Data, err = proto.ReadI32(c); err != nil {
		return e, err
	}
	if e.Location, err = variant.ReadBlockPosition(c); err != nil {
		return e, err
	}
	e.DisableRelativeVolume, err = proto.ReadBool(c)

	return e, err
}

// WriteWorldEvent encodes e's fields in declaration order, mapping e.Event
// back to its wire event_id.
func WriteWorldEvent(w cursor.Writer, e WorldEvent) error {
	id, ok := worldEventID[e.Event]
	if !ok {
		return errs.ErrBadWorldEventID
	}
	if err := proto.WriteI32(w, id); err != nil {
		return err
	}
	if err := proto.WriteI32(w, e.Data); err != nil {
		return err
	}
	if err := variant.WriteBlockPosition(w, e.Location); err != nil {
		return err
	}

	return proto.WriteBool(w, e.DisableRelativeVolume)
}

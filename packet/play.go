package packet

import (
	"github.com/google/uuid"

	"github.com/Birdmc/bird-server/chat"
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/text"
	"github.com/Birdmc/bird-server/variant"
	"github.com/Birdmc/bird-server/varint"
)

// KeepAlive (client-bound 0x1E / server-bound 0x11) carries an opaque i64
// round-trip id; the two directions share a body shape and differ only in
// id/bound, so one struct serves both with the identity set by the caller.
type KeepAlive struct {
	Base
	ID int64
}

func NewKeepAliveClientBound(id int64) KeepAlive {
	return KeepAlive{Base: Base{PacketID: 0x1E, PacketState: format.StatePlay, PacketBound: format.BoundClient}, ID: id}
}

func NewKeepAliveServerBound(id int64) KeepAlive {
	return KeepAlive{Base: Base{PacketID: 0x11, PacketState: format.StatePlay, PacketBound: format.BoundServer}, ID: id}
}

func ReadKeepAlive(c *cursor.Cursor, base Base) (KeepAlive, error) {
	id, err := varint.ReadI64(c)
	return KeepAlive{Base: base, ID: id}, err
}

func WriteKeepAlive(w cursor.Writer, k KeepAlive) error {
	return varint.WriteI64(w, k.ID)
}

// Disconnect (0x19, play, client-bound) carries the reason as a
// Chat-Component Json payload.
type Disconnect struct {
	Base
	Reason chat.Component
}

const disconnectID = 0x19

func NewDisconnect(reason chat.Component) Disconnect {
	return Disconnect{
		Base:   Base{PacketID: disconnectID, PacketState: format.StatePlay, PacketBound: format.BoundClient},
		Reason: reason,
	}
}

func ReadDisconnect(c *cursor.Cursor) (Disconnect, error) {
	reason, err := variant.ReadJSON[chat.Component](c)
	return Disconnect{
		Base:   Base{PacketID: disconnectID, PacketState: format.StatePlay, PacketBound: format.BoundClient},
		Reason: reason,
	}, err
}

func WriteDisconnect(w cursor.Writer, d Disconnect) error {
	return variant.WriteJSON(w, d.Reason)
}

// ChatMessage (0x33, play, client-bound system-message form) carries a
// Chat-Component and the chat position it should render at (0=chat,
// 1=system, 2=game info), plus the sender's UUID (zero UUID for
// non-player-originated messages).
type ChatMessage struct {
	Base
	Message  chat.Component
	Position int8
	Sender   uuid.UUID
}

const chatMessageID = 0x33

func ReadChatMessage(c *cursor.Cursor) (ChatMessage, error) {
	var m ChatMessage
	m.Base = Base{PacketID: chatMessageID, PacketState: format.StatePlay, PacketBound: format.BoundClient}

	msg, err := variant.ReadJSON[chat.Component](c)
	if err != nil {
		return m, err
	}
	m.Message = msg

	pos, err := proto.ReadI8(c)
	if err != nil {
		return m, err
	}
	m.Position = pos

	sender, err := variant.ReadUUID(c)
	m.Sender = sender

	return m, err
}

func WriteChatMessage(w cursor.Writer, m ChatMessage) error {
	if err := variant.WriteJSON(w, m.Message); err != nil {
		return err
	}
	if err := proto.WriteI8(w, m.Position); err != nil {
		return err
	}

	return variant.WriteUUID(w, m.Sender)
}

// PluginMessage (client-bound 0x18 / server-bound 0x0C) carries a channel
// Identifier followed by a remaining-bytes payload — the classic
// Remaining-length-policy raw array.
type PluginMessage struct {
	Base
	Channel text.Identifier
	Data    []byte
}

func NewPluginMessageClientBound(channel text.Identifier, data []byte) PluginMessage {
	return PluginMessage{
		Base:    Base{PacketID: 0x18, PacketState: format.StatePlay, PacketBound: format.BoundClient},
		Channel: channel,
		Data:    data,
	}
}

func NewPluginMessageServerBound(channel text.Identifier, data []byte) PluginMessage {
	return PluginMessage{
		Base:    Base{PacketID: 0x0C, PacketState: format.StatePlay, PacketBound: format.BoundServer},
		Channel: channel,
		Data:    data,
	}
}

func ReadPluginMessage(c *cursor.Cursor, base Base) (PluginMessage, error) {
	channel, err := text.Read(c)
	if err != nil {
		return PluginMessage{Base: base}, err
	}
	data, err := variant.ReadRawArray(c, variant.Remaining{}, 1)

	return PluginMessage{Base: base, Channel: channel, Data: data}, err
}

func WritePluginMessage(w cursor.Writer, m PluginMessage) error {
	if err := text.Write(w, m.Channel); err != nil {
		return err
	}

	return variant.WriteRawArray(w, variant.Remaining{}, 1, m.Data)
}

// UnloadChunk (0x1A, play, client-bound) names the chunk to discard by its
// (x, z) coordinate pair.
type UnloadChunk struct {
	Base
	ChunkX, ChunkZ int32
}

const unloadChunkID = 0x1A

func NewUnloadChunk(x, z int32) UnloadChunk {
	return UnloadChunk{
		Base:   Base{PacketID: unloadChunkID, PacketState: format.StatePlay, PacketBound: format.BoundClient},
		ChunkX: x, ChunkZ: z,
	}
}

func ReadUnloadChunk(c *cursor.Cursor) (UnloadChunk, error) {
	var u UnloadChunk
	u.Base = Base{PacketID: unloadChunkID, PacketState: format.StatePlay, PacketBound: format.BoundClient}

	x, err := proto.ReadI32(c)
	if err != nil {
		return u, err
	}
	u.ChunkX = x

	z, err := proto.ReadI32(c)
	u.ChunkZ = z

	return u, err
}

func WriteUnloadChunk(w cursor.Writer, u UnloadChunk) error {
	if err := proto.WriteI32(w, u.ChunkX); err != nil {
		return err
	}

	return proto.WriteI32(w, u.ChunkZ)
}

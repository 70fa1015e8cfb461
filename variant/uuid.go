package variant

import (
	"github.com/google/uuid"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
)

// ReadUUID reads 16 raw bytes and interprets them as an RFC-4122 UUID in
// big-endian byte order, matching the protocol's player/entity UUID wire
// form.
func ReadUUID(c *cursor.Cursor) (uuid.UUID, error) {
	b, err := c.TakeBytes(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	copy(id[:], b)

	return id, nil
}

// WriteUUID writes id's 16 bytes in big-endian byte order.
func WriteUUID(w cursor.Writer, id uuid.UUID) error {
	return w.WriteBytes(id[:])
}

// UUIDSize is the fixed 16-byte SIZE of the Uuid variant.
func UUIDSize() proto.Size { return proto.Fixed(16) }

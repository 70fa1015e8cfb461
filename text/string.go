// Package text implements the protocol's length-prefixed UTF-8 string codec
// and the Identifier ("namespace:path") boundary type. NBT strings use a
// different length prefix and a different encoding (u16 big-endian length,
// Java CESU-8) and live in the nbt package instead — keeping the two string
// codecs in separate packages is deliberate: mixing CESU-8 and UTF-8 is the
// most common interop bug in this protocol.
package text

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/varint"
)

// Limit constants for the two string classes the protocol defines.
const (
	DefaultLimit = 32767
	ChatLimit    = 262144
)

// ReadString reads a VarInt byte-length prefix followed by that many UTF-8
// bytes, failing if the prefix exceeds limit.
func ReadString(c *cursor.Cursor, limit int) (string, error) {
	n, err := varint.ReadI32(c)
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > limit {
		return "", errs.ErrStringTooLong
	}
	b, err := c.TakeBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// WriteString writes a VarInt byte-length prefix followed by v's UTF-8
// bytes, failing if v's byte length exceeds limit.
func WriteString(w cursor.Writer, limit int, v string) error {
	if len(v) > limit {
		return errs.ErrStringTooLong
	}
	if err := varint.WriteI32(w, int32(len(v))); err != nil { //nolint:gosec
		return err
	}

	return w.WriteBytes([]byte(v))
}

// Size returns the SIZE contract for a length-limited string: [1, limit*4 +
// header], where 4 bytes is the UTF-8 worst-case expansion per character and
// header is VarInt's max header length.
func Size(limit int) proto.Size {
	header := varint.Size()
	return proto.Size{Min: header.Min, Max: header.Max + uint32(limit)*4} //nolint:gosec
}

// ReadDefault reads a string bounded by DefaultLimit.
func ReadDefault(c *cursor.Cursor) (string, error) { return ReadString(c, DefaultLimit) }

// WriteDefault writes a string bounded by DefaultLimit.
func WriteDefault(w cursor.Writer, v string) error { return WriteString(w, DefaultLimit, v) }

// ReadChat reads a string bounded by ChatLimit, used for chat/JSON payloads.
func ReadChat(c *cursor.Cursor) (string, error) { return ReadString(c, ChatLimit) }

// WriteChat writes a string bounded by ChatLimit.
func WriteChat(w cursor.Writer, v string) error { return WriteString(w, ChatLimit, v) }

// Package varint implements the protocol's VarInt and VarLong encodings:
// 7-bit little-endian group continuation encoding of signed 32/64-bit
// integers. The write-side loop mirrors the 7-bit-group accumulation the
// teacher's encoding.TimestampDeltaEncoder uses via
// encoding/binary.PutUvarint, adapted here to cap group count per the
// protocol's fixed 5-byte (32-bit) / 10-byte (64-bit) maximum instead of
// accepting an unbounded LEB128 stream.
package varint

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/proto"
)

const (
	// MaxGroupsI32 is ceil(32/7): the most 7-bit groups a valid VarInt can use.
	MaxGroupsI32 = 5
	// MaxGroupsI64 is ceil(64/7): the most 7-bit groups a valid VarLong can use.
	MaxGroupsI64 = 10

	continueBit = 0x80
	dataBits    = 0x7f
)

// ReadI32 decodes a VarInt: 7-bit groups accumulate into an unsigned
// 32-bit value until a group's high bit is clear, or fail if more than
// MaxGroupsI32 groups arrive.
func ReadI32(c *cursor.Cursor) (int32, error) {
	var result uint32
	for i := 0; i < MaxGroupsI32; i++ {
		b, err := c.TakeByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&dataBits) << (7 * i)
		if b&continueBit == 0 {
			return int32(result), nil //nolint:gosec
		}
	}

	return 0, errs.ErrVarNumberTooBig
}

// WriteI32 encodes v as a VarInt: 7-bit groups of the unsigned
// reinterpretation of v, emitted until the remaining bits are zero.
func WriteI32(w cursor.Writer, v int32) error {
	u := uint32(v) //nolint:gosec
	for {
		b := byte(u & dataBits)
		u >>= 7
		if u != 0 {
			if err := w.WriteByte(b | continueBit); err != nil {
				return err
			}

			continue
		}

		return w.WriteByte(b)
	}
}

// SizeI32 returns the byte length a VarInt encoding of v would occupy.
func SizeI32(v int32) int {
	u := uint32(v) //nolint:gosec
	n := 1
	for u >= continueBit {
		u >>= 7
		n++
	}

	return n
}

// Size is the SIZE contract for VarInt: [1,5].
func Size() proto.Size { return proto.Size{Min: 1, Max: MaxGroupsI32} }

// ReadI64 decodes a VarLong analogously to ReadI32, over 64 bits and up to
// MaxGroupsI64 groups.
func ReadI64(c *cursor.Cursor) (int64, error) {
	var result uint64
	for i := 0; i < MaxGroupsI64; i++ {
		b, err := c.TakeByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&dataBits) << (7 * i)
		if b&continueBit == 0 {
			return int64(result), nil //nolint:gosec
		}
	}

	return 0, errs.ErrVarNumberTooBig
}

// WriteI64 encodes v as a VarLong.
func WriteI64(w cursor.Writer, v int64) error {
	u := uint64(v) //nolint:gosec
	for {
		b := byte(u & dataBits)
		u >>= 7
		if u != 0 {
			if err := w.WriteByte(b | continueBit); err != nil {
				return err
			}

			continue
		}

		return w.WriteByte(b)
	}
}

// SizeI64 returns the byte length a VarLong encoding of v would occupy.
func SizeI64(v int64) int {
	u := uint64(v) //nolint:gosec
	n := 1
	for u >= continueBit {
		u >>= 7
		n++
	}

	return n
}

// SizeLong is the SIZE contract for VarLong: [1,10].
func SizeLong() proto.Size { return proto.Size{Min: 1, Max: MaxGroupsI64} }

// ReadNarrow decodes a VarInt and casts it to int32 or a narrower signed
// integer type, e.g. VarInt-encoded entity count stored in an int16 field.
func ReadNarrow[T ~int8 | ~int16 | ~int32](c *cursor.Cursor) (T, error) {
	v, err := ReadI32(c)
	return T(v), err
}

// WriteNarrow encodes v (widened to int32) as a VarInt.
func WriteNarrow[T ~int8 | ~int16 | ~int32](w cursor.Writer, v T) error {
	return WriteI32(w, int32(v))
}

// ReadBool decodes a VarInt and interprets it as a bool via the 1-byte bool
// rule.
func ReadBool(c *cursor.Cursor) (bool, error) {
	v, err := ReadI32(c)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// WriteBool encodes a bool as VarInt(0) or VarInt(1).
func WriteBool(w cursor.Writer, v bool) error {
	if v {
		return WriteI32(w, 1)
	}

	return WriteI32(w, 0)
}

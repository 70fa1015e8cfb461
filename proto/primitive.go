package proto

import (
	"math"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/endian"
)

// wireEndian is the byte order of every fixed-width protocol primitive.
// The protocol always fixes big-endian for every primitive, so this is a
// single package-level constant rather than a per-call parameter.
var wireEndian = endian.GetBigEndianEngine()

// ReadBool reads a 1-byte bool: 0 decodes to false, any other value to true.
func ReadBool(c *cursor.Cursor) (bool, error) {
	b, err := c.TakeByte()
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

// WriteBool writes a 1-byte bool: true as 1, false as 0.
func WriteBool(w cursor.Writer, v bool) error {
	if v {
		return w.WriteByte(1)
	}

	return w.WriteByte(0)
}

// SizeBool is the fixed SIZE of a bool.
func SizeBool() Size { return Fixed(1) }

// ReadI8 reads a signed byte.
func ReadI8(c *cursor.Cursor) (int8, error) {
	b, err := c.TakeByte()
	return int8(b), err
}

// WriteI8 writes a signed byte.
func WriteI8(w cursor.Writer, v int8) error {
	return w.WriteByte(byte(v))
}

// ReadU8 reads an unsigned byte.
func ReadU8(c *cursor.Cursor) (uint8, error) {
	return c.TakeByte()
}

// WriteU8 writes an unsigned byte.
func WriteU8(w cursor.Writer, v uint8) error {
	return w.WriteByte(v)
}

// SizeI8/SizeU8 are the fixed 1-byte SIZE of a byte-wide integer.
func SizeI8() Size { return Fixed(1) }
func SizeU8() Size { return Fixed(1) }

// ReadI16 reads a big-endian two's-complement 16-bit integer.
func ReadI16(c *cursor.Cursor) (int16, error) {
	b, err := c.TakeBytes(2)
	if err != nil {
		return 0, err
	}

	return int16(wireEndian.Uint16(b)), nil
}

// WriteI16 writes a big-endian two's-complement 16-bit integer.
func WriteI16(w cursor.Writer, v int16) error {
	var buf [2]byte
	wireEndian.PutUint16(buf[:], uint16(v))

	return w.WriteBytes(buf[:])
}

// ReadU16 reads a big-endian unsigned 16-bit integer.
func ReadU16(c *cursor.Cursor) (uint16, error) {
	b, err := c.TakeBytes(2)
	if err != nil {
		return 0, err
	}

	return wireEndian.Uint16(b), nil
}

// WriteU16 writes a big-endian unsigned 16-bit integer.
func WriteU16(w cursor.Writer, v uint16) error {
	var buf [2]byte
	wireEndian.PutUint16(buf[:], v)

	return w.WriteBytes(buf[:])
}

func SizeI16() Size { return Fixed(2) }
func SizeU16() Size { return Fixed(2) }

// ReadI32 reads a big-endian two's-complement 32-bit integer.
func ReadI32(c *cursor.Cursor) (int32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}

	return int32(wireEndian.Uint32(b)), nil
}

// WriteI32 writes a big-endian two's-complement 32-bit integer.
func WriteI32(w cursor.Writer, v int32) error {
	var buf [4]byte
	wireEndian.PutUint32(buf[:], uint32(v))

	return w.WriteBytes(buf[:])
}

// ReadU32 reads a big-endian unsigned 32-bit integer.
func ReadU32(c *cursor.Cursor) (uint32, error) {
	b, err := c.TakeBytes(4)
	if err != nil {
		return 0, err
	}

	return wireEndian.Uint32(b), nil
}

// WriteU32 writes a big-endian unsigned 32-bit integer.
func WriteU32(w cursor.Writer, v uint32) error {
	var buf [4]byte
	wireEndian.PutUint32(buf[:], v)

	return w.WriteBytes(buf[:])
}

func SizeI32() Size { return Fixed(4) }
func SizeU32() Size { return Fixed(4) }

// ReadI64 reads a big-endian two's-complement 64-bit integer.
func ReadI64(c *cursor.Cursor) (int64, error) {
	b, err := c.TakeBytes(8)
	if err != nil {
		return 0, err
	}

	return int64(wireEndian.Uint64(b)), nil
}

// WriteI64 writes a big-endian two's-complement 64-bit integer.
func WriteI64(w cursor.Writer, v int64) error {
	var buf [8]byte
	wireEndian.PutUint64(buf[:], uint64(v))

	return w.WriteBytes(buf[:])
}

// ReadU64 reads a big-endian unsigned 64-bit integer.
func ReadU64(c *cursor.Cursor) (uint64, error) {
	b, err := c.TakeBytes(8)
	if err != nil {
		return 0, err
	}

	return wireEndian.Uint64(b), nil
}

// WriteU64 writes a big-endian unsigned 64-bit integer.
func WriteU64(w cursor.Writer, v uint64) error {
	var buf [8]byte
	wireEndian.PutUint64(buf[:], v)

	return w.WriteBytes(buf[:])
}

func SizeI64() Size { return Fixed(8) }
func SizeU64() Size { return Fixed(8) }

// ReadF32 reads a big-endian IEEE-754 single-precision float.
func ReadF32(c *cursor.Cursor) (float32, error) {
	bits, err := ReadU32(c)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// WriteF32 writes a big-endian IEEE-754 single-precision float.
func WriteF32(w cursor.Writer, v float32) error {
	return WriteU32(w, math.Float32bits(v))
}

// ReadF64 reads a big-endian IEEE-754 double-precision float.
func ReadF64(c *cursor.Cursor) (float64, error) {
	bits, err := ReadU64(c)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// WriteF64 writes a big-endian IEEE-754 double-precision float.
func WriteF64(w cursor.Writer, v float64) error {
	return WriteU64(w, math.Float64bits(v))
}

func SizeF32() Size { return Fixed(4) }
func SizeF64() Size { return Fixed(8) }

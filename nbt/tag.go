// Package nbt implements the Named Binary Tag codec: 13 tag kinds,
// byte/int/long array variants, compound and list containers,
// length-prefixed CESU-8 strings, and a skip-without-allocation mode. There
// is no in-memory "NBT document" type for the common path — typed struct
// decoding drives the compound-decode loop directly into caller fields
// (Decode); a borrowed dynamic decoder (Value, in dynamic.go) exists for the
// rare case where the expected shape is not known ahead of time.
package nbt

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
)

// ReadTagByte reads the u8 tag discriminant at the current position.
func ReadTagByte(c *cursor.Cursor) (format.Tag, error) {
	b, err := proto.ReadU8(c)
	if err != nil {
		return 0, err
	}
	if b > uint8(format.TagLongArray) {
		return 0, errs.ErrBadNbtTag
	}

	return format.Tag(b), nil
}

// WriteTagByte writes a u8 tag discriminant.
func WriteTagByte(w cursor.Writer, t format.Tag) error {
	return proto.WriteU8(w, uint8(t))
}

// Byte/Short/Int/Long/Float/Double payloads are fixed-width big-endian
// values with no framing beyond the preceding tag+name; they reuse the
// proto package's primitive codecs directly.

func ReadByte(c *cursor.Cursor) (int8, error)     { return proto.ReadI8(c) }
func WriteByte(w cursor.Writer, v int8) error     { return proto.WriteI8(w, v) }
func ReadShort(c *cursor.Cursor) (int16, error)   { return proto.ReadI16(c) }
func WriteShort(w cursor.Writer, v int16) error   { return proto.WriteI16(w, v) }
func ReadInt(c *cursor.Cursor) (int32, error)     { return proto.ReadI32(c) }
func WriteInt(w cursor.Writer, v int32) error     { return proto.WriteI32(w, v) }
func ReadLong(c *cursor.Cursor) (int64, error)    { return proto.ReadI64(c) }
func WriteLong(w cursor.Writer, v int64) error    { return proto.WriteI64(w, v) }
func ReadFloat(c *cursor.Cursor) (float32, error) { return proto.ReadF32(c) }
func WriteFloat(w cursor.Writer, v float32) error { return proto.WriteF32(w, v) }
func ReadDouble(c *cursor.Cursor) (float64, error) { return proto.ReadF64(c) }
func WriteDouble(w cursor.Writer, v float64) error { return proto.WriteF64(w, v) }

// ReadByteArray reads an i32 length followed by that many raw bytes (tag 7).
func ReadByteArray(c *cursor.Cursor) ([]byte, error) {
	n, err := proto.ReadI32(c)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.ErrBadCompoundVariable
	}

	return c.TakeBytes(int(n))
}

// WriteByteArray writes an i32 length followed by v's raw bytes.
func WriteByteArray(w cursor.Writer, v []byte) error {
	if err := proto.WriteI32(w, int32(len(v))); err != nil { //nolint:gosec
		return err
	}

	return w.WriteBytes(v)
}

// ReadIntArray reads an i32 length followed by that many big-endian i32s (tag 11).
func ReadIntArray(c *cursor.Cursor) ([]int32, error) {
	n, err := proto.ReadI32(c)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.ErrBadCompoundVariable
	}
	out := make([]int32, n)
	for i := range out {
		v, err := proto.ReadI32(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// WriteIntArray writes an i32 length followed by v's elements as big-endian i32s.
func WriteIntArray(w cursor.Writer, v []int32) error {
	if err := proto.WriteI32(w, int32(len(v))); err != nil { //nolint:gosec
		return err
	}
	for _, x := range v {
		if err := proto.WriteI32(w, x); err != nil {
			return err
		}
	}

	return nil
}

// ReadLongArray reads an i32 length followed by that many big-endian i64s (tag 12).
func ReadLongArray(c *cursor.Cursor) ([]int64, error) {
	n, err := proto.ReadI32(c)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.ErrBadCompoundVariable
	}
	out := make([]int64, n)
	for i := range out {
		v, err := proto.ReadI64(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// WriteLongArray writes an i32 length followed by v's elements as big-endian i64s.
func WriteLongArray(w cursor.Writer, v []int64) error {
	if err := proto.WriteI32(w, int32(len(v))); err != nil { //nolint:gosec
		return err
	}
	for _, x := range v {
		if err := proto.WriteI64(w, x); err != nil {
			return err
		}
	}

	return nil
}

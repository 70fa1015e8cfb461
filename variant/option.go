package variant

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
)

// ReadVariantOption reads a tag:u8 then, if nonzero, a T via the supplied
// variant's readVariant function.
func ReadVariantOption[T any](c *cursor.Cursor, readVariant func(*cursor.Cursor) (T, error)) (*T, error) {
	return proto.ReadOption(c, readVariant)
}

// WriteVariantOption writes a tag:u8 then, if v is non-nil, *v via the
// supplied variant's writeVariant function.
func WriteVariantOption[T any](w cursor.Writer, v *T, writeVariant func(cursor.Writer, T) error) error {
	return proto.WriteOption(w, v, writeVariant)
}

// VariantOptionSize composes the SIZE of ProtocolVariantOption from the
// inner variant's SIZE, identically to proto.OptionSize.
func VariantOptionSize(inner proto.Size) proto.Size { return proto.OptionSize(inner) }

// ReadSizeOption implements ProtocolSizeOption<T, S>: if exactly s bytes
// remain in the cursor, the value is absent (nil); otherwise readT decodes a
// present T. This encodes a trailing optional field that is zero-padded in
// the absent case rather than tagged.
func ReadSizeOption[T any](c *cursor.Cursor, s int, readT func(*cursor.Cursor) (T, error)) (*T, error) {
	if c.Remaining() == s {
		return nil, c.Advance(s)
	}
	v, err := readT(c)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// WriteSizeOption writes s zero bytes if v is nil, otherwise *v via writeT.
func WriteSizeOption[T any](w cursor.Writer, v *T, s int, writeT func(cursor.Writer, T) error) error {
	if v == nil {
		zeros := make([]byte, s)
		return w.WriteBytes(zeros)
	}

	return writeT(w, *v)
}

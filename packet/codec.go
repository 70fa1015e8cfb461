package packet

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/varint"
)

// KeyReverseReader reads a fixed-size-arm enum under key_reverse semantics:
// fields are serialized before the key, so a reader must first carve a
// fixed-size sub-cursor of exactly size bytes (every arm's statically equal
// SIZE), decode the key from the tail of that span via readKey, then
// dispatch to decodeArm with a cursor over the span's field bytes only.
func KeyReverseReader[K comparable](
	c *cursor.Cursor,
	size int,
	readKey func(*cursor.Cursor) (K, error),
	keySize int,
	decodeArm func(key K, fields *cursor.Cursor) (any, error),
) (any, error) {
	span, err := c.TakeBytes(size)
	if err != nil {
		return nil, err
	}
	if keySize > size {
		return nil, errs.ErrKeyReverseSizeMismatch
	}
	fieldBytes := span[:size-keySize]
	keyBytes := span[size-keySize:]

	keyCursor := cursor.New(keyBytes)
	key, err := readKey(keyCursor)
	if err != nil {
		return nil, err
	}

	return decodeArm(key, cursor.New(fieldBytes))
}

// KeyReverseWriter writes an arm's fields via writeFields directly to w,
// then the key via writeKey — the key_reverse ordering (fields before key).
// The number of field bytes an arm writes is not checked here.
func KeyReverseWriter[K any](
	w cursor.Writer,
	key K,
	writeKey func(cursor.Writer, K) error,
	writeFields func(cursor.Writer) error,
) error {
	if err := writeFields(w); err != nil {
		return err
	}

	return writeKey(w, key)
}

// ReadID reads the VarInt packet id that precedes every packet's body, per
// the transport framing contract. The `packet` package itself is not given
// that length prefix — callers are handed a buffer that is already exactly
// one packet's body, and ReadID/WriteID operate on that body's leading id
// field.
func ReadID(c *cursor.Cursor) (int32, error) {
	return varint.ReadI32(c)
}

// WriteID writes a packet id as a VarInt.
func WriteID(w cursor.Writer, id int32) error {
	return varint.WriteI32(w, id)
}

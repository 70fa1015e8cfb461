package proto

import "github.com/Birdmc/bird-server/cursor"

// ReadOption reads a tag:u8 then, if the tag is nonzero, a T via readT. A
// nil *T return means the tag was zero.
func ReadOption[T any](c *cursor.Cursor, readT func(*cursor.Cursor) (T, error)) (*T, error) {
	present, err := ReadBool(c)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := readT(c)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// WriteOption writes a tag:u8 (0 or 1) then, if v is non-nil, *v via writeT.
func WriteOption[T any](w cursor.Writer, v *T, writeT func(cursor.Writer, T) error) error {
	if v == nil {
		return WriteBool(w, false)
	}
	if err := WriteBool(w, true); err != nil {
		return err
	}

	return writeT(w, *v)
}

// OptionSize composes the SIZE of Option<T> from T's SIZE: min is the
// absent case (just the tag byte), max is the present case (tag + T.Max).
func OptionSize(inner Size) Size {
	return Union(Fixed(1), inner.Add(Fixed(1)))
}

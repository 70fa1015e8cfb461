package nbt

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
)

// ReadListHeader reads a list payload's elem-tag byte and i32 count. An
// empty list is permitted to carry TagEnd as its elem tag rather than the
// element type the writer would otherwise have used; callers must accept
// TagEnd when n is 0 and not treat it as a tag mismatch.
func ReadListHeader(c *cursor.Cursor) (format.Tag, int32, error) {
	elemTag, err := ReadTagByte(c)
	if err != nil {
		return 0, 0, err
	}
	n, err := proto.ReadI32(c)
	if err != nil {
		return 0, 0, err
	}
	if n < 0 {
		return 0, 0, errs.ErrBadCompoundVariable
	}

	return elemTag, n, nil
}

// WriteListHeader writes a list's elem-tag byte and i32 count.
func WriteListHeader(w cursor.Writer, elemTag format.Tag, n int) error {
	if err := WriteTagByte(w, elemTag); err != nil {
		return err
	}

	return proto.WriteI32(w, int32(n)) //nolint:gosec
}

// ReadList reads a homogeneous list of wantTag elements using readElem for
// each payload, rejecting a non-empty list whose elem tag does not match
// wantTag.
func ReadList[T any](c *cursor.Cursor, wantTag format.Tag, readElem func(*cursor.Cursor) (T, error)) ([]T, error) {
	elemTag, n, err := ReadListHeader(c)
	if err != nil {
		return nil, err
	}
	if n > 0 && elemTag != wantTag {
		return nil, errs.ErrBadNbtTag
	}
	out := make([]T, n)
	for i := range out {
		v, err := readElem(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// WriteList writes elemTag, len(values), and each element via writeElem. An
// empty values writes TagEnd as the elem tag, matching the reference
// encoder's convention for empty lists.
func WriteList[T any](w cursor.Writer, elemTag format.Tag, values []T, writeElem func(cursor.Writer, T) error) error {
	tag := elemTag
	if len(values) == 0 {
		tag = format.TagEnd
	}
	if err := WriteListHeader(w, tag, len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := writeElem(w, v); err != nil {
			return err
		}
	}

	return nil
}

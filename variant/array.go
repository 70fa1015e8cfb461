package variant

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/proto"
)

// ElementArray reads a LengthFunctionArray: a length (per policy L) followed
// by that many elements, each read by readElem. When L.ElementCount is false
// the policy instead reports a byte count and readElem is called until the
// cursor that many bytes have been consumed; since most element codecs are
// variable-width, the byte-count form is only meaningful when paired with
// Remaining (consume to end), which this function also accepts by looping
// until the cursor is empty.
func ReadElementArray[T any](c *cursor.Cursor, l LengthPolicy, readElem func(*cursor.Cursor) (T, error)) ([]T, error) {
	n, err := l.ReadLength(c)
	if err != nil {
		return nil, err
	}

	if l.ElementCount() {
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			v, err := readElem(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	}

	// Byte-count / Remaining form: keep reading elements until the
	// reported byte budget (n bytes, already consumed as length header)
	// is exhausted.
	start := c.Position()
	var out []T
	for c.Position()-start < n {
		v, err := readElem(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// WriteElementArray writes a LengthFunctionArray: the length (per L) then
// each element via writeElem.
func WriteElementArray[T any](w cursor.Writer, l LengthPolicy, values []T, writeElem func(cursor.Writer, T) error) error {
	if l.ElementCount() {
		if err := l.WriteLength(w, len(values)); err != nil {
			return err
		}
		for _, v := range values {
			if err := writeElem(w, v); err != nil {
				return err
			}
		}

		return nil
	}

	return WriteElementArrayByBytes(w, l, values, writeElem)
}

// WriteElementArrayByBytes handles the byte-count length-policy branch by
// encoding elements into a scratch writer first so their total byte
// length is known before the length header is emitted.
func WriteElementArrayByBytes[T any](w cursor.Writer, l LengthPolicy, values []T, writeElem func(cursor.Writer, T) error) error {
	scratch := cursor.NewBufWriter()
	defer scratch.Release()
	for _, v := range values {
		if err := writeElem(scratch, v); err != nil {
			return err
		}
	}
	if err := l.WriteLength(w, scratch.Len()); err != nil {
		return err
	}

	return w.WriteBytes(scratch.Bytes())
}

// ArraySize composes the SIZE of a LengthFunctionArray from the length
// policy's header size: the element count is not statically bounded, so the
// max is always proto.MaxSize.
func ArraySize(l LengthPolicy) proto.Size {
	return proto.WithArray(l.HeaderSize().Min)
}

// ReadRawArray reads a LengthFunctionRawArray: a length-prefixed run of raw
// bytes reinterpreted as a byte-equivalent element type, transferred
// wholesale with no per-element parsing. elemSize is the fixed wire width of
// one element.
func ReadRawArray(c *cursor.Cursor, l LengthPolicy, elemSize int) ([]byte, error) {
	n, err := l.ReadLength(c)
	if err != nil {
		return nil, err
	}

	byteLen := n
	if l.ElementCount() {
		byteLen = n * elemSize
	}

	return c.TakeBytes(byteLen)
}

// WriteRawArray writes a LengthFunctionRawArray from a slice of raw bytes
// whose length must already be a multiple of elemSize.
func WriteRawArray(w cursor.Writer, l LengthPolicy, elemSize int, raw []byte) error {
	if elemSize > 0 && len(raw)%elemSize != 0 {
		return errs.NewOther("raw array length not a multiple of element size")
	}

	n := len(raw)
	if l.ElementCount() && elemSize > 0 {
		n = len(raw) / elemSize
	}
	if err := l.WriteLength(w, n); err != nil {
		return err
	}

	return w.WriteBytes(raw)
}

// ReadConstArray reads exactly n elements: no length appears on the wire.
func ReadConstArray[T any](c *cursor.Cursor, n int, readElem func(*cursor.Cursor) (T, error)) ([]T, error) {
	return ReadElementArray(c, Const{N: n}, readElem)
}

// WriteConstArray writes exactly len(values) elements with no length
// prefix; the caller is responsible for values having the expected
// compile-time length.
func WriteConstArray[T any](w cursor.Writer, values []T, writeElem func(cursor.Writer, T) error) error {
	return WriteElementArray(w, Const{N: len(values)}, values, writeElem)
}

// ConstArraySize composes the SIZE of a ConstLengthArray: exactly n copies
// of the element's fixed size, with no header.
func ConstArraySize(n int, elem proto.Size) proto.Size {
	total := proto.Size{}
	for i := 0; i < n; i++ {
		total = total.Add(elem)
	}

	return total
}

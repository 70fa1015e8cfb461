// Package cursor provides the byte-cursor and writer abstractions every
// codec in this module reads from and writes to. A Cursor is an immutable
// view over an input buffer that only ever advances; a Writer is an
// append-only sink. Neither ever silently truncates: running out of bytes
// to satisfy a read or write surfaces errs.End.
package cursor

import "github.com/Birdmc/bird-server/errs"

// Cursor is a position-bearing view over a borrowed byte slice. Reads
// return sub-slices that alias the original buffer (zero-copy); the
// cursor itself only ever advances forward.
//
// Cursor is not safe for concurrent use by multiple goroutines: every read
// advances its position without synchronization. Forking (Fork) produces an independent
// cursor over the same backing slice so two forward passes (e.g. a decode
// pass and a skip pass) never interfere with each other.
type Cursor struct {
	buf []byte
	pos int
}

// New wraps buf in a Cursor starting at position 0.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Position returns the current read offset into the backing buffer.
func (c *Cursor) Position() int {
	return c.pos
}

// IsEmpty reports whether the cursor has no unread bytes left.
func (c *Cursor) IsEmpty() bool {
	return c.Remaining() == 0
}

// TakeByte consumes and returns a single byte.
func (c *Cursor) TakeByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, errs.End
	}
	b := c.buf[c.pos]
	c.pos++

	return b, nil
}

// PeekByte returns the next byte without advancing the cursor.
func (c *Cursor) PeekByte() (byte, error) {
	if c.Remaining() < 1 {
		return 0, errs.End
	}

	return c.buf[c.pos], nil
}

// TakeBytes consumes and returns a borrowed slice of exactly n bytes,
// aliasing the backing buffer. It fails with errs.End if fewer than n
// bytes remain; it never returns a short slice.
func (c *Cursor) TakeBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errs.NewOther("negative byte count")
	}
	if c.Remaining() < n {
		return nil, errs.End
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// TakeOwned consumes exactly n bytes and copies them into a freshly
// allocated slice, used by codecs that must retain a value past the
// lifetime of the backing buffer (e.g. UUID's 16 raw bytes).
func (c *Cursor) TakeOwned(n int) ([]byte, error) {
	b, err := c.TakeBytes(n)
	if err != nil {
		return nil, err
	}
	owned := make([]byte, n)
	copy(owned, b)

	return owned, nil
}

// RemainingBytes returns a borrowed slice of every unread byte without
// advancing the cursor.
func (c *Cursor) RemainingBytes() []byte {
	return c.buf[c.pos:]
}

// Advance moves the cursor forward by n bytes without returning them,
// failing if fewer than n bytes remain. Used by NBT skip-mode (component G)
// to count bytes consumed without materializing values.
func (c *Cursor) Advance(n int) error {
	if c.Remaining() < n {
		return errs.End
	}
	c.pos += n

	return nil
}

// Fork produces an independent cursor starting at the same position as c.
// Reads on the fork never affect c's position, and vice versa, so a span can
// be walked on the fork while c stays untouched until SyncFrom.
func (c *Cursor) Fork() *Cursor {
	return &Cursor{buf: c.buf, pos: c.pos}
}

// SyncFrom advances c to the position reached by fork, which must have
// been produced by c.Fork() (or a descendant of it). Used after a
// skip-walk on a forked cursor to commit the walked distance onto the
// parent.
func (c *Cursor) SyncFrom(fork *Cursor) {
	c.pos = fork.pos
}

// Package variant implements wire-shape adapters: zero-sized carrier types
// that give a value type a different on-wire encoding without changing its
// in-memory Go type. Each variant is a concrete Go type implementing a
// (variant, value) pair's read/write/size trio — Go has no overlapping
// trait impls, so this module reproduces that shape with one free-function
// trio per (variant, value) pair instead.
package variant

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/varint"
)

// LengthPolicy is a compile-time strategy object for encoding the length
// that precedes an array's elements. ElementCount distinguishes "N elements
// follow" (true) from "N bytes follow" (false).
type LengthPolicy interface {
	ReadLength(c *cursor.Cursor) (int, error)
	WriteLength(w cursor.Writer, n int) error
	HeaderSize() proto.Size
	ElementCount() bool
}

// Provided writes the length as a VarInt-encoded i32 ahead of the
// elements. It is the default length policy.
type Provided struct{}

func (Provided) ReadLength(c *cursor.Cursor) (int, error) {
	n, err := varint.ReadI32(c)
	return int(n), err
}

func (Provided) WriteLength(w cursor.Writer, n int) error {
	return varint.WriteI32(w, int32(n)) //nolint:gosec
}

func (Provided) HeaderSize() proto.Size { return varint.Size() }
func (Provided) ElementCount() bool     { return true }

// Remaining consumes every remaining byte of the cursor; no length integer
// appears on the wire. It is only admissible with the raw-array form: an
// element-count interpretation of "remaining bytes" cannot know the
// element count without first knowing the element width, which only the
// raw-array form (one fixed-size element type)
// provides.
type Remaining struct{}

func (Remaining) ReadLength(c *cursor.Cursor) (int, error) {
	return c.Remaining(), nil
}

func (Remaining) WriteLength(cursor.Writer, int) error {
	return nil
}

func (Remaining) HeaderSize() proto.Size { return proto.Size{} }
func (Remaining) ElementCount() bool     { return false }

// Const is a compile-time fixed length: nothing is written to or read from
// the wire for the length itself.
type Const struct{ N int }

func (c Const) ReadLength(*cursor.Cursor) (int, error) { return c.N, nil }
func (Const) WriteLength(cursor.Writer, int) error      { return nil }
func (Const) HeaderSize() proto.Size                    { return proto.Size{} }
func (Const) ElementCount() bool                        { return true }

// Package proto defines the core codec contract shared by every value type
// in this module: a closed byte-size range (the "SIZE contract") plus the
// Sized interface. A value type's canonical codec is its identity
// Variant: a type with no variant annotation simply uses the functions in
// this package.
package proto

import "math"

// MaxSize is the saturating upper bound for an unbounded SIZE range
// (u32::MAX in the source language; Go has no u32 so this is math.MaxUint32
// held in a uint32).
const MaxSize uint32 = math.MaxUint32

// Size is a closed range [Min, Max] in bytes that any encoding of a
// given value type may occupy on the wire. It is pure compile-time/const
// metadata: production code never branches on it except to size buffers
// and bound skip operations.
type Size struct {
	Min uint32
	Max uint32
}

// Fixed returns a Size whose Min and Max are both n, for fixed-width codecs.
func Fixed(n uint32) Size {
	return Size{Min: n, Max: n}
}

// satAdd adds a and b, saturating at MaxSize instead of overflowing.
func satAdd(a, b uint32) uint32 {
	if a > MaxSize-b {
		return MaxSize
	}

	return a + b
}

// Add composes the Size of a sequence of fields: elementwise saturating
// addition of mins and maxes.
func (s Size) Add(other Size) Size {
	return Size{Min: satAdd(s.Min, other.Min), Max: satAdd(s.Max, other.Max)}
}

// Union composes the Size of a sum of alternatives (enum arms, or an
// Option's present/absent cases): min is the min over arms, max is the max
// over arms.
func Union(sizes ...Size) Size {
	if len(sizes) == 0 {
		return Size{}
	}
	u := sizes[0]
	for _, s := range sizes[1:] {
		if s.Min < u.Min {
			u.Min = s.Min
		}
		if s.Max > u.Max {
			u.Max = s.Max
		}
	}

	return u
}

// WithArray composes the Size of a length-delimited array whose length
// policy reports lengthMin header bytes and whose element count is
// unbounded on the wire: [lengthMin, MaxSize].
func WithArray(lengthMin uint32) Size {
	return Size{Min: lengthMin, Max: MaxSize}
}

// Contains reports whether n falls within [s.Min, s.Max], used by tests to
// assert the universal size-contract property.
func (s Size) Contains(n uint32) bool {
	return n >= s.Min && n <= s.Max
}

// Sized is the interface through which a codec type advertises its SIZE
// contract. The codecs in this module expose theirs as package-level Size
// functions; none of them implements Sized.
type Sized interface {
	Size() Size
}

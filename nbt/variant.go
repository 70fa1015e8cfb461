package nbt

import "github.com/Birdmc/bird-server/format"

// TagVariant names the NBT tag kind a Go value should be written/read as
// when more than one tag kind could otherwise represent it — the same
// ambiguity Rust resolves with overlapping trait impls per wrapper type. A
// []int32 field, for instance, could in principle be written as either an
// IntArray tag or a List of Int tags; the packet/compound definition picks
// one by choosing the matching TagVariant value.
type TagVariant interface {
	TagID() format.Tag
}

// Inherit is the identity variant: the Go type's single natural NBT
// representation, with no ambiguity to resolve.
type Inherit struct{ Tag format.Tag }

func (v Inherit) TagID() format.Tag { return v.Tag }

// ByteArrayVariant selects the ByteArray tag representation for []byte.
type ByteArrayVariant struct{}

func (ByteArrayVariant) TagID() format.Tag { return format.TagByteArray }

// IntArrayVariant selects the IntArray tag representation for []int32, as
// opposed to encoding it as a List of Int tags.
type IntArrayVariant struct{}

func (IntArrayVariant) TagID() format.Tag { return format.TagIntArray }

// LongArrayVariant selects the LongArray tag representation for []int64, as
// opposed to encoding it as a List of Long tags.
type LongArrayVariant struct{}

func (LongArrayVariant) TagID() format.Tag { return format.TagLongArray }

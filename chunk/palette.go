package chunk

import (
	"math/bits"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/internal/pool"
	"github.com/Birdmc/bird-server/varint"
)

// Domain fixes the per-entry value bound, element count, and indirect-bits
// chooser for one flavor of paletted container. Block-states and biomes are
// both instances of the same container shape with different constants.
type Domain struct {
	MaxValue uint32
	N        int
	MaxBits  int
	Chooser  func(paletteLen int) int
}

// BlockStates returns the Domain for a block-state paletted container
// section: N=4096, clamped up to 4 bits minimum to match common encoders.
// A palette needing more than 8 bits selects the Direct form instead.
func BlockStates(totalBlockStates uint32) Domain {
	maxBits := ceilLog2(totalBlockStates)

	return Domain{
		MaxValue: totalBlockStates,
		N:        4096,
		MaxBits:  maxBits,
		Chooser: func(paletteLen int) int {
			b := ceilLog2(uint32(paletteLen))
			if b < 4 {
				b = 4
			}
			if b > 8 {
				return maxBits
			}

			return b
		},
	}
}

// Biomes returns the Domain for a biome paletted container section: N=64,
// no clamp floor.
func Biomes(totalBiomes uint32) Domain {
	return Domain{
		MaxValue: totalBiomes,
		N:        64,
		MaxBits:  ceilLog2(totalBiomes),
		Chooser: func(paletteLen int) int {
			return ceilLog2(uint32(paletteLen))
		},
	}
}

func ceilLog2(n uint32) int {
	if n <= 1 {
		return 0
	}

	return bits.Len32(n - 1)
}

// Form identifies which of the three paletted-container encodings was read
// or is being written.
type Form uint8

const (
	FormSingle Form = iota
	FormIndirect
	FormDirect
)

// Container is a decoded paletted container: a fixed N-entry lookup table
// over palette indices (Single/Indirect) or raw domain values (Direct).
type Container struct {
	Form    Form
	Palette []uint32 // Single (len 1) and Indirect; nil for Direct
	Indices []uint32 // index into Palette (Single/Indirect) or raw value (Direct), len N
}

// Get returns the domain value at entry i, resolving through the palette
// when present.
func (c *Container) Get(i int) uint32 {
	if c.Form == FormDirect {
		return c.Indices[i]
	}

	return c.Palette[c.Indices[i]]
}

// Encode writes values (len N, a lookup function over indices 0..N already
// materialized by the caller) in whichever of the three forms the domain's
// chooser picks.
func Encode(w cursor.Writer, d Domain, values []uint32) error {
	palette, indices := buildPalette(values)
	switch {
	case len(palette) == 1:
		if err := w.WriteByte(0); err != nil {
			return err
		}
		if err := varint.WriteI32(w, int32(palette[0])); err != nil { //nolint:gosec
			return err
		}

		return varint.WriteI32(w, 0)
	case d.Chooser(len(palette)) < ceilLog2(d.MaxValue):
		bitsPerEntry := d.Chooser(len(palette))
		if err := w.WriteByte(byte(bitsPerEntry)); err != nil {
			return err
		}
		if err := varint.WriteI32(w, int32(len(palette))); err != nil { //nolint:gosec
			return err
		}
		for _, v := range palette {
			if err := varint.WriteI32(w, int32(v)); err != nil { //nolint:gosec
				return err
			}
		}
		wordCount := WordCount(d.N, bitsPerEntry)
		if err := varint.WriteI32(w, int32(wordCount)); err != nil { //nolint:gosec
			return err
		}
		packed, release := pool.GetUint64Slice(len(indices))
		defer release()
		for i, idx := range indices {
			packed[i] = uint64(idx)
		}
		_, err := PackAll(w, bitsPerEntry, packed)

		return err
	default:
		maxBits := ceilLog2(d.MaxValue)
		if err := w.WriteByte(byte(maxBits)); err != nil {
			return err
		}
		wordCount := WordCount(d.N, maxBits)
		if err := varint.WriteI32(w, int32(wordCount)); err != nil { //nolint:gosec
			return err
		}
		raw, release := pool.GetUint64Slice(len(values))
		defer release()
		for i, v := range values {
			raw[i] = uint64(v)
		}
		_, err := PackAll(w, maxBits, raw)

		return err
	}
}

// Decode reads a paletted container of the given domain. A bits value below
// 4 for block-state domains is clamped up to 4 to match common encoders; a
// bits value at or above d.MaxBits is treated as Direct.
func Decode(c *cursor.Cursor, d Domain) (*Container, error) {
	bitsByte, err := c.TakeByte()
	if err != nil {
		return nil, err
	}
	bitsPerEntry := int(bitsByte)

	maxBits := ceilLog2(d.MaxValue)
	switch {
	case bitsPerEntry == 0:
		v, err := varint.ReadI32(c)
		if err != nil {
			return nil, err
		}
		if _, err := varint.ReadI32(c); err != nil {
			return nil, err
		}

		return &Container{
			Form:    FormSingle,
			Palette: []uint32{uint32(v)},
			Indices: make([]uint32, d.N),
		}, nil
	case bitsPerEntry < maxBits:
		if bitsPerEntry < 4 && d.N == 4096 {
			bitsPerEntry = 4
		}
		paletteLen, err := varint.ReadI32(c)
		if err != nil {
			return nil, err
		}
		if paletteLen < 0 {
			return nil, errs.ErrEmptyPalette
		}
		palette := make([]uint32, paletteLen)
		for i := range palette {
			v, err := varint.ReadI32(c)
			if err != nil {
				return nil, err
			}
			palette[i] = uint32(v)
		}
		if _, err := varint.ReadI32(c); err != nil {
			return nil, err
		}
		words, err := ReadWords(c, d.N, bitsPerEntry)
		if err != nil {
			return nil, err
		}
		unpacked := UnpackAll(words, bitsPerEntry, d.N)

		return &Container{Form: FormIndirect, Palette: palette, Indices: unpacked}, nil
	default:
		if _, err := varint.ReadI32(c); err != nil {
			return nil, err
		}
		words, err := ReadWords(c, d.N, maxBits)
		if err != nil {
			return nil, err
		}
		unpacked := UnpackAll(words, maxBits, d.N)

		return &Container{Form: FormDirect, Indices: unpacked}, nil
	}
}

// buildPalette deduplicates values into a palette (first-seen order) and an
// index array of the same length as values.
func buildPalette(values []uint32) (palette []uint32, indices []uint32) {
	seen := make(map[uint32]int)
	indices = make([]uint32, len(values))
	for i, v := range values {
		idx, ok := seen[v]
		if !ok {
			idx = len(palette)
			seen[v] = idx
			palette = append(palette, v)
		}
		indices[i] = uint32(idx) //nolint:gosec
	}

	return palette, indices
}

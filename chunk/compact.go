// Package chunk implements the compact-long bit packer, BitSet, paletted
// container, and the chunk/light structures built on them —
// ChunkDataAndUpdateLight's payload.
package chunk

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
)

// PerWord returns floor(64/bits), the number of bits-wide entries that fit
// in one 64-bit word.
func PerWord(bits int) int {
	return 64 / bits
}

// WordCount returns the number of 64-bit words needed to hold n entries of
// the given bit width: ceil(n / floor(64/bits)).
func WordCount(n, bits int) int {
	perWord := PerWord(bits)

	return (n + perWord - 1) / perWord
}

// Packer accumulates fixed-width entries into 64-bit words and flushes them
// to a Writer, mirroring the reference packer's accumulator/index/gap state
// machine. The gap (64 % bits low bits of every word) is left as zero
// padding, never written to.
type Packer struct {
	w       cursor.Writer
	bits    int
	perWord int
	gap     int
	acc     uint64
	index   int
}

// NewPacker returns a Packer that writes bits-wide entries to w.
func NewPacker(w cursor.Writer, bits int) *Packer {
	perWord := PerWord(bits)

	return &Packer{w: w, bits: bits, perWord: perWord, gap: 64 - perWord*bits}
}

// Write places v (already masked to bits wide by the caller's domain) into
// the accumulator at bit (gap + index*bits), flushing a completed word to
// the writer as needed.
func (p *Packer) Write(v uint64) error {
	p.acc |= v << uint(p.gap+p.index*p.bits)
	p.index++
	if p.index == p.perWord {
		if err := proto.WriteU64(p.w, p.acc); err != nil {
			return err
		}
		p.acc = 0
		p.index = 0
	}

	return nil
}

// Finish flushes a partial final word if any entries were written since the
// last full-word flush.
func (p *Packer) Finish() error {
	if p.index == 0 {
		return nil
	}

	return proto.WriteU64(p.w, p.acc)
}

// Unpacker walks a fixed sequence of 64-bit words, yielding bits-wide
// entries via Next until n entries (the compile-time total count bounding
// the final word's remainder) have been produced.
type Unpacker struct {
	words     []uint64
	bits      int
	perWord   int
	gap       int
	mask      uint64
	wordIndex int
	inWordIdx int
	cur       uint64
	remaining int
}

// NewUnpacker returns an Unpacker over words, yielding n entries of the
// given bit width. The first word is pre-shifted right by gap so its first
// entry sits at bit 0, matching the packer's placement at bit gap.
func NewUnpacker(words []uint64, bits, n int) *Unpacker {
	perWord := PerWord(bits)
	u := &Unpacker{
		bits:      bits,
		perWord:   perWord,
		gap:       64 - perWord*bits,
		mask:      (uint64(1) << uint(bits)) - 1,
		remaining: n,
	}
	u.words = words
	if len(words) > 0 {
		u.cur = words[0] >> uint(u.gap)
	}

	return u
}

// Next returns the next unpacked entry, or ok=false once n entries (the
// Unpacker's compile-time bound) have all been produced.
func (u *Unpacker) Next() (v uint64, ok bool) {
	if u.remaining <= 0 {
		return 0, false
	}
	v = u.cur & u.mask
	u.cur >>= uint(u.bits)
	u.inWordIdx++
	u.remaining--
	if u.inWordIdx == u.perWord && u.wordIndex+1 < len(u.words) {
		u.wordIndex++
		u.cur = u.words[u.wordIndex] >> uint(u.gap)
		u.inWordIdx = 0
	}

	return v, true
}

// ReadWords reads exactly WordCount(n, bits) big-endian u64 words from c.
func ReadWords(c *cursor.Cursor, n, bits int) ([]uint64, error) {
	count := WordCount(n, bits)
	out := make([]uint64, count)
	for i := range out {
		v, err := proto.ReadU64(c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// PackAll packs values (each < 1<<bits) into words and writes them via w,
// returning the word count written.
func PackAll(w cursor.Writer, bits int, values []uint64) (int, error) {
	p := NewPacker(w, bits)
	for _, v := range values {
		if err := p.Write(v); err != nil {
			return 0, err
		}
	}
	if err := p.Finish(); err != nil {
		return 0, err
	}

	return WordCount(len(values), bits), nil
}

// UnpackAll reads n entries of the given bit width out of words.
func UnpackAll(words []uint64, bits, n int) []uint64 {
	u := NewUnpacker(words, bits, n)
	out := make([]uint64, 0, n)
	for {
		v, ok := u.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

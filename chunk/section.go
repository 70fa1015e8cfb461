package chunk

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/variant"
)

// Section holds one 16x16x16 chunk section: a non-air block count and the
// two paletted containers over its block-states and biomes.
type Section struct {
	BlockCount int16
	BlockStates *Container
	Biomes      *Container
}

// ReadSection decodes one Section using the given domains (block-state and
// biome totals are a world-specific registry size the caller supplies).
func ReadSection(c *cursor.Cursor, blockStates, biomes Domain) (*Section, error) {
	count, err := proto.ReadI16(c)
	if err != nil {
		return nil, err
	}
	bs, err := Decode(c, blockStates)
	if err != nil {
		return nil, err
	}
	bm, err := Decode(c, biomes)
	if err != nil {
		return nil, err
	}

	return &Section{BlockCount: count, BlockStates: bs, Biomes: bm}, nil
}

// WriteSection encodes s in declaration order: block_count, then its two
// paletted containers' domain-appropriate encodings.
func WriteSection(w cursor.Writer, s *Section, blockStates, biomes Domain) error {
	if err := proto.WriteI16(w, s.BlockCount); err != nil {
		return err
	}
	if err := Encode(w, blockStates, s.BlockStates.flatten(blockStates.N)); err != nil {
		return err
	}

	return Encode(w, biomes, s.Biomes.flatten(biomes.N))
}

func (c *Container) flatten(n int) []uint32 {
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = c.Get(i)
	}

	return out
}

// ChunkData is the ProvidedLength<i32,VarInt> byte blob of concatenated
// chunk sections.
type ChunkData struct {
	Sections []*Section
}

// ReadChunkData reads a length-prefixed blob of sectionCount concatenated
// Sections. The blob's own byte length is consumed via Provided and then
// re-parsed through a new cursor over just the blob, so a malformed
// trailing section cannot run past the blob boundary into the packet's
// next field.
func ReadChunkData(c *cursor.Cursor, sectionCount int, blockStates, biomes Domain) (*ChunkData, error) {
	raw, err := variant.ReadRawArray(c, variant.Provided{}, 1)
	if err != nil {
		return nil, err
	}
	inner := cursor.New(raw)
	sections := make([]*Section, sectionCount)
	for i := range sections {
		sections[i], err = ReadSection(inner, blockStates, biomes)
		if err != nil {
			return nil, err
		}
	}

	return &ChunkData{Sections: sections}, nil
}

// WriteChunkData encodes every section into a scratch buffer and writes it
// as a Provided-length byte blob.
func WriteChunkData(w cursor.Writer, d *ChunkData, blockStates, biomes Domain) error {
	scratch := cursor.NewBufWriter()
	defer scratch.Release()
	for _, s := range d.Sections {
		if err := WriteSection(scratch, s, blockStates, biomes); err != nil {
			return err
		}
	}

	return variant.WriteRawArray(w, variant.Provided{}, 1, scratch.Bytes())
}

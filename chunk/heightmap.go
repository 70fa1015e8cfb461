package chunk

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/nbt"
)

// HeightmapLongCount is the fixed NBT LongArray length a MOTION_BLOCKING
// heightmap compound must carry: 256 entries of 9 bits each, compact-packed
// at 7 entries per 64-bit word.
const HeightmapLongCount = 37

const heightmapBits = 9
const heightmapEntries = 256

// Heightmap holds the decoded MOTION_BLOCKING values, one per (x,z) column.
type Heightmap struct {
	MotionBlocking [heightmapEntries]uint16
}

// DecodeHeightmap reads an NBT compound with a "MOTION_BLOCKING" LongArray
// of exactly HeightmapLongCount longs, unpacking its 256 9-bit entries. A
// "WORLD_SURFACE" entry, if present, is skipped like any other unrecognized
// field rather than rejected.
func DecodeHeightmap(c *cursor.Cursor) (*Heightmap, error) {
	rootTag, err := nbt.ReadTagByte(c)
	if err != nil {
		return nil, err
	}
	if rootTag != format.TagCompound {
		return nil, errs.ErrInvalidHeightmap
	}
	if _, err := nbt.ReadString(c); err != nil {
		return nil, err
	}

	var hm Heightmap
	found := false
	err = nbt.Decode(c, map[string]nbt.FieldHandler{
		"MOTION_BLOCKING": func(c *cursor.Cursor, tag format.Tag) error {
			longs, err := nbt.ReadLongArray(c)
			if err != nil {
				return err
			}
			if len(longs) != HeightmapLongCount {
				return errs.ErrInvalidHeightmap
			}
			words := make([]uint64, len(longs))
			for i, v := range longs {
				words[i] = uint64(v)
			}
			values := UnpackAll(words, heightmapBits, heightmapEntries)
			for i, v := range values {
				hm.MotionBlocking[i] = uint16(v) //nolint:gosec
			}
			found = true

			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrInvalidHeightmap
	}

	return &hm, nil
}

// EncodeHeightmap writes hm as an NBT compound carrying only a
// "MOTION_BLOCKING" LongArray; the writer never emits a "WORLD_SURFACE"
// entry.
func EncodeHeightmap(w cursor.Writer, hm *Heightmap) error {
	if err := nbt.WriteTagByte(w, format.TagCompound); err != nil {
		return err
	}
	if err := nbt.WriteString(w, ""); err != nil {
		return err
	}

	values := make([]uint64, heightmapEntries)
	for i, v := range hm.MotionBlocking {
		values[i] = uint64(v)
	}

	err := nbt.WriteField(w, format.TagLongArray, "MOTION_BLOCKING", func(w cursor.Writer) error {
		longs := make([]int64, WordCount(heightmapEntries, heightmapBits))
		buf := cursor.NewBufWriter()
		defer buf.Release()
		if _, err := PackAll(buf, heightmapBits, values); err != nil {
			return err
		}
		packed := buf.Bytes()
		for i := range longs {
			var v uint64
			for j := 0; j < 8; j++ {
				v = (v << 8) | uint64(packed[i*8+j])
			}
			longs[i] = int64(v) //nolint:gosec
		}

		return nbt.WriteLongArray(w, longs)
	})
	if err != nil {
		return err
	}

	return nbt.WriteEnd(w)
}

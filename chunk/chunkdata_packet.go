package chunk

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/nbt"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/variant"
	"github.com/Birdmc/bird-server/varint"
)

// ChunkDataAndUpdateLight assembles a chunk's coordinates, its ChunkData
// blob, a provided-length array of block-entity NBTs, and its LightData.
// This type holds the packet's body; the `packet` package wraps it with the
// framing ID/state/ bound identity.
type ChunkDataAndUpdateLight struct {
	ChunkX, ChunkZ int32
	Heightmap      *Heightmap
	Data           *ChunkData
	BlockEntities  []BlockEntity
	Light          *LightData
}

// BlockEntity is one block-entity NBT blob placed within a chunk: a packed
// (x,z) nibble + section-relative y, a type id, and its NBT compound data.
type BlockEntity struct {
	PackedXZ uint8
	Y        int16
	Type     int32
	Data     nbt.Value
}

// ReadChunkDataAndUpdateLight decodes the packet body given the world's
// block-state/biome registry sizes and the section count per chunk column.
func ReadChunkDataAndUpdateLight(c *cursor.Cursor, sectionCount int, blockStates, biomes Domain) (*ChunkDataAndUpdateLight, error) {
	var p ChunkDataAndUpdateLight
	var err error
	if p.ChunkX, err = proto.ReadI32(c); err != nil {
		return nil, err
	}
	if p.ChunkZ, err = proto.ReadI32(c); err != nil {
		return nil, err
	}
	if p.Heightmap, err = DecodeHeightmap(c); err != nil {
		return nil, err
	}
	if p.Data, err = ReadChunkData(c, sectionCount, blockStates, biomes); err != nil {
		return nil, err
	}
	p.BlockEntities, err = variant.ReadElementArray(c, variant.Provided{}, readBlockEntity)
	if err != nil {
		return nil, err
	}
	p.Light, err = ReadLightData(c)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// WriteChunkDataAndUpdateLight encodes p in its declared field order.
func WriteChunkDataAndUpdateLight(w cursor.Writer, p *ChunkDataAndUpdateLight, blockStates, biomes Domain) error {
	if err := proto.WriteI32(w, p.ChunkX); err != nil {
		return err
	}
	if err := proto.WriteI32(w, p.ChunkZ); err != nil {
		return err
	}
	if err := EncodeHeightmap(w, p.Heightmap); err != nil {
		return err
	}
	if err := WriteChunkData(w, p.Data, blockStates, biomes); err != nil {
		return err
	}
	if err := variant.WriteElementArray(w, variant.Provided{}, p.BlockEntities, writeBlockEntity); err != nil {
		return err
	}

	return WriteLightData(w, p.Light)
}

func readBlockEntity(c *cursor.Cursor) (BlockEntity, error) {
	var e BlockEntity
	packed, err := proto.ReadU8(c)
	if err != nil {
		return e, err
	}
	e.PackedXZ = packed
	if e.Y, err = proto.ReadI16(c); err != nil {
		return e, err
	}
	if e.Type, err = varint.ReadI32(c); err != nil {
		return e, err
	}
	tag, err := nbt.ReadTagByte(c)
	if err != nil {
		return e, err
	}
	if _, err := nbt.ReadString(c); err != nil {
		return e, err
	}
	e.Data, err = nbt.ReadValue(c, tag)

	return e, err
}

func writeBlockEntity(w cursor.Writer, e BlockEntity) error {
	if err := proto.WriteU8(w, e.PackedXZ); err != nil {
		return err
	}
	if err := proto.WriteI16(w, e.Y); err != nil {
		return err
	}
	if err := varint.WriteI32(w, e.Type); err != nil {
		return err
	}
	if err := nbt.WriteTagByte(w, e.Data.Tag); err != nil {
		return err
	}
	if err := nbt.WriteString(w, ""); err != nil {
		return err
	}

	return nbt.WriteValue(w, e.Data)
}

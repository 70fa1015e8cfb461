package chunk

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/variant"
	"github.com/Birdmc/bird-server/varint"
)

// LightArraySize is the fixed byte length of one light array: 4096 nibbles
// packed two to a byte.
const LightArraySize = 2048

// LightArray is a borrowed 2048-byte nibble array indexed by (x,y,z), 0<=x,y,z<16.
type LightArray struct {
	data []byte
}

// NewLightArray wraps exactly LightArraySize bytes as a LightArray.
func NewLightArray(data []byte) *LightArray {
	return &LightArray{data: data}
}

// Get returns the light level (0-15) at (x,y,z): the nibble at byte
// ((y<<8)|(z<<4)|x)>>1, low nibble when the index is even, high when odd.
func (l *LightArray) Get(x, y, z int) uint8 {
	index := (y<<8 | z<<4 | x)
	b := l.data[index>>1]
	if index&1 == 0 {
		return b & 0x0F
	}

	return b >> 4
}

// Set writes the light level (0-15) at (x,y,z).
func (l *LightArray) Set(x, y, z int, v uint8) {
	index := (y<<8 | z<<4 | x)
	byteIdx := index >> 1
	if index&1 == 0 {
		l.data[byteIdx] = (l.data[byteIdx] & 0xF0) | (v & 0x0F)
	} else {
		l.data[byteIdx] = (l.data[byteIdx] & 0x0F) | (v << 4)
	}
}

// ReadLightArray reads a VarInt(2048) length prefix followed by the 2048
// nibble bytes.
func ReadLightArray(c *cursor.Cursor) (*LightArray, error) {
	if _, err := varint.ReadI32(c); err != nil {
		return nil, err
	}
	data, err := c.TakeOwned(LightArraySize)
	if err != nil {
		return nil, err
	}

	return NewLightArray(data), nil
}

// WriteLightArray writes VarInt(2048) followed by l's raw bytes.
func WriteLightArray(w cursor.Writer, l *LightArray) error {
	if err := varint.WriteI32(w, LightArraySize); err != nil {
		return err
	}

	return w.WriteBytes(l.data)
}

// LightData assembles one light packet's payload: masks over which sections
// carry sky/block light, and the ProvidedLength<i32,VarInt> arrays of
// per-section light arrays themselves.
type LightData struct {
	TrustEdges        bool
	SkyLightMask      *BitSet
	BlockLightMask    *BitSet
	EmptySkyLightMask *BitSet
	EmptyBlockLightMask *BitSet
	SkyLightArrays    []*LightArray
	BlockLightArrays  []*LightArray
}

// ReadLightData decodes a LightData in its declared field order.
func ReadLightData(c *cursor.Cursor) (*LightData, error) {
	var d LightData
	var err error
	d.TrustEdges, err = proto.ReadBool(c)
	if err != nil {
		return nil, err
	}
	if d.SkyLightMask, err = readBitSetVarLong(c); err != nil {
		return nil, err
	}
	if d.BlockLightMask, err = readBitSetVarLong(c); err != nil {
		return nil, err
	}
	if d.EmptySkyLightMask, err = readBitSetVarLong(c); err != nil {
		return nil, err
	}
	if d.EmptyBlockLightMask, err = readBitSetVarLong(c); err != nil {
		return nil, err
	}
	if d.SkyLightArrays, err = readLightArrayList(c); err != nil {
		return nil, err
	}
	if d.BlockLightArrays, err = readLightArrayList(c); err != nil {
		return nil, err
	}

	return &d, nil
}

// WriteLightData encodes d in its declared field order.
func WriteLightData(w cursor.Writer, d *LightData) error {
	if err := proto.WriteBool(w, d.TrustEdges); err != nil {
		return err
	}
	if err := writeBitSetVarLong(w, d.SkyLightMask); err != nil {
		return err
	}
	if err := writeBitSetVarLong(w, d.BlockLightMask); err != nil {
		return err
	}
	if err := writeBitSetVarLong(w, d.EmptySkyLightMask); err != nil {
		return err
	}
	if err := writeBitSetVarLong(w, d.EmptyBlockLightMask); err != nil {
		return err
	}
	if err := writeLightArrayList(w, d.SkyLightArrays); err != nil {
		return err
	}

	return writeLightArrayList(w, d.BlockLightArrays)
}

func readBitSetVarLong(c *cursor.Cursor) (*BitSet, error) {
	words, err := variant.ReadElementArray(c, variant.Provided{}, varint.ReadI64)
	if err != nil {
		return nil, err
	}
	unsigned := make([]uint64, len(words))
	for i, v := range words {
		unsigned[i] = uint64(v)
	}

	return NewBitSetFromWords(unsigned), nil
}

func writeBitSetVarLong(w cursor.Writer, b *BitSet) error {
	words := b.LongIter()
	signed := make([]int64, len(words))
	for i, v := range words {
		signed[i] = int64(v) //nolint:gosec
	}

	return variant.WriteElementArray(w, variant.Provided{}, signed, varint.WriteI64)
}

func readLightArrayList(c *cursor.Cursor) ([]*LightArray, error) {
	n, err := varint.ReadI32(c)
	if err != nil {
		return nil, err
	}
	out := make([]*LightArray, n)
	for i := range out {
		out[i], err = ReadLightArray(c)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func writeLightArrayList(w cursor.Writer, arrays []*LightArray) error {
	if err := varint.WriteI32(w, int32(len(arrays))); err != nil { //nolint:gosec
		return err
	}
	for _, a := range arrays {
		if err := WriteLightArray(w, a); err != nil {
			return err
		}
	}

	return nil
}

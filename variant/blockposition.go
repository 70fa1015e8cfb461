package variant

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
)

// BlockPosition packs (x, y, z) into a single big-endian u64: x in bits
// 38-63 (26 bits), z in bits 12-37 (26 bits), y in bits 0-11 (12 bits).
// Components outside their bit range truncate silently on write.
type BlockPosition struct {
	X, Y, Z int32
}

const (
	xzMask = 0x3FFFFFF // 26 bits
	yMask  = 0xFFF      // 12 bits
)

// Pack returns the big-endian u64 wire value for p.
func (p BlockPosition) Pack() uint64 {
	x := uint64(p.X) & xzMask
	z := uint64(p.Z) & xzMask
	y := uint64(p.Y) & yMask

	return (x << 38) | (z << 12) | y
}

// Unpack decodes a packed u64 wire value into a BlockPosition, sign
// extending each component from its 26/12/26-bit field.
func Unpack(v uint64) BlockPosition {
	x := signExtend(v>>38, 26)
	z := signExtend((v>>12)&xzMask, 26)
	y := signExtend(v&yMask, 12)

	return BlockPosition{X: x, Y: y, Z: z}
}

func signExtend(v uint64, bits uint) int32 {
	shift := 64 - bits
	return int32(int64(v<<shift) >> shift)
}

// ReadBlockPosition reads an 8-byte big-endian u64 and unpacks it.
func ReadBlockPosition(c *cursor.Cursor) (BlockPosition, error) {
	b, err := c.TakeBytes(8)
	if err != nil {
		return BlockPosition{}, err
	}
	var v uint64
	for _, by := range b {
		v = (v << 8) | uint64(by)
	}

	return Unpack(v), nil
}

// WriteBlockPosition packs p and writes it as an 8-byte big-endian u64.
func WriteBlockPosition(w cursor.Writer, p BlockPosition) error {
	v := p.Pack()
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}

	return w.WriteBytes(buf[:])
}

// BlockPositionSize is the fixed 8-byte SIZE of the BlockPosition variant.
func BlockPositionSize() proto.Size { return proto.Fixed(8) }

package variant

import (
	"math"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
)

// ReadFixedPointI32 reads a big-endian i32 and divides it by 2^n as a
// float64, used for values like entity position deltas stored as 1/32-block
// fixed point (n=5).
func ReadFixedPointI32(c *cursor.Cursor, n uint) (float64, error) {
	raw, err := proto.ReadI32(c)
	if err != nil {
		return 0, err
	}

	return float64(raw) / float64(int64(1)<<n), nil
}

// WriteFixedPointI32 multiplies v by 2^n, truncates to i32, and writes it
// as a big-endian i32.
func WriteFixedPointI32(w cursor.Writer, n uint, v float64) error {
	scaled := v * float64(int64(1)<<n)
	return proto.WriteI32(w, int32(math.Trunc(scaled)))
}

// ReadFixedPointI64 is the 64-bit analogue of ReadFixedPointI32, used for
// higher-precision fixed-point values (e.g. absolute world coordinates).
func ReadFixedPointI64(c *cursor.Cursor, n uint) (float64, error) {
	raw, err := proto.ReadI64(c)
	if err != nil {
		return 0, err
	}

	return float64(raw) / float64(int64(1)<<n), nil
}

// WriteFixedPointI64 is the 64-bit analogue of WriteFixedPointI32.
func WriteFixedPointI64(w cursor.Writer, n uint, v float64) error {
	scaled := v * float64(int64(1)<<n)
	return proto.WriteI64(w, int64(math.Trunc(scaled)))
}

// FixedPointI32Size and FixedPointI64Size are the fixed SIZE contracts
// for the FixedPointNumber variant over i32/i64 respectively: identical
// to the underlying integer's SIZE since FixedPointNumber does not add
// framing of its own.
func FixedPointI32Size() proto.Size { return proto.Fixed(4) }
func FixedPointI64Size() proto.Size { return proto.Fixed(8) }

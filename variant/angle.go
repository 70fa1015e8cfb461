package variant

import (
	"math"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
)

// angleStep is 2*pi / 256: the angular width one byte-step represents.
const angleStep = float32(math.Pi) / 128

// ReadAngle decodes a single byte into a float32 angle in [0, 2*pi): result
// = byte * 2*pi / 256.
func ReadAngle(c *cursor.Cursor) (float32, error) {
	b, err := c.TakeByte()
	if err != nil {
		return 0, err
	}

	return float32(b) * angleStep, nil
}

// WriteAngle packs a float32 angle (radians) into one byte:
// round(a / angleStep) modulo 256, i.e. round(a * 128 / pi).
func WriteAngle(w cursor.Writer, a float32) error {
	scaled := a / angleStep
	b := byte(int32(math.Round(float64(scaled))))

	return w.WriteByte(b)
}

// AngleSize is the fixed 1-byte SIZE of the Angle variant.
func AngleSize() proto.Size { return proto.Fixed(1) }

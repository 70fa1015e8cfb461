package nbt

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/proto"
)

// ReadString reads a u16 big-endian length prefix followed by that many
// bytes of Java CESU-8, converting to a native Go (UTF-8) string. Bytes that
// are already valid UTF-8 (the common case, since CESU-8 and UTF-8 agree
// everywhere outside the supplementary-plane surrogate-pair encoding and the
// overlong NUL) are copied as-is; only other input is re-encoded.
func ReadString(c *cursor.Cursor) (string, error) {
	n, err := proto.ReadU16(c)
	if err != nil {
		return "", err
	}
	b, err := c.TakeBytes(int(n))
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}

	return cesu8ToUTF8(b), nil
}

// WriteString converts v to Java CESU-8 (re-encoding only if v contains
// characters CESU-8 encodes differently than UTF-8) and writes a u16
// big-endian length prefix followed by the CESU-8 bytes.
func WriteString(w cursor.Writer, v string) error {
	b := utf8ToCESU8(v)
	if len(b) > 0xFFFF {
		return errs.ErrStringTooLong
	}
	if err := proto.WriteU16(w, uint16(len(b))); err != nil {
		return err
	}

	return w.WriteBytes(b)
}

// Size is the SIZE contract for an NBT string: [2, 2 + 0xFFFF*3] — the u16
// header plus the worst-case CESU-8 expansion of a 3-byte-per-rune string
// (CESU-8 never exceeds 3 bytes per UTF-16 code unit, including a
// surrogate pair's two halves encoded independently).
func Size() proto.Size {
	return proto.Size{Min: 2, Max: 2 + 0xFFFF*3}
}

// utf8ToCESU8 re-encodes a Go (UTF-8) string as Java's modified UTF-8: NUL
// is encoded as the overlong two-byte form 0xC0 0x80, and characters
// outside the Basic Multilingual Plane are encoded as a UTF-16 surrogate
// pair, each half independently CESU-8-encoded as a 3-byte sequence
// (rather than UTF-8's single 4-byte sequence).
func utf8ToCESU8(s string) []byte {
	needsConversion := false
	for _, r := range s {
		if r == 0 || r > 0xFFFF {
			needsConversion = true

			break
		}
	}
	if !needsConversion {
		return []byte(s)
	}

	out := make([]byte, 0, len(s)+4)
	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xC0, 0x80)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			out = appendCESU8Rune(out, hi)
			out = appendCESU8Rune(out, lo)
		default:
			out = appendCESU8Rune(out, r)
		}
	}

	return out
}

func appendCESU8Rune(out []byte, r rune) []byte {
	if utf16.IsSurrogate(r) {
		return append(out, byte(0xE0|r>>12), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	}
	var buf [4]byte
	n := utf8.EncodeRune(buf[:], r)

	return append(out, buf[:n]...)
}

// cesu8ToUTF8 converts Java CESU-8 bytes (which utf8.Valid already
// reported as not plain UTF-8) into a native Go string: a surrogate pair
// spanning two CESU-8-encoded 3-byte sequences is merged back into one
// 4-byte UTF-8 sequence, and the overlong NUL is normalized to a single
// 0x00 byte.
func cesu8ToUTF8(b []byte) string {
	var out []rune
	i := 0
	for i < len(b) {
		r, size := decodeCESU8Rune(b[i:])
		if utf16.IsSurrogate(r) && i+size < len(b) {
			r2, size2 := decodeCESU8Rune(b[i+size:])
			if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
				out = append(out, combined)
				i += size + size2

				continue
			}
		}
		out = append(out, r)
		i += size
	}

	return string(out)
}

func decodeCESU8Rune(b []byte) (rune, int) {
	if len(b) >= 2 && b[0] == 0xC0 && b[1] == 0x80 {
		return 0, 2
	}
	if len(b) >= 3 && b[0] == 0xED && b[1]&0xE0 == 0xA0 && b[2]&0xC0 == 0x80 {
		return rune(0xD000 | int(b[1]&0x3F)<<6 | int(b[2]&0x3F)), 3
	}
	r, size := utf8.DecodeRune(b)

	return r, size
}

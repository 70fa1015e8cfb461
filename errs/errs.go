// Package errs provides the two-kind error taxonomy shared by every codec
// in this module: an end-of-input sentinel, and a malformed-input error
// carrying a human-readable message. No codec panics on malformed input;
// every read/write either succeeds or returns one of these two kinds.
package errs

import (
	"errors"
	"fmt"
)

// End indicates a cursor or writer was exhausted before satisfying a
// requested read or write. It carries no message and no backtrace so it
// stays cheap to produce on the hot path of a short read.
var End = errors.New("end of input")

// IsEnd reports whether err is, or wraps, End.
func IsEnd(err error) bool {
	return errors.Is(err, End)
}

// Other wraps a malformed-input error with a human-readable message.
// It is returned for every semantic failure that is not a short read:
// bad tags, bad lengths, invalid discriminants, limit violations.
type Other struct {
	msg string
}

func (e *Other) Error() string { return e.msg }

// NewOther constructs a malformed-input error with a fixed message.
func NewOther(msg string) error {
	return &Other{msg: msg}
}

// Otherf constructs a malformed-input error with a formatted message.
func Otherf(format string, args ...any) error {
	return &Other{msg: fmt.Sprintf(format, args...)}
}

// IsOther reports whether err is an Other error.
func IsOther(err error) bool {
	var o *Other
	return errors.As(err, &o)
}

// Representative malformed-input errors reused across packages, named
// after the condition they report rather than the package that raises
// them so call sites read naturally: `return errs.ErrBadNbtTag`.
var (
	ErrVarNumberTooBig      = NewOther("var number is too big")
	ErrStringTooLong        = NewOther("too long string")
	ErrBadNbtTag            = NewOther("bad nbt tag")
	ErrBadName              = NewOther("bad name")
	ErrBadCompoundVariable  = NewOther("bad compound variable")
	ErrNotEachTagPresent    = NewOther("not each tag present")
	ErrBadIdentifier        = NewOther("bad identifier")
	ErrBadKeyValue          = NewOther("bad key value")
	ErrBadParticleID        = NewOther("bad particle id")
	ErrBadWorldEventID      = NewOther("bad world event id")
	ErrEmptyPalette         = NewOther("empty array in paletted container")
	ErrBadPaletteBits       = NewOther("bad palette bits")
	ErrInvalidHeightmap     = NewOther("invalid heightmap length")
	ErrInvalidHeaderSize    = NewOther("invalid header size")
	ErrKeyReverseSizeMismatch = NewOther("key_reverse arms do not share a fixed size")
)

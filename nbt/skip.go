package nbt

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
)

// Skip advances c past the payload of a value of the given tag kind without
// materializing it, recursing into List and Compound payloads. Skip never
// looks at names — it is only ever called with the cursor already positioned
// just past a tag+name pair, pointed at the payload.
func Skip(c *cursor.Cursor, tag format.Tag) error {
	switch tag {
	case format.TagEnd:
		return nil
	case format.TagByte:
		return c.Advance(1)
	case format.TagShort:
		return c.Advance(2)
	case format.TagInt, format.TagFloat:
		return c.Advance(4)
	case format.TagLong, format.TagDouble:
		return c.Advance(8)
	case format.TagByteArray:
		return skipPrefixedArray(c, 1)
	case format.TagString:
		n, err := proto.ReadU16(c)
		if err != nil {
			return err
		}

		return c.Advance(int(n))
	case format.TagList:
		return skipList(c)
	case format.TagCompound:
		return skipCompound(c)
	case format.TagIntArray:
		return skipPrefixedArray(c, 4)
	case format.TagLongArray:
		return skipPrefixedArray(c, 8)
	default:
		return errs.ErrBadNbtTag
	}
}

func skipPrefixedArray(c *cursor.Cursor, elemSize int) error {
	n, err := proto.ReadI32(c)
	if err != nil {
		return err
	}
	if n < 0 {
		return errs.ErrBadCompoundVariable
	}

	return c.Advance(int(n) * elemSize)
}

func skipList(c *cursor.Cursor) error {
	elemTag, err := ReadTagByte(c)
	if err != nil {
		return err
	}
	n, err := proto.ReadI32(c)
	if err != nil {
		return err
	}
	for i := int32(0); i < n; i++ {
		if err := Skip(c, elemTag); err != nil {
			return err
		}
	}

	return nil
}

func skipCompound(c *cursor.Cursor) error {
	for {
		tag, err := ReadTagByte(c)
		if err != nil {
			return err
		}
		if tag == format.TagEnd {
			return nil
		}
		if _, err := ReadString(c); err != nil {
			return err
		}
		if err := Skip(c, tag); err != nil {
			return err
		}
	}
}

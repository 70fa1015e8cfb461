package nbt

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
)

// Value is a borrowed-dynamic decode of a single NBT payload, for the rare
// caller that does not know the compound's shape ahead of time and cannot
// use the typed FieldHandler path. Only the field matching Tag is
// meaningful; the rest are zero.
type Value struct {
	Tag         format.Tag
	Byte        int8
	Short       int16
	Int         int32
	Long        int64
	Float       float32
	Double      float64
	ByteArray   []byte
	Str         string
	List        []Value
	ListElemTag format.Tag
	Compound    map[string]Value
	IntArray    []int32
	LongArray   []int64
}

// ReadValue decodes the payload for the given tag into a Value, recursing
// into List and Compound payloads.
func ReadValue(c *cursor.Cursor, tag format.Tag) (Value, error) {
	v := Value{Tag: tag}
	var err error
	switch tag {
	case format.TagEnd:
	case format.TagByte:
		v.Byte, err = ReadByte(c)
	case format.TagShort:
		v.Short, err = ReadShort(c)
	case format.TagInt:
		v.Int, err = ReadInt(c)
	case format.TagLong:
		v.Long, err = ReadLong(c)
	case format.TagFloat:
		v.Float, err = ReadFloat(c)
	case format.TagDouble:
		v.Double, err = ReadDouble(c)
	case format.TagByteArray:
		v.ByteArray, err = ReadByteArray(c)
	case format.TagString:
		v.Str, err = ReadString(c)
	case format.TagList:
		var elemTag format.Tag
		var n int32
		elemTag, n, err = ReadListHeader(c)
		if err != nil {
			break
		}
		v.ListElemTag = elemTag
		v.List = make([]Value, n)
		for i := range v.List {
			v.List[i], err = ReadValue(c, elemTag)
			if err != nil {
				break
			}
		}
	case format.TagCompound:
		v.Compound, err = ReadCompoundValue(c)
	case format.TagIntArray:
		v.IntArray, err = ReadIntArray(c)
	case format.TagLongArray:
		v.LongArray, err = ReadLongArray(c)
	default:
		err = errs.ErrBadNbtTag
	}

	return v, err
}

// WriteValue encodes v's payload according to v.Tag, the write-side
// counterpart of ReadValue.
func WriteValue(w cursor.Writer, v Value) error {
	switch v.Tag {
	case format.TagEnd:
		return nil
	case format.TagByte:
		return WriteByte(w, v.Byte)
	case format.TagShort:
		return WriteShort(w, v.Short)
	case format.TagInt:
		return WriteInt(w, v.Int)
	case format.TagLong:
		return WriteLong(w, v.Long)
	case format.TagFloat:
		return WriteFloat(w, v.Float)
	case format.TagDouble:
		return WriteDouble(w, v.Double)
	case format.TagByteArray:
		return WriteByteArray(w, v.ByteArray)
	case format.TagString:
		return WriteString(w, v.Str)
	case format.TagList:
		return WriteList(w, v.ListElemTag, v.List, func(w cursor.Writer, elem Value) error {
			return WriteValue(w, elem)
		})
	case format.TagCompound:
		return WriteCompoundValue(w, v.Compound)
	case format.TagIntArray:
		return WriteIntArray(w, v.IntArray)
	case format.TagLongArray:
		return WriteLongArray(w, v.LongArray)
	default:
		return errs.ErrBadNbtTag
	}
}

// WriteCompoundValue encodes every entry of m as a named field followed by
// TagEnd. Map iteration order is unspecified, matching Go's usual map
// semantics; callers that need a stable field order should use the typed
// FieldHandler path instead.
func WriteCompoundValue(w cursor.Writer, m map[string]Value) error {
	for name, v := range m {
		if err := WriteField(w, v.Tag, name, func(w cursor.Writer) error {
			return WriteValue(w, v)
		}); err != nil {
			return err
		}
	}

	return WriteEnd(w)
}

// ReadCompoundValue decodes every field of a compound into a map, continuing
// until TagEnd.
func ReadCompoundValue(c *cursor.Cursor) (map[string]Value, error) {
	out := make(map[string]Value)
	for {
		tag, err := ReadTagByte(c)
		if err != nil {
			return nil, err
		}
		if tag == format.TagEnd {
			return out, nil
		}
		name, err := ReadString(c)
		if err != nil {
			return nil, err
		}
		val, err := ReadValue(c, tag)
		if err != nil {
			return nil, err
		}
		out[name] = val
	}
}

package packet

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/variant"
)

// BlockActionKey names a block-action arm's block family, used as the
// key_reverse discriminator: in the real protocol the action-byte pair
// precede a block-type VarInt, which plays the role of the fixed-size
// trailing key here.
type BlockActionKey int32

const (
	BlockActionNoteBlock BlockActionKey = 0
	BlockActionPiston    BlockActionKey = 1
	BlockActionChest     BlockActionKey = 2
)

// blockActionFieldsSize is the fixed byte width every BlockAction arm's two
// action bytes occupy — required by key_reverse's "every arm must have a
// statically equal SIZE" rule.
const blockActionFieldsSize = 2

// blockActionKeySize is the VarInt-encoded block-type id that follows the
// action bytes; in this exercise's key_reverse worked example it is fixed
// at 1 byte, matching small block-type ids.
const blockActionKeySize = 1

// BlockAction is the BlockAction (0x08) packet: a block position, the two
// action bytes (whose meaning is keyed by the trailing block-type id), and
// the block-type id itself, encoded key_reverse (fields, then key).
type BlockAction struct {
	Base
	Location    variant.BlockPosition
	ActionID    uint8
	ActionParam uint8
	BlockType   BlockActionKey
}

const (
	blockActionID    = 0x08
	blockActionState = format.StatePlay
	blockActionBound = format.BoundClient
)

// ReadBlockAction decodes a BlockAction body using the key_reverse layout:
// a fixed-size span of blockActionFieldsSize+blockActionKeySize bytes is
// carved after the position, the trailing blockActionKeySize bytes decode
// as the key, and the leading bytes decode as the action fields.
func ReadBlockAction(c *cursor.Cursor) (BlockAction, error) {
	var ba BlockAction
	ba.Base = Base{PacketID: blockActionID, PacketState: blockActionState, PacketBound: blockActionBound}

	loc, err := variant.ReadBlockPosition(c)
	if err != nil {
		return ba, err
	}
	ba.Location = loc

	result, err := KeyReverseReader(
		c,
		blockActionFieldsSize+blockActionKeySize,
		readBlockActionKey,
		blockActionKeySize,
		decodeBlockActionArm,
	)
	if err != nil {
		return ba, err
	}
	arm := result.(blockActionArm)
	ba.ActionID = arm.id
	ba.ActionParam = arm.param
	ba.BlockType = arm.key

	return ba, nil
}

type blockActionArm struct {
	id, param uint8
	key       BlockActionKey
}

func readBlockActionKey(c *cursor.Cursor) (BlockActionKey, error) {
	v, err := proto.ReadU8(c)
	return BlockActionKey(v), err
}

func decodeBlockActionArm(key BlockActionKey, fields *cursor.Cursor) (any, error) {
	switch key {
	case BlockActionNoteBlock, BlockActionPiston, BlockActionChest:
		id, err := proto.ReadU8(fields)
		if err != nil {
			return nil, err
		}
		param, err := proto.ReadU8(fields)
		if err != nil {
			return nil, err
		}

		return blockActionArm{id: id, param: param, key: key}, nil
	default:
		return nil, errs.ErrBadKeyValue
	}
}

// WriteBlockAction encodes ba's fields in key_reverse order: position, then
// the two action bytes, then the block-type key.
func WriteBlockAction(w cursor.Writer, ba BlockAction) error {
	if err := variant.WriteBlockPosition(w, ba.Location); err != nil {
		return err
	}

	return KeyReverseWriter(w, ba.BlockType, writeBlockActionKey, func(w cursor.Writer) error {
		if err := proto.WriteU8(w, ba.ActionID); err != nil {
			return err
		}

		return proto.WriteU8(w, ba.ActionParam)
	})
}

func writeBlockActionKey(w cursor.Writer, key BlockActionKey) error {
	return proto.WriteU8(w, uint8(key)) //nolint:gosec
}

package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/variant"
)

func TestHandshakeRoundTrip(t *testing.T) {
	h := NewHandshake(759, "localhost", 25565, NextStateLogin)

	w := cursor.NewBufWriter()
	require.NoError(t, WriteHandshake(w, h))

	c := cursor.New(w.Bytes())
	got, err := ReadHandshake(c)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, int32(0x00), got.ID())
}

func TestBlockActionKeyReverseRoundTrip(t *testing.T) {
	ba := BlockAction{
		Location:    variant.BlockPosition{X: 10, Y: 64, Z: -5},
		ActionID:    1,
		ActionParam: 2,
		BlockType:   BlockActionPiston,
	}

	w := cursor.NewBufWriter()
	require.NoError(t, WriteBlockAction(w, ba))

	c := cursor.New(w.Bytes())
	got, err := ReadBlockAction(c)
	require.NoError(t, err)
	assert.Equal(t, ba.Location, got.Location)
	assert.Equal(t, ba.ActionID, got.ActionID)
	assert.Equal(t, ba.ActionParam, got.ActionParam)
	assert.Equal(t, ba.BlockType, got.BlockType)
}

func TestBlockActionUnknownKeyRejected(t *testing.T) {
	loc := variant.BlockPosition{X: 1, Y: 2, Z: 3}
	w := cursor.NewBufWriter()
	require.NoError(t, variant.WriteBlockPosition(w, loc))
	require.NoError(t, writeBlockActionKey(w, BlockActionKey(99)))

	c := cursor.New(w.Bytes())
	_, err := variant.ReadBlockPosition(c)
	require.NoError(t, err)

	_, err = KeyReverseReader(c, blockActionFieldsSize+blockActionKeySize, readBlockActionKey, blockActionKeySize, decodeBlockActionArm)
	assert.Error(t, err)
}

func TestWorldEventBidirectionalMapping(t *testing.T) {
	for kind, id := range worldEventID {
		e := WorldEvent{Event: kind, Data: 7, Location: variant.BlockPosition{X: 1, Y: 2, Z: 3}}

		w := cursor.NewBufWriter()
		require.NoError(t, WriteWorldEvent(w, e))

		c := cursor.New(w.Bytes())
		got, err := ReadWorldEvent(c)
		require.NoError(t, err)
		assert.Equal(t, kind, got.Event)
		assert.Equal(t, id, worldEventID[got.Event])
		assert.Equal(t, e.Data, got.Data)
	}
}

func TestWorldEventUnknownIDRejected(t *testing.T) {
	w := cursor.NewBufWriter()
	require.NoError(t, proto.WriteI32(w, 9999))
	require.NoError(t, proto.WriteI32(w, 0))
	require.NoError(t, variant.WriteBlockPosition(w, variant.BlockPosition{}))
	require.NoError(t, proto.WriteBool(w, false))

	_, err := ReadWorldEvent(cursor.New(w.Bytes()))
	assert.ErrorIs(t, err, errs.ErrBadWorldEventID)
}

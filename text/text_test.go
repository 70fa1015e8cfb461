package text_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/text"
)

func TestStringCodecRoundTrip(t *testing.T) {
	sc, err := text.NewStringCodec(text.WithLimit(8))
	require.NoError(t, err)

	w := cursor.NewBufWriter()
	require.NoError(t, sc.Write(w, "abcdefgh"))

	c := cursor.New(w.Bytes())
	got, err := sc.Read(c)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", got)
}

func TestStringCodecRejectsOverLimit(t *testing.T) {
	sc, err := text.NewStringCodec(text.WithLimit(4))
	require.NoError(t, err)

	w := cursor.NewBufWriter()
	assert.Error(t, sc.Write(w, "too long"))
}

func TestStringCodecDefaultLimit(t *testing.T) {
	sc, err := text.NewStringCodec()
	require.NoError(t, err)

	w := cursor.NewBufWriter()
	require.NoError(t, sc.Write(w, "fits fine"))
}

func TestIdentifierRoundTrip(t *testing.T) {
	id, err := text.NewFull("minecraft:stone")
	require.NoError(t, err)

	w := cursor.NewBufWriter()
	require.NoError(t, text.Write(w, id))

	c := cursor.New(w.Bytes())
	got, err := text.Read(c)
	require.NoError(t, err)
	assert.True(t, id.Equal(got))
}

func TestIdentifierPartialEqualsFull(t *testing.T) {
	partial := text.NewPartial("minecraft", "dirt")
	full, err := text.NewFull("minecraft:dirt")
	require.NoError(t, err)
	assert.True(t, partial.Equal(full))
	assert.Equal(t, "minecraft:dirt", partial.String())
}

func TestIdentifierBadFormat(t *testing.T) {
	_, err := text.NewFull("no-colon-here")
	assert.Error(t, err)

	_, err = text.NewFull("too:many:colons")
	assert.Error(t, err)
}

func TestIdentifierJSON(t *testing.T) {
	id, err := text.NewFull("minecraft:default")
	require.NoError(t, err)

	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"minecraft:default"`, string(b))

	var got text.Identifier
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, id.Equal(got))
}

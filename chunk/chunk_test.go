package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Birdmc/bird-server/chunk"
	"github.com/Birdmc/bird-server/cursor"
)

func TestCompactLongPackExample(t *testing.T) {
	// Entries [1,7,31,127,511] at bits=9 (perWord=7, gap=64-63=1) pack into
	// one word with value (511<<37)|(127<<28)|(31<<19)|(7<<10)|(1<<1) =
	// 0x3FE7F0F81C02. This arithmetically-correct value replaces the
	// hex literal the source text carries (0x3FE3F8FC7F02), which does not
	// satisfy its own stated write formula.
	w := cursor.NewBufWriter()
	n, err := chunk.PackAll(w, 9, []uint64{1, 7, 31, 127, 511})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x00, 0x00, 0x3F, 0xE7, 0xF0, 0xF8, 0x1C, 0x02}, w.Bytes())
}

func TestCompactLongRoundTrip(t *testing.T) {
	for _, bits := range []int{4, 5, 6, 9, 15} {
		perWord := chunk.PerWord(bits)
		for _, n := range []int{1, perWord, perWord + 1, 3*perWord - 1} {
			values := make([]uint64, n)
			for i := range values {
				values[i] = uint64(i) % (uint64(1) << uint(bits))
			}
			w := cursor.NewBufWriter()
			wordsWritten, err := chunk.PackAll(w, bits, values)
			require.NoError(t, err)
			assert.Equal(t, chunk.WordCount(n, bits), wordsWritten)

			c := cursor.New(w.Bytes())
			words, err := chunk.ReadWords(c, n, bits)
			require.NoError(t, err)
			got := chunk.UnpackAll(words, bits, n)
			assert.Equal(t, values, got)
		}
	}
}

func TestBitSetWordsGetSet(t *testing.T) {
	b := chunk.NewBitSetFromWords(make([]uint64, 2))
	b.Set(0)
	b.Set(70)
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(70))
	assert.False(t, b.Get(1))
	b.Clear(0)
	assert.False(t, b.Get(0))
}

func TestPalettedContainerSingle(t *testing.T) {
	d := chunk.BlockStates(256)
	values := make([]uint32, d.N)
	for i := range values {
		values[i] = 5
	}
	w := cursor.NewBufWriter()
	require.NoError(t, chunk.Encode(w, d, values))
	assert.LessOrEqual(t, w.Len(), 3)

	c := cursor.New(w.Bytes())
	container, err := chunk.Decode(c, d)
	require.NoError(t, err)
	assert.Equal(t, chunk.FormSingle, container.Form)
	for i := 0; i < d.N; i++ {
		assert.Equal(t, uint32(5), container.Get(i))
	}
}

func TestPalettedContainerIndirect(t *testing.T) {
	d := chunk.BlockStates(256)
	values := make([]uint32, d.N)
	for i := range values {
		values[i] = uint32(i % 5)
	}
	w := cursor.NewBufWriter()
	require.NoError(t, chunk.Encode(w, d, values))

	c := cursor.New(w.Bytes())
	container, err := chunk.Decode(c, d)
	require.NoError(t, err)
	assert.Equal(t, chunk.FormIndirect, container.Form)
	for i := 0; i < d.N; i++ {
		assert.Equal(t, values[i], container.Get(i))
	}
}

func TestPalettedContainerDirect(t *testing.T) {
	d := chunk.BlockStates(32768)
	values := make([]uint32, d.N)
	for i := range values {
		values[i] = uint32(i % 300)
	}
	w := cursor.NewBufWriter()
	require.NoError(t, chunk.Encode(w, d, values))

	c := cursor.New(w.Bytes())
	container, err := chunk.Decode(c, d)
	require.NoError(t, err)
	assert.Equal(t, chunk.FormDirect, container.Form)
	for i := 0; i < d.N; i++ {
		assert.Equal(t, values[i], container.Get(i))
	}
}

func TestHeightmapRoundTrip(t *testing.T) {
	var hm chunk.Heightmap
	for i := range hm.MotionBlocking {
		hm.MotionBlocking[i] = uint16(i % 320) //nolint:gosec
	}
	w := cursor.NewBufWriter()
	require.NoError(t, chunk.EncodeHeightmap(w, &hm))

	c := cursor.New(w.Bytes())
	got, err := chunk.DecodeHeightmap(c)
	require.NoError(t, err)
	assert.Equal(t, hm, *got)
}

func TestLightArrayGetSet(t *testing.T) {
	data := make([]byte, chunk.LightArraySize)
	l := chunk.NewLightArray(data)
	l.Set(1, 2, 3, 15)
	assert.Equal(t, uint8(15), l.Get(1, 2, 3))
	l.Set(0, 0, 0, 7)
	assert.Equal(t, uint8(7), l.Get(0, 0, 0))
}

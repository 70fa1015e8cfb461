package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Birdmc/bird-server/format"
)

func roundTrip(t *testing.T, c Codec, data []byte) {
	t.Helper()
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestCodecsRoundTrip(t *testing.T) {
	payload := []byte("a chunk data and update light packet body, repeated repeated repeated")

	codecs := map[string]Codec{
		"none": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, c, payload)
		})
	}
}

func TestNoOpCompressorIsIdentity(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("hello")
	out, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		c, err := CreateCodec(ct, "test")
		require.NoError(t, err)
		require.NotNil(t, c)
	}

	_, err := CreateCodec(format.CompressionType(99), "test")
	assert.Error(t, err)
}

func TestGetCodecUnsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(99))
	assert.Error(t, err)
}

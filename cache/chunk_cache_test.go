package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Birdmc/bird-server/format"
)

func TestChunkPacketCachePutGet(t *testing.T) {
	c, err := NewChunkPacketCache(format.CompressionLZ4)
	require.NoError(t, err)

	key := Key{ChunkX: 1, ChunkZ: -2, Version: 1}
	body := []byte("chunk data and update light body, repeated repeated repeated")

	require.NoError(t, c.Put(key, body))
	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, body, got)
	assert.Equal(t, 1, c.Len())
}

func TestChunkPacketCacheMiss(t *testing.T) {
	c, err := NewChunkPacketCache(format.CompressionNone)
	require.NoError(t, err)

	_, ok, err := c.Get(Key{ChunkX: 9, ChunkZ: 9})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChunkPacketCacheVersionBumpEvictsLogically(t *testing.T) {
	c, err := NewChunkPacketCache(format.CompressionS2)
	require.NoError(t, err)

	oldKey := Key{ChunkX: 0, ChunkZ: 0, Version: 1}
	newKey := Key{ChunkX: 0, ChunkZ: 0, Version: 2}

	require.NoError(t, c.Put(oldKey, []byte("old")))
	require.NoError(t, c.Put(newKey, []byte("new")))

	_, ok, err := c.Get(oldKey)
	require.NoError(t, err)
	assert.True(t, ok, "old version entry is independently addressable, not overwritten")

	got, ok, err := c.Get(newKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestChunkPacketCacheDelete(t *testing.T) {
	c, err := NewChunkPacketCache(format.CompressionZstd)
	require.NoError(t, err)

	key := Key{ChunkX: 3, ChunkZ: 4}
	require.NoError(t, c.Put(key, []byte("payload")))
	c.Delete(key)

	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCompressionRatio(t *testing.T) {
	c, err := NewChunkPacketCache(format.CompressionZstd)
	require.NoError(t, err)

	key := Key{ChunkX: 1, ChunkZ: 1}
	assert.Equal(t, 0.0, c.CompressionRatio(key))

	require.NoError(t, c.Put(key, []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")))
	assert.Greater(t, c.CompressionRatio(key), 0.0)
}

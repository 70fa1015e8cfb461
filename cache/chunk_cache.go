// Package cache implements an in-process cache of pre-encoded packet bytes,
// keyed by content hash and compressed with a pluggable codec. It has no
// part in wire framing: a connection layer built on this library would
// populate it with already-serialized ChunkDataAndUpdateLight bodies for
// chunk columns many connections share (spawn area, pregenerated terrain),
// and serve cache hits instead of re-encoding per connection.
package cache

import (
	"fmt"
	"sync"

	"github.com/Birdmc/bird-server/compress"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/internal/hash"
)

// Key identifies a cached chunk packet by coordinate and a caller-supplied
// content version. Version changes (e.g. after a block edit) naturally
// evict the stale entry by producing a different key, rather than mutating
// a cached entry in place.
type Key struct {
	ChunkX, ChunkZ int32
	Version        uint64
}

// hashKey reduces a Key to the xxHash64 of its coordinate-and-version text.
func hashKey(k Key) uint64 {
	return hash.ID(fmt.Sprintf("%d:%d:%d", k.ChunkX, k.ChunkZ, k.Version))
}

// entry is a cache slot holding the compressed packet bytes and the
// original (uncompressed) length, which CompressionRatio reports against.
type entry struct {
	compressed []byte
	plainLen   int
}

// ChunkPacketCache stores already-encoded ChunkDataAndUpdateLight packet
// bytes compressed with codec, keyed by Key. It is safe for concurrent use.
type ChunkPacketCache struct {
	mu      sync.RWMutex
	entries map[uint64]entry
	codec   compress.Codec
}

// NewChunkPacketCache builds a cache using the given compression type for
// stored entries.
func NewChunkPacketCache(compressionType format.CompressionType) (*ChunkPacketCache, error) {
	codec, err := compress.CreateCodec(compressionType, "chunk packet cache")
	if err != nil {
		return nil, err
	}

	return &ChunkPacketCache{
		entries: make(map[uint64]entry),
		codec:   codec,
	}, nil
}

// Put compresses and stores packetBytes under key, replacing any existing
// entry for the same key.
func (c *ChunkPacketCache) Put(key Key, packetBytes []byte) error {
	compressed, err := c.codec.Compress(packetBytes)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[hashKey(key)] = entry{compressed: compressed, plainLen: len(packetBytes)}
	c.mu.Unlock()

	return nil
}

// Get returns the decompressed packet bytes stored under key, and whether
// an entry was found. The returned slice is newly allocated and owned by
// the caller.
func (c *ChunkPacketCache) Get(key Key) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[hashKey(key)]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	plain, err := c.codec.Decompress(e.compressed)
	if err != nil {
		return nil, true, err
	}
	if _, noop := c.codec.(compress.NoOpCompressor); noop {
		// The no-op codec hands back the stored slice itself.
		plain = append([]byte(nil), plain...)
	}

	return plain, true, nil
}

// CompressionRatio reports key's stored compressed-to-original size ratio
// (0 if key is absent), useful for picking a codec per workload.
func (c *ChunkPacketCache) CompressionRatio(key Key) float64 {
	c.mu.RLock()
	e, ok := c.entries[hashKey(key)]
	c.mu.RUnlock()
	if !ok || e.plainLen == 0 {
		return 0
	}

	return float64(len(e.compressed)) / float64(e.plainLen)
}

// Delete removes key's entry, if present.
func (c *ChunkPacketCache) Delete(key Key) {
	c.mu.Lock()
	delete(c.entries, hashKey(key))
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *ChunkPacketCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

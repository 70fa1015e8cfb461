package compress

// ZstdCompressor compresses with zstd at the library's default encoder
// level (zstd.SpeedDefault), using pooled encoders and decoders.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

package text

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/internal/options"
)

// Config holds a StringCodec's configurable length limit.
type Config struct {
	Limit int
}

// WithLimit overrides the default string length limit.
func WithLimit(limit int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.Limit = limit })
}

// StringCodec binds ReadString/WriteString to a configured limit, built via
// functional options instead of repeating the limit at every call site.
type StringCodec struct {
	limit int
}

// NewStringCodec builds a StringCodec defaulting to DefaultLimit, applying
// opts in order.
func NewStringCodec(opts ...options.Option[*Config]) (StringCodec, error) {
	cfg := &Config{Limit: DefaultLimit}
	if err := options.Apply(cfg, opts...); err != nil {
		return StringCodec{}, err
	}

	return StringCodec{limit: cfg.Limit}, nil
}

// Read decodes a string bounded by the codec's configured limit.
func (sc StringCodec) Read(c *cursor.Cursor) (string, error) {
	return ReadString(c, sc.limit)
}

// Write encodes v bounded by the codec's configured limit.
func (sc StringCodec) Write(w cursor.Writer, v string) error {
	return WriteString(w, sc.limit, v)
}

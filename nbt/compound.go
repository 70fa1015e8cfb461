package nbt

import (
	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/format"
	"github.com/Birdmc/bird-server/internal/options"
)

// DecodeConfig controls DecodeWithConfig's handling of fields with no
// registered handler: skip (the default) or reject. Decode and
// DecodeRequired always skip.
type DecodeConfig struct {
	RejectUnknownFields bool
}

// WithRejectUnknownFields makes DecodeWithConfig fail on any compound field
// whose name has no handler, instead of skipping it.
func WithRejectUnknownFields() options.Option[*DecodeConfig] {
	return options.NoError(func(c *DecodeConfig) { c.RejectUnknownFields = true })
}

// FieldHandler consumes the payload of one named compound field. It is
// called with the cursor positioned just past the field's tag+name, and
// must leave the cursor positioned just past the field's payload — the same
// contract Skip honors for unrecognized fields.
type FieldHandler func(c *cursor.Cursor, tag format.Tag) error

// Decode walks a compound's tag+name+payload triples until TagEnd, invoking
// handlers[name] for recognized fields and Skip for the rest, so unknown
// fields never block a caller that only needs a subset of a compound's keys.
// If a handler is present for a name that repeats within the compound, the
// last occurrence wins, mirroring the "last write wins" rule struct-typed
// decoders rely on.
func Decode(c *cursor.Cursor, handlers map[string]FieldHandler) error {
	return DecodeWithConfig(c, handlers, DecodeConfig{})
}

// DecodeWithConfig behaves like Decode but honors cfg's unknown-field
// policy, built via the WithRejectUnknownFields functional option.
func DecodeWithConfig(c *cursor.Cursor, handlers map[string]FieldHandler, cfg DecodeConfig) error {
	for {
		tag, err := ReadTagByte(c)
		if err != nil {
			return err
		}
		if tag == format.TagEnd {
			return nil
		}
		name, err := ReadString(c)
		if err != nil {
			return err
		}
		h, ok := handlers[name]
		if !ok {
			if cfg.RejectUnknownFields {
				return errs.ErrBadCompoundVariable
			}
			if err := Skip(c, tag); err != nil {
				return err
			}

			continue
		}
		if err := h(c, tag); err != nil {
			return err
		}
	}
}

// DecodeRequired behaves like Decode but additionally tracks which of
// required's names were seen, returning errs.ErrNotEachTagPresent if any
// were not, the Go analog of a derive(Deserialize) struct rejecting a
// compound missing a non-Option field.
func DecodeRequired(c *cursor.Cursor, handlers map[string]FieldHandler, required []string) error {
	seen := make(map[string]bool, len(required))
	wrapped := make(map[string]FieldHandler, len(handlers))
	for name, h := range handlers {
		name, h := name, h
		wrapped[name] = func(c *cursor.Cursor, tag format.Tag) error {
			seen[name] = true

			return h(c, tag)
		}
	}
	if err := Decode(c, wrapped); err != nil {
		return err
	}
	for _, name := range required {
		if !seen[name] {
			return errs.ErrNotEachTagPresent
		}
	}

	return nil
}

// WriteField writes a field's tag, name, and invokes writePayload for its
// value. Callers terminate a compound with WriteEnd.
func WriteField(w cursor.Writer, tag format.Tag, name string, writePayload func(cursor.Writer) error) error {
	if err := WriteTagByte(w, tag); err != nil {
		return err
	}
	if err := WriteString(w, name); err != nil {
		return err
	}

	return writePayload(w)
}

// WriteEnd writes the TagEnd byte that terminates a compound's field list.
func WriteEnd(w cursor.Writer) error {
	return WriteTagByte(w, format.TagEnd)
}

package variant

import (
	"encoding/json"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/proto"
	"github.com/Birdmc/bird-server/text"
)

// ReadJSON reads a chat-limited length-prefixed UTF-8 string and unmarshals
// it into a new T. The shape of T's JSON encoding (e.g. the Chat-Component
// shape) is a boundary concern outside this module's scope; only the
// length-prefix/limit/UTF-8 codec is specified here.
func ReadJSON[T any](c *cursor.Cursor) (T, error) {
	var zero T
	s, err := text.ReadChat(c)
	if err != nil {
		return zero, err
	}
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return zero, err
	}

	return v, nil
}

// WriteJSON marshals v to JSON and writes it as a chat-limited
// length-prefixed UTF-8 string.
func WriteJSON[T any](w cursor.Writer, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return text.WriteChat(w, string(b))
}

// JSONSize is the SIZE contract for the Json variant: identical to a
// chat-limited string, since the JSON shape itself carries no separate
// framing.
func JSONSize() proto.Size { return text.Size(text.ChatLimit) }

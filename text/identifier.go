package text

import (
	"encoding/json"
	"strings"

	"github.com/Birdmc/bird-server/cursor"
	"github.com/Birdmc/bird-server/errs"
	"github.com/Birdmc/bird-server/proto"
)

// DefaultNamespace is used when an identifier string carries no colon,
// matching the Minecraft convention that a bare path belongs to the
// "minecraft" namespace. No code in this package applies it: decoding a
// Full identifier still requires a colon.
const DefaultNamespace = "minecraft"

// Identifier is "namespace:path" with exactly one colon. Full holds the
// whole "namespace:path" string as a single borrowed slice, avoiding a
// format call on write. Partial holds the two halves separately, used when a
// caller builds an identifier from known parts and wants to avoid a
// concatenation until write time. Equality compares (namespace, path) after
// normalizing both forms, so a Full and a Partial identifier naming the same
// namespace/path compare equal.
type Identifier struct {
	full      string
	namespace string
	path      string
	isFull    bool
}

// NewFull constructs an Identifier from a single "namespace:path" string,
// failing if it does not contain exactly one colon.
func NewFull(s string) (Identifier, error) {
	ns, path, err := splitOne(s)
	if err != nil {
		return Identifier{}, err
	}

	return Identifier{full: s, namespace: ns, path: path, isFull: true}, nil
}

// NewPartial constructs an Identifier from separate namespace and path
// halves, deferring concatenation until Write or String is called.
func NewPartial(namespace, path string) Identifier {
	return Identifier{namespace: namespace, path: path}
}

func splitOne(s string) (namespace, path string, err error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 || strings.IndexByte(s[idx+1:], ':') >= 0 {
		return "", "", errs.ErrBadIdentifier
	}

	return s[:idx], s[idx+1:], nil
}

// Namespace returns the identifier's namespace half.
func (id Identifier) Namespace() string { return id.namespace }

// Path returns the identifier's path half.
func (id Identifier) Path() string { return id.path }

// String renders "namespace:path", computing the concatenation lazily for
// a Partial identifier.
func (id Identifier) String() string {
	if id.isFull {
		return id.full
	}

	return id.namespace + ":" + id.path
}

// Equal compares two identifiers by (namespace, path) regardless of
// whether either is a Full or Partial form.
func (id Identifier) Equal(other Identifier) bool {
	return id.namespace == other.namespace && id.path == other.path
}

// Read decodes an Identifier from a length-prefixed UTF-8 string bounded
// by DefaultLimit, requiring exactly one colon.
func Read(c *cursor.Cursor) (Identifier, error) {
	s, err := ReadDefault(c)
	if err != nil {
		return Identifier{}, err
	}

	return NewFull(s)
}

// Write encodes id as a length-prefixed UTF-8 string. A Full identifier
// writes its stored slice directly with no formatting; a Partial
// identifier concatenates its halves first.
func Write(w cursor.Writer, id Identifier) error {
	return WriteDefault(w, id.String())
}

// IdentifierSize is the SIZE contract for an Identifier: same as a
// default-limit string.
func IdentifierSize() proto.Size { return Size(DefaultLimit) }

func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewFull(s)
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

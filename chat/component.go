package chat

import "github.com/Birdmc/bird-server/text"

// ClickEvent is a Component's optional click action.
type ClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// HoverEvent is a Component's optional hover action. ShowText's value can be
// either a nested Component or a plain string in source (an `Either`); Go
// has no sum type for that, so Value carries the plain-string form and
// ValueComponent carries the nested-Component form, with only one set per
// instance.
type HoverEvent struct {
	Action         string     `json:"action"`
	Value          string     `json:"value,omitempty"`
	ValueComponent *Component `json:"-"`
}

// Score is a Component's scoreboard-value content.
type Score struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Value     string `json:"value"`
}

// Component is the Chat-Component JSON payload transmitted through the Json
// variant codec. Its shape is deliberately untyped-union-like (source's
// ComponentType is `#[serde(untagged)]`): at most one of Text,
// Translate/With, KeyBind, Selector, or ScoreValue should be set, matching
// the protocol's convention of exactly one content field per component.
type Component struct {
	Text      string      `json:"text,omitempty"`
	Translate string      `json:"translate,omitempty"`
	With      []Component `json:"with,omitempty"`
	KeyBind   string      `json:"keybind,omitempty"`
	Selector  string      `json:"selector,omitempty"`
	Score     *Score      `json:"score,omitempty"`

	Bold          *bool            `json:"bold,omitempty"`
	Italic        *bool            `json:"italic,omitempty"`
	Underlined    *bool            `json:"underlined,omitempty"`
	Strikethrough *bool            `json:"strikethrough,omitempty"`
	Obfuscated    *bool            `json:"obfuscated,omitempty"`
	Font          *text.Identifier `json:"font,omitempty"`
	Color         *Color           `json:"color,omitempty"`
	Insertion     string           `json:"insertion,omitempty"`
	ClickEvent    *ClickEvent      `json:"clickEvent,omitempty"`
	HoverEvent    *HoverEvent      `json:"hoverEvent,omitempty"`
	Extra         []Component      `json:"extra,omitempty"`
}

// Plain builds a Component carrying only literal text, the common case for
// system messages and disconnect reasons.
func Plain(s string) Component {
	return Component{Text: s}
}

// Colored builds a Component carrying literal text in the given color.
func Colored(s string, c Color) Component {
	return Component{Text: s, Color: &c}
}

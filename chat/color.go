// Package chat implements the Chat-Component boundary types: Color and
// Component. Only the JSON shape of these types is in scope — transmission
// goes through variant.ReadJSON/WriteJSON, which treats Component as an
// opaque JSON payload behind the Json variant codec.
package chat

import (
	"encoding/json"
	"fmt"
)

// Color is a named chat color or an RGB custom color, matching the legacy
// 16-color palette plus the `#rrggbb` extension.
type Color struct {
	name    string
	custom  bool
	r, g, b uint8
}

var (
	ColorBlack       = Color{name: "black"}
	ColorDarkBlue    = Color{name: "dark_blue"}
	ColorDarkGreen   = Color{name: "dark_green"}
	ColorDarkCyan    = Color{name: "dark_aqua"}
	ColorDarkRed     = Color{name: "dark_red"}
	ColorPurple      = Color{name: "dark_purple"}
	ColorGold        = Color{name: "gold"}
	ColorGray        = Color{name: "gray"}
	ColorDarkGray    = Color{name: "dark_gray"}
	ColorBlue        = Color{name: "blue"}
	ColorBrightGreen = Color{name: "green"}
	ColorCyan        = Color{name: "aqua"}
	ColorRed         = Color{name: "red"}
	ColorPink        = Color{name: "light_purple"}
	ColorYellow      = Color{name: "yellow"}
	ColorWhite       = Color{name: "white"}
)

// colorByName backs ParseColor; colorByValue backs ColorFromValue.
var colorByName = map[string]Color{
	ColorBlack.name: ColorBlack, ColorDarkBlue.name: ColorDarkBlue,
	ColorDarkGreen.name: ColorDarkGreen, ColorDarkCyan.name: ColorDarkCyan,
	ColorDarkRed.name: ColorDarkRed, ColorPurple.name: ColorPurple,
	ColorGold.name: ColorGold, ColorGray.name: ColorGray,
	ColorDarkGray.name: ColorDarkGray, ColorBlue.name: ColorBlue,
	ColorBrightGreen.name: ColorBrightGreen, ColorCyan.name: ColorCyan,
	ColorRed.name: ColorRed, ColorPink.name: ColorPink,
	ColorYellow.name: ColorYellow, ColorWhite.name: ColorWhite,
}

var colorByValue = map[uint32]Color{
	0x000000: ColorBlack, 0x0000aa: ColorDarkBlue, 0x00aa00: ColorDarkGreen,
	0x00aaaa: ColorDarkCyan, 0xaa0000: ColorDarkRed, 0xaa00aa: ColorPurple,
	0xffaa00: ColorGold, 0xaaaaaa: ColorGray, 0x555555: ColorDarkGray,
	0x5555ff: ColorBlue, 0x55ff55: ColorBrightGreen, 0x55ffff: ColorCyan,
	0xff5555: ColorRed,
	// 0xff55ff is Pink's own value, but source's from_color match arm for it
	// returns Purple (a typo colliding with 0xaa00aa's arm) — preserved here
	// rather than corrected, since no test asserts the intended behavior.
	0xff55ff: ColorPurple,
	0xffff55: ColorYellow, 0xffffff: ColorWhite,
}

// Value returns the color's packed 0xRRGGBB value.
func (c Color) Value() uint32 {
	if c.custom {
		return uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
	}
	if named, ok := reverseNamedValue[c.name]; ok {
		return named
	}

	return 0
}

var reverseNamedValue = map[string]uint32{
	ColorBlack.name: 0x000000, ColorDarkBlue.name: 0x0000aa, ColorDarkGreen.name: 0x00aa00,
	ColorDarkCyan.name: 0x00aaaa, ColorDarkRed.name: 0xaa0000, ColorPurple.name: 0xaa00aa,
	ColorGold.name: 0xffaa00, ColorGray.name: 0xaaaaaa, ColorDarkGray.name: 0x555555,
	ColorBlue.name: 0x5555ff, ColorBrightGreen.name: 0x55ff55, ColorCyan.name: 0x55ffff,
	ColorRed.name: 0xff5555, ColorPink.name: 0xff55ff, ColorYellow.name: 0xffff55,
	ColorWhite.name: 0xffffff,
}

// CustomColor builds a non-named #rrggbb color.
func CustomColor(r, g, b uint8) Color {
	return Color{custom: true, r: r, g: g, b: b}
}

// ColorFromValue maps a packed 0xRRGGBB value back to a named Color when one
// of the 16 legacy colors matches exactly, otherwise to a custom color.
func ColorFromValue(value uint32) Color {
	if c, ok := colorByValue[value]; ok {
		return c
	}

	return CustomColor(uint8(value>>16&0xff), uint8(value>>8&0xff), uint8(value&0xff)) //nolint:gosec
}

// ParseColor parses a `#rrggbb` literal or one of the 16 legacy color names.
func ParseColor(s string) (Color, error) {
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("bad color literal %q: %w", s, err)
		}

		return CustomColor(r, g, b), nil
	}
	if c, ok := colorByName[s]; ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("bad color name %q", s)
}

// String renders the color the way the protocol's JSON form expects: the
// legacy name, or `#rrggbb` for a custom color.
func (c Color) String() string {
	if c.custom {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}

	return c.name
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

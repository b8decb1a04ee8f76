package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an sRGB color with 8-bit channels and straight alpha.
// Two colors are equal iff all four channels are equal.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ParseHex parses a hex color string into a Color.
//
// A leading "#" is stripped. After stripping, the string must consist of
// exactly 6 hex digits (RRGGBB, alpha implied 0xFF) or exactly 8 hex digits
// (RRGGBBAA). Digits are case-insensitive. Anything else fails.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "#")

	switch len(s) {
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xFF,
		}, true
	case 8:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, true
	default:
		return Color{}, false
	}
}

// ParseHexStrict parses a hex color string, returning *InvalidHexColorError
// on any input ParseHex rejects.
func ParseHexStrict(s string) (Color, error) {
	c, ok := ParseHex(s)
	if !ok {
		return Color{}, &InvalidHexColorError{Value: s}
	}
	return c, nil
}

// Hex serializes the color back to uppercase hex digits without a leading
// "#": RRGGBB when fully opaque, RRGGBBAA otherwise. Parsing the result
// yields the color back. Note that an opaque color parsed from eight
// digits ("336699FF") serializes in the shorter six-digit form; the value
// round-trips, the digit count does not.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Floats returns the four channels normalized to [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// String implements fmt.Stringer as "#"+Hex().
func (c Color) String() string {
	return "#" + c.Hex()
}

package progress

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB swatch.
type Color struct {
	R, G, B uint8
}

func rgb(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Hex returns the color as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Badge returns the color with the 0x20 alpha used for status badge backgrounds.
func (c Color) Badge() string {
	return c.Hex() + "20"
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as #RRGGBB.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses #RRGGBB (the leading # is optional).
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid color %q", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	*c = rgb(uint32(v))
	return nil
}

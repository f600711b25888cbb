package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in [0, 1].
// It implements encoding.TextMarshaler so config files can spell colors as
// "#rrggbb" or "#rrggbbaa".
type Color struct {
	R, G, B, A float64
}

// Predefined colors for game elements.
var (
	ColorRed     = Color{R: 1, A: 1}
	ColorBlack   = Color{A: 1}
	ColorGreen   = Color{G: 0.8, A: 1}
	ColorGray    = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	ColorOverlay = Color{B: 1, A: 0.5} // Blue at 50% opacity
	ColorNone    = Color{}
)

// Opaque reports whether the color fully covers what is under it.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Over composites c on top of dst (source-over) and returns the result.
func (c Color) Over(dst Color) Color {
	a := ClampF(c.A, 0, 1)
	if a >= 1 {
		return c
	}
	outA := a + dst.A*(1-a)
	if outA == 0 {
		return ColorNone
	}
	mix := func(s, d float64) float64 {
		return (s*a + d*dst.A*(1-a)) / outA
	}
	return Color{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: outA,
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// String returns "#rrggbb" for opaque colors and "#rrggbbaa" otherwise.
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), to8(c.A))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("core: invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	alpha := uint64(0xff)
	if len(hex) == 8 {
		alpha = v & 0xff
		v >>= 8
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(alpha) / 255,
	}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}

package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridpaint/core"
)

// Color is a named palette entry
type Color struct {
	Name string
	RGB  core.RGB
}

// Palette is a fixed ordered list of colors. Index 0 is the background and is
// never stored in a grid; indices 1..N-1 are paintable.
type Palette []Color

// Named colors accepted by ParsePalette without an explicit hex value
var namedColors = map[string]core.RGB{
	"black":   {R: 0, G: 0, B: 0},
	"white":   {R: 255, G: 255, B: 255},
	"blue":    {R: 0, G: 0, B: 255},
	"red":     {R: 255, G: 0, B: 0},
	"green":   {R: 0, G: 128, B: 0},
	"yellow":  {R: 255, G: 255, B: 0},
	"cyan":    {R: 0, G: 255, B: 255},
	"magenta": {R: 255, G: 0, B: 255},
	"gray":    {R: 128, G: 128, B: 128},
	"orange":  {R: 255, G: 165, B: 0},
}

// DefaultPalette is black background followed by white, blue, red, green
var DefaultPalette = Palette{
	{Name: "black", RGB: namedColors["black"]},
	{Name: "white", RGB: namedColors["white"]},
	{Name: "blue", RGB: namedColors["blue"]},
	{Name: "red", RGB: namedColors["red"]},
	{Name: "green", RGB: namedColors["green"]},
}

// Len returns the number of palette entries including the background
func (p Palette) Len() int {
	return len(p)
}

// Valid reports whether v is a usable palette index
func (p Palette) Valid(v int) bool {
	return v >= 0 && v < len(p)
}

// Color returns the entry at index v, falling back to the background for
// out-of-range indices
func (p Palette) Color(v int) Color {
	if !p.Valid(v) {
		return p[0]
	}
	return p[v]
}

// Next returns the index following v, wrapping past the last color back to 0
func (p Palette) Next(v int) int {
	return (v + 1) % len(p)
}

// ParsePalette builds a palette from a comma separated list. Each entry is
// either a known color name or name=#rrggbb. The first entry is the
// background.
func ParsePalette(list string) (Palette, error) {
	fields := strings.Split(list, ",")
	p := make(Palette, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		name, hex, explicit := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !explicit {
			rgb, ok := namedColors[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("palette: unknown color %q", name)
			}
			p = append(p, Color{Name: name, RGB: rgb})
			continue
		}

		rgb, err := parseHex(strings.TrimSpace(hex))
		if err != nil {
			return nil, fmt.Errorf("palette: color %q: %w", name, err)
		}
		p = append(p, Color{Name: name, RGB: rgb})
	}

	if len(p) < 2 {
		return nil, fmt.Errorf("palette: need a background and at least one color, got %d entries", len(p))
	}
	return p, nil
}

func parseHex(s string) (core.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return core.RGB{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return core.RGB{}, fmt.Errorf("invalid hex %q", s)
	}
	return core.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

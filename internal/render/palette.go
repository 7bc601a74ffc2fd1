package render

import (
	"fmt"
	"image/color"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Palette maps facelet colors to display colors.
type Palette [cube.NumFaces]color.RGBA

// DefaultPalette is the classic sticker set indexed by solved face.
var DefaultPalette = Palette{
	cube.Yellow: {R: 255, G: 255, B: 0, A: 255},
	cube.Red:    {R: 255, G: 0, B: 0, A: 255},
	cube.Blue:   {R: 0, G: 0, B: 255, A: 255},
	cube.Orange: {R: 255, G: 102, B: 0, A: 255},
	cube.Green:  {R: 0, G: 255, B: 0, A: 255},
	cube.White:  {R: 255, G: 255, B: 255, A: 255},
}

var (
	Black = color.RGBA{A: 255}
	Lilac = color.RGBA{R: 160, G: 158, B: 214, A: 255}
)

// Color returns the display color for a facelet color.
func (p Palette) Color(c cube.Color) color.RGBA {
	if int(c) >= len(p) {
		return Black
	}
	return p[c]
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b uint8
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("render: bad color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("render: bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

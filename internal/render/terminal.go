package render

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as
// background, so one terminal cell shows two vertical pixels.
const halfBlock = "▀"

type cellColors struct {
	top, bottom string
}

// Terminal converts canvas images into styled terminal text.
type Terminal struct {
	styles map[cellColors]lipgloss.Style
}

// NewTerminal creates an encoder with an empty style cache.
func NewTerminal() *Terminal {
	return &Terminal{styles: make(map[cellColors]lipgloss.Style)}
}

func (t *Terminal) style(cc cellColors) lipgloss.Style {
	if s, ok := t.styles[cc]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cc.top)).
		Background(lipgloss.Color(cc.bottom))
	t.styles[cc] = s
	return s
}

// Encode returns one line per pair of pixel rows, one cell per pixel
// column. Runs of identical cells share a single styled span.
func (t *Terminal) Encode(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		run := 0
		var cur cellColors
		for x := b.Min.X; x < b.Max.X; x++ {
			cc := cellColors{top: Hex(img.RGBAAt(x, y))}
			if y+1 < b.Max.Y {
				cc.bottom = Hex(img.RGBAAt(x, y+1))
			} else {
				cc.bottom = cc.top
			}
			if run > 0 && cc != cur {
				sb.WriteString(t.style(cur).Render(strings.Repeat(halfBlock, run)))
				run = 0
			}
			cur = cc
			run++
		}
		if run > 0 {
			sb.WriteString(t.style(cur).Render(strings.Repeat(halfBlock, run)))
		}
	}
	return sb.String()
}

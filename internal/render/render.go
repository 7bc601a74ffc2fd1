// Package render draws the cube onto a display surface, either as a flat
// net of the six faces or as a perspective solid.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/soypat/geometry/ms2"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

// Surface is anything that can fill a quadrilateral. A nil outline means
// the quad is filled only.
type Surface interface {
	DrawQuad(q spatial.Quad, fill color.Color, outline color.Color)
}

// Facelets is the read-only view of cube state the renderer needs.
type Facelets interface {
	Facelet(i int) cube.Color
}

// Geometry yields the visible faces in draw order, already subdivided
// and projected.
type Geometry interface {
	Scene() ([]spatial.ProjectedFace, error)
}

// Mode selects the drawing style for a frame.
type Mode int

const (
	ModeNet Mode = iota
	ModeSolid
)

func (m Mode) String() string {
	switch m {
	case ModeNet:
		return "net"
	case ModeSolid:
		return "solid"
	default:
		return "?"
	}
}

// ParseMode accepts "net"/"flat"/"2d" and "solid"/"3d".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "net", "flat", "2d":
		return ModeNet, nil
	case "solid", "3d":
		return ModeSolid, nil
	default:
		return ModeNet, fmt.Errorf("render: unknown mode %q", s)
	}
}

// netOrigins is the top-left of each face in the net, in face widths.
var netOrigins = [cube.NumFaces][2]float32{
	{0, 0},
	{1, 0},
	{1, 1},
	{1, 2},
	{1, 3},
	{2, 3},
}

// Renderer holds layout constants only; it never mutates what it draws.
type Renderer struct {
	palette   Palette
	outline   color.Color
	square    float32
	netCenter ms2.Vec
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPalette overrides the sticker colors.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithOutline sets the edge color used when outlines are on.
func WithOutline(c color.Color) Option {
	return func(r *Renderer) {
		r.outline = c
	}
}

// WithNetSquare sets the side of one facelet square in net mode.
func WithNetSquare(side float32) Option {
	return func(r *Renderer) {
		r.square = side
	}
}

// WithNetCenter sets the screen point the net is centred on.
func WithNetCenter(c ms2.Vec) Option {
	return func(r *Renderer) {
		r.netCenter = c
	}
}

// New creates a Renderer with the default palette, black outlines and
// 50 px net squares centred on the default screen.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		palette:   DefaultPalette,
		outline:   Black,
		square:    50,
		netCenter: ms2.Vec{X: spatial.DefaultPivot.X, Y: spatial.DefaultPivot.Y},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) edge(on bool) color.Color {
	if on {
		return r.outline
	}
	return nil
}

// DrawNet lays the six faces out flat as 3x3 grids of squares.
func (r *Renderer) DrawNet(s Surface, c Facelets, edges bool) {
	side := r.square
	startX := r.netCenter.X - 4.5*side
	startY := r.netCenter.Y - 6*side
	outline := r.edge(edges)

	for f, o := range netOrigins {
		fx := startX + o[0]*3*side
		fy := startY + o[1]*3*side
		for k := 0; k < cube.FaceletsPerFace; k++ {
			x := fx + float32(k%3)*side
			y := fy + float32(k/3)*side
			q := spatial.Quad{
				{X: x, Y: y},
				{X: x + side, Y: y},
				{X: x + side, Y: y + side},
				{X: x, Y: y + side},
			}
			s.DrawQuad(q, r.palette.Color(c.Facelet(f*cube.FaceletsPerFace+k)), outline)
		}
	}
}

// DrawSolid draws the visible faces farthest-first, each as 9 projected
// facelets. If the projection is undefined nothing is drawn and the
// error wraps spatial.ErrDegenerateProjection.
func (r *Renderer) DrawSolid(s Surface, c Facelets, g Geometry, edges bool) error {
	scene, err := g.Scene()
	if err != nil {
		return err
	}
	outline := r.edge(edges)
	for _, pf := range scene {
		for k, q := range pf.Quads {
			s.DrawQuad(q, r.palette.Color(c.Facelet(pf.Face*cube.FaceletsPerFace+k)), outline)
		}
	}
	return nil
}

// Draw renders one frame in the given mode.
func (r *Renderer) Draw(s Surface, c Facelets, g Geometry, mode Mode, edges bool) error {
	if mode == ModeSolid {
		return r.DrawSolid(s, c, g, edges)
	}
	r.DrawNet(s, c, edges)
	return nil
}

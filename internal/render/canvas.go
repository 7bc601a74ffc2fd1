package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"golang.org/x/image/vector"

	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

// Canvas is an offscreen RGBA surface. Quads are scan-converted with an
// anti-aliasing rasterizer; outlines are stroked as one thin quad per edge.
type Canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	stroke float32
}

// NewCanvas creates a w x h canvas with the given outline stroke width.
func NewCanvas(w, h int, stroke float32) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		z:      vector.NewRasterizer(w, h),
		stroke: stroke,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawQuad implements Surface.
func (c *Canvas) DrawQuad(q spatial.Quad, fill color.Color, outline color.Color) {
	c.fill(q[:], fill)
	if outline == nil || c.stroke <= 0 {
		return
	}
	for i := range q {
		seg := strokeQuad(q[i], q[(i+1)%len(q)], c.stroke)
		c.fill(seg[:], outline)
	}
}

// fill rasterizes the polygon inside its pixel bounding box only.
func (c *Canvas) fill(pts []ms2.Vec, col color.Color) {
	r := pixelBounds(pts).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	for _, p := range pts[1:] {
		c.z.LineTo(p.X-ox, p.Y-oy)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// pixelBounds returns the smallest pixel rectangle covering pts.
func pixelBounds(pts []ms2.Vec) image.Rectangle {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = ms2.Vec{X: math32.Min(lo.X, p.X), Y: math32.Min(lo.Y, p.Y)}
		hi = ms2.Vec{X: math32.Max(hi.X, p.X), Y: math32.Max(hi.Y, p.Y)}
	}
	return image.Rect(
		int(math32.Floor(lo.X)), int(math32.Floor(lo.Y)),
		int(math32.Ceil(hi.X)), int(math32.Ceil(hi.Y)),
	)
}

// strokeQuad returns the rectangle of width w centred on segment ab.
func strokeQuad(a, b ms2.Vec, w float32) [4]ms2.Vec {
	d := ms2.Sub(b, a)
	n := ms2.Norm(d)
	if n == 0 {
		return [4]ms2.Vec{a, a, a, a}
	}
	off := ms2.Scale(w/(2*n), ms2.Vec{X: -d.Y, Y: d.X})
	return [4]ms2.Vec{
		ms2.Add(a, off),
		ms2.Add(b, off),
		ms2.Sub(b, off),
		ms2.Sub(a, off),
	}
}

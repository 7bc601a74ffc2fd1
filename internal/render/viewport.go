package render

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

// Viewport maps scene coordinates onto a smaller or larger target surface
// with a uniform scale, centring the scene.
type Viewport struct {
	Target Surface
	Scale  float32
	Offset ms2.Vec
}

// Fit returns a viewport that shows a sceneW x sceneH scene inside a
// targetW x targetH surface without distortion.
func Fit(target Surface, sceneW, sceneH, targetW, targetH float32) *Viewport {
	s := math32.Min(targetW/sceneW, targetH/sceneH)
	return &Viewport{
		Target: target,
		Scale:  s,
		Offset: ms2.Vec{
			X: (targetW - sceneW*s) / 2,
			Y: (targetH - sceneH*s) / 2,
		},
	}
}

// ToTarget converts a scene point to target coordinates.
func (v *Viewport) ToTarget(p ms2.Vec) ms2.Vec {
	return ms2.Add(ms2.Scale(v.Scale, p), v.Offset)
}

// ToScene converts a target-space delta back to scene units.
func (v *Viewport) ToScene(d ms2.Vec) ms2.Vec {
	if v.Scale == 0 {
		return d
	}
	return ms2.Scale(1/v.Scale, d)
}

// DrawQuad implements Surface.
func (v *Viewport) DrawQuad(q spatial.Quad, fill color.Color, outline color.Color) {
	var t spatial.Quad
	for i, p := range q {
		t[i] = v.ToTarget(p)
	}
	v.Target.DrawQuad(t, fill, outline)
}

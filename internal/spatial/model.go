// Package spatial holds the cube's corner vertices in 3-D space and the
// transforms that turn them into screen geometry: rigid rotation about a
// fixed projection center, perspective projection, visible-face selection,
// painter's ordering and per-facelet subdivision.
package spatial

import (
	"fmt"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Defaults match a 1920x1080 screen with the cube centred on the
// projection center one focal distance away from the eye.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
	DefaultFocal  = 1000
	DefaultLength = 200
)

// DefaultPivot is the projection center for the default screen.
var DefaultPivot = ms3.Vec{X: DefaultWidth / 2, Y: DefaultHeight / 2, Z: DefaultFocal}

// minDepth is the smallest Z a vertex may have and still be projected.
const minDepth = 1e-3

// Axis selects a world rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

func (a Axis) unit() ms3.Vec {
	switch a {
	case AxisY:
		return ms3.Vec{Y: 1}
	case AxisZ:
		return ms3.Vec{Z: 1}
	default:
		return ms3.Vec{X: 1}
	}
}

// unitVertices are the cube corners for an edge of 2 centred on the origin.
var unitVertices = [8]ms3.Vec{
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: 1},
}

// Model is the cube's placement in space. It is not safe for concurrent use;
// the frame loop owns it.
type Model struct {
	vertices [8]ms3.Vec
	orient   ms3.Quat // accumulated rotation about the pivot
	center   ms3.Vec
	pivot    ms3.Vec
	length   float32
	focal    float32
	centered bool
}

// Option configures a Model.
type Option func(*Model)

// WithLength sets the cube edge length.
func WithLength(l float32) Option {
	return func(m *Model) {
		m.length = l
	}
}

// WithCenter places the cube's center. Defaults to the pivot.
func WithCenter(c ms3.Vec) Option {
	return func(m *Model) {
		m.center = c
		m.centered = true
	}
}

// WithPivot sets the projection center used both for the perspective
// divide and as the rotation pivot.
func WithPivot(p ms3.Vec) Option {
	return func(m *Model) {
		m.pivot = p
	}
}

// WithFocal sets the focal distance of the perspective divide.
func WithFocal(f float32) Option {
	return func(m *Model) {
		m.focal = f
	}
}

// New creates a cube model. Without options the cube has edge
// DefaultLength and sits on DefaultPivot.
func New(opts ...Option) *Model {
	m := &Model{
		pivot:  DefaultPivot,
		length: DefaultLength,
		focal:  DefaultFocal,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.centered {
		m.center = m.pivot
	}
	m.Reset()
	return m
}

// Reset puts the vertices back at their construction placement.
func (m *Model) Reset() {
	m.orient = ms3.QuatIdent()
	m.place()
}

// place rebuilds the vertices from unitVertices and the orientation.
func (m *Model) place() {
	half := m.length / 2
	offset := ms3.Sub(m.center, m.pivot)
	for i, v := range unitVertices {
		local := ms3.Add(offset, ms3.Scale(half, v))
		m.vertices[i] = ms3.Add(m.orient.Rotate(local), m.pivot)
	}
}

// Vertices returns a copy of the current corner positions.
func (m *Model) Vertices() [8]ms3.Vec {
	return m.vertices
}

// Center returns the cube center given at construction.
func (m *Model) Center() ms3.Vec { return m.center }

// Pivot returns the projection center.
func (m *Model) Pivot() ms3.Vec { return m.pivot }

// Length returns the edge length.
func (m *Model) Length() float32 { return m.length }

// Rotate turns every vertex by angle radians about the world axis through
// the pivot. Rotations accumulate.
func (m *Model) Rotate(axis Axis, angle float32) {
	if angle == 0 {
		return
	}
	m.orient = ms3.Rotation(angle, axis.unit()).Mul(m.orient).Unit()
	m.place()
}

// ProjectPoint maps a world point onto the screen. The eye sits on the
// plane Z=0, so p.Z must be positive.
func (m *Model) ProjectPoint(p ms3.Vec) (ms2.Vec, error) {
	if p.Z <= minDepth {
		return ms2.Vec{}, fmt.Errorf("%w: z=%g", ErrDegenerateProjection, p.Z)
	}
	k := m.focal / p.Z
	return ms2.Vec{
		X: k*(p.X-m.pivot.X) + m.pivot.X,
		Y: k*(p.Y-m.pivot.Y) + m.pivot.Y,
	}, nil
}

// Project maps all 8 vertices onto the screen.
func (m *Model) Project() ([8]ms2.Vec, error) {
	var out [8]ms2.Vec
	for i, v := range m.vertices {
		p, err := m.ProjectPoint(v)
		if err != nil {
			return out, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

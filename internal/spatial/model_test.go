package spatial

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vecNear(t *testing.T, want, got ms3.Vec, tol float32, msgAndArgs ...interface{}) {
	t.Helper()
	if ms3.Norm(ms3.Sub(want, got)) > tol {
		assert.Fail(t, "vectors differ", "want %v got %v (tol %g)", want, got, tol)
		if len(msgAndArgs) > 0 {
			t.Log(msgAndArgs...)
		}
	}
}

func TestNewPlacesCubeOnPivot(t *testing.T) {
	m := New()
	v := m.Vertices()
	vecNear(t, ms3.Vec{X: 860, Y: 640, Z: 900}, v[0], 1e-3)
	vecNear(t, ms3.Vec{X: 1060, Y: 440, Z: 1100}, v[6], 1e-3)
	assert.Equal(t, DefaultPivot, m.Center())
	assert.Equal(t, float32(DefaultLength), m.Length())
}

func TestRotateZeroIsNoop(t *testing.T) {
	m := New()
	before := m.Vertices()
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		m.Rotate(a, 0)
	}
	assert.Equal(t, before, m.Vertices())
}

func TestRotateThenReverse_ReturnsVertices(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, angle := range []float32{0.01, -0.02, 0.7, 3.5, -12.3} {
			m := New()
			m.Rotate(AxisX, 0.4)
			m.Rotate(AxisY, -0.9)
			before := m.Vertices()

			m.Rotate(axis, angle)
			m.Rotate(axis, -angle)

			after := m.Vertices()
			for i := range before {
				vecNear(t, before[i], after[i], 1e-2, axis, angle, i)
			}
		}
	}
}

func TestRotationIsRigid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := New()
	start := pairwise(m.Vertices())

	for i := 0; i < 300; i++ {
		m.Rotate(Axis(rng.Intn(3)), (rng.Float32()-0.5)*0.2)
	}

	got := pairwise(m.Vertices())
	for i := range start {
		assert.InDelta(t, start[i], got[i], 0.5, "pair %d", i)
	}
}

func TestLongAutoRotateKeepsShape(t *testing.T) {
	m := New()
	start := pairwise(m.Vertices())

	// An hour of auto-rotate at 60 fps.
	for i := 0; i < 216000; i++ {
		m.Rotate(AxisX, -0.01)
		m.Rotate(AxisY, -0.02)
	}

	got := pairwise(m.Vertices())
	for i := range start {
		assert.InDelta(t, start[i], got[i], 0.05, "pair %d", i)
	}
}

func TestRotatePivotsOnProjectionCenter(t *testing.T) {
	pivot := ms3.Vec{X: 100, Y: 100, Z: 1000}
	m := New(WithPivot(pivot), WithCenter(ms3.Vec{X: 400, Y: 100, Z: 1000}))
	m.Rotate(AxisY, math32.Pi)

	var sum ms3.Vec
	for _, v := range m.Vertices() {
		sum = ms3.Add(sum, v)
	}
	center := ms3.Scale(1.0/8, sum)
	vecNear(t, ms3.Vec{X: -200, Y: 100, Z: 1000}, center, 0.05)
}

func TestResetRestoresPlacement(t *testing.T) {
	m := New()
	before := m.Vertices()
	m.Rotate(AxisZ, 1.2)
	m.Reset()
	assert.Equal(t, before, m.Vertices())
}

func TestProject(t *testing.T) {
	m := New()
	p, err := m.ProjectPoint(ms3.Vec{X: 960, Y: 540, Z: 500})
	require.NoError(t, err)
	assert.InDelta(t, 960, p.X, 1e-3)
	assert.InDelta(t, 540, p.Y, 1e-3)

	// Nearer points spread away from the center, farther ones shrink toward it.
	near, err := m.ProjectPoint(ms3.Vec{X: 1060, Y: 540, Z: 500})
	require.NoError(t, err)
	assert.InDelta(t, 1160, near.X, 1e-2)
	far, err := m.ProjectPoint(ms3.Vec{X: 1060, Y: 540, Z: 2000})
	require.NoError(t, err)
	assert.InDelta(t, 1010, far.X, 1e-2)

	pts, err := m.Project()
	require.NoError(t, err)
	assert.InDelta(t, 960-100/0.9, pts[0].X, 1e-2)
}

func TestProjectDegenerate(t *testing.T) {
	m := New(WithCenter(ms3.Vec{X: 0, Y: 0, Z: 50}))
	_, err := m.Project()
	assert.ErrorIs(t, err, ErrDegenerateProjection)

	_, err = m.Scene()
	assert.ErrorIs(t, err, ErrDegenerateProjection)

	_, err = m.ProjectPoint(ms3.Vec{Z: 0})
	assert.ErrorIs(t, err, ErrDegenerateProjection)
}

func pairwise(v [8]ms3.Vec) []float32 {
	var d []float32
	for i := 0; i < len(v); i++ {
		for j := i + 1; j < len(v); j++ {
			d = append(d, ms3.Norm(ms3.Sub(v[i], v[j])))
		}
	}
	return d
}

package spatial

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// FaceVertices lists the 4 corner vertices of each face in winding order.
// Corner 0 to 1 runs along a facelet row, corner 0 to 3 down a column.
var FaceVertices = [6][4]int{
	{0, 1, 2, 3},
	{1, 5, 6, 2},
	{2, 6, 7, 3},
	{3, 7, 4, 0},
	{0, 4, 5, 1},
	{4, 7, 6, 5},
}

// Quad is a screen-space quadrilateral in winding order.
type Quad [4]ms2.Vec

// nearestVertex returns the index of the vertex with the smallest Z.
// Ties go to the lowest index.
func (m *Model) nearestVertex() int {
	best := 0
	for i := 1; i < len(m.vertices); i++ {
		if m.vertices[i].Z < m.vertices[best].Z {
			best = i
		}
	}
	return best
}

// VisibleFaces returns the three faces that share the vertex nearest the
// viewer, in ascending face order. The other three face away.
func (m *Model) VisibleFaces() [3]int {
	v := m.nearestVertex()
	var out [3]int
	n := 0
	for f, corners := range FaceVertices {
		for _, c := range corners {
			if c == v {
				out[n] = f
				n++
				break
			}
		}
	}
	return out
}

// FarthestZ returns the largest Z among a face's corners.
func (m *Model) FarthestZ(face int) float32 {
	corners := FaceVertices[face]
	z := m.vertices[corners[0]].Z
	for _, c := range corners[1:] {
		z = math32.Max(z, m.vertices[c].Z)
	}
	return z
}

// DrawOrder returns the visible faces sorted farthest-first so that
// drawing them in order lets nearer faces cover farther ones.
func (m *Model) DrawOrder() [3]int {
	faces := m.VisibleFaces()
	sort.SliceStable(faces[:], func(i, j int) bool {
		return m.FarthestZ(faces[i]) > m.FarthestZ(faces[j])
	})
	return faces
}

// FaceCorners returns the current 3-D corners of a face in winding order.
func (m *Model) FaceCorners(face int) [4]ms3.Vec {
	var out [4]ms3.Vec
	for i, c := range FaceVertices[face] {
		out[i] = m.vertices[c]
	}
	return out
}

// Subdivide splits a quad with corners a, b, c, d into its 3x3 grid of
// sub-quads in row-major order. Rows advance from a toward d, columns
// from a toward b.
func Subdivide(corners [4]ms3.Vec) [9][4]ms3.Vec {
	var lattice [4][4]ms3.Vec
	for r := 0; r < 4; r++ {
		s := float32(r) / 3
		left := lerp(corners[0], corners[3], s)
		right := lerp(corners[1], corners[2], s)
		for c := 0; c < 4; c++ {
			lattice[r][c] = lerp(left, right, float32(c)/3)
		}
	}

	var out [9][4]ms3.Vec
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = [4]ms3.Vec{
				lattice[r][c],
				lattice[r][c+1],
				lattice[r+1][c+1],
				lattice[r+1][c],
			}
		}
	}
	return out
}

func lerp(a, b ms3.Vec, t float32) ms3.Vec {
	return ms3.Add(a, ms3.Scale(t, ms3.Sub(b, a)))
}

// FaceQuads subdivides a face in 3-D and projects each of its 9 facelets.
// Quad k corresponds to facelet face*9+k.
func (m *Model) FaceQuads(face int) ([9]Quad, error) {
	var out [9]Quad
	if face < 0 || face >= len(FaceVertices) {
		return out, fmt.Errorf("spatial: face %d out of range", face)
	}
	for k, sub := range Subdivide(m.FaceCorners(face)) {
		for i, p := range sub {
			q, err := m.ProjectPoint(p)
			if err != nil {
				return out, fmt.Errorf("face %d facelet %d: %w", face, k, err)
			}
			out[k][i] = q
		}
	}
	return out, nil
}

// ProjectedFace is one visible face ready to draw.
type ProjectedFace struct {
	Face  int
	Quads [9]Quad
}

// Scene returns the visible faces in draw order with their projected
// facelets. An error means the frame's geometry is undefined.
func (m *Model) Scene() ([]ProjectedFace, error) {
	order := m.DrawOrder()
	out := make([]ProjectedFace, 0, len(order))
	for _, f := range order {
		quads, err := m.FaceQuads(f)
		if err != nil {
			return nil, err
		}
		out = append(out, ProjectedFace{Face: f, Quads: quads})
	}
	return out, nil
}

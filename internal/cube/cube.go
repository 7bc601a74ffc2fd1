// Package cube provides the 3x3 Rubik's cube facelet model.
package cube

import (
	"fmt"
	"strings"
)

// Number of facelets on the whole cube and on a single face.
const (
	NumFacelets     = 54
	FaceletsPerFace = 9
	NumFaces        = 6
)

// Color represents a facelet color. Its value equals the index of the
// face that carries it in the solved state.
type Color byte

const (
	Yellow Color = 0 // Face 0 when solved
	Red    Color = 1 // Face 1 when solved
	Blue   Color = 2 // Face 2 when solved
	Orange Color = 3 // Face 3 when solved
	Green  Color = 4 // Face 4 when solved
	White  Color = 5 // Face 5 when solved
)

func (c Color) String() string {
	switch c {
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case White:
		return "W"
	default:
		return "?"
	}
}

// Cube holds the facelet coloring of a 3x3 cube.
// Facelet i lives on face i/9 at position i%9, numbered row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (position 4) never moves.
type Cube struct {
	facelets [NumFacelets]Color
}

// New creates a solved cube.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset restores the solved coloring.
func (c *Cube) Reset() {
	c.facelets = solved()
}

func solved() [NumFacelets]Color {
	var s [NumFacelets]Color
	for i := range s {
		s[i] = Color(i / FaceletsPerFace)
	}
	return s
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Facelet returns the color at flat index i.
func (c *Cube) Facelet(i int) Color {
	return c.facelets[i]
}

// Facelets returns a copy of the whole facelet array.
func (c *Cube) Facelets() [NumFacelets]Color {
	return c.facelets
}

// Face returns the 9 colors of face f in row-major order.
func (c *Cube) Face(f int) [FaceletsPerFace]Color {
	var out [FaceletsPerFace]Color
	copy(out[:], c.facelets[f*FaceletsPerFace:(f+1)*FaceletsPerFace])
	return out
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	return c.facelets == solved()
}

// Counts returns how many facelets carry each color.
func (c *Cube) Counts() [NumFaces]int {
	var n [NumFaces]int
	for _, col := range c.facelets {
		n[col]++
	}
	return n
}

// String returns the cube as an unfolded net using the same placement
// as the flat renderer: faces 0,1 on the top band, then 2, 3, 4 down the
// second column with 5 to the right of 4.
func (c *Cube) String() string {
	var sb strings.Builder
	writeRow := func(indent int, faces ...int) {
		for row := 0; row < 3; row++ {
			sb.WriteString(strings.Repeat("      ", indent))
			for _, f := range faces {
				for col := 0; col < 3; col++ {
					sb.WriteString(c.facelets[f*FaceletsPerFace+row*3+col].String())
					sb.WriteByte(' ')
				}
			}
			sb.WriteString("\n")
		}
	}
	writeRow(0, 0, 1)
	writeRow(1, 2)
	writeRow(1, 3)
	writeRow(1, 4, 5)
	return sb.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v Counts: %v", c.IsSolved(), c.Counts())
}

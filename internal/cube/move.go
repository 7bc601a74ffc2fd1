package cube

import (
	"fmt"
	"strings"
	"time"
)

// Face identifies a turnable face in standard notation.
type Face string

const (
	FaceL Face = "L" // Left
	FaceR Face = "R" // Right
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces in the order they are bound to keys.
var Faces = []Face{FaceL, FaceR, FaceU, FaceD, FaceF, FaceB}

// Index returns the facelet face index turned by f, or -1 if f is unknown.
func (f Face) Index() int {
	t, ok := turnTables[f]
	if !ok {
		return -1
	}
	return t.face
}

// Move is a quarter turn of one face. Inverse selects the
// counter-clockwise direction.
type Move struct {
	Face    Face
	Inverse bool
	Time    time.Time // When the move was issued (optional)
}

// Valid reports whether the move names one of the six faces.
func (m Move) Valid() bool {
	_, ok := turnTables[m.Face]
	return ok
}

// Notation returns the standard notation string: R, R', U, U', ...
func (m Move) Notation() string {
	if m.Inverse {
		return string(m.Face) + "'"
	}
	return string(m.Face)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move {
	m.Inverse = !m.Inverse
	return m
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// ParseMove parses a single move such as R, r, R', R` or Ri.
// Half turns are not accepted.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty", ErrInvalidMove)
	}

	face := Face(strings.ToUpper(s[:1]))
	if _, ok := turnTables[face]; !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	m := Move{Face: face}
	switch s[1:] {
	case "":
	case "'", "`", "i":
		m.Inverse = true
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return m, nil
}

// ParseMoves parses a whitespace separated sequence.
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats moves as a space separated notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves: reversed order,
// every move inverted.
func Invert(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Reverse()
	}
	return out
}

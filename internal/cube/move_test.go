package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", Move{Face: FaceR}},
		{"r", Move{Face: FaceR}},
		{"L'", Move{Face: FaceL, Inverse: true}},
		{"u`", Move{Face: FaceU, Inverse: true}},
		{"Di", Move{Face: FaceD, Inverse: true}},
		{"  F ", Move{Face: FaceF}},
		{"B'", Move{Face: FaceB, Inverse: true}},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMove_Rejects(t *testing.T) {
	for _, in := range []string{"", "X", "R2", "M", "R''", "Rw", "x"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidMove, "%q", in)
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", FormatMoves(moves))

	_, err = ParseMoves("R U Q")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestInvert(t *testing.T) {
	moves, err := ParseMoves("L R' U")
	require.NoError(t, err)
	assert.Equal(t, "U' R L'", FormatMoves(Invert(moves)))
}

func TestFaceIndex(t *testing.T) {
	want := map[Face]int{FaceF: 0, FaceR: 1, FaceD: 2, FaceL: 3, FaceU: 4, FaceB: 5}
	for f, idx := range want {
		assert.Equal(t, idx, f.Index(), string(f))
	}
	assert.Equal(t, -1, Face("Z").Index())
}

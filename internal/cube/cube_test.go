package cube

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	assert.True(t, c.IsSolved(), "new cube should be solved")
	for i := 0; i < NumFacelets; i++ {
		assert.Equal(t, Color(i/9), c.Facelet(i), "facelet %d", i)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, f := range Faces {
		c := New()
		require.NoError(t, c.ApplyMove(Move{Face: f}))
		assert.False(t, c.IsSolved(), "%s should break the solved state", f)
	}
}

func TestMoveThenInverse_ReturnsToPrior(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := New()
	scramble(t, c, rng, 30)

	for _, f := range Faces {
		for _, inv := range []bool{false, true} {
			m := Move{Face: f, Inverse: inv}
			before := c.Facelets()
			require.NoError(t, c.ApplyMove(m))
			require.NoError(t, c.ApplyMove(m.Reverse()))
			assert.Equal(t, before, c.Facelets(), "%s then %s", m, m.Reverse())
		}
	}
}

func TestMoveFourTimes_ReturnsToPrior(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := New()
	scramble(t, c, rng, 25)

	for _, f := range Faces {
		for _, inv := range []bool{false, true} {
			m := Move{Face: f, Inverse: inv}
			before := c.Facelets()
			for i := 0; i < 4; i++ {
				require.NoError(t, c.ApplyMove(m))
			}
			assert.Equal(t, before, c.Facelets(), "%s x 4", m)
		}
	}
}

func TestColorCountsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := New()
	for i := 0; i < 500; i++ {
		scramble(t, c, rng, 1)
		for col, n := range c.Counts() {
			if n != 9 {
				t.Fatalf("after %d moves color %d appears %d times\n%s", i+1, col, n, c)
			}
		}
	}
}

func TestResetRestoresSolved(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyNotation("R U F' L D B'"))
	require.False(t, c.IsSolved())

	c.Reset()
	c.Reset()
	for i := 0; i < NumFacelets; i++ {
		assert.Equal(t, Color(i/9), c.Facelet(i))
	}
}

func TestR_CrossMapping(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyMove(Move{Face: FaceR}))

	// Sticker at from lands on to.
	for _, p := range turnTables[FaceR].cross {
		assert.Equal(t, Color(p.from/9), c.Facelet(p.to), "R: %d -> %d", p.from, p.to)
	}
	assert.Equal(t, Blue, c.Facelet(2))
	assert.Equal(t, White, c.Facelet(18))
	assert.Equal(t, Yellow, c.Facelet(44))
	assert.Equal(t, Green, c.Facelet(53))

	require.NoError(t, c.ApplyMove(Move{Face: FaceR, Inverse: true}))
	assert.True(t, c.IsSolved(), "R R' should be solved\n%s", c)
}

func TestOwnFaceRingRotates(t *testing.T) {
	// F drops green into the left column of face 1; R then swings that
	// column onto the top row.
	c := New()
	require.NoError(t, c.ApplyNotation("F R"))

	face := c.Face(1)
	assert.Equal(t, [3]Color{Green, Green, Green}, [3]Color{face[0], face[1], face[2]})
	assert.Equal(t, Red, face[4], "center never moves")
	assert.Equal(t, Red, face[3])
	assert.Equal(t, Red, face[6])
}

func TestInverseRingRotatesBack(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyNotation("F R'"))

	face := c.Face(1)
	assert.Equal(t, [3]Color{Green, Green, Green}, [3]Color{face[6], face[7], face[8]})
}

func TestSixFacesThenReverse_ReturnsToSolved(t *testing.T) {
	c := New()
	seq, err := ParseMoves("L R U D F B")
	require.NoError(t, err)

	require.NoError(t, c.ApplyMoves(seq...))
	assert.False(t, c.IsSolved())
	require.NoError(t, c.ApplyMoves(Invert(seq)...))
	assert.True(t, c.IsSolved(), "sequence then its inverse should be solved\n%s", c)
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := New()
	for i := 0; i < 6; i++ {
		require.NoError(t, c.ApplyNotation("R U R' U'"))
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestApplyMove_InvalidFaceLeavesStateUnchanged(t *testing.T) {
	c := New()
	require.NoError(t, c.ApplyNotation("R U"))
	before := c.Facelets()

	err := c.ApplyMove(Move{Face: "X"})
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, before, c.Facelets())

	err = c.ApplyMoves(Move{Face: FaceF}, Move{Face: "M"})
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, before, c.Facelets(), "partial sequence must not be applied")

	err = c.ApplyNotation("F F2")
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, before, c.Facelets())
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	require.NoError(t, clone.ApplyMove(Move{Face: FaceU}))
	assert.True(t, c.IsSolved())
	assert.False(t, clone.IsSolved())
}

func TestStringNet(t *testing.T) {
	s := New().String()
	assert.Contains(t, s, "Y Y Y R R R \n")
	assert.Contains(t, s, "      G G G W W W \n")
}

func scramble(t *testing.T, c *Cube, rng *rand.Rand, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m := Move{Face: Faces[rng.Intn(len(Faces))], Inverse: rng.Intn(2) == 1}
		require.NoError(t, c.ApplyMove(m))
	}
}

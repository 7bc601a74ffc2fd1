package cube

import "fmt"

// ApplyMove applies a single quarter turn. The face ring and the
// cross-face strips are both read from the same pre-move snapshot.
func (c *Cube) ApplyMove(m Move) error {
	t, ok := turnTables[m.Face]
	if !ok {
		return fmt.Errorf("%w: face %q", ErrInvalidMove, string(m.Face))
	}

	old := c.facelets
	next := old
	base := t.face * FaceletsPerFace
	for _, p := range ringCW {
		if m.Inverse {
			next[base+p.from] = old[base+p.to]
		} else {
			next[base+p.to] = old[base+p.from]
		}
	}
	for _, p := range t.cross {
		if m.Inverse {
			next[p.from] = old[p.to]
		} else {
			next[p.to] = old[p.from]
		}
	}
	c.facelets = next
	return nil
}

// ApplyMoves applies moves in order. All moves are validated first so a
// bad move leaves the cube untouched.
func (c *Cube) ApplyMoves(moves ...Move) error {
	for _, m := range moves {
		if !m.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidMove, m.Notation())
		}
	}
	for _, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses a whitespace separated sequence such as
// "R U R' U'" and applies it.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.ApplyMoves(moves...)
}

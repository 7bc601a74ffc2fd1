package cube

import "errors"

// ErrInvalidMove is returned for a move that is not one of the six face
// quarter turns or their inverses. The cube is left unchanged.
var ErrInvalidMove = errors.New("cube: invalid move")

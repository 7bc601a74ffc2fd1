package spatial

import "errors"

// ErrDegenerateProjection is returned when a point lies on or behind the
// eye plane. The frame's geometry is undefined and should not be drawn.
var ErrDegenerateProjection = errors.New("spatial: degenerate projection")

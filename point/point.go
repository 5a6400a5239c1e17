package point

import (
	"github.com/Streamlines-UNH/tide-maker/flow"
	"github.com/Streamlines-UNH/tide-maker/geo"
)

// Point is a geo.Point with the two optional engine attachments described
// in spec.md §3: a lazily-cached Flow sample and the zoom Level at which it
// was accepted.
type Point struct {
	geo.Point
	Flow  *flow.Flow
	Level int
}

// New wraps a bare geo.Point with no attachments.
func New(p geo.Point) Point {
	return Point{Point: p}
}

// HasFlow reports whether a Flow sample has already been attached.
func (p Point) HasFlow() bool {
	return p.Flow != nil
}

package occupancy

import (
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

// entry is one accepted point recorded in the grid, tagged with the
// streamline that owns it.
type entry struct {
	point       point.Point
	streamIndex int
}

// Grid is the sparse row→col→entries occupancy index described in
// spec.md §4.5. The zero value is not usable — construct with New.
type Grid struct {
	min         geo.Point // field's min corner, radians; origin for cell indexing
	cellSpacing geo.Point // (dx_ref, dy_ref): one dSep maps to one cell at the reference latitude
	dSep        float64

	cells        map[int]map[int][]entry
	widthFactors map[int]float64
}

// New constructs an empty Grid. cellSpacing is the engine's
// pointsGridCellSpacing (spec.md §4.5): the (lon, lat) delta such that one
// dSep maps to one cell width at the field's equator-closest latitude.
func New(min, cellSpacing geo.Point, dSep float64) *Grid {
	return &Grid{
		min:          min,
		cellSpacing:  cellSpacing,
		dSep:         dSep,
		cells:        make(map[int]map[int][]entry),
		widthFactors: make(map[int]float64),
	}
}

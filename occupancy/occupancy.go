package occupancy

import (
	"math"

	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

// index computes the (i, j) cell coordinate for p.
func (g *Grid) index(p geo.Point) (i, j int) {
	i = int(math.Floor((p.X - g.min.X) / g.cellSpacing.X))
	j = int(math.Floor((p.Y - g.min.Y) / g.cellSpacing.Y))
	return i, j
}

// widthFactor returns how many cellSpacing.X-wide columns span one dSep at
// row j's latitude, computing and caching it on first use for that row.
func (g *Grid) widthFactor(j int) float64 {
	if wf, ok := g.widthFactors[j]; ok {
		return wf
	}
	p0 := geo.NewPoint(0, float64(j)*g.cellSpacing.Y+g.min.Y)
	p1 := geo.PositionFromDistanceCourse(p0, g.dSep, math.Pi/2)
	wf := p1.X / g.cellSpacing.X
	g.widthFactors[j] = wf
	return wf
}

// AddPoint inserts p into the grid under the given streamline index.
func (g *Grid) AddPoint(p point.Point, streamIndex int) {
	i, j := g.index(p.Point)
	g.widthFactor(j) // ensure the row's width factor is cached on first insertion
	if g.cells[j] == nil {
		g.cells[j] = make(map[int][]entry)
	}
	g.cells[j][i] = append(g.cells[j][i], entry{point: p, streamIndex: streamIndex})
}

// IsPointGood reports whether p is at least sep metres from every recorded
// point not owned by owner, scanning rows [j-levelFactor, j+levelFactor]
// and, within each, columns widened by that row's WidthFactor. owner is
// nil when the querying streamline has not yet been accepted into any
// collection (no exclusion applies).
func (g *Grid) IsPointGood(p geo.Point, sep float64, levelFactor int, owner *int) bool {
	i, j := g.index(p)

	for row := j - levelFactor; row <= j+levelFactor; row++ {
		cols, ok := g.cells[row]
		if !ok {
			continue
		}
		lCol := int(math.Ceil(float64(levelFactor) * g.widthFactor(row)))
		for col := i - lCol; col <= i+lCol; col++ {
			entries, ok := cols[col]
			if !ok {
				continue
			}
			for _, e := range entries {
				if owner != nil && e.streamIndex == *owner {
					continue
				}
				d, _ := geo.DistanceCourse(e.point.Point, p)
				if d < sep {
					return false
				}
			}
		}
	}
	return true
}

package occupancy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

func newTestGrid(dSep float64) *Grid {
	min := geo.NewPoint(-1, -1)
	spacing := geo.NewPoint(dSep/geo.EarthRadius, dSep/geo.EarthRadius)
	return New(min, spacing, dSep)
}

func TestIsPointGoodRejectsNearbyForeignPoint(t *testing.T) {
	dSep := 1000.0
	g := newTestGrid(dSep)

	p0 := geo.NewPoint(0, 0)
	g.AddPoint(point.New(p0), 1)

	near := geo.PositionFromDistanceCourse(p0, dSep/2, 0)
	assert.False(t, g.IsPointGood(near, dSep, 1, nil))
}

func TestIsPointGoodAcceptsDistantPoint(t *testing.T) {
	dSep := 1000.0
	g := newTestGrid(dSep)

	p0 := geo.NewPoint(0, 0)
	g.AddPoint(point.New(p0), 1)

	far := geo.PositionFromDistanceCourse(p0, dSep*10, 0)
	assert.True(t, g.IsPointGood(far, dSep, 1, nil))
}

func TestIsPointGoodIgnoresOwnStreamline(t *testing.T) {
	dSep := 1000.0
	g := newTestGrid(dSep)

	p0 := geo.NewPoint(0, 0)
	g.AddPoint(point.New(p0), 3)

	near := geo.PositionFromDistanceCourse(p0, dSep/2, 0)
	owner := 3
	assert.True(t, g.IsPointGood(near, dSep, 1, &owner))
}

func TestWidthFactorWidensTowardPoles(t *testing.T) {
	g := newTestGrid(1000.0)

	equatorRow := int(math.Floor((0 - g.min.Y) / g.cellSpacing.Y))
	equator := g.widthFactor(equatorRow)

	highLatRow := int(math.Floor((85*math.Pi/180 - g.min.Y) / g.cellSpacing.Y))
	poleward := g.widthFactor(highLatRow)

	assert.Greater(t, poleward, equator)
}

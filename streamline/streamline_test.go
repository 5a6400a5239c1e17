package streamline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

func TestNewSeedsAtLevel(t *testing.T) {
	seed := point.New(geo.NewPoint(1, 2))
	sl := New(seed, -3)
	assert.Equal(t, -3, sl.Level)
	assert.Equal(t, -3, sl.Points[0].Level)
	assert.Equal(t, 0, sl.SeedIndex)
	assert.False(t, sl.Accepted())
}

func TestAddPointAppendsAndPrepends(t *testing.T) {
	seed := point.New(geo.NewPoint(0, 0))
	sl := New(seed, 0)

	sl.AddPoint(point.New(geo.NewPoint(1, 0)), 1)
	assert.Len(t, sl.Points, 2)
	assert.Equal(t, 0, sl.SeedIndex)

	sl.AddPoint(point.New(geo.NewPoint(-1, 0)), -1)
	assert.Len(t, sl.Points, 3)
	assert.Equal(t, 1, sl.SeedIndex)
	assert.Equal(t, sl.Points[sl.SeedIndex], seed)
}

func TestBoundsGrowsWithPoints(t *testing.T) {
	seed := point.New(geo.NewPoint(0, 0))
	sl := New(seed, 0)
	sl.AddPoint(point.New(geo.NewPoint(2, 3)), 1)
	sl.AddPoint(point.New(geo.NewPoint(-1, -1)), -1)

	assert.Equal(t, geo.NewPoint(-1, -1), sl.Bounds.Min)
	assert.Equal(t, geo.NewPoint(2, 3), sl.Bounds.Max)
}

func TestAcceptSetsIndexOnce(t *testing.T) {
	sl := New(point.New(geo.NewPoint(0, 0)), 0)
	sl.Accept(5)
	require.NotNil(t, sl.Index)
	assert.Equal(t, 5, *sl.Index)

	sl.Accept(7)
	assert.Equal(t, 5, *sl.Index, "Accept must be a no-op once set")
}

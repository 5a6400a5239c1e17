package integrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Streamlines-UNH/tide-maker/field"
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/occupancy"
	"github.com/Streamlines-UNH/tide-maker/point"
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

func eastwardField(t *testing.T) *field.FlowField {
	t.Helper()
	md := field.Metadata{
		GridSpacingLongitudinal: 0.01,
		GridSpacingLatitudinal:  0.01,
		NorthBoundLatitude:      1.0,
		SouthBoundLatitude:      0.0,
		EastBoundLongitude:      2.0,
		WestBoundLongitude:      0.0,
		NumPointsLongitudinal:   201,
		NumPointsLatitudinal:    101,
	}
	rows := make([][]field.Sample, md.NumPointsLatitudinal)
	for y := range rows {
		row := make([]field.Sample, md.NumPointsLongitudinal)
		for x := range row {
			row[x] = field.Sample{Speed: 1.0, Direction: 90}
		}
		rows[y] = row
	}
	f, err := field.NewFlowField(rows, md)
	require.NoError(t, err)
	return f
}

func testOptions() Options {
	return Options{ISteps: 5, LevelFactor: 1, DSep: 200, DTest: 100, MinMag: 1e-4}
}

func emptyGrid() *occupancy.Grid {
	min := geo.NewPoint(0, 0)
	spacing := geo.NewPoint(200/geo.EarthRadius, 200/geo.EarthRadius)
	return occupancy.New(min, spacing, 200)
}

func TestStepGrowsTailEastward(t *testing.T) {
	f := eastwardField(t)
	grid := emptyGrid()
	seed := point.New(geo.NewPoint(0.5, 0.5).Radians())
	sl := streamline.New(seed, 0)

	ok := Step(f, grid, sl, 1, 0, testOptions())
	require.True(t, ok)
	assert.Len(t, sl.Points, 1+testOptions().chunkLength())
	for i := 1; i < len(sl.Points); i++ {
		assert.Greater(t, sl.Points[i].X, sl.Points[i-1].X)
	}
}

func TestStepFailsWhenOccupancyBlocks(t *testing.T) {
	f := eastwardField(t)
	grid := emptyGrid()
	seed := point.New(geo.NewPoint(0.5, 0.5).Radians())
	sl := streamline.New(seed, 0)

	blocker := geo.PositionFromDistanceCourse(seed.Point, 50, 0)
	grid.AddPoint(point.New(blocker), 99)

	ok := Step(f, grid, sl, 1, 0, testOptions())
	assert.False(t, ok)
	assert.Len(t, sl.Points, 1)
}

func TestExtendGrowsBothDirections(t *testing.T) {
	f := eastwardField(t)
	grid := emptyGrid()
	seed := point.New(geo.NewPoint(1.0, 0.5).Radians())
	sl := streamline.New(seed, 0)

	grew := Extend(f, grid, sl, 0, testOptions())
	require.True(t, grew)
	assert.Greater(t, len(sl.Points), 1)
	assert.Less(t, sl.SeedIndex, len(sl.Points))

	for i := 1; i < len(sl.Points); i++ {
		assert.Greater(t, sl.Points[i].X, sl.Points[i-1].X)
	}
}

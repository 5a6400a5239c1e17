package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceCourseZero(t *testing.T) {
	p := Point{X: 0.3, Y: 0.6}
	d, _ := DistanceCourse(p, p)
	assert.InDelta(t, 0.0, d, 1e-6)
}

func TestPositionFromDistanceCourseZeroDistance(t *testing.T) {
	p := NewPoint(0.1, 0.2)
	got := PositionFromDistanceCourse(p, 0, math.Pi/4)
	assert.InDelta(t, p.X, got.X, 1e-9)
	assert.InDelta(t, p.Y, got.Y, 1e-9)
}

func TestRoundTripDegreesRadians(t *testing.T) {
	p := NewPoint(-122.42, 37.77)
	got := p.Radians().Degrees()
	assert.InDelta(t, p.X, got.X, 1e-12)
	assert.InDelta(t, p.Y, got.Y, 1e-12)
}

func TestDistanceCourseKnownQuarterMeridian(t *testing.T) {
	// Equator to pole is a quarter great circle: distance = pi/2 * R.
	equator := NewPoint(0, 0)
	pole := NewPoint(0, math.Pi/2)
	d, course := DistanceCourse(equator, pole)
	require.InDelta(t, math.Pi/2*EarthRadius, d, 1.0)
	assert.InDelta(t, 0.0, course, 1e-9)
}

func TestPositionFromDistanceCourseInverts(t *testing.T) {
	p1 := NewPoint(0.5, 0.2)
	dist := 123_456.0
	course := 1.1
	p2 := PositionFromDistanceCourse(p1, dist, course)
	gotDist, gotCourse := DistanceCourse(p1, p2)
	assert.InDelta(t, dist, gotDist, 1e-3)
	assert.InDelta(t, course, gotCourse, 1e-9)
}

func TestBoundsAddAndContains(t *testing.T) {
	b := NewBounds()
	assert.True(t, b.Empty())
	b.Add(NewPoint(1, 1))
	b.Add(NewPoint(-1, 3))
	assert.False(t, b.Empty())
	assert.Equal(t, NewPoint(-1, 1), b.Min)
	assert.Equal(t, NewPoint(1, 3), b.Max)
	assert.True(t, b.Contains(NewPoint(0, 2)))
	assert.False(t, b.Contains(NewPoint(5, 5)))
}

func TestBoundsSizeAndCenter(t *testing.T) {
	b := NewBounds()
	b.Add(NewPoint(0, 0))
	b.Add(NewPoint(4, 2))
	assert.Equal(t, NewPoint(4, 2), b.Size())
	assert.Equal(t, NewPoint(2, 1), b.Center())
}

func TestBoundsDegrees(t *testing.T) {
	b := NewBounds()
	b.Add(NewPoint(0, 0))
	b.Add(NewPoint(math.Pi, math.Pi/2))
	d := b.Degrees()
	assert.InDelta(t, 180.0, d.Max.X, 1e-9)
	assert.InDelta(t, 90.0, d.Max.Y, 1e-9)
}

func TestBoundsDegreesEmpty(t *testing.T) {
	b := NewBounds()
	assert.True(t, b.Degrees().Empty())
}

package geo

import "math"

// EarthRadius is the mean sphere radius, in metres, used for every
// great-circle computation in this module. Changing it changes dSep, dTest,
// and every distance in the occupancy grid, so it is not user-configurable.
const EarthRadius = 6_371_000.0

// Point is a 2-D coordinate pair. The unit (degrees or radians) is
// contextual and never stored — callers are responsible for tracking it via
// Radians/Degrees conversions at the boundary.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point from raw x, y values.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Radians converts a Point expressed in degrees to one expressed in radians.
func (p Point) Radians() Point {
	return Point{X: p.X * math.Pi / 180.0, Y: p.Y * math.Pi / 180.0}
}

// Degrees converts a Point expressed in radians to one expressed in degrees.
func (p Point) Degrees() Point {
	return Point{X: p.X * 180.0 / math.Pi, Y: p.Y * 180.0 / math.Pi}
}

// Bounds is an axis-aligned bounding box over Points. The zero value is
// empty; Add grows it to cover newly-seen Points.
type Bounds struct {
	Min, Max Point
	empty    bool
}

// NewBounds returns an empty Bounds.
func NewBounds() Bounds {
	return Bounds{empty: true}
}

// Empty reports whether b has not yet absorbed any Point.
func (b Bounds) Empty() bool {
	return b.empty
}

// Add grows b to include p, initializing b if it was empty.
func (b *Bounds) Add(p Point) {
	if b.empty {
		b.Min = p
		b.Max = p
		b.empty = false
		return
	}
	b.Min = Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)}
	b.Max = Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)}
}

// Size returns the (width, height) of b. The result is meaningless if b is
// empty.
func (b Bounds) Size() Point {
	return Point{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y}
}

// Center returns the midpoint of b. The result is meaningless if b is
// empty.
func (b Bounds) Center() Point {
	size := b.Size()
	return Point{X: b.Min.X + size.X/2.0, Y: b.Min.Y + size.Y/2.0}
}

// Degrees converts b from radians to degrees, corner by corner.
func (b Bounds) Degrees() Bounds {
	if b.empty {
		return NewBounds()
	}
	return Bounds{Min: b.Min.Degrees(), Max: b.Max.Degrees()}
}

// Contains reports whether p lies within b, inclusive of the boundary.
// Always false for an empty Bounds.
func (b Bounds) Contains(p Point) bool {
	if b.empty {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

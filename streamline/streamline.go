package streamline

import (
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

// Streamline is a finite ordered sequence of point.Points growing outward
// from a seed in both directions.
type Streamline struct {
	Points    []point.Point
	SeedIndex int
	Level     int  // zoom tier at which this streamline was born
	Index     *int // set once accepted into a collection; nil until then
	Bounds    geo.Bounds
}

// New starts a Streamline at seed, born at the given level. seed.Level is
// set to level, matching spec.md §4.4 ("the seed Point always carries
// level = sl.level").
func New(seed point.Point, level int) *Streamline {
	seed.Level = level
	b := geo.NewBounds()
	b.Add(seed.Point)
	return &Streamline{
		Points:    []point.Point{seed},
		SeedIndex: 0,
		Level:     level,
		Bounds:    b,
	}
}

// AddPoint grows the streamline: appends when direction > 0, prepends
// (incrementing SeedIndex) otherwise. Bounds grows to cover p.
func (sl *Streamline) AddPoint(p point.Point, direction int) {
	if direction > 0 {
		sl.Points = append(sl.Points, p)
	} else {
		sl.Points = append([]point.Point{p}, sl.Points...)
		sl.SeedIndex++
	}
	sl.Bounds.Add(p.Point)
}

// Seed returns the streamline's seed point (the point at SeedIndex).
func (sl *Streamline) Seed() point.Point {
	return sl.Points[sl.SeedIndex]
}

// Accepted reports whether the streamline has been assigned a collection
// index.
func (sl *Streamline) Accepted() bool {
	return sl.Index != nil
}

// Accept assigns idx as the streamline's collection index. It is a no-op
// if the streamline is already accepted.
func (sl *Streamline) Accept(idx int) {
	if sl.Index != nil {
		return
	}
	i := idx
	sl.Index = &i
}

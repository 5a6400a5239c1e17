package flow

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Blend linearly interpolates between v1 and v2 at weight p ∈ [0, 1].
//
// Either operand may be nil, meaning "weight zero on that side"; if both are
// nil, Blend returns nil. The interpolation is performed on the Cartesian
// (u, v) = (sin(direction)·magnitude, cos(direction)·magnitude) components —
// v1 weighted by (1-p), v2 weighted by p — and the result is re-derived as
// (magnitude, direction) via hypot/atan2.
func Blend(v1, v2 *Flow, p float64) *Flow {
	if v1 == nil && v2 == nil {
		return nil
	}

	var sum r2.Vec
	if v1 != nil {
		sum = r2.Add(sum, cartesian(*v1, 1.0-p))
	}
	if v2 != nil {
		sum = r2.Add(sum, cartesian(*v2, p))
	}

	mag := math.Hypot(sum.X, sum.Y)
	dir := math.Atan2(sum.X, sum.Y)
	return &Flow{Magnitude: mag, Direction: dir}
}

// cartesian decomposes a Flow into its (u, v) Cartesian components scaled by
// weight: u = sin(direction)·magnitude·weight, v = cos(direction)·magnitude·weight.
func cartesian(v Flow, weight float64) r2.Vec {
	return r2.Scale(weight, r2.Vec{
		X: math.Sin(v.Direction) * v.Magnitude,
		Y: math.Cos(v.Direction) * v.Magnitude,
	})
}

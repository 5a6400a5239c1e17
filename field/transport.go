package field

import (
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

// Transport produces up to opts.Steps intermediate points along the flow
// starting at startPoint, each opts.Distance/opts.Steps metres from the
// previous, using the midpoint-Heun rule: from the current point, advance
// half a step along the current flow's direction to obtain a midpoint, then
// advance a full step along the midpoint's flow direction.
//
// Transport stops as soon as the current point or its midpoint lacks a flow
// sample, or either's magnitude is ≤ opts.MinimumMagnitude, returning
// whatever has been accumulated so far (possibly empty). Callers treat
// fewer than opts.Steps returned points as a partial failure.
func (f *FlowField) Transport(startPoint geo.Point, opts TransportOptions) []point.Point {
	ret := make([]point.Point, 0, opts.Steps)
	stepSize := opts.Distance / float64(opts.Steps)

	last := point.New(startPoint)
	for len(ret) < opts.Steps {
		if !f.PointHasValue(&last) || last.Flow.Magnitude <= opts.MinimumMagnitude {
			break
		}

		mid := point.New(geo.PositionFromDistanceCourse(last.Point, stepSize/2.0, last.Flow.Direction))
		if !f.PointHasValue(&mid) || mid.Flow.Magnitude <= opts.MinimumMagnitude {
			break
		}

		next := point.New(geo.PositionFromDistanceCourse(last.Point, stepSize, mid.Flow.Direction))
		ret = append(ret, next)
		last = next
	}

	return ret
}

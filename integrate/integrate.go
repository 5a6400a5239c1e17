package integrate

import (
	"github.com/Streamlines-UNH/tide-maker/field"
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/occupancy"
	"github.com/Streamlines-UNH/tide-maker/point"
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

// Step attempts to extend sl by one chunk of opts.chunkLength() points in
// direction (+1 grows the tail, -1 grows the head), per spec.md §4.6.
func Step(f *field.FlowField, grid *occupancy.Grid, sl *streamline.Streamline, direction, level int, opts Options) bool {
	idx := len(sl.Points) - 1
	if direction <= 0 {
		idx = 0
	}
	p0 := &sl.Points[idx]
	if !f.PointHasValue(p0) {
		return false
	}

	target := opts.chunkLength()
	accumulated := make([]point.Point, 0, target)
	pLast := p0.Point
	dist := opts.DSep * float64(direction)

	// Self-approach (isStreamPointGood) is re-checked after every
	// iSteps-sized batch, not just once the full chunk is collected, since
	// both pLast and the accumulated tail shift with each batch.
	for len(accumulated) < target {
		chunk := f.Transport(pLast, field.TransportOptions{
			Distance:         dist,
			Steps:            opts.ISteps,
			MinimumMagnitude: opts.MinMag,
		})
		if len(chunk) < opts.ISteps {
			return false
		}
		for i := range chunk {
			p := &chunk[i]
			if !f.PointHasValue(p) {
				return false
			}
			if !grid.IsPointGood(p.Point, opts.DTest*float64(opts.LevelFactor), opts.LevelFactor, sl.Index) {
				return false
			}
		}
		accumulated = append(accumulated, chunk...)
		pLast = chunk[len(chunk)-1].Point

		if !isStreamPointGood(sl, pLast, accumulated, opts) {
			return false
		}
	}

	// Every accumulated point of an already-accepted streamline is
	// recorded in the occupancy grid; the subsampling named in spec.md §3
	// ("every iSteps-th point") applies at the moment a streamline is
	// first accepted (place.acceptStreamline), not to points grown after.
	for _, p := range accumulated {
		p.Level = level
		if sl.Accepted() {
			grid.AddPoint(p, *sl.Index)
		}
		sl.AddPoint(p, direction)
	}
	return true
}

// Extend repeatedly steps sl forward then backward until each direction
// refuses, returning true if any step succeeded.
func Extend(f *field.FlowField, grid *occupancy.Grid, sl *streamline.Streamline, level int, opts Options) bool {
	grew := false
	for Step(f, grid, sl, 1, level, opts) {
		grew = true
	}
	for Step(f, grid, sl, -1, level, opts) {
		grew = true
	}
	return grew
}

// isStreamPointGood guards against a streamline approaching itself:
// pLast (the chunk's far tip) is compared against every iSteps-th point of
// the whole streamline, against every iSteps*levelFactor-th point of the
// whole streamline once the chunk has reached its full length, and against
// every iSteps-th point of the freshly accumulated chunk excluding its own
// trailing iSteps points (the region immediately adjacent to pLast, which
// is expected to be close).
func isStreamPointGood(sl *streamline.Streamline, pLast geo.Point, accumulated []point.Point, opts Options) bool {
	if len(accumulated) == opts.chunkLength() {
		if !scanStride(sl.Points, pLast, opts.chunkLength(), 0, opts.DTest) {
			return false
		}
	}
	if !scanStride(sl.Points, pLast, opts.ISteps, 0, opts.DTest) {
		return false
	}
	if !scanStride(accumulated, pLast, opts.ISteps, opts.ISteps, opts.DTest) {
		return false
	}
	return true
}

// scanStride checks every stride-th point of pts, stopping before the
// final tail entries, against target, failing if any lies closer than
// dTest.
func scanStride(pts []point.Point, target geo.Point, stride, tail int, dTest float64) bool {
	limit := len(pts) - tail
	for i := 0; i < limit; i += stride {
		d, _ := geo.DistanceCourse(pts[i].Point, target)
		if d < dTest {
			return false
		}
	}
	return true
}

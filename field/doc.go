// Package field implements FlowField: an immutable, grid-indexed sampler
// over a regular lat/lon array of (speed, direction) current observations.
//
// What:
//
//   - Metadata: the eight numeric fields describing grid spacing, bounds,
//     and point counts, as delivered at the spec.md §6 input boundary
//     (degrees; converted to radians by NewFlowField).
//   - FlowField: holds the sample array plus min/max corner points (in
//     radians) and a geo.Bounds; exposes PointHasValue, GetFlow (bilinear
//     sampling), GetDensity (coarsest real-world grid spacing), and
//     Transport (midpoint-Heun advection step).
//
// Why:
//
//   - Every streamline point, every proximity test, and every seed
//     candidate must resolve to a flow sample or be rejected; FlowField is
//     the sole authority for that resolution, and its bounds-and-validity
//     test is what keeps the placement driver from walking off the grid.
//
// Errors:
//
//   - ErrInvalidField: Metadata is inconsistent (non-positive point counts
//     or spacing, inverted bounds). Fatal at construction.
//
// GetDensity returns a bare float64: a non-positive result is meaningful
// only to its caller (place.NewWithOptions treats it as degenerate and
// returns place.ErrNumericDegenerate), since the field itself has no
// notion of a "good" density to compare against.
//
// Sample array layout: sample[row=y][col=x] = (speed, directionDegrees);
// speed < 0 means "no data" at that grid cell.
package field

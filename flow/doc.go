// Package flow defines the Flow value — a (magnitude, direction) current
// sample — and the linear blend used to interpolate between two such
// samples at a fractional weight.
//
// What:
//
//   - Flow: magnitude (speed, in the field's native units, ≥ 0) and
//     direction (radians).
//   - Blend(v1, v2, p): linearly interpolates between v1 and v2 at weight
//     p ∈ [0, 1], treating either operand as absent (nil) meaning "weight
//     zero on that side".
//
// Why:
//
//   - The flow field's bilinear sampler (package field) blends four corner
//     samples two points at a time; Blend is the single place that
//     Cartesian/polar conversion for that blend happens, so every caller
//     gets consistent rounding.
//
// Blend operates on the Cartesian decomposition (u = sin(dir)·mag,
// v = cos(dir)·mag) via gonum's r2.Vec, sums the weighted components, and
// re-derives (magnitude, direction) via atan2/hypot. Blend(nil, nil, p)
// returns nil.
package flow

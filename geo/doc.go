// Package geo provides the spherical-geodesy primitives the streamline
// engine is built on: a unit-agnostic 2-D Point, an axis-aligned Bounds, and
// the two great-circle functions (DistanceCourse, PositionFromDistanceCourse)
// that every other package in this module ultimately calls down to.
//
// What:
//
//   - Point: an (x, y) pair that may hold degrees or radians — the caller
//     tracks which; Radians/Degrees convert between the two.
//   - Bounds: an empty-or-(min,max) axis-aligned box over Points, growable
//     one point at a time.
//   - DistanceCourse: great-circle distance (metres) and initial course
//     (radians) between two Points expressed in radians.
//   - PositionFromDistanceCourse: the inverse — the Point reached by
//     travelling a given distance on a given course from a starting Point.
//
// Why:
//
//   - The placement driver never reasons in metres or Cartesian coordinates;
//     every separation test, every integration step, and every seed
//     perpendicular offset reduces to one of these two functions. Keeping
//     them in one small package makes the rest of the engine a thin
//     consumer of spherical trigonometry rather than a reimplementer of it.
//
// Errors: none. Both geodesy functions are total over the full domain of
// radian coordinates; Bounds reports emptiness rather than erroring.
//
// Numerical contract: EARTH_RADIUS = 6,371,000 m (mean sphere radius). The
// parenthesization of DistanceCourse's central-angle expression is part of
// the contract — do not reorder the terms, since downstream separation
// tests depend on bit-identical behaviour across runs.
package geo

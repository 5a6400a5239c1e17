// Package integrate implements the streamline integration stepper:
// single-chunk advance (Step) and repeated two-ended growth (Extend), per
// spec.md §4.6.
//
// What:
//
//   - Step(f, grid, sl, direction, level, opts): attempts to grow sl by one
//     chunk of iSteps·levelFactor points in the given direction, consulting
//     the field for transport and the occupancy grid for proximity, plus a
//     self-approach check against the streamline's own prior points.
//   - Extend(f, grid, sl, level, opts): repeats Step(+1) until it fails,
//     then Step(-1) until it fails.
//
// Why: a chunk (rather than a single transported point) is the unit of
// acceptance because the self-approach test needs to see a full chunk's
// worth of new points before it can decide the streamline isn't about to
// spiral into itself.
//
// Errors: none of these functions return errors; every refusal is a normal
// false result the caller folds into the placement loop's control flow.
package integrate

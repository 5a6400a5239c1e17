// Package place implements the placement driver: the multi-resolution
// scheduling loop described in spec.md §4.7 that seeds, grows, and accepts
// streamlines over a FlowField.
//
// What:
//
//   - New(field, opts...): runs initialization (density, dSep/dTest,
//     pointsGridCellSpacing, minLevel) and seed pre-generation.
//   - Driver.Generate(ctx): drives the level loop to completion, honoring
//     ctx cancellation at each level-advance boundary.
//   - Driver.Tick(): advances exactly one unit of work (one streamline's
//     extend, one seed's processing, or one phase or level transition) and
//     reports whether the whole
//     placement has finished — the cooperative-cancellation primitive
//     spec.md §9 calls for in place of the source's nested-loop scheduler.
//
// Why: the three-state nested loop (level / streamline / seed) is
// re-expressed as an explicit state machine so an embedder can interleave
// Tick calls with other work or stop between passes without the driver
// losing consistency — every field it mutates (streamlines, seedCache,
// occupancy grid) is only ever touched at a Tick boundary.
//
// Errors: New returns ErrNumericDegenerate if the field's density or the
// derived dSepMax is non-positive; everything else during placement is
// normal control flow.
package place

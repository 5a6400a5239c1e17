// Package loopdetect implements closed-streamline and level-order
// diagnostics generalized from the teacher's cycle-detection idiom: where
// dfs.DetectCycles finds a graph closing back on a visited vertex, IsClosed
// finds a streamline whose two growth ends converge back near each other.
//
// What:
//
//   - IsClosed(sl, tol): true if sl's two endpoints (first and last point)
//     lie within tol metres of each other (spec.md §8 scenario S3,
//     solid-body rotation).
//   - CheckLevelOrder(streamlines): true if every point's level is no
//     coarser than the level its streamline was born at.
//
// Why: these are diagnostics for the test suite, never consulted by the
// placement loop itself — running them cannot
// change which streamlines are accepted.
package loopdetect

// Package occupancy implements the sparse spatial index the placement
// driver uses to keep accepted streamline points apart: a row→col→entries
// map (never a dense array — occupancy is typically a tiny fraction of the
// addressable cell space), with a per-row cache of how many columns one
// dSep spans at that row's latitude.
//
// What:
//
//   - Grid.AddPoint(p, streamIndex): inserts p into its cell, creating the
//     row's WidthFactor entry on first use.
//   - Grid.IsPointGood(p, sep, levelFactor, owner): scans a level-scaled window of rows
//     and columns around p's cell, rejecting p if any entry not owned by
//     owner lies closer than sep.
//
// Why:
//
//   - Cell indexing is derived once at driver startup from a reference
//     spacing (one dSep's worth of longitude/latitude at the field's
//     equator-closest latitude); because a fixed angular spacing covers an
//     ever-shrinking real distance toward the poles, each row's column
//     search window must widen by that row's WidthFactor to still cover one
//     dSep of real distance.
//
// Complexity: AddPoint is O(1) amortized; IsPointGood is
// O((2·levelFactor+1) · (2·lCol+1)) where lCol depends on the queried row's
// WidthFactor — bounded by the local point density, not total grid size.
//
// Iteration order within a cell does not affect acceptance decisions: every
// candidate is compared against every entry in the scanned window and the
// test short-circuits on the first violation found, so any iteration order
// yields the same accept/reject verdict (the test is a strict less-than, so
// an entry at exactly sep does not reject the candidate).
package occupancy

// Package streamline defines Streamline: a finite, two-ended growing
// sequence of point.Points with a seed, a birth level, an acceptance index,
// and a bounding box.
//
// What:
//
//   - Streamline grows from a single seed outward in both directions via
//     AddPoint(p, direction): positive direction appends, non-positive
//     prepends (and shifts SeedIndex so it keeps pointing at the seed).
//   - Bounds tracks the axis-aligned box of every point added so far.
//   - Index is unset (nil) until the placement driver accepts the
//     streamline into its collection; Level never changes after
//     construction — it is the zoom tier at which the streamline was born,
//     not the tier of its later-added points (those carry their own Level).
//
// Why:
//
//   - The integrator (package integrate) grows a Streamline in both
//     directions independently and needs O(1) appends on either end without
//     re-deriving bounds or the seed's position from scratch.
//
// Invariant: every accepted Streamline (one with Index set) has at least 3
// points — the placement driver enforces this before accepting, never
// Streamline itself.
package streamline

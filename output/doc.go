// Package output shapes a completed placement run into spec.md §6's two
// external forms: the core Result record and an optional GeoJSON adapter.
//
// What:
//
//   - Result: { dSep, iSteps, streamlines }, each streamline's points
//     converted to degrees and paired with the level and magnitude they
//     carried when accepted.
//   - Summary: mean/stddev of per-streamline point counts and total
//     geodesic length, computed with gonum/stat — enrichment beyond
//     spec.md §6's required fields, never consulted by the core.
//   - ToGeoJSON: a FeatureCollection of LineString features plus a
//     top-level bbox, per spec.md §6's alternative shaping.
//
// Why: the core algorithm in geo/flow/field/streamline/occupancy/integrate/
// place never imports this package — shaping is a one-way adapter applied
// after placement finishes, so changing it can never change the algorithm's
// accepted streamlines.
package output

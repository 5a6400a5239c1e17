// Package point defines the engine-internal Point used by field, occupancy,
// streamline, integrate, and place: a geo.Point augmented with two optional
// attachments, exactly as spec.md §3 describes.
//
//   - Flow: the sampled current at this location, attached lazily the first
//     time the flow field is queried at this Point, so repeated proximity
//     tests reuse the cached value instead of re-sampling.
//   - Level: the zoom tier at which this Point was accepted into a
//     streamline (the seed Point carries its streamline's birth level;
//     points added later carry the driver's current level).
//
// Both attachments are explicit struct fields rather than a dynamic
// property bag, unlike the Python original, which set p.flow as an
// attribute the first time it was computed.
package point

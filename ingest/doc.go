// Package ingest is the field-delivery boundary named in spec.md §6: a
// FieldSource abstracts over however a *field.FlowField is actually
// obtained, and JSONFileSource is the one concrete adapter this repo ships.
//
// What:
//
//   - FieldSource: Load(ctx) (*field.FlowField, error).
//   - JSONFileSource: reads a JSON document shaped like spec.md §6's input
//     contract — the eight Metadata fields plus a row-major sample grid —
//     from a file path.
//
// Why stdlib encoding/json: this stands in for the original's HDF5/S-111
// ingestion, which spec.md §1 places out of scope. No fetchable Go library
// in the example pack parses HDF5 or S-111 containers, so the interface
// itself is the contract; JSONFileSource is a minimal adapter proving it,
// not a reimplementation of a real format reader.
package ingest

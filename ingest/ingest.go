package ingest

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/Streamlines-UNH/tide-maker/field"
)

// FieldSource delivers a *field.FlowField into the placement engine.
// Implementations may read a file, query a service, or hold a field built
// in memory; the placement engine never depends on which.
type FieldSource interface {
	Load(ctx context.Context) (*field.FlowField, error)
}

// document is the on-disk shape JSONFileSource reads: spec.md §6's eight
// metadata fields plus a row-major [y][x] sample grid.
type document struct {
	GridSpacingLongitudinal float64       `json:"gridSpacingLongitudinal"`
	GridSpacingLatitudinal  float64       `json:"gridSpacingLatitudinal"`
	NorthBoundLatitude      float64       `json:"northBoundLatitude"`
	SouthBoundLatitude      float64       `json:"southBoundLatitude"`
	EastBoundLongitude      float64       `json:"eastBoundLongitude"`
	WestBoundLongitude      float64       `json:"westBoundLongitude"`
	NumPointsLongitudinal   int           `json:"numPointsLongitudinal"`
	NumPointsLatitudinal    int           `json:"numPointsLatitudinal"`
	Samples                 [][]sampleDoc `json:"samples"`
}

type sampleDoc struct {
	Speed            float64 `json:"speed"`
	DirectionDegrees float64 `json:"directionDegrees"`
}

// JSONFileSource is a FieldSource backed by a JSON file on disk.
type JSONFileSource struct {
	Path string
}

// NewJSONFileSource returns a FieldSource reading path.
func NewJSONFileSource(path string) JSONFileSource {
	return JSONFileSource{Path: path}
}

// Load reads and parses s.Path, building a *field.FlowField. ctx is
// consulted before the (potentially large) decode begins; Load does not
// stream, so cancellation mid-decode is not observed.
func (s JSONFileSource) Load(ctx context.Context) (*field.FlowField, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "ingest: opening %s", s.Path)
	}
	defer f.Close()

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "ingest: decoding %s", s.Path)
	}

	metadata := field.Metadata{
		GridSpacingLongitudinal: doc.GridSpacingLongitudinal,
		GridSpacingLatitudinal:  doc.GridSpacingLatitudinal,
		NorthBoundLatitude:      doc.NorthBoundLatitude,
		SouthBoundLatitude:      doc.SouthBoundLatitude,
		EastBoundLongitude:      doc.EastBoundLongitude,
		WestBoundLongitude:      doc.WestBoundLongitude,
		NumPointsLongitudinal:   doc.NumPointsLongitudinal,
		NumPointsLatitudinal:    doc.NumPointsLatitudinal,
	}

	samples := make([][]field.Sample, len(doc.Samples))
	for y, row := range doc.Samples {
		samples[y] = make([]field.Sample, len(row))
		for x, s := range row {
			samples[y][x] = field.Sample{Speed: s.Speed, Direction: s.DirectionDegrees}
		}
	}

	ff, err := field.NewFlowField(samples, metadata)
	if err != nil {
		return nil, errors.Wrapf(err, "ingest: building field from %s", s.Path)
	}
	return ff, nil
}

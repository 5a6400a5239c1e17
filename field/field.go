package field

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Streamlines-UNH/tide-maker/flow"
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

var validate = validator.New()

// FlowField is an immutable, grid-indexed sampler over a regular lat/lon
// array of current observations. Construct with NewFlowField; all methods
// are safe to call concurrently since FlowField itself is never mutated
// after construction (a Point's lazily-attached Flow is the caller's copy,
// not shared engine state).
type FlowField struct {
	samples  [][]Sample // samples[y][x]
	metadata Metadata

	dx, dy   float64 // grid spacing, radians
	minPoint geo.Point
	maxPoint geo.Point
	bounds   geo.Bounds
}

// NewFlowField validates metadata and wraps samples (row-major, [y][x]) as
// an immutable FlowField. samples must have exactly
// metadata.NumPointsLatitudinal rows of metadata.NumPointsLongitudinal
// columns each.
func NewFlowField(samples [][]Sample, metadata Metadata) (*FlowField, error) {
	if err := validate.Struct(metadata); err != nil {
		return nil, errors.Wrap(ErrInvalidField, err.Error())
	}
	if len(samples) != metadata.NumPointsLatitudinal {
		return nil, errors.Wrapf(ErrInvalidField, "expected %d rows, got %d", metadata.NumPointsLatitudinal, len(samples))
	}
	for y, row := range samples {
		if len(row) != metadata.NumPointsLongitudinal {
			return nil, errors.Wrapf(ErrInvalidField, "row %d: expected %d columns, got %d", y, metadata.NumPointsLongitudinal, len(row))
		}
	}

	minPoint := geo.NewPoint(metadata.WestBoundLongitude, metadata.SouthBoundLatitude).Radians()
	maxPoint := geo.NewPoint(metadata.EastBoundLongitude, metadata.NorthBoundLatitude).Radians()

	bounds := geo.NewBounds()
	bounds.Add(minPoint)
	bounds.Add(maxPoint)

	logrus.WithFields(logrus.Fields{
		"west": metadata.WestBoundLongitude, "south": metadata.SouthBoundLatitude,
		"east": metadata.EastBoundLongitude, "north": metadata.NorthBoundLatitude,
	}).Info("field: constructed")

	return &FlowField{
		samples:  samples,
		metadata: metadata,
		dx:       metadata.GridSpacingLongitudinal * math.Pi / 180.0,
		dy:       metadata.GridSpacingLatitudinal * math.Pi / 180.0,
		minPoint: minPoint,
		maxPoint: maxPoint,
		bounds:   bounds,
	}, nil
}

// Bounds returns the field's geographic bounds, in radians.
func (f *FlowField) Bounds() geo.Bounds {
	return f.bounds
}

// PointHasValue reports whether a flow value exists at p, attaching the
// computed Flow to p so subsequent reads are O(1). p is mutated in place
// (via its Flow field) and returned through ok; a point outside bounds or
// over a "no data" cell yields ok == false and p.Flow left nil.
func (f *FlowField) PointHasValue(p *point.Point) bool {
	if p == nil {
		return false
	}
	if !p.HasFlow() {
		p.Flow = f.GetFlow(p.Point)
	}
	return p.Flow != nil
}

// GetFlow returns the bilinearly-interpolated Flow at p (radians), or nil
// if p lies outside the field's bounds or all four surrounding cells lack
// data.
func (f *FlowField) GetFlow(p geo.Point) *flow.Flow {
	if !f.bounds.Contains(p) {
		return nil
	}

	ix := (p.X - f.minPoint.X) / f.dx
	iy := (p.Y - f.minPoint.Y) / f.dy

	x1 := int(math.Floor(ix))
	x2 := int(math.Ceil(ix))
	y1 := int(math.Floor(iy))
	y2 := int(math.Ceil(iy))

	px := ix - float64(x1)
	py := iy - float64(y1)

	f11 := f.sampleAt(x1, y1)
	f12 := f.sampleAt(x1, y2)
	f21 := f.sampleAt(x2, y1)
	f22 := f.sampleAt(x2, y2)

	return flow.Blend(flow.Blend(f11, f12, py), flow.Blend(f21, f22, py), px)
}

// sampleAt returns the Flow at integer grid cell (x, y), or nil if the
// index is out of range or the cell has a negative ("no data") speed.
func (f *FlowField) sampleAt(x, y int) *flow.Flow {
	if x < 0 || x >= f.metadata.NumPointsLongitudinal || y < 0 || y >= f.metadata.NumPointsLatitudinal {
		return nil
	}
	s := f.samples[y][x]
	if s.Speed < 0 {
		return nil
	}
	fl := flow.New(s.Speed, s.Direction*math.Pi/180.0)
	return &fl
}

// GetDensity returns the grid's coarsest real-world spacing, in metres:
// the geodesic distance between two adjacent cells at the field's
// highest-absolute-latitude edge.
func (f *FlowField) GetDensity() float64 {
	maxLat := math.Max(math.Abs(f.bounds.Min.Y), math.Abs(f.bounds.Max.Y))
	d, _ := geo.DistanceCourse(geo.NewPoint(0, maxLat-f.dy), geo.NewPoint(f.dx, maxLat))
	return d
}

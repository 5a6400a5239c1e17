package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Streamlines-UNH/tide-maker/flow"
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

func sampleStreamline(idx int) *streamline.Streamline {
	seed := point.New(geo.NewPoint(0, 0))
	f := flow.New(1.0, 0)
	seed.Flow = &f
	sl := streamline.New(seed, -1)

	p1 := point.New(geo.NewPoint(0.01, 0))
	p1f := flow.New(1.0, 0)
	p1.Flow = &p1f
	sl.AddPoint(p1, 1)

	p2 := point.New(geo.NewPoint(0.02, 0))
	p2f := flow.New(1.0, 0)
	p2.Flow = &p2f
	sl.AddPoint(p2, 1)

	sl.Accept(idx)
	return sl
}

func TestRecordsConvertsToDegrees(t *testing.T) {
	sl := sampleStreamline(0)
	r := NewResult(1000.0, 5, []*streamline.Streamline{sl})

	recs := r.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Index)
	assert.Len(t, recs[0].Points, 3)
	assert.Greater(t, recs[0].Points[2].X, recs[0].Points[0].X)
	assert.InDelta(t, 1.0, recs[0].Points[0].Magnitude, 1e-9)
}

func TestSummaryOnEmptyResult(t *testing.T) {
	r := NewResult(1000.0, 5, nil)
	s := NewSummary(r)
	assert.Equal(t, 0, s.StreamlineCount)
}

func TestSummaryComputesMeanAndLength(t *testing.T) {
	r := NewResult(1000.0, 5, []*streamline.Streamline{sampleStreamline(0), sampleStreamline(1)})
	s := NewSummary(r)
	assert.Equal(t, 2, s.StreamlineCount)
	assert.Equal(t, 3.0, s.MeanPointCount)
	assert.Greater(t, s.TotalLengthMetres, 0.0)
}

func TestToGeoJSONShape(t *testing.T) {
	sl := sampleStreamline(0)
	r := NewResult(1000.0, 5, []*streamline.Streamline{sl})

	fc := ToGeoJSON(r)
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
	assert.Len(t, fc.Features[0].Geometry.Coordinates, 3)
	assert.Len(t, fc.Features[0].Properties.Magnitudes, 3)
	assert.NotEqual(t, [4]float64{}, fc.BBox)
}

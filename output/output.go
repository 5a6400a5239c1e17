package output

import (
	"gonum.org/v1/gonum/stat"

	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/point"
)

// Records converts r into the degree-valued, JSON-ready shape of spec.md
// §6: one StreamlineRecord per accepted streamline, each point's (x, y)
// converted from radians to degrees and paired with its accepted level and
// sampled magnitude.
func (r *Result) Records() []StreamlineRecord {
	out := make([]StreamlineRecord, 0, len(r.Streamlines))
	for _, sl := range r.Streamlines {
		rec := StreamlineRecord{
			Level:     sl.Level,
			SeedIndex: sl.SeedIndex,
			Points:    make([]PointRecord, 0, len(sl.Points)),
		}
		if sl.Index != nil {
			rec.Index = *sl.Index
		}
		bd := sl.Bounds.Degrees()
		rec.BoundsMin = [2]float64{bd.Min.X, bd.Min.Y}
		rec.BoundsMax = [2]float64{bd.Max.X, bd.Max.Y}

		for _, p := range sl.Points {
			deg := p.Degrees()
			mag := 0.0
			if p.Flow != nil {
				mag = p.Flow.Magnitude
			}
			rec.Points = append(rec.Points, PointRecord{X: deg.X, Y: deg.Y, Level: p.Level, Magnitude: mag})
		}
		out = append(out, rec)
	}
	return out
}

// Summary is gonum/stat-derived enrichment over a Result: distributional
// statistics the original source never computed, dropping which changes no
// required field of Result.
type Summary struct {
	StreamlineCount   int
	MeanPointCount    float64
	StdDevPointCount  float64
	TotalLengthMetres float64
}

// NewSummary computes Summary from r.
func NewSummary(r *Result) Summary {
	if len(r.Streamlines) == 0 {
		return Summary{}
	}

	counts := make([]float64, len(r.Streamlines))
	var totalLength float64
	for i, sl := range r.Streamlines {
		counts[i] = float64(len(sl.Points))
		totalLength += streamlineLength(sl.Points)
	}

	mean, stddev := stat.MeanStdDev(counts, nil)
	return Summary{
		StreamlineCount:   len(r.Streamlines),
		MeanPointCount:    mean,
		StdDevPointCount:  stddev,
		TotalLengthMetres: totalLength,
	}
}

// streamlineLength sums the geodesic distance between consecutive points.
func streamlineLength(points []point.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		d, _ := geo.DistanceCourse(points[i-1].Point, points[i].Point)
		total += d
	}
	return total
}

package output

import "github.com/Streamlines-UNH/tide-maker/geo"

// FeatureCollection is the GeoJSON shaping of spec.md §6's alternative
// output: one LineString Feature per streamline plus a top-level bbox.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
	BBox     [4]float64 `json:"bbox"`
}

// Feature is one streamline rendered as a GeoJSON LineString.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry holds the LineString coordinate list, [lon_deg, lat_deg] pairs.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Properties carries the per-streamline metadata spec.md §6 names.
type Properties struct {
	Index            int       `json:"index"`
	StreamlineLevel  int       `json:"streamline_level"`
	SeedIndex        int       `json:"seed_index"`
	PointsLevels     []int     `json:"points_levels"`
	Magnitudes       []float64 `json:"magnitudes"`
	Directions       []float64 `json:"directions"`
	DSep             float64   `json:"dSep"`
	ISteps           int       `json:"iSteps"`
}

// ToGeoJSON renders r as a FeatureCollection. The magnitude/direction for
// every point, including the last, is that point's own sampled value —
// spec.md §9 flags a source variant whose trailing point references an
// out-of-scope loop index; this adapter resolves that ambiguity by never
// reading past the point it is describing.
func ToGeoJSON(r *Result) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(r.Streamlines))}
	bbox := geo.NewBounds()

	for _, sl := range r.Streamlines {
		coords := make([][2]float64, 0, len(sl.Points))
		levels := make([]int, 0, len(sl.Points))
		mags := make([]float64, 0, len(sl.Points))
		dirs := make([]float64, 0, len(sl.Points))

		for _, p := range sl.Points {
			deg := p.Degrees()
			coords = append(coords, [2]float64{deg.X, deg.Y})
			levels = append(levels, p.Level)
			if p.Flow != nil {
				mags = append(mags, p.Flow.Magnitude)
				dirs = append(dirs, p.Flow.Direction)
			} else {
				mags = append(mags, 0)
				dirs = append(dirs, 0)
			}
			bbox.Add(p.Point)
		}

		idx := 0
		if sl.Index != nil {
			idx = *sl.Index
		}

		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: Geometry{Type: "LineString", Coordinates: coords},
			Properties: Properties{
				Index:           idx,
				StreamlineLevel: sl.Level,
				SeedIndex:       sl.SeedIndex,
				PointsLevels:    levels,
				Magnitudes:      mags,
				Directions:      dirs,
				DSep:            r.DSep,
				ISteps:          r.ISteps,
			},
		})
	}

	if !bbox.Empty() {
		d := bbox.Degrees()
		fc.BBox = [4]float64{d.Min.X, d.Min.Y, d.Max.X, d.Max.Y}
	}
	return fc
}

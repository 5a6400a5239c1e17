package output

import (
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

// Result is the core's output record, spec.md §6: the separation distance
// and sub-step count actually used, plus the final accepted streamlines.
type Result struct {
	DSep        float64
	ISteps      int
	Streamlines []*streamline.Streamline
}

// NewResult wraps a finished placement run's state as a Result.
func NewResult(dSep float64, iSteps int, streamlines []*streamline.Streamline) *Result {
	return &Result{DSep: dSep, ISteps: iSteps, Streamlines: streamlines}
}

// PointRecord is one serialized streamline point: position in degrees,
// the zoom level it was accepted at, and its flow magnitude.
type PointRecord struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Level     int     `json:"level"`
	Magnitude float64 `json:"magnitude"`
}

// StreamlineRecord is one serialized streamline: level, index, seedIndex,
// bounds and points, bounds and points in degrees. The bounds are emitted
// as two top-level [x, y] arrays, boundsMin and boundsMax; there is no
// nested bounds object with min and max members.
type StreamlineRecord struct {
	Level     int           `json:"level"`
	Index     int           `json:"index"`
	SeedIndex int           `json:"seedIndex"`
	BoundsMin [2]float64    `json:"boundsMin"`
	BoundsMax [2]float64    `json:"boundsMax"`
	Points    []PointRecord `json:"points"`
}

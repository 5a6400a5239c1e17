package loopdetect

import (
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

// IsClosed reports whether sl's two growth tips (its first and last point)
// lie within tol metres of each other — the streamline has grown all the
// way around and closed on itself, as spec.md §8 scenario S3 describes for
// solid-body rotation. A streamline with fewer than 2 points is never
// closed.
func IsClosed(sl *streamline.Streamline, tol float64) bool {
	if len(sl.Points) < 2 {
		return false
	}
	first := sl.Points[0].Point
	last := sl.Points[len(sl.Points)-1].Point
	d, _ := geo.DistanceCourse(first, last)
	return d <= tol
}

// SeedEquidistant reports whether sl's seed point is within tol metres of
// being equidistant from both of sl's growth tips — the secondary check
// S3 names alongside IsClosed ("the seed_index point has near-equal
// distance to both endpoints").
func SeedEquidistant(sl *streamline.Streamline, tol float64) bool {
	if len(sl.Points) < 2 {
		return false
	}
	seed := sl.Seed().Point
	first := sl.Points[0].Point
	last := sl.Points[len(sl.Points)-1].Point

	dFirst, _ := geo.DistanceCourse(seed, first)
	dLast, _ := geo.DistanceCourse(seed, last)

	diff := dFirst - dLast
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}

// CheckLevelOrder verifies spec.md §3's per-point level invariant: every
// point in every streamline carries a level no coarser (i.e. numerically
// no less) than the level the streamline itself was born at.
func CheckLevelOrder(streamlines []*streamline.Streamline) bool {
	for _, sl := range streamlines {
		for _, p := range sl.Points {
			if p.Level < sl.Level {
				return false
			}
		}
	}
	return true
}

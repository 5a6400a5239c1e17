package geo

import "math"

// DistanceCourse computes the great-circle distance, in metres, and the
// initial course, in radians, from p1 to p2 on a sphere of radius
// EarthRadius. Both points must be expressed in radians.
//
// The parenthesization below mirrors the spec exactly; do not reorder the
// terms of the y-expression, since it affects floating-point rounding and
// therefore the determinism of downstream separation tests.
func DistanceCourse(p1, p2 Point) (distance, course float64) {
	dlon := p2.X - p1.X

	clat1 := math.Cos(p1.Y)
	clat2 := math.Cos(p2.Y)
	slat1 := math.Sin(p1.Y)
	slat2 := math.Sin(p2.Y)

	cdlon := math.Cos(dlon)
	sdlon := math.Sin(dlon)

	y := math.Sqrt(math.Pow(clat2*sdlon, 2) + math.Pow(clat1*slat2-slat1*clat2*cdlon, 2))
	x := slat1*slat2 + clat1*clat2*cdlon
	centralAngle := math.Atan2(y, x)

	course = math.Atan2(sdlon, clat1*math.Tan(p2.Y)-slat1*cdlon)

	return centralAngle * EarthRadius, course
}

// PositionFromDistanceCourse returns the Point reached by travelling
// distance metres on course radians from p1, on a sphere of radius
// EarthRadius. p1 must be expressed in radians; the result is in radians.
func PositionFromDistanceCourse(p1 Point, distance, course float64) Point {
	slat1 := math.Sin(p1.Y)
	clat1 := math.Cos(p1.Y)

	centralAngle := distance / EarthRadius

	cca := math.Cos(centralAngle)
	sca := math.Sin(centralAngle)

	ccourse := math.Cos(course)
	scourse := math.Sin(course)

	y := slat1*cca + clat1*sca*ccourse
	x := math.Sqrt(math.Pow(clat1*cca-slat1*sca*ccourse, 2) + math.Pow(sca*scourse, 2))
	lat2 := math.Atan2(y, x)

	y = sca * scourse
	x = clat1*cca - slat1*sca*ccourse
	dlon := math.Atan2(y, x)

	return Point{X: p1.X + dlon, Y: lat2}
}

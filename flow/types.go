package flow

// Flow is a current sample: a magnitude (speed, ≥ 0, field-native units)
// paired with a direction in radians.
type Flow struct {
	Magnitude float64
	Direction float64
}

// New constructs a Flow. It does not validate magnitude ≥ 0; callers that
// source samples from a field are expected to have already discarded
// negative "no data" speeds before constructing a Flow.
func New(magnitude, direction float64) Flow {
	return Flow{Magnitude: magnitude, Direction: direction}
}

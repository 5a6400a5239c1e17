package field

// Metadata carries the eight numeric fields describing a gridded flow
// field at the spec.md §6 input boundary. Longitudes and latitudes are in
// degrees here; NewFlowField converts them to radians internally.
//
// Validation tags enforce the structural invariants that make the grid
// addressable at all (positive point counts and spacing, non-inverted
// bounds); they do not and cannot validate the sample data itself (that is
// PointHasValue's job, one cell at a time).
type Metadata struct {
	GridSpacingLongitudinal float64 `validate:"gt=0"`
	GridSpacingLatitudinal  float64 `validate:"gt=0"`
	NorthBoundLatitude      float64 `validate:"gtfield=SouthBoundLatitude"`
	SouthBoundLatitude      float64
	EastBoundLongitude      float64 `validate:"gtfield=WestBoundLongitude"`
	WestBoundLongitude      float64
	NumPointsLongitudinal   int `validate:"gt=0"`
	NumPointsLatitudinal    int `validate:"gt=0"`
}

// Sample is one grid cell's raw observation: speed in the field's native
// units (negative means "no data") and direction in degrees clockwise from
// north, as delivered at the input boundary.
type Sample struct {
	Speed     float64
	Direction float64
}

// TransportOptions configures FlowField.Transport.
type TransportOptions struct {
	// Distance is the total signed distance, in metres, to cover; negative
	// values integrate against the flow direction.
	Distance float64
	// Steps is the number of intermediate points to produce.
	Steps int
	// MinimumMagnitude is the floor below which a sample is treated as
	// too weak to continue transport.
	MinimumMagnitude float64
}

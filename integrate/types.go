package integrate

// Options configures Step and Extend. Values are typically derived once by
// the placement driver from its constants and the current level.
type Options struct {
	ISteps      int     // sub-steps per transport call
	LevelFactor int     // 2^(-level); scales chunk length and separation radii
	DSep        float64 // base separation distance, metres
	DTest       float64 // proximity threshold, metres (dSep * testFactor)
	MinMag      float64 // minimum flow magnitude to keep transporting
}

// chunkLength is the number of points a single Step call must accumulate
// before it is considered for acceptance.
func (o Options) chunkLength() int {
	return o.ISteps * o.LevelFactor
}

package place

// Options holds the driver's tunable constants, all overridable per
// spec.md §4.7's opening paragraph. It is a plain exported struct (rather
// than an opaque config) so it can be populated directly by config.Load
// (viper) as well as by the functional Option constructors below.
type Options struct {
	SeparationFactor float64
	TestFactor       float64
	ISteps           int
	DSepMaxFactor    float64
	MinMag           float64
}

// DefaultOptions returns the constants spec.md §4.7 names: separationFactor
// 1.5, testFactor 0.5, iSteps 5, dSepMaxFactor 3.75, minMag 1e-4.
func DefaultOptions() Options {
	return Options{
		SeparationFactor: 1.5,
		TestFactor:       0.5,
		ISteps:           5,
		DSepMaxFactor:    3.75,
		MinMag:           1e-4,
	}
}

// Option customizes an Options value before a Driver is built.
type Option func(*Options)

// WithSeparationFactor overrides the multiplier applied to the field's
// density to obtain dSep. Panics if f <= 0.
func WithSeparationFactor(f float64) Option {
	if f <= 0 {
		panic("place: WithSeparationFactor(f<=0)")
	}
	return func(o *Options) { o.SeparationFactor = f }
}

// WithTestFactor overrides the multiplier applied to dSep to obtain dTest.
// Panics if f <= 0.
func WithTestFactor(f float64) Option {
	if f <= 0 {
		panic("place: WithTestFactor(f<=0)")
	}
	return func(o *Options) { o.TestFactor = f }
}

// WithISteps overrides the number of sub-steps per integration chunk.
// Panics if n <= 0.
func WithISteps(n int) Option {
	if n <= 0 {
		panic("place: WithISteps(n<=0)")
	}
	return func(o *Options) { o.ISteps = n }
}

// WithDSepMaxFactor overrides the divisor used when deriving minLevel.
// Panics if f <= 0.
func WithDSepMaxFactor(f float64) Option {
	if f <= 0 {
		panic("place: WithDSepMaxFactor(f<=0)")
	}
	return func(o *Options) { o.DSepMaxFactor = f }
}

// WithMinimumMagnitude overrides the flow-magnitude floor below which
// transport terminates. Panics if m < 0.
func WithMinimumMagnitude(m float64) Option {
	if m < 0 {
		panic("place: WithMinimumMagnitude(m<0)")
	}
	return func(o *Options) { o.MinMag = m }
}

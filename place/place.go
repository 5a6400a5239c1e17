package place

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Streamlines-UNH/tide-maker/field"
	"github.com/Streamlines-UNH/tide-maker/geo"
	"github.com/Streamlines-UNH/tide-maker/integrate"
	"github.com/Streamlines-UNH/tide-maker/occupancy"
	"github.com/Streamlines-UNH/tide-maker/output"
	"github.com/Streamlines-UNH/tide-maker/point"
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

// New builds a Driver over f, running spec.md §4.7's initialization (dSep,
// dTest, minLat, pointsGridCellSpacing, minLevel) and seed pre-generation.
// It returns ErrNumericDegenerate if the field's density or the derived
// dSepMax collapses to a non-positive value.
func New(f *field.FlowField, opts ...Option) (*Driver, error) {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	return NewWithOptions(f, options)
}

// NewWithOptions is New with an already-resolved Options value, for callers
// that load constants via config.Load instead of functional options.
func NewWithOptions(f *field.FlowField, options Options) (*Driver, error) {
	bounds := f.Bounds()
	logrus.WithField("bounds", bounds).Info("place: bounds")

	density := f.GetDensity()
	logrus.WithField("density", density).Info("place: density")
	if density <= 0 {
		return nil, ErrNumericDegenerate
	}

	dSep := density * options.SeparationFactor
	dTest := dSep * options.TestFactor
	logrus.WithFields(logrus.Fields{"dSep": dSep, "dTest": dTest}).Info("place: dSep/dTest")

	minLat := equatorClosestLatitude(bounds)
	logrus.WithField("minLat", minLat).Info("place: minLat")

	p0 := geo.NewPoint(0, minLat)
	pdx := geo.PositionFromDistanceCourse(p0, dSep, math.Pi/2)
	pdy := geo.PositionFromDistanceCourse(p0, dSep, 0.0)
	cellDx := pdx.X - p0.X
	cellDy := pdy.Y - p0.Y
	logrus.WithFields(logrus.Fields{"cellDx": cellDx, "cellDy": cellDy}).Info("place: points grid cell spacing")

	size := bounds.Size()
	logrus.WithField("size", size).Info("place: size")

	dSepMax := math.Min(size.X/cellDx, size.Y/cellDy) / options.DSepMaxFactor
	if dSepMax <= 0 {
		return nil, ErrNumericDegenerate
	}
	minLevel := int(-math.Floor(math.Log2(dSepMax)))
	logrus.WithField("minLevel", minLevel).Info("place: min level")

	// The Python original's level loop is range(minLevel, 1): when minLevel
	// is already > 0 (a field small or dense enough that one dSepMax-sized
	// cell doesn't even span the bounds), that range is empty and the run
	// terminates with no streamlines. Mirror that here instead of ever
	// entering phaseExtend at a positive level, where the 2^(-level) factor
	// below would be asked for a negative exponent.
	if minLevel > 0 {
		return &Driver{
			field:    f,
			opts:     options,
			grid:     occupancy.New(bounds.Min, geo.NewPoint(cellDx, cellDy), dSep),
			dSep:     dSep,
			dTest:    dTest,
			minLevel: minLevel,
			cellDx:   cellDx,
			cellDy:   cellDy,
			level:    minLevel,
			ph:       phaseDone,
		}, nil
	}

	seedSpacing := geo.NewPoint(
		math.Max(cellDx*2, size.X/250.0),
		math.Max(cellDy*2, size.Y/250.0),
	)
	logrus.WithField("seedSpacing", seedSpacing).Info("place: seedSpacing")

	seeds := generateSeeds(f, bounds, seedSpacing)

	grid := occupancy.New(bounds.Min, geo.NewPoint(cellDx, cellDy), dSep)

	return &Driver{
		field:     f,
		opts:      options,
		grid:      grid,
		dSep:      dSep,
		dTest:     dTest,
		minLevel:  minLevel,
		cellDx:    cellDx,
		cellDy:    cellDy,
		seedCache: seeds,
		level:     minLevel,
		ph:        phaseExtend,
	}, nil
}

// equatorClosestLatitude picks minLat per spec.md §4.7: zero if bounds
// straddle the equator, else the nearer of |min.y|, |max.y|.
func equatorClosestLatitude(bounds geo.Bounds) float64 {
	if bounds.Min.Y < 0 && bounds.Max.Y > 0 {
		return 0.0
	}
	return math.Min(math.Abs(bounds.Min.Y), math.Abs(bounds.Max.Y))
}

// generateSeeds enumerates candidate seeds at center ± (x·i, y·j) for every
// sign combination, x and y stepping from half of seedSpacing up to half
// the bounds size, retaining only seeds field.PointHasValue accepts. The
// sign order (i, j) ∈ {(-1,-1), (-1,1), (1,-1), (1,1)}, x outer / y inner,
// is part of the engine's determinism contract.
func generateSeeds(f *field.FlowField, bounds geo.Bounds, seedSpacing geo.Point) []point.Point {
	size := bounds.Size()
	center := bounds.Center()
	var seeds []point.Point

	for x := seedSpacing.X / 2.0; x < size.X/2.0; x += seedSpacing.X {
		for y := seedSpacing.Y / 2.0; y < size.Y/2.0; y += seedSpacing.Y {
			for _, i := range [2]float64{-1, 1} {
				for _, j := range [2]float64{-1, 1} {
					candidate := point.New(geo.NewPoint(center.X+x*i, center.Y+y*j))
					if f.PointHasValue(&candidate) {
						seeds = append(seeds, candidate)
					}
				}
			}
		}
	}
	return seeds
}

// levelFactorValue returns 2^(-level) for the driver's current level.
// d.level is never positive while the driver is in phaseExtend or
// phaseSeeds (NewWithOptions refuses to enter either phase when minLevel
// is positive); the level>=0 branch only guards against that invariant
// being violated, rather than computing a negative shift count.
func (d *Driver) levelFactorValue() int {
	if d.level >= 0 {
		return 1
	}
	return 1 << uint(-d.level)
}

// integrateOptions derives integrate.Options for the driver's current
// level.
func (d *Driver) integrateOptions() integrate.Options {
	return integrate.Options{
		ISteps:      d.opts.ISteps,
		LevelFactor: d.levelFactorValue(),
		DSep:        d.dSep,
		DTest:       d.dTest,
		MinMag:      d.opts.MinMag,
	}
}

// isPointGood implements spec.md §4.5's isPointGood entry condition (a
// pointHasValue check) before delegating to the occupancy grid's proximity
// scan at the driver's current level factor.
func (d *Driver) isPointGood(p geo.Point, sep float64, owner *int) bool {
	pt := point.New(p)
	if !d.field.PointHasValue(&pt) {
		return false
	}
	return d.grid.IsPointGood(p, sep, d.levelFactorValue(), owner)
}

// acceptStreamline assigns sl the next collection index, appends it to the
// accepted list, and records every iSteps-th of its points (starting at
// index 0) into the occupancy grid — the subsampling named in spec.md §3.
func (d *Driver) acceptStreamline(sl *streamline.Streamline) {
	idx := len(d.streamlines)
	sl.Accept(idx)
	d.streamlines = append(d.streamlines, sl)
	for i := 0; i < len(sl.Points); i += d.opts.ISteps {
		d.grid.AddPoint(sl.Points[i], idx)
	}
}

// processSeed is the per-seed body of the second pass of spec.md §4.7's
// level loop: a perpendicular-seed harvest over streamlines not yet
// harvested during this level (for the level's first seed, every accepted
// streamline, including those from earlier levels), then an attempt to grow
// a streamline from the seed itself.
func (d *Driver) processSeed(seed point.Point) {
	lf := d.levelFactorValue()
	dSepEffective := d.dSep * float64(lf)
	stride := d.opts.ISteps * lf

	for d.slStart < len(d.streamlines) {
		sl := d.streamlines[d.slStart]
		d.slStart++

		for pn := 0; pn < len(sl.Points); pn += stride {
			p := sl.Points[pn]
			if p.Flow == nil {
				continue
			}
			for k := 0; k < 2; k++ {
				course := p.Flow.Direction + math.Pi/2 + float64(k)*math.Pi
				candidate := geo.PositionFromDistanceCourse(p.Point, dSepEffective, course)
				if d.isPointGood(candidate, dSepEffective, nil) {
					newSl := streamline.New(point.New(candidate), d.level)
					integrate.Extend(d.field, d.grid, newSl, d.level, d.integrateOptions())
					if len(newSl.Points) > 2 {
						d.acceptStreamline(newSl)
					}
				}
			}
		}
	}

	if d.isPointGood(seed.Point, dSepEffective, nil) {
		newSl := streamline.New(seed, d.level)
		integrate.Extend(d.field, d.grid, newSl, d.level, d.integrateOptions())
		if len(newSl.Points) > 2 {
			d.acceptStreamline(newSl)
			return
		}
	}
	if d.isPointGood(seed.Point, d.dSep, nil) {
		d.keptSeeds = append(d.keptSeeds, seed)
	}
}

// Tick advances exactly one unit of placement work (one streamline's
// extend pass, one seed's processing, or one level transition) and
// reports whether the run has finished.
func (d *Driver) Tick() bool {
	switch d.ph {
	case phaseExtend:
		if d.extendIdx >= len(d.streamlines) {
			d.ph = phaseSeeds
			d.seedIdx = 0
			d.slStart = 0
			d.keptSeeds = d.keptSeeds[:0]
			return false
		}
		integrate.Extend(d.field, d.grid, d.streamlines[d.extendIdx], d.level, d.integrateOptions())
		d.extendIdx++
		return false

	case phaseSeeds:
		if d.seedIdx >= len(d.seedCache) {
			d.seedCache = d.keptSeeds
			d.ph = phaseAdvanceLevel
			return false
		}
		d.processSeed(d.seedCache[d.seedIdx])
		d.seedIdx++
		return false

	case phaseAdvanceLevel:
		d.level++
		if d.level > 0 {
			d.ph = phaseDone
			return true
		}
		d.extendIdx = 0
		d.ph = phaseExtend
		return false

	default:
		return true
	}
}

// Generate drives the placement loop to completion, checking ctx at each
// level-advance boundary (the cooperative-cancellation point spec.md §5
// leaves to the embedder), and returns the final streamline collection.
func (d *Driver) Generate(ctx context.Context) (*output.Result, error) {
	for {
		if d.ph == phaseAdvanceLevel {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		if d.Tick() {
			break
		}
	}
	return output.NewResult(d.dSep, d.opts.ISteps, d.streamlines), nil
}

package place

import (
	"github.com/Streamlines-UNH/tide-maker/field"
	"github.com/Streamlines-UNH/tide-maker/occupancy"
	"github.com/Streamlines-UNH/tide-maker/point"
	"github.com/Streamlines-UNH/tide-maker/streamline"
)

// phase names one sub-state of the driver's cooperative scheduler
// (spec.md §9's "explicit driver object whose tick() advances one
// sub-phase").
type phase int

const (
	phaseExtend phase = iota
	phaseSeeds
	phaseAdvanceLevel
	phaseDone
)

// Driver holds the full mutable state of one placement run: the occupancy
// grid, the accepted streamline list, the seed cache, and the current
// position in the level/extend/seed schedule. The zero value is not
// usable — construct with New.
type Driver struct {
	field *field.FlowField
	opts  Options
	grid  *occupancy.Grid

	dSep, dTest float64
	minLevel    int
	cellDx      float64 // pointsGridCellSpacing.x
	cellDy      float64 // pointsGridCellSpacing.y

	seedCache   []point.Point
	streamlines []*streamline.Streamline

	level     int
	ph        phase
	extendIdx int
	seedIdx   int
	slStart   int
	keptSeeds []point.Point
}

// DSep returns the driver's base separation distance, metres.
func (d *Driver) DSep() float64 { return d.dSep }

// ISteps returns the configured sub-steps per integration chunk.
func (d *Driver) ISteps() int { return d.opts.ISteps }

// Streamlines returns the accepted streamlines so far. The slice is owned
// by the Driver; callers must not mutate it.
func (d *Driver) Streamlines() []*streamline.Streamline { return d.streamlines }

// Done reports whether the placement run has reached its final level.
func (d *Driver) Done() bool { return d.ph == phaseDone }

/*package injector samples unit-cell-local positions for particle
initialization. The sampling strategy is selected by a hand-rolled tagged
variant instead of an interface so that per-particle calls stay value-typed
and indirection-free on parallel execution units.*/
package injector

import (
	"github.com/GivenChen/WarpX/lib/error"
	"github.com/GivenChen/WarpX/lib/geom"
)

type injectorType int

const (
	random injectorType = iota
	randomPlane
	regular
)

// PositionInjector produces positions inside a unit cell and carries the
// bounds of the plasma region particles may be injected into. The sampling
// strategies are:
//
//   - Random: every active axis drawn uniformly in [0, 1).
//   - RandomPlane: one axis held at 0, remaining active axes drawn.
//   - Regular: a deterministic lattice of ppc points per cell, scaled by
//     the per-axis refinement factor.
//
// Axes left inactive by the dimensionality mode are always 0.
type PositionInjector struct {
	typ  injectorType
	mode geom.Mode
	dir  int    // randomPlane only: the axis held at zero
	ppc  [3]int // regular only: particles per cell along each axis
	geom.RegionBounds
}

// NewRandomInjector creates an injector drawing uniform positions within
// the unit cell.
func NewRandomInjector(mode geom.Mode, bounds geom.RegionBounds) *PositionInjector {
	return &PositionInjector{ typ: random, mode: mode, RegionBounds: bounds }
}

// NewRandomPlaneInjector creates an injector drawing uniform positions on
// the plane of the unit cell where axis dir (0 = x, 1 = y, 2 = z) is zero.
func NewRandomPlaneInjector(mode geom.Mode, bounds geom.RegionBounds, dir int) *PositionInjector {
	if dir < 0 || dir > 2 {
		error.Internal("RandomPlane injector given axis %d.", dir)
	}
	return &PositionInjector{ typ: randomPlane, mode: mode, dir: dir, RegionBounds: bounds }
}

// NewRegularInjector creates an injector placing particles on a regular
// lattice with ppc points per cell along each axis.
func NewRegularInjector(mode geom.Mode, bounds geom.RegionBounds, ppc [3]int) *PositionInjector {
	for d := 0; d < 3; d++ {
		if ppc[d] < 1 {
			error.Internal("Regular injector given %d particles per cell along axis %d.", ppc[d], d)
		}
	}
	return &PositionInjector{ typ: regular, mode: mode, ppc: ppc, RegionBounds: bounds }
}

// Mode returns the dimensionality mode the injector samples in.
func (inj *PositionInjector) Mode() geom.Mode { return inj.mode }

// NumParticlesPerCell returns how many lattice points a Regular injector
// places in one cell refined by refFac. For the other strategies the
// caller chooses the count, so 1 is returned.
func (inj *PositionInjector) NumParticlesPerCell(refFac [3]int) int {
	if inj.typ != regular {
		return 1
	}
	nx, ny, nz := inj.latticeCounts(refFac)
	return nx * ny * nz
}

// UnitBox returns unit-cell-local coordinates (u, v, w) in [0, 1)^3 for
// particle iPart of a cell on a level with per-axis refinement factor
// refFac. Only the Random and RandomPlane strategies consume the RNG, and
// only the Regular strategy reads iPart, so independent workers may call
// UnitBox concurrently with per-worker RNG state.
func (inj *PositionInjector) UnitBox(iPart int, refFac [3]int, rng *RNG) (u, v, w float64) {
	switch inj.typ {
	case regular:
		return inj.regularUnitBox(iPart, refFac)
	case randomPlane:
		return inj.planeUnitBox(rng)
	default:
		return inj.randomUnitBox(rng)
	}
}

func (inj *PositionInjector) randomUnitBox(rng *RNG) (u, v, w float64) {
	if inj.mode.ActiveX() {
		u = rng.Uniform()
	}
	if inj.mode.ActiveY() {
		v = rng.Uniform()
	}
	w = rng.Uniform()
	return u, v, w
}

func (inj *PositionInjector) planeUnitBox(rng *RNG) (u, v, w float64) {
	// The fixed axis stays 0 whether or not the mode keeps it active.
	if inj.mode.ActiveX() && inj.dir != 0 {
		u = rng.Uniform()
	}
	if inj.mode.ActiveY() && inj.dir != 1 {
		v = rng.Uniform()
	}
	if inj.dir != 2 {
		w = rng.Uniform()
	}
	return u, v, w
}

// latticeCounts returns the lattice dimensions for one cell. Axes the mode
// leaves inactive collapse to a single layer, and in RZ the azimuthal
// count is never scaled by the refinement factor.
func (inj *PositionInjector) latticeCounts(refFac [3]int) (nx, ny, nz int) {
	nx = refFac[0] * inj.ppc[0]
	ny = refFac[1] * inj.ppc[1]
	nz = refFac[2] * inj.ppc[2]
	switch inj.mode {
	case geom.ModeRZ:
		nz = inj.ppc[2]
	case geom.ModeXZ:
		ny = 1
	case geom.Mode1DZ:
		nx, ny = 1, 1
	}
	return nx, ny, nz
}

func (inj *PositionInjector) regularUnitBox(iPart int, refFac [3]int) (u, v, w float64) {
	nx, ny, nz := inj.latticeCounts(refFac)
	// Index decomposition kept in this exact form for backward
	// compatibility with existing particle orderings.
	ix := iPart / (ny * nz)
	iz := (iPart - ix*(ny*nz)) / ny
	iy := iPart - ix*(ny*nz) - ny*iz

	u = (0.5 + float64(ix)) / float64(nx)
	v = (0.5 + float64(iy)) / float64(ny)
	w = (0.5 + float64(iz)) / float64(nz)
	if !inj.mode.ActiveX() {
		u = 0
	}
	if !inj.mode.ActiveY() {
		v = 0
	}
	return u, v, w
}

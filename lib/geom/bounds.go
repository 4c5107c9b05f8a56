package geom

import (
	"github.com/GivenChen/WarpX/lib/error"
)

// RegionBounds is an axis-aligned box marking an injection/active region.
// The six scalars are set once at construction and never change. All
// membership tests use exact floating-point comparison: a point exactly on
// an upper face is outside the half-open test and inside the inclusive one.
type RegionBounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// NewRegionBounds creates a RegionBounds. A region with min > max on any
// axis is a programming error and aborts.
func NewRegionBounds(xmin, xmax, ymin, ymax, zmin, zmax float64) RegionBounds {
	if xmin > xmax || ymin > ymax || zmin > zmax {
		error.Internal("Region bounds [%g, %g] x [%g, %g] x [%g, %g] have min > max on at least one axis.",
			xmin, xmax, ymin, ymax, zmin, zmax)
	}
	return RegionBounds{ xmin, xmax, ymin, ymax, zmin, zmax }
}

// InsideBounds returns true if (x, y, z) is inside the region or on its
// lower boundary: min <= coord < max on every axis.
func (b *RegionBounds) InsideBounds(x, y, z float64) bool {
	return x < b.XMax && x >= b.XMin &&
		y < b.YMax && y >= b.YMin &&
		z < b.ZMax && z >= b.ZMin
}

// InsideBoundsInclusive returns true if (x, y, z) is inside the region or
// on its lower or upper boundary: min <= coord <= max on every axis.
func (b *RegionBounds) InsideBoundsInclusive(x, y, z float64) bool {
	return x <= b.XMax && x >= b.XMin &&
		y <= b.YMax && y >= b.YMin &&
		z <= b.ZMax && z >= b.ZMin
}

// OverlapsWith returns true if the box spanning lo to hi overlaps the
// region. The boxes are disjoint iff they are separated on at least one
// axis.
func (b *RegionBounds) OverlapsWith(lo, hi [3]float64) bool {
	return !(b.XMin > hi[0] || b.XMax < lo[0] ||
		b.YMin > hi[1] || b.YMax < lo[1] ||
		b.ZMin > hi[2] || b.ZMax < lo[2])
}

package geom

import (
	"math"

	"github.com/GivenChen/WarpX/lib/error"
)

// Geometry maps physical positions to cell indices on one refinement level.
// It is supplied by the mesh-management subsystem and read-only here.
type Geometry struct {
	Lo       [3]float64
	CellSize [3]float64
	Cells    [3]int
}

// NewGeometry creates the geometry of a level spanning lo to hi with the
// given number of cells per axis.
func NewGeometry(lo, hi [3]float64, cells [3]int) *Geometry {
	g := &Geometry{ Lo: lo, Cells: cells }
	for d := 0; d < 3; d++ {
		if cells[d] <= 0 {
			error.Internal("Geometry has %d cells along axis %d.", cells[d], d)
		}
		if hi[d] <= lo[d] {
			error.Internal("Geometry spans [%g, %g] along axis %d.", lo[d], hi[d], d)
		}
		g.CellSize[d] = (hi[d] - lo[d]) / float64(cells[d])
	}
	return g
}

// CellOf returns the cell index containing the position (x, y, z). Positions
// below the lower corner map to negative indices.
func (g *Geometry) CellOf(x, y, z float64) (i, j, k int) {
	i = int(math.Floor((x - g.Lo[0]) / g.CellSize[0]))
	j = int(math.Floor((y - g.Lo[1]) / g.CellSize[1]))
	k = int(math.Floor((z - g.Lo[2]) / g.CellSize[2]))
	return i, j, k
}

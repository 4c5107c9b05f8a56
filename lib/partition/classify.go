package partition

/* This file contains the per-particle buffer classification. Each particle
is resolved to its cell and the buffer mask of that cell decides whether it
deposits/gathers through the buffer. There is no inter-particle dependency,
so the passes run as unordered chunked loops. */

import (
	"github.com/GivenChen/WarpX/lib/error"
	"github.com/GivenChen/WarpX/lib/geom"
	"github.com/GivenChen/WarpX/lib/particles"
	"github.com/GivenChen/WarpX/lib/thread"
)

// FillBufferFlags classifies every particle of the tile against the mask,
// writing true to flags[i] when particle i sits in a buffer cell, i.e.
// outside the interior of the fine patch. flags must have length
// tile.Len().
func FillBufferFlags[T particles.Real](
	flags []bool, tile *particles.Tile[T], g *geom.Geometry, mask *geom.Mask,
	pool *thread.Pool,
) {
	if mask == nil {
		error.Internal("Buffer classification called with a nil mask.")
	}
	if len(flags) != tile.Len() {
		error.Internal("Flag array has length %d for a %d-particle tile.", len(flags), tile.Len())
	}

	x, y, z := tile.X(), tile.Y(), tile.Z()
	pool.Run(tile.Len(), func(start, end, _ int) {
		for i := start; i < end; i++ {
			ci, cj, ck := g.CellOf(float64(x[i]), float64(y[i]), float64(z[i]))
			flags[i] = mask.InBuffer(ci, cj, ck)
		}
	})
}

// fillBufferFlagsSubset reclassifies only the particles listed in idx
// against the mask, writing the answers back to flags at each particle's
// own slot so a following partition of idx can look the flags up by
// particle index.
func fillBufferFlagsSubset[T particles.Real](
	flags []bool, tile *particles.Tile[T], g *geom.Geometry, mask *geom.Mask,
	idx []int, pool *thread.Pool,
) {
	if mask == nil {
		error.Internal("Buffer classification called with a nil mask.")
	}

	x, y, z := tile.X(), tile.Y(), tile.Z()
	pool.Run(len(idx), func(start, end, _ int) {
		for k := start; k < end; k++ {
			i := idx[k]
			ci, cj, ck := g.CellOf(float64(x[i]), float64(y[i]), float64(z[i]))
			flags[i] = mask.InBuffer(ci, cj, ck)
		}
	})
}

package particles

/* This file contains the bulk gather that physically reorders a tile into
the order dictated by a permutation. */

import (
	"github.com/GivenChen/WarpX/lib/error"
	"github.com/GivenChen/WarpX/lib/thread"
)

// Gather copies src slot perm[k] into dst slot k for every attribute array
// simultaneously. perm must be a bijection on [0, src.Len()) and dst must
// have the same length and runtime components as src. Gather blocks until
// every chunk has been copied.
func Gather[T Real](dst, src *Tile[T], perm []int, pool *thread.Pool) {
	np := src.Len()
	if len(perm) != np || dst.Len() != np {
		error.Internal("Gather of a %d-particle tile given a length-%d permutation and a length-%d destination.",
			np, len(perm), dst.Len())
	}
	if len(dst.extraReal) != len(src.extraReal) || len(dst.extraInt) != len(src.extraInt) {
		error.Internal("Gather destination has %d/%d runtime components, source has %d/%d.",
			len(dst.extraReal), len(dst.extraInt), len(src.extraReal), len(src.extraInt))
	}

	pool.Run(np, func(start, end, _ int) {
		for k := start; k < end; k++ {
			j := perm[k]
			dst.id[k] = src.id[j]
			dst.x[k], dst.y[k], dst.z[k] = src.x[j], src.y[j], src.z[j]
			dst.ux[k], dst.uy[k], dst.uz[k] = src.ux[j], src.uy[j], src.uz[j]
			dst.w[k] = src.w[j]
		}
		for c := range src.extraReal {
			d, s := dst.extraReal[c], src.extraReal[c]
			for k := start; k < end; k++ {
				d[k] = s[perm[k]]
			}
		}
		for c := range src.extraInt {
			d, s := dst.extraInt[c], src.extraInt[c]
			for k := start; k < end; k++ {
				d[k] = s[perm[k]]
			}
		}
	})
}

// Reorder gathers the tile's particles into the order given by perm. The
// gather runs into a fresh scratch tile which replaces the original only
// after every array has been fully copied, so the tile is never observable
// in a partially reordered state.
func Reorder[T Real](tile *Tile[T], perm []int, pool *thread.Pool) {
	scratch := tile.CreateLike(tile.Len())
	Gather(scratch, tile, perm, pool)
	tile.Swap(scratch)
}

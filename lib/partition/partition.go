/*package partition classifies the particles of a tile against the
deposition- and gather-buffer masks and stably reorders the tile so that
the particles depositing/gathering on the fine patch come first. This is
the ordering the field deposition and gathering steps rely on near
mesh-refinement boundaries.*/
package partition

import (
	"github.com/GivenChen/WarpX/lib/error"
	"github.com/GivenChen/WarpX/lib/geom"
	"github.com/GivenChen/WarpX/lib/particles"
	"github.com/GivenChen/WarpX/lib/thread"
)

// Config holds the buffer-partition policy, read once from configuration.
// A width of 0 disables that buffer kind: no particle is ever classified
// as a buffer particle for it.
type Config struct {
	// CurrentBufferWidth is the width, in coarse cells, of the current
	// deposition buffer.
	CurrentBufferWidth int
	// GatherBufferWidth is the width, in coarse cells, of the field
	// gather buffer.
	GatherBufferWidth int
	// DepositOnMainGrid forces every particle on refined levels to
	// deposit through the buffer (onto the coarsest grid).
	DepositOnMainGrid bool
	// GatherFromMainGrid forces every particle on refined levels to
	// gather through the buffer (from the coarsest grid).
	GatherFromMainGrid bool
}

// Counts reports how many particles deposit (NFineCurrent) and gather
// (NFineGather) on the fine patch. The counts are only valid for the tile
// and call that produced them: the next partition recomputes them.
type Counts struct {
	NFineCurrent int
	NFineGather  int
}

// stablePartition reorders idx so that entries i with flags[i] == false
// come first, preserving the relative order within both groups, and
// returns the number of entries in the front group. scratch must be at
// least len(idx) long.
//
// The partition is deterministic for any worker count: each chunk counts
// its front-group entries, an exclusive prefix over the chunk counts fixes
// every chunk's output offsets, and a second pass scatters entries in
// chunk order. Total work is O(len(idx)).
func stablePartition(idx []int, flags []bool, scratch []int, pool *thread.Pool) int {
	n := len(idx)
	if n == 0 {
		return 0
	}
	scratch = scratch[:n]

	edges := pool.Split(n)
	nChunk := len(edges) - 1
	fineCounts := make([]int, nChunk)
	pool.RunChunks(edges, func(c int) {
		cnt := 0
		for _, i := range idx[edges[c]:edges[c+1]] {
			if !flags[i] {
				cnt++
			}
		}
		fineCounts[c] = cnt
	})

	nFine := 0
	for _, cnt := range fineCounts {
		nFine += cnt
	}

	fineOff := make([]int, nChunk)
	bufOff := make([]int, nChunk)
	fine, buf := 0, nFine
	for c := 0; c < nChunk; c++ {
		fineOff[c], bufOff[c] = fine, buf
		fine += fineCounts[c]
		buf += (edges[c+1] - edges[c]) - fineCounts[c]
	}

	pool.RunChunks(edges, func(c int) {
		f, b := fineOff[c], bufOff[c]
		for _, i := range idx[edges[c]:edges[c+1]] {
			if !flags[i] {
				scratch[f] = i
				f++
			} else {
				scratch[b] = i
				b++
			}
		}
	})

	copy(idx, scratch)
	return nFine
}

// InBuffers determines which particles of the tile deposit/gather in the
// buffer regions and reorders the tile accordingly: after the call, the
// first Counts.NFineCurrent particles deposit on the fine patch and the
// first Counts.NFineGather particles gather from it, each group keeping
// its original relative order.
//
// The partition runs in at most two classification passes. All particles
// are classified against the wider of the two buffers (ties go to the
// gather buffer) and stably partitioned. If the widths differ and the
// buffer group is not empty, only that group is reclassified against the
// narrower mask and re-split in place; the front group is untouched. A
// single permutation array ends up encoding both splits, and the tile is
// physically reordered exactly once, and only if at least one group is
// nonempty.
//
// A nil mask whose buffer width is nonzero is a programming error and
// aborts. Every pass has drained its workers by the time InBuffers
// returns, on every path.
func InBuffers[T particles.Real](
	tile *particles.Tile[T], lev int, g *geom.Geometry,
	currentMasks, gatherMasks *geom.Mask, cfg *Config, pool *thread.Pool,
) Counts {
	if cfg.CurrentBufferWidth < 0 || cfg.GatherBufferWidth < 0 {
		error.Internal("Negative buffer widths (%d, %d).",
			cfg.CurrentBufferWidth, cfg.GatherBufferWidth)
	}

	np := tile.Len()
	counts := Counts{ np, np }

	flags := make([]bool, np)
	pid := make([]int, np)
	scratch := make([]int, np)
	for i := range pid {
		pid[i] = i
	}

	// First, partition every particle by the larger buffer.
	bmasks, width := currentMasks, cfg.CurrentBufferWidth
	primaryGather := cfg.GatherBufferWidth >= cfg.CurrentBufferWidth
	if primaryGather {
		bmasks, width = gatherMasks, cfg.GatherBufferWidth
	}

	nFine := np
	if width > 0 {
		if bmasks == nil {
			error.Internal("Buffer width %d is nonzero but its mask is nil.", width)
		}
		FillBufferFlags(flags, tile, g, bmasks, pool)
		nFine = stablePartition(pid, flags, scratch, pool)
	}

	// Second, among the particles in the larger buffer, partition by the
	// smaller buffer.
	if cfg.CurrentBufferWidth == cfg.GatherBufferWidth {
		// Classification is symmetric; a second pass would be redundant.
		counts.NFineCurrent, counts.NFineGather = nFine, nFine
	} else if nFine == np {
		// No particles in the larger buffer, so none in the smaller one.
		counts.NFineCurrent, counts.NFineGather = np, np
	} else {
		other, otherWidth := gatherMasks, cfg.GatherBufferWidth
		if primaryGather {
			counts.NFineGather = nFine
			other, otherWidth = currentMasks, cfg.CurrentBufferWidth
		} else {
			counts.NFineCurrent = nFine
		}
		if otherWidth > 0 {
			if other == nil {
				error.Internal("Buffer width %d is nonzero but its mask is nil.", otherWidth)
			}
			fillBufferFlagsSubset(flags, tile, g, other, pid[nFine:], pool)
			sub := stablePartition(pid[nFine:], flags, scratch, pool)
			if primaryGather {
				counts.NFineCurrent = nFine + sub
			} else {
				counts.NFineGather = nFine + sub
			}
		}
		// With the other width 0 its count stays np: that buffer kind is
		// disabled and every particle is fine for it.
	}

	// Only deposit/gather to the coarsest grid, if requested.
	if cfg.DepositOnMainGrid && lev > 0 {
		counts.NFineCurrent = 0
	}
	if cfg.GatherFromMainGrid && lev > 0 {
		counts.NFineGather = 0
	}

	// Reorder the particle arrays with the pid permutation. The scratch
	// tile inside Reorder is not released until the gather has finished.
	if counts.NFineCurrent != np || counts.NFineGather != np {
		particles.Reorder(tile, pid, pool)
	}

	return counts
}

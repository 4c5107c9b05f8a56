package geom

import (
	"github.com/GivenChen/WarpX/lib/error"
)

// Mask is a per-cell flag array marking which cells of a level belong to a
// buffer region. One Mask exists per (level, buffer kind); it is owned by
// the mesh subsystem and read-only to particle kernels. A nonzero value
// means the cell is in the buffer.
type Mask struct {
	cells [3]int
	data  []int32
}

// NewMask wraps a per-cell flag array. The data is indexed
// i + j*cells[0] + k*cells[0]*cells[1].
func NewMask(cells [3]int, data []int32) *Mask {
	n := cells[0] * cells[1] * cells[2]
	if len(data) != n {
		error.Internal("Mask over %d x %d x %d cells needs %d values, got %d.",
			cells[0], cells[1], cells[2], n, len(data))
	}
	return &Mask{ cells, data }
}

// At returns the flag value at cell (i, j, k). Cells outside the level are
// reported as buffer cells: a particle off the fine patch never deposits
// or gathers there directly.
func (m *Mask) At(i, j, k int) int32 {
	if i < 0 || i >= m.cells[0] ||
		j < 0 || j >= m.cells[1] ||
		k < 0 || k >= m.cells[2] {
		return 1
	}
	return m.data[i+j*m.cells[0]+k*m.cells[0]*m.cells[1]]
}

// InBuffer returns true if cell (i, j, k) lies in the buffer region.
func (m *Mask) InBuffer(i, j, k int) bool { return m.At(i, j, k) != 0 }

// NewEdgeMask builds the mask of a rectangular fine patch whose buffer is
// the width outermost cell layers. Width 0 marks no cell as buffer.
func NewEdgeMask(cells [3]int, width int) *Mask {
	data := make([]int32, cells[0]*cells[1]*cells[2])
	idx := 0
	for k := 0; k < cells[2]; k++ {
		for j := 0; j < cells[1]; j++ {
			for i := 0; i < cells[0]; i++ {
				if i < width || i >= cells[0]-width ||
					j < width || j >= cells[1]-width ||
					k < width || k >= cells[2]-width {
					data[idx] = 1
				}
				idx++
			}
		}
	}
	return NewMask(cells, data)
}

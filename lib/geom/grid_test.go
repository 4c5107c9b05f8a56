package geom

import (
	"testing"
)

func TestCellOf(t *testing.T) {
	g := NewGeometry(
		[3]float64{0, 0, 0}, [3]float64{1, 2, 4}, [3]int{10, 10, 10},
	)

	tests := []struct {
		x, y, z float64
		i, j, k int
	}{
		{0.05, 0.1, 0.2, 0, 0, 0},
		{0.95, 1.9, 3.8, 9, 9, 9},
		{0.5, 1.0, 2.0, 5, 5, 5},
		{-0.05, 0.1, 0.2, -1, 0, 0},
		{1.05, 2.1, 4.1, 10, 10, 10},
	}

	for n := range tests {
		i, j, k := g.CellOf(tests[n].x, tests[n].y, tests[n].z)
		if i != tests[n].i || j != tests[n].j || k != tests[n].k {
			t.Errorf("%d) Expected CellOf(%g, %g, %g) = (%d, %d, %d), got (%d, %d, %d).",
				n, tests[n].x, tests[n].y, tests[n].z,
				tests[n].i, tests[n].j, tests[n].k, i, j, k)
		}
	}
}

func TestMaskAt(t *testing.T) {
	data := make([]int32, 2*3*4)
	data[1+2*2+3*2*3] = 1 // cell (1, 2, 3)
	m := NewMask([3]int{2, 3, 4}, data)

	if !m.InBuffer(1, 2, 3) {
		t.Errorf("Expected cell (1, 2, 3) to be in the buffer.")
	}
	if m.InBuffer(0, 0, 0) {
		t.Errorf("Expected cell (0, 0, 0) to be in the fine interior.")
	}
	// Cells off the level count as buffer cells.
	outside := [][3]int{
		{-1, 0, 0}, {2, 0, 0}, {0, -1, 0}, {0, 3, 0}, {0, 0, -1}, {0, 0, 4},
	}
	for i := range outside {
		c := outside[i]
		if !m.InBuffer(c[0], c[1], c[2]) {
			t.Errorf("%d) Expected out-of-level cell %v to count as buffer.", i, c)
		}
	}
}

func TestNewEdgeMask(t *testing.T) {
	m := NewEdgeMask([3]int{6, 6, 6}, 2)

	if m.InBuffer(3, 3, 3) || m.InBuffer(2, 2, 2) {
		t.Errorf("Expected interior cells of a width-2 edge mask to be fine.")
	}
	edge := [][3]int{ {0, 3, 3}, {1, 3, 3}, {4, 3, 3}, {5, 3, 3}, {3, 0, 3}, {3, 3, 5} }
	for i := range edge {
		c := edge[i]
		if !m.InBuffer(c[0], c[1], c[2]) {
			t.Errorf("%d) Expected edge cell %v to be in the buffer.", i, c)
		}
	}

	zero := NewEdgeMask([3]int{4, 4, 4}, 0)
	for i := 0; i < 4; i++ {
		if zero.InBuffer(i, 0, 0) {
			t.Errorf("Expected a width-0 edge mask to have no buffer cells.")
		}
	}
}

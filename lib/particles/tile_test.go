package particles

import (
	"testing"

	"github.com/GivenChen/WarpX/lib/eq"
	"github.com/GivenChen/WarpX/lib/thread"
)

func testTile(n int) *Tile[float64] {
	t := NewTile[float64](0)
	t.AddRealComp("phi")
	t.AddIntComp("cpu")
	for i := 0; i < n; i++ {
		f := float64(i)
		t.Append(uint64(i), f, f+0.25, f+0.5, -f, 2*f, -3*f, 1)
		t.RealComp("phi")[i] = 10 * f
		t.IntComp("cpu")[i] = int32(i % 4)
	}
	return t
}

func TestTileAppendAndComps(t *testing.T) {
	tile := testTile(5)

	if tile.Len() != 5 {
		t.Fatalf("Expected 5 particles, got %d.", tile.Len())
	}
	if !eq.Uint64s(tile.ID(), []uint64{0, 1, 2, 3, 4}) {
		t.Errorf("Expected ids 0..4, got %v.", tile.ID())
	}
	if !eq.Float64s(tile.X(), []float64{0, 1, 2, 3, 4}) {
		t.Errorf("Expected x = 0..4, got %v.", tile.X())
	}
	if !eq.Float64s(tile.RealComp("phi"), []float64{0, 10, 20, 30, 40}) {
		t.Errorf("Runtime real component has values %v.", tile.RealComp("phi"))
	}
	if !eq.Int32s(tile.IntComp("cpu"), []int32{0, 1, 2, 3, 0}) {
		t.Errorf("Runtime int component has values %v.", tile.IntComp("cpu"))
	}
	if !eq.Strings(tile.RealNames(), []string{"phi"}) {
		t.Errorf("Expected one real component 'phi', got %v.", tile.RealNames())
	}
}

func TestTileResize(t *testing.T) {
	tile := testTile(4)

	tile.Resize(2)
	if tile.Len() != 2 || len(tile.RealComp("phi")) != 2 {
		t.Fatalf("Resize(2) left lengths %d and %d.",
			tile.Len(), len(tile.RealComp("phi")))
	}

	tile.Resize(6)
	if tile.Len() != 6 {
		t.Fatalf("Resize(6) left %d particles.", tile.Len())
	}
	// The regrown slots are zeroed, including the ones that previously
	// held particles 2 and 3.
	if !eq.Float64s(tile.X(), []float64{0, 1, 0, 0, 0, 0}) {
		t.Errorf("Expected regrown x = [0 1 0 0 0 0], got %v.", tile.X())
	}
	if !eq.Float64s(tile.RealComp("phi"), []float64{0, 10, 0, 0, 0, 0}) {
		t.Errorf("Expected regrown phi = [0 10 0 0 0 0], got %v.", tile.RealComp("phi"))
	}
}

func TestTileCreateLike(t *testing.T) {
	tile := testTile(3)
	like := tile.CreateLike(7)

	if like.Len() != 7 {
		t.Errorf("Expected 7 particles, got %d.", like.Len())
	}
	if !eq.Strings(like.RealNames(), tile.RealNames()) ||
		!eq.Strings(like.IntNames(), tile.IntNames()) {
		t.Errorf("CreateLike did not copy the runtime components.")
	}
	if !eq.Float64s(like.RealComp("phi"), make([]float64, 7)) {
		t.Errorf("CreateLike components are not zeroed.")
	}
}

func TestGatherReverse(t *testing.T) {
	pool := thread.NewPool(3)
	tile := testTile(6)

	perm := []int{5, 4, 3, 2, 1, 0}
	dst := tile.CreateLike(6)
	Gather(dst, tile, perm, pool)

	if !eq.Uint64s(dst.ID(), []uint64{5, 4, 3, 2, 1, 0}) {
		t.Errorf("Expected reversed ids, got %v.", dst.ID())
	}
	if !eq.Float64s(dst.X(), []float64{5, 4, 3, 2, 1, 0}) {
		t.Errorf("Expected reversed x, got %v.", dst.X())
	}
	if !eq.Float64s(dst.RealComp("phi"), []float64{50, 40, 30, 20, 10, 0}) {
		t.Errorf("Expected reversed phi, got %v.", dst.RealComp("phi"))
	}
	if !eq.Int32s(dst.IntComp("cpu"), []int32{1, 0, 3, 2, 1, 0}) {
		t.Errorf("Expected reversed cpu, got %v.", dst.IntComp("cpu"))
	}
}

func TestReorderIdentity(t *testing.T) {
	pool := thread.NewPool(2)
	tile := testTile(100)
	want := testTile(100)

	perm := make([]int, 100)
	for i := range perm {
		perm[i] = i
	}
	Reorder(tile, perm, pool)

	if !eq.Uint64s(tile.ID(), want.ID()) ||
		!eq.Float64s(tile.X(), want.X()) ||
		!eq.Float64s(tile.Y(), want.Y()) ||
		!eq.Float64s(tile.Z(), want.Z()) ||
		!eq.Float64s(tile.UX(), want.UX()) ||
		!eq.Float64s(tile.W(), want.W()) ||
		!eq.Float64s(tile.RealComp("phi"), want.RealComp("phi")) ||
		!eq.Int32s(tile.IntComp("cpu"), want.IntComp("cpu")) {
		t.Errorf("Identity reorder changed the tile's contents.")
	}
}

func TestReorderRoundTrip(t *testing.T) {
	pool := thread.NewPool(4)
	tile := testTile(257)
	want := testTile(257)

	perm := make([]int, 257)
	for i := range perm {
		perm[i] = (i*101 + 7) % 257 // 101 and 257 are coprime
	}
	Reorder(tile, perm, pool)

	// Rows move together: every destination slot holds the full row of
	// its source particle.
	for k := 0; k < tile.Len(); k++ {
		id := tile.ID()[k]
		if tile.X()[k] != float64(id) || tile.RealComp("phi")[k] != 10*float64(id) {
			t.Fatalf("Slot %d holds id %d but x = %g, phi = %g.",
				k, id, tile.X()[k], tile.RealComp("phi")[k])
		}
	}

	// Applying the inverse permutation restores the original order.
	inv := make([]int, 257)
	for i := range perm {
		inv[perm[i]] = i
	}
	Reorder(tile, inv, pool)
	if !eq.Uint64s(tile.ID(), want.ID()) || !eq.Float64s(tile.X(), want.X()) {
		t.Errorf("Reordering by a permutation then its inverse changed the tile.")
	}
}

func TestTileSingle(t *testing.T) {
	tile := NewTile[float32](0)
	tile.Append(0, 1, 2, 3, 4, 5, 6, 7)
	if tile.Len() != 1 || tile.Z()[0] != 3 || tile.W()[0] != 7 {
		t.Errorf("Single-precision tile stored (%g, %g).", tile.Z()[0], tile.W()[0])
	}
}

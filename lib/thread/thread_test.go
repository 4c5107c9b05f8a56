package thread

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		workers, n int
	}{
		{1, 0}, {1, 1}, {1, 100},
		{4, 0}, {4, 3}, {4, 4}, {4, 100}, {4, 101}, {4, 103},
		{8, 7}, {8, 1 << 20},
	}

	for i := range tests {
		pool := NewPool(tests[i].workers)
		edges := pool.Split(tests[i].n)

		if len(edges) != tests[i].workers+1 {
			t.Errorf("%d) Expected %d edges, got %d.",
				i, tests[i].workers+1, len(edges))
		}
		if edges[0] != 0 || edges[len(edges)-1] != tests[i].n {
			t.Errorf("%d) Edges %v don't span [0, %d).", i, edges, tests[i].n)
		}
		for c := 1; c < len(edges); c++ {
			if edges[c] < edges[c-1] {
				t.Errorf("%d) Edges %v are not monotonic.", i, edges)
			}
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	pool1, pool2 := NewPool(6), NewPool(6)
	e1, e2 := pool1.Split(1000), pool2.Split(1000)
	for c := range e1 {
		if e1[c] != e2[c] {
			t.Fatalf("Two pools with the same worker count split differently: %v vs %v.",
				e1, e2)
		}
	}
}

func TestRunCoversLoop(t *testing.T) {
	// Both above and below the serial cutoff.
	for _, n := range []int{ 0, 1, 10, 63, 64, 65, 10000 } {
		for _, workers := range []int{ 1, 3, 8 } {
			pool := NewPool(workers)
			hits := make([]int32, n)
			pool.Run(n, func(start, end, worker int) {
				if worker < 0 || worker >= workers {
					t.Errorf("n = %d: worker index %d out of range.", n, worker)
				}
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})

			for i := range hits {
				if hits[i] != 1 {
					t.Fatalf("n = %d, %d workers: index %d visited %d times.",
						n, workers, i, hits[i])
				}
			}
		}
	}
}

func TestRunChunksSkipsEmpty(t *testing.T) {
	// More workers than elements gives empty tail chunks, which must not
	// reach f with an inverted range.
	pool := NewPool(8)
	edges := pool.Split(3)

	var total int32
	pool.RunChunks(edges, func(c int) {
		atomic.AddInt32(&total, int32(edges[c+1]-edges[c]))
	})
	if total != 3 {
		t.Errorf("Chunks covered %d elements, expected 3.", total)
	}
}

func TestNewPoolDefaults(t *testing.T) {
	if w := NewPool(0).Workers(); w != runtime.GOMAXPROCS(0) {
		t.Errorf("NewPool(0) has %d workers, expected GOMAXPROCS = %d.",
			w, runtime.GOMAXPROCS(0))
	}
	if w := NewPool(-3).Workers(); w != runtime.GOMAXPROCS(0) {
		t.Errorf("NewPool(-3) has %d workers, expected GOMAXPROCS = %d.",
			w, runtime.GOMAXPROCS(0))
	}
	if w := NewPool(5).Workers(); w != 5 {
		t.Errorf("NewPool(5) has %d workers.", w)
	}
}

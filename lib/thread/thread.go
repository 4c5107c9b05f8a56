/*package thread contains functions for running per-particle kernels across
multiple cores.*/
package thread

import (
	"runtime"
	"sync"

	"github.com/GivenChen/WarpX/lib/error"
)

// serialThreshold is the minimum loop length worth splitting across
// goroutines. Below this the dispatch overhead dominates the work.
const serialThreshold = 64

// Set sets the number of OS threads kernels may use. Passing a negative
// value selects every core on the node.
func Set(n int) {
	if n < 0 {
		n = runtime.NumCPU()
	}
	if n > runtime.NumCPU() {
		error.External("%d threads requested, but your system only has %d cores per node. If you want WarpX to use the maximum number of threads per node, set Threads=-1.", n, runtime.NumCPU())
	}

	runtime.GOMAXPROCS(n)
}

// Pool runs chunked data-parallel loops. Each call blocks until every chunk
// has finished, so a Pool holds no in-flight work between calls and a single
// Pool value may be shared by code that processes different tiles.
type Pool struct {
	workers int
}

// NewPool creates a Pool with the given number of workers. Passing a value
// less than 1 selects GOMAXPROCS workers.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{ workers }
}

// Workers returns the number of chunks loops are split into.
func (p *Pool) Workers() int { return p.workers }

// Split returns the chunk edges used to divide a loop over [0, n) among the
// Pool's workers: chunk c spans [edges[c], edges[c+1]). The edges depend
// only on n and the worker count, never on scheduling.
func (p *Pool) Split(n int) []int {
	edges := make([]int, p.workers+1)
	size := (n + p.workers - 1) / p.workers
	for c := 1; c <= p.workers; c++ {
		edges[c] = c * size
		if edges[c] > n {
			edges[c] = n
		}
	}
	return edges
}

// RunChunks calls f once for each chunk of the given edge list and blocks
// until every call has returned. f must only write to state owned by its
// chunk.
func (p *Pool) RunChunks(edges []int, f func(chunk int)) {
	n := edges[len(edges)-1] - edges[0]
	if n < serialThreshold || p.workers == 1 {
		for c := 0; c < len(edges)-1; c++ {
			f(c)
		}
		return
	}

	wg := sync.WaitGroup{}
	for c := 0; c < len(edges)-1; c++ {
		if edges[c] == edges[c+1] {
			continue
		}
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			f(c)
		}(c)
	}
	wg.Wait()
}

// Run splits the loop [0, n) into one contiguous chunk per worker and calls
// f(start, end, worker) on each. It blocks until all chunks have finished.
// f must not touch mutable state shared with other chunks.
func (p *Pool) Run(n int, f func(start, end, worker int)) {
	if n <= 0 {
		return
	}
	edges := p.Split(n)
	p.RunChunks(edges, func(c int) {
		if edges[c] < edges[c+1] {
			f(edges[c], edges[c+1], c)
		}
	})
}

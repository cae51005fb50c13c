package parallel

import (
	"runtime"
	"sync"
)

// Axis selects how rolling computations are partitioned across workers.
type Axis int

const (
	// ByTime assigns each worker a contiguous range of time indices.
	ByTime Axis = iota
	// ByVariable assigns each worker a contiguous range of variables or
	// variable pairs. Kernels with one output unit per time index fall back
	// to ByTime.
	ByVariable
)

// Workers resolves the worker count for a job of the given number of units.
// A requested count of 0 means use the available hardware concurrency. The
// result is always at least 1 and never exceeds the unit count.
func Workers(requested, units int) int {
	w := requested
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > units {
		w = units
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Run statically splits units into contiguous chunks, one per worker, and
// invokes fn(start, end) on each chunk concurrently. The partition depends
// only on the unit and worker counts, so the set of chunks is deterministic;
// because every unit writes disjoint output, results are independent of
// scheduling order. Run blocks until all workers finish.
func Run(units, workers int, fn func(start, end int)) {
	if units <= 0 {
		return
	}
	workers = Workers(workers, units)
	if workers == 1 {
		fn(0, units)
		return
	}

	chunk := units / workers
	rem := units % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < rem {
			size++
		}
		end := start + size
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
		start = end
	}
	wg.Wait()
}

// Package parallel provides deterministic work partitioning for the rolling
// kernels.
//
// Rolling computations are embarrassingly parallel: each output unit (a time
// index, a variable, or a variable pair) is computed from the shared
// immutable inputs and written to its own slice of the output buffer. Run
// splits the unit range into contiguous chunks, one per worker, and blocks
// until all chunks complete:
//
//	parallel.Run(n, workers, func(start, end int) {
//	    for t := start; t < end; t++ {
//	        // compute unit t
//	    }
//	})
//
// The partition is a pure function of the unit and worker counts, and no
// unit aggregates across another, so outputs are identical for every worker
// count and scheduling order.
package parallel

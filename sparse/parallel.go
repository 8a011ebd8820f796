package sparse

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// parallelRowStrips runs fn over contiguous row strips covering [0, n),
// one goroutine per strip, joining before it returns. Strip boundaries
// are chosen so each strip holds roughly the same number of nonzeros,
// read off the Ptr prefix sums: a uniform row split would let a few
// dense rows serialize one worker while the rest sit idle. workers <= 0
// uses GOMAXPROCS.
func parallelRowStrips[I Index](ptr []I, workers int, fn func(start, end int)) {
	n := len(ptr) - 1
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	nnz := int64(ptr[n])
	if workers == 1 || nnz == 0 {
		fn(0, n)
		return
	}

	bounds := make([]int, workers+1)
	bounds[workers] = n
	for w := 1; w < workers; w++ {
		target := int64(w) * nnz / int64(workers)
		bounds[w] = sort.Search(n, func(r int) bool { return int64(ptr[r+1]) > target })
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start, end := bounds[w], bounds[w+1]
		if start >= end {
			continue
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	g.Wait()
}

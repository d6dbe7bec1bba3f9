// Package parallel runs independent generator streams on separate goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Map applies fn to each index in [0, count) using n workers and collects
// the results in index order. fn must not share mutable state between
// indices.
func Map[T any](count, n int, fn func(i int) T) []T {
	results := make([]T, count)

	if n <= 1 || count <= 1 {
		for i := range results {
			results[i] = fn(i)
		}
		return results
	}

	var wg sync.WaitGroup
	chunkSize := (count + n - 1) / n

	for w := 0; w < n; w++ {
		chunkStart := w * chunkSize
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > count {
			chunkEnd = count
		}
		if chunkStart >= chunkEnd {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				results[i] = fn(i)
			}
		}(chunkStart, chunkEnd)
	}

	wg.Wait()
	return results
}

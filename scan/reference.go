package scan

import (
	"github.com/exascience/pargo/parallel"
	"github.com/exascience/pargo/sequential"
	"github.com/exascience/pargo/speculative"
)

// Sequential reports whether any element of seq satisfies pred using a plain
// single-goroutine scan with no library tiling. It is the baseline every
// other strategy is compared against.
func Sequential(seq []int, pred Predicate) bool {
	for _, v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// RangeSequential scans the whole slice through pargo's sequential range
// reduction. The library still tiles the index space into batches, but the
// batches execute one after another on the calling goroutine. This isolates
// the cost of the tiling machinery itself from any parallel speedup.
func RangeSequential(seq []int, pred Predicate) bool {
	if len(seq) == 0 {
		return false
	}
	return sequential.RangeOr(0, len(seq), 0, func(low, high int) bool {
		return scanRange(seq, Partition{Start: low, End: high}, pred)
	})
}

// RangeParallel scans the whole slice through pargo's parallel range
// reduction. Batches run concurrently and all of them run to completion
// before the OR reduction, matching AnyMatch's no-cancellation behavior but
// with library-chosen tiling.
func RangeParallel(seq []int, pred Predicate) bool {
	if len(seq) == 0 {
		return false
	}
	return parallel.RangeOr(0, len(seq), 0, func(low, high int) bool {
		return scanRange(seq, Partition{Start: low, End: high}, pred)
	})
}

// RangeSpeculative scans the whole slice through pargo's speculative range
// reduction. Batches run concurrently and the reduction terminates as soon
// as any batch reports a match, so remaining work may be abandoned. It is
// the early-termination counterpoint to AnyMatch and RangeParallel.
func RangeSpeculative(seq []int, pred Predicate) bool {
	if len(seq) == 0 {
		return false
	}
	return speculative.RangeOr(0, len(seq), 0, func(low, high int) bool {
		return scanRange(seq, Partition{Start: low, End: high}, pred)
	})
}

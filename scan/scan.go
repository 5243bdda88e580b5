package scan

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalidK is returned when the requested fan-out is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNilPredicate is returned when no predicate is supplied.
	ErrNilPredicate = errors.New("predicate must not be nil")
)

// Predicate reports whether a single element matches.
//
// Predicates must be pure: deterministic, free of side effects and safe to
// call from multiple goroutines without synchronization. AnyMatch gives no
// ordering guarantee between partitions, so an impure predicate would make
// results scheduling-dependent.
type Predicate func(v int) bool

// Partition is a half-open index range [Start, End) over a slice.
type Partition struct {
	Start int
	End   int
}

// Len returns the number of elements covered by the partition.
func (p Partition) Len() int { return p.End - p.Start }

// Partitions splits [0, n) into at most k contiguous, non-overlapping,
// non-empty ranges of size ceil(n/k). When k exceeds n the trailing ranges
// would be empty; those are omitted, so fewer than k partitions are returned.
// Together the returned partitions cover [0, n) exactly once.
//
// k must be >= 1; Partitions returns nil otherwise.
func Partitions(n, k int) []Partition {
	if k < 1 || n <= 0 {
		return nil
	}

	chunk := (n + k - 1) / k

	parts := make([]Partition, 0, k)
	for i := 0; i < k; i++ {
		start := i * chunk
		if start >= n {
			break
		}
		parts = append(parts, Partition{Start: start, End: min(start+chunk, n)})
	}

	return parts
}

// AnyMatch reports whether any element of seq satisfies pred, scanning up to
// k partitions concurrently.
//
// One goroutine is launched per non-empty partition. Each worker scans its
// partition left to right and stops scanning its own range on the first hit,
// but there is no cancellation across workers: a match in one partition does
// not interrupt the others, and AnyMatch returns only after every worker has
// finished. All goroutines are created and joined within the call; none
// outlive it.
//
// An empty or nil seq yields false. k < 1 yields ErrInvalidK and a nil pred
// yields ErrNilPredicate; both leave no goroutines behind.
func AnyMatch(seq []int, k int, pred Predicate) (bool, error) {
	if k < 1 {
		return false, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if pred == nil {
		return false, ErrNilPredicate
	}
	if len(seq) == 0 {
		return false, nil
	}

	parts := Partitions(len(seq), k)

	// Workers return their verdict over a channel instead of writing into a
	// shared slot buffer, so correctness never rests on index disjointness.
	results := make(chan bool, len(parts))

	var wg sync.WaitGroup
	for _, p := range parts {
		wg.Add(1)
		go func(p Partition) {
			defer wg.Done()
			results <- scanRange(seq, p, pred)
		}(p)
	}

	// Join barrier: every partition is fully accounted for before reducing.
	wg.Wait()
	close(results)

	found := false
	for r := range results {
		if r {
			found = true
		}
	}

	return found, nil
}

// scanRange scans one partition left to right, short-circuiting on the first
// match within the partition.
func scanRange(seq []int, p Partition, pred Predicate) bool {
	for _, v := range seq[p.Start:p.End] {
		if pred(v) {
			return true
		}
	}
	return false
}

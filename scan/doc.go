// Package scan implements any-match search strategies over integer slices.
//
// The core primitive is AnyMatch, which splits a slice into K contiguous
// partitions and scans them concurrently, one goroutine per non-empty
// partition. It is deliberately simple: every worker runs to completion and
// the results are OR-reduced after a full join. This keeps the measured cost
// of a search independent of where (or whether) a match occurs in sibling
// partitions, which is exactly what the fan-out benchmarks need.
//
// For comparison, the package also exposes four whole-slice reference
// strategies that delegate partitioning policy to the pargo library instead
// of managing goroutines by hand. See Sequential, RangeSequential,
// RangeParallel and RangeSpeculative.
package scan

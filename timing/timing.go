// Package timing provides the wall-clock measurement harness used by the
// sweep analyzer.
package timing

import (
	"sync/atomic"
	"time"
)

// sink receives the boolean outcome of measured scans. Publishing the result
// through an atomic store keeps the measured operation observable, so the
// compiler cannot treat the scan as dead code.
var sink atomic.Bool

// Measure invokes op and returns its elapsed wall-clock time.
//
// time.Now carries a monotonic clock reading, so the measurement is immune
// to system clock adjustments between the two samples.
func Measure(op func()) time.Duration {
	start := time.Now()
	op()
	return time.Since(start)
}

// Seconds invokes op and returns its elapsed wall-clock time as a
// floating-point number of seconds, with nanosecond resolution.
func Seconds(op func()) float64 {
	return Measure(op).Seconds()
}

// KeepAlive publishes a scan result so a measured operation cannot be elided.
// Callers must route the outcome of every measured scan through it.
func KeepAlive(found bool) {
	sink.Store(found)
}

// Observed returns the most recently published scan result. It exists so the
// sink is a read path as well as a write path; benchmarks and tests use it to
// assert that measured operations really ran.
func Observed() bool {
	return sink.Load()
}

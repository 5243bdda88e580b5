package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceStrategiesAgree(t *testing.T) {
	strategies := map[string]func([]int, Predicate) bool{
		"sequential":        Sequential,
		"range-sequential":  RangeSequential,
		"range-parallel":    RangeParallel,
		"range-speculative": RangeSpeculative,
	}

	match := make([]int, 10_000)
	for i := range match {
		match[i] = 1
	}
	match[7_777] = 2

	noMatch := make([]int, 10_000)
	for i := range noMatch {
		noMatch[i] = 3
	}

	for name, fn := range strategies {
		assert.True(t, fn(match, isTwo), "%s: expected match", name)
		assert.False(t, fn(noMatch, isTwo), "%s: unexpected match", name)
		assert.False(t, fn(nil, isTwo), "%s: nil slice", name)
		assert.False(t, fn([]int{}, isTwo), "%s: empty slice", name)
	}
}

// Package dataset generates the integer sequences the benchmark scenarios
// run against: values drawn from a small domain with at most one target
// value placed at a scenario-controlled position.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidDomain is returned when the value domain is empty or leaves
	// no room for non-target values.
	ErrInvalidDomain = errors.New("invalid value domain")

	// ErrInvalidSize is returned for negative sequence lengths.
	ErrInvalidSize = errors.New("sequence length must not be negative")
)

// fillChunk is the fixed number of elements generated per fill task. A fixed
// chunk size (rather than one derived from GOMAXPROCS) keeps generated data
// identical for a given seed on any machine.
const fillChunk = 1 << 16

// Domain is an inclusive range of small integer values to draw from.
type Domain struct {
	Min int
	Max int
}

// DefaultDomain matches the reference scenario: values in [1, 3] with 2 as
// the target.
var DefaultDomain = Domain{Min: 1, Max: 3}

// Contains reports whether v lies within the domain.
func (d Domain) Contains(v int) bool { return v >= d.Min && v <= d.Max }

func (d Domain) width() int { return d.Max - d.Min + 1 }

// Placement selects where, if anywhere, the single target value is placed.
type Placement int

const (
	// PlaceNone omits the target entirely (worst case: full scan, no hit).
	PlaceNone Placement = iota
	// PlaceFirst puts the target at index 0 (best case).
	PlaceFirst
	// PlaceMiddle puts the target at index n/2 (average case).
	PlaceMiddle
)

// Scenario names a data-placement configuration.
type Scenario struct {
	Name      string
	Placement Placement
}

// DefaultScenarios returns the three reference scenarios in the order they
// are benchmarked.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Worst Case", Placement: PlaceNone},
		{Name: "Best Case", Placement: PlaceFirst},
		{Name: "Average Case", Placement: PlaceMiddle},
	}
}

// Source is an explicitly seeded random source. It replaces any process-wide
// generator: tests inject a seed and get identical sequences every time.
//
// A Source is safe for sequential reuse but not for concurrent calls;
// Generate parallelizes internally with per-chunk derived generators.
type Source struct {
	seed int64
}

// NewSource creates a Source with the given seed.
func NewSource(seed int64) *Source {
	return &Source{seed: seed}
}

// Generate builds a sequence of n values drawn from domain, none of them
// equal to target, then places the target according to placement. The result
// is deterministic for a given (seed, n, domain, target, placement).
//
// Generation runs chunk-parallel; it is never part of a timed measurement.
func (s *Source) Generate(n int, domain Domain, target int, placement Placement) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if domain.Min > domain.Max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidDomain, domain.Min, domain.Max)
	}
	if domain.width() == 1 && domain.Contains(target) {
		return nil, fmt.Errorf("%w: no non-target value in [%d, %d]", ErrInvalidDomain, domain.Min, domain.Max)
	}

	seq := make([]int, n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < n; start += fillChunk {
		start := start
		end := min(start+fillChunk, n)
		chunk := start / fillChunk

		g.Go(func() error {
			rng := rand.New(rand.NewSource(chunkSeed(s.seed, chunk)))
			for i := start; i < end; i++ {
				seq[i] = drawNonTarget(rng, domain, target)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if n > 0 {
		switch placement {
		case PlaceFirst:
			seq[0] = target
		case PlaceMiddle:
			seq[n/2] = target
		}
	}

	return seq, nil
}

// drawNonTarget draws from the domain by rejection until the value differs
// from the target, mirroring the reference generator.
func drawNonTarget(rng *rand.Rand, domain Domain, target int) int {
	for {
		v := domain.Min + rng.Intn(domain.width())
		if v != target {
			return v
		}
	}
}

// chunkSeed derives an independent stream seed per chunk via a splitmix64
// round, so adjacent chunks do not produce correlated values.
func chunkSeed(seed int64, chunk int) int64 {
	z := uint64(seed) + uint64(chunk+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

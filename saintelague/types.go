package saintelague

import "math/rand"

// partyQuotient is one candidate seat: the votes of party divided by one
// divisor of the Sainte-Laguë sequence (0.5, 1.5, 2.5, …).
// Records live only for the duration of a single Distribute call.
type partyQuotient struct {
	party    int
	quotient float64
}

// config is the resolved set of options for one Distribute call.
//
// Fields:
//   - rng — source for tie draws; nil means the auto-seeded top-level
//     math/rand source (safe for concurrent use, not reproducible).
type config struct {
	rng *rand.Rand
}

// newConfig applies opts in order on top of the zero config.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// intn returns a uniform integer in [0,n) from the configured source.
func (c config) intn(n int) int {
	if c.rng == nil {
		return rand.Intn(n)
	}

	return c.rng.Intn(n)
}

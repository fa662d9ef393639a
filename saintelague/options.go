// SPDX-License-Identifier: MIT
// Package: apportion/saintelague
//
// options.go — functional options for Distribute.
//
// Contract:
//   • Options only influence how ties are drawn. Without a tie at the seat
//     cutoff the result is identical for every option combination.
//   • Option constructors PANIC on meaningless inputs; Distribute never does.
//   • Determinism is opt-in: WithSeed or WithRand.

package saintelague

import "math/rand"

// defaultSeed is used when WithSeed receives 0, so that a zero seed still
// yields a fixed, reproducible stream.
const defaultSeed int64 = 1

// Option customizes a Distribute call.
type Option func(*config)

// WithRand provides an explicit RNG for tie draws.
// A *rand.Rand is not goroutine-safe: do not share it between concurrent calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("saintelague: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed draws ties from a fresh deterministic stream seeded with seed
// (seed==0 ⇒ defaultSeed). Use this in tests and reproducible reports.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Package saintelague - sampling used by tie draws.
//
// Concurrency:
//   - The default source is the top-level math/rand stream, safe for
//     concurrent callers.
//   - A *rand.Rand passed via WithRand/WithSeed is NOT goroutine-safe.
package saintelague

// drawWithoutReplacement returns k elements of pool chosen uniformly at
// random without replacement: every k-subset is equally likely.
// pool is not modified. k is clamped to [0, len(pool)].
//
// It runs the first k steps of a Fisher–Yates shuffle on a copy.
//
// Complexity: O(len(pool)) time and space.
func drawWithoutReplacement(pool []partyQuotient, k int, c config) []partyQuotient {
	n := len(pool)
	if k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	buf := make([]partyQuotient, n)
	copy(buf, pool)

	var i, j int
	for i = 0; i < k; i++ {
		j = i + c.intn(n-i)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf[:k]
}

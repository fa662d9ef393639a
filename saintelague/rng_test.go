package saintelague

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDrawWithoutReplacement_Bounds covers clamping and pool immutability.
func TestDrawWithoutReplacement_Bounds(t *testing.T) {
	pool := []partyQuotient{{0, 1}, {1, 1}, {2, 1}}
	c := newConfig(WithSeed(3))

	assert.Nil(t, drawWithoutReplacement(pool, 0, c))
	assert.Nil(t, drawWithoutReplacement(pool, -2, c))
	assert.ElementsMatch(t, pool, drawWithoutReplacement(pool, 5, c))
	assert.Equal(t, []partyQuotient{{0, 1}, {1, 1}, {2, 1}}, pool)
}

// TestDrawWithoutReplacement_NoDuplicates checks that a party is never
// drawn twice from a pool of distinct entries.
func TestDrawWithoutReplacement_NoDuplicates(t *testing.T) {
	pool := make([]partyQuotient, 10)
	for i := range pool {
		pool[i] = partyQuotient{party: i, quotient: 2}
	}
	c := config{rng: rand.New(rand.NewSource(11))}

	for run := 0; run < 200; run++ {
		got := drawWithoutReplacement(pool, 4, c)
		assert.Len(t, got, 4)
		seen := map[int]bool{}
		for _, pq := range got {
			assert.False(t, seen[pq.party], "party %d drawn twice", pq.party)
			seen[pq.party] = true
		}
	}
}

// TestDrawWithoutReplacement_DefaultSource exercises the unseeded path.
func TestDrawWithoutReplacement_DefaultSource(t *testing.T) {
	pool := []partyQuotient{{0, 1}, {1, 1}}
	got := drawWithoutReplacement(pool, 1, newConfig())
	assert.Len(t, got, 1)
	assert.Contains(t, pool, got[0])
}

// TestBuildQuotients_Divisors pins the 0.5, 1.5, 2.5, … sequence.
func TestBuildQuotients_Divisors(t *testing.T) {
	got := buildQuotients([]float64{3, 0}, 3)
	assert.Equal(t, []partyQuotient{
		{0, 6}, {0, 2}, {0, 1.2},
		{1, 0}, {1, 0}, {1, 0},
	}, got)
}

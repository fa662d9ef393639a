// SPDX-License-Identifier: MIT
// Package: apportion/saintelague
//
// distribute.go — the Sainte-Laguë seat distribution.

package saintelague

import "slices"

// Distribute computes the Sainte-Laguë distribution of seats among parties.
//
// Description:
//
//	votes[i] is the vote value of party i (relative shares work as well as
//	absolute counts, so float64 is accepted). The result has len(votes)
//	entries, result[i] being the seats of party i, and sums to seats.
//
// Algorithm Outline:
//  1. Validate (see Validate for the order of checks).
//  2. For every party i and k = 1..seats build the quotient
//     votes[i] / (k − 0.5), i.e. divisors 0.5, 1.5, 2.5, …
//  3. Sort all len(votes)·seats quotients descending.
//  4. threshold = quotient at rank seats (index seats−1).
//     winners          = quotients  > threshold (always seated)
//     possibleWinners  = quotients == threshold (exact float equality)
//  5. tooMany = |winners| + |possibleWinners| − seats.
//     tooMany ≤ 0: all possible winners are seated.
//     tooMany > 0: drawOnTie=false ⇒ ErrTied; otherwise seat
//     |possibleWinners| − tooMany of them drawn uniformly without replacement.
//  6. Count seated quotients per party.
//
// Ties are decided by the threshold filter, never by sort order, so the
// result does not depend on how equal quotients happen to be arranged.
//
// Complexity:
//
//	Time   = O(P·S·log(P·S)) for P parties and S seats
//	Memory = O(P·S)
//
// Errors:
//   - ErrInvalidSeatCount, ErrNegativeVotes, ErrNoVotes — from Validate.
//   - ErrTied — tie at the cutoff and drawOnTie is false.
//
// Example:
//
//	seats, err := Distribute([]float64{3, 3, 1}, 8, true)
//	// seats is [4 3 1] or [3 4 1]
func Distribute(votes []float64, seats int, drawOnTie bool, opts ...Option) ([]int, error) {
	if err := Validate(votes, seats); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	quotients := buildQuotients(votes, seats)
	slices.SortStableFunc(quotients, byQuotientDesc)

	threshold := 0.0
	if seats-1 < len(quotients) {
		threshold = quotients[seats-1].quotient
	}

	var winners, possibleWinners []partyQuotient
	for _, pq := range quotients {
		switch {
		case pq.quotient > threshold:
			winners = append(winners, pq)
		case pq.quotient == threshold:
			possibleWinners = append(possibleWinners, pq)
		}
	}

	tooMany := len(winners) + len(possibleWinners) - seats
	if tooMany > 0 {
		if !drawOnTie {
			return nil, wrapf(ErrTied, "%d quotients of %g compete for %d seat(s)",
				len(possibleWinners), threshold, len(possibleWinners)-tooMany)
		}
		winners = append(winners, drawWithoutReplacement(possibleWinners, len(possibleWinners)-tooMany, cfg)...)
	} else {
		winners = append(winners, possibleWinners...)
	}

	distribution := make([]int, len(votes))
	for _, pq := range winners {
		distribution[pq.party]++
	}

	return distribution, nil
}

// buildQuotients returns the len(votes)·seats candidate quotients, party by
// party, divisor by divisor.
func buildQuotients(votes []float64, seats int) []partyQuotient {
	quotients := make([]partyQuotient, 0, len(votes)*seats)

	var k int
	for i, v := range votes {
		for k = 1; k <= seats; k++ {
			quotients = append(quotients, partyQuotient{
				party:    i,
				quotient: v / (float64(k) - 0.5),
			})
		}
	}

	return quotients
}

// byQuotientDesc orders larger quotients first. Incomparable values (NaN)
// compare as equal.
func byQuotientDesc(a, b partyQuotient) int {
	switch {
	case a.quotient > b.quotient:
		return -1
	case a.quotient < b.quotient:
		return 1
	default:
		return 0
	}
}

package saintelague

// Validate checks votes and seats in a fixed order and returns the first
// failure:
//  1. seats < 1          ⇒ ErrInvalidSeatCount
//  2. any votes[i] < 0   ⇒ ErrNegativeVotes (wrapped with the first index)
//  3. Σ votes == 0       ⇒ ErrNoVotes (also for an empty slice)
//
// NaN and ±Inf values are not rejected.
//
// Complexity: O(len(votes)).
func Validate(votes []float64, seats int) error {
	if seats < 1 {
		return wrapf(ErrInvalidSeatCount, "got %d", seats)
	}

	var total float64
	for i, v := range votes {
		if v < 0 {
			return wrapf(ErrNegativeVotes, "party %d has %g", i, v)
		}
		total += v
	}
	if total == 0 {
		return ErrNoVotes
	}

	return nil
}

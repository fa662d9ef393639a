// SPDX-License-Identifier: MIT
// Package: apportion/saintelague
//
// errors.go — sentinel errors for the saintelague package.
//
// Error policy:
//   • The taxonomy is closed: exactly the four sentinels below.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context (offending index, tie group size) is attached with %w at the
//     return site; message text is not part of the contract.
//   • Distribute never panics and never logs on user input.

package saintelague

import (
	"errors"
	"fmt"
)

// ErrInvalidSeatCount indicates that the requested seat count was below 1.
// Classification: Validation error (checked first).
var ErrInvalidSeatCount = errors.New("saintelague: invalid seat count, must be an integer larger than 0")

// ErrNegativeVotes indicates that at least one party had a negative vote value.
// Classification: Validation error (checked second).
var ErrNegativeVotes = errors.New("saintelague: invalid votes, all parties must have at least zero votes")

// ErrNoVotes indicates that the vote list was empty or summed to exactly zero.
// Classification: Validation error (checked third).
var ErrNoVotes = errors.New("saintelague: invalid votes, one party must have at least one vote")

// ErrTied indicates that several parties were tied for the last seat(s) and
// drawing was disabled. Retrying with drawOnTie=true resolves it by lot.
var ErrTied = errors.New("saintelague: tie detected, could only be resolved by randomly awarding seats")

// wrapf attaches formatted context to a sentinel while keeping it visible
// to errors.Is.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

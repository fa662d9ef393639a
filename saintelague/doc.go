// Package saintelague distributes parliament seats with the Sainte-Laguë
// method (also known as Webster or Schepers), used in Germany, New Zealand
// and other countries.
//
// 🚀 What is Sainte-Laguë?
//
//	A divisor method: every party's votes are divided by 0.5, 1.5, 2.5, …
//	and the seats go to the largest quotients overall. Compared to d'Hondt
//	it treats small and large parties evenly.
//
// ✨ Key features:
//   - float64 votes: absolute counts or relative shares
//   - exact tie detection at the seat cutoff (no epsilon)
//   - tie resolution by uniform random draw, or ErrTied
//   - reproducible draws on demand via WithSeed / WithRand
//   - no globals, no logging, no panics on user input
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/apportion/saintelague"
//
//	// German Bundestag 2013 (vote shares in percent)
//	seats, err := saintelague.Distribute([]float64{41.5, 25.7, 8.6, 8.4}, 631, false)
//	// seats == [311 193 64 63]
//
//	// A tie for the last seat
//	_, err = saintelague.Distribute([]float64{3, 3, 1}, 8, false)
//	// errors.Is(err, saintelague.ErrTied)
//	seats, _ = saintelague.Distribute([]float64{3, 3, 1}, 8, true)
//	// seats is [4 3 1] or [3 4 1]
//
// Floating-point note:
//
//	Ties are detected by exact equality of computed quotients. Quotients
//	are always votes/(k−0.5) in float64, so identical inputs give identical
//	tie groups on every platform. NaN and ±Inf votes are accepted as-is;
//	NaN quotients compare as equal to everything during sorting and can
//	leave seats unassigned.
//
// Performance:
//
//   - Time:   O(P·S·log(P·S)) for P parties and S seats
//   - Memory: O(P·S)
package saintelague

// Package apportion is a small, dependency-free toolkit for turning vote
// totals into seats of a legislative body.
//
// 🚀 What is apportion?
//
//	A pure-Go library that distributes a fixed number of seats among
//	competing parties proportionally to their votes:
//		• Sainte-Laguë / Webster / Schepers divisor method
//		• exact tie detection at the seat cutoff
//		• optional fair random draw to resolve such ties
//
// ✨ Why choose apportion?
//
//   - Deterministic – identical input yields identical seats unless a tie is drawn
//   - Explicit errors – every rejection is a sentinel checkable with errors.Is
//   - Pure Go – no cgo, no global state, safe for concurrent callers
//
// Under the hood, everything is organized under subpackages:
//
//	saintelague/ — Distribute and Validate for the Sainte-Laguë method
//	examples/    — runnable programs (German Bundestag 2013, tie draws)
//
// Quick example:
//
//	votes = [41.5, 25.7, 8.6, 8.4], seats = 631
//	          ↓ saintelague.Distribute
//	        [311, 193, 64, 63]
//
// Note that several countries (Latvia, Norway, …) use a modified first
// divisor; check the relevant electoral law before relying on the numbers.
//
//	go get github.com/katalvlaran/apportion/saintelague
package apportion

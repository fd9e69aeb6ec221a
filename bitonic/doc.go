// Package bitonic provides a generic, in-place, parallel bitonic sort.
//
// Bitonic sort is a sorting network: the sequence of compare-and-swap steps
// depends only on the length of the input, never on its contents. That makes
// every recursive half independent of its sibling, so both halves can be
// processed concurrently without locks.
//
// # Algorithm
//
// The sort is built from two recursive steps:
//   - The builder splits a slice in half, sorts the first half ascending and
//     the second half descending. The concatenation is a bitonic sequence.
//   - The merger runs one compare-and-swap pass across the midpoint of a
//     bitonic sequence, which leaves two bitonic halves where every element of
//     one half is ordered before every element of the other. Both halves are
//     then merged recursively in the same direction.
//
// At every split, when the half size is at or above the parallel threshold the
// two recursive calls are forked onto an Executor and joined before
// continuing. Below the threshold they run one after the other. The result is
// the same either way.
//
// # Length Requirement
//
// The length of the slice must be a power of two. Sort and SortBy check this
// before touching the slice and return a *LengthNotPowerOfTwoError otherwise.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-bitonic/bitonic"
//
//	func Process(data []uint32) error {
//	    return bitonic.Sort(data, bitonic.Ascending)
//	}
//
//	func ByAgeThenName(people []Person) error {
//	    cmp := bitonic.By(func(p Person) int { return p.Age }).
//	        Then(bitonic.By(func(p Person) string { return p.Name }))
//	    return bitonic.SortBy(people, cmp)
//	}
//
// # Tuning
//
// The default threshold is DefaultParallelThreshold elements per half. It can
// be overridden per Sorter with WithThreshold, or process-wide with the
// BITONIC_PARALLEL_THRESHOLD environment variable. Setting BITONIC_SEQUENTIAL
// disables forking for the package-level functions.
//
// The sort is not stable.
package bitonic

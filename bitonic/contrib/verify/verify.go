// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package verify checks the output of a sort. It is used by tests and the
// benchmark harness, never by the sort itself.
package verify

import (
	"cmp"
	"sync/atomic"

	"github.com/ajroetker/go-bitonic/bitonic/contrib/workerpool"
)

// IsSortedAscending reports whether x is non-decreasing.
func IsSortedAscending[T cmp.Ordered](x []T) bool {
	return IsSortedFunc(x, cmp.Compare[T])
}

// IsSortedDescending reports whether x is non-increasing.
func IsSortedDescending[T cmp.Ordered](x []T) bool {
	return IsSortedFunc(x, func(a, b T) int { return cmp.Compare(b, a) })
}

// IsSortedFunc reports whether no adjacent pair of x is out of order
// according to cmp.
func IsSortedFunc[T any](x []T, cmp func(a, b T) int) bool {
	return firstUnsorted(x, cmp) < 0
}

// firstUnsorted returns the first index i with cmp(x[i-1], x[i]) > 0, or -1.
func firstUnsorted[T any](x []T, cmp func(a, b T) int) int {
	for i := 1; i < len(x); i++ {
		if cmp(x[i-1], x[i]) > 0 {
			return i
		}
	}
	return -1
}

// IsSortedParallel is IsSortedFunc split across the workers of pool. Each
// chunk also checks the pair straddling its left boundary.
func IsSortedParallel[T any](pool *workerpool.Pool, x []T, cmp func(a, b T) int) bool {
	var unsorted atomic.Bool
	pool.ParallelFor(len(x), func(start, end int) {
		if unsorted.Load() {
			return
		}
		if start > 0 {
			start--
		}
		if firstUnsorted(x[start:end], cmp) >= 0 {
			unsorted.Store(true)
		}
	})
	return !unsorted.Load()
}

// SameElements reports whether a and b hold the same multiset of values.
func SameElements[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

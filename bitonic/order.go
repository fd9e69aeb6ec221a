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

package bitonic

import (
	"cmp"
	"strings"
)

// SortOrder selects the direction of Sort.
type SortOrder int

const (
	// Ascending sorts smallest first.
	Ascending SortOrder = iota

	// Descending sorts largest first.
	Descending
)

// String returns a human-readable name for the sort order.
func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// ParseSortOrder parses "asc", "ascending", "desc" or "descending",
// ignoring case and surrounding spaces.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return 0, &InvalidSortOrderError{Order: -1, Name: s}
}

// Comparator is a three-way comparison: negative when a orders before b,
// zero when they are equal and positive when a orders after b.
//
// A Comparator must be a total order and must not mutate shared state: the
// parallel sort calls it from several goroutines at once.
type Comparator[T any] func(a, b T) int

// Natural returns the comparator of the type's natural order.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that orders the opposite way to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By returns a comparator ordering values by the natural order of key(v).
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Then returns a comparator that uses c and falls back to next for values c
// considers equal.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// Reverse is the method form of the package-level Reverse.
func (c Comparator[T]) Reverse() Comparator[T] {
	return Reverse(c)
}

// comparatorFor maps a SortOrder to the natural or reversed comparator.
func comparatorFor[T cmp.Ordered](order SortOrder) (Comparator[T], error) {
	switch order {
	case Ascending:
		return Natural[T](), nil
	case Descending:
		return Reverse(Natural[T]()), nil
	}
	return nil, &InvalidSortOrderError{Order: order}
}

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

import "cmp"

// Sorter carries the parallelism settings of a sort. The zero value is not
// usable; create one with New. A Sorter is safe for concurrent use.
type Sorter struct {
	threshold int
	exec      Executor
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithThreshold sets the half size at or above which recursive calls are
// forked. Values below 1 are treated as 1 (fork at every split).
func WithThreshold(threshold int) Option {
	return func(s *Sorter) {
		s.threshold = max(threshold, 1)
	}
}

// WithExecutor sets the Executor used for forked calls. A nil executor is
// ignored.
func WithExecutor(exec Executor) Option {
	return func(s *Sorter) {
		if exec != nil {
			s.exec = exec
		}
	}
}

// Sequential disables forking.
func Sequential() Option {
	return func(s *Sorter) {
		s.threshold = SequentialThreshold
		s.exec = SequentialExecutor{}
	}
}

// New creates a Sorter. Without options it uses ParallelThreshold and a
// GoroutineExecutor.
func New(opts ...Option) *Sorter {
	s := &Sorter{
		threshold: ParallelThreshold(),
		exec:      GoroutineExecutor{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Threshold returns the fork threshold of s.
func (s *Sorter) Threshold() int {
	return s.threshold
}

// Executor returns the executor used by s for forked calls.
func (s *Sorter) Executor() Executor {
	return s.exec
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Sort sorts x in place in the given order using the default Sorter.
// len(x) must be a power of two; otherwise x is left untouched and a
// *LengthNotPowerOfTwoError is returned.
func Sort[T cmp.Ordered](x []T, order SortOrder) error {
	return SortWith(New(), x, order)
}

// SortBy sorts x in place by cmp using the default Sorter. cmp must define a
// total order and be safe for concurrent use.
func SortBy[T any](x []T, cmp Comparator[T]) error {
	return SortByWith(New(), x, cmp)
}

// SortFunc is SortBy for a plain comparison function such as cmp.Compare or
// strings.Compare.
func SortFunc[T any](x []T, cmp func(a, b T) int) error {
	return SortByWith(New(), x, Comparator[T](cmp))
}

// SortWith sorts x in place in the given order using s.
func SortWith[T cmp.Ordered](s *Sorter, x []T, order SortOrder) error {
	if !IsPowerOfTwo(len(x)) {
		return &LengthNotPowerOfTwoError{Length: len(x)}
	}
	c, err := comparatorFor[T](order)
	if err != nil {
		return err
	}
	return SortByWith(s, x, c)
}

// SortByWith sorts x in place by cmp using s.
func SortByWith[T any](s *Sorter, x []T, cmp Comparator[T]) error {
	if !IsPowerOfTwo(len(x)) {
		return &LengthNotPowerOfTwoError{Length: len(x)}
	}
	n := &network[T]{
		cmp:       cmp,
		exec:      s.exec,
		threshold: s.threshold,
	}
	n.build(x, true)
	return nil
}

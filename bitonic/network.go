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

// network holds what stays constant across one sort: the comparator and the
// fork policy. Every recursive call receives its own sub-slice; the two
// sub-slices of a split are x[:mid] and x[mid:] and never overlap, so
// concurrent calls never touch the same element.
type network[T any] struct {
	cmp       Comparator[T]
	exec      Executor
	threshold int
}

// build turns x into a run sorted in the forward direction (the comparator's
// order when forward is true, the reverse otherwise). len(x) must be a power
// of two.
func (n *network[T]) build(x []T, forward bool) {
	if len(x) <= 1 {
		return
	}
	mid := len(x) / 2
	first, second := x[:mid], x[mid:]

	// Opposite directions regardless of forward: the concatenation is bitonic.
	forkJoin(n.exec, n.threshold, mid,
		func() { n.build(first, true) },
		func() { n.build(second, false) },
	)
	n.merge(x, forward)
}

// merge sorts a bitonic x in the forward direction.
func (n *network[T]) merge(x []T, forward bool) {
	if len(x) <= 1 {
		return
	}
	n.compareAndSwap(x, forward)

	mid := len(x) / 2
	first, second := x[:mid], x[mid:]
	forkJoin(n.exec, n.threshold, mid,
		func() { n.merge(first, forward) },
		func() { n.merge(second, forward) },
	)
}

// compareAndSwap orders each pair (x[i], x[i+mid]). On a bitonic input it
// leaves two bitonic halves with every element of the first half ordered no
// later than every element of the second.
func (n *network[T]) compareAndSwap(x []T, forward bool) {
	mid := len(x) / 2
	for i := range mid {
		r := n.cmp(x[i], x[mid+i])
		if (forward && r > 0) || (!forward && r < 0) {
			x[i], x[mid+i] = x[mid+i], x[i]
		}
	}
}

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

package bitonic_test

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-bitonic/bitonic"
	"github.com/ajroetker/go-bitonic/bitonic/contrib/workerpool"
)

func ExampleSort() {
	x := []uint32{10, 30, 11, 20, 4, 330, 21, 110}
	if err := bitonic.Sort(x, bitonic.Ascending); err != nil {
		panic(err)
	}
	fmt.Println(x)

	if err := bitonic.Sort(x, bitonic.Descending); err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output:
	// [4 10 11 20 21 30 110 330]
	// [330 110 30 21 20 11 10 4]
}

func ExampleSort_notPowerOfTwo() {
	x := []int{10, 30, 11}
	err := bitonic.Sort(x, bitonic.Ascending)
	fmt.Println(errors.Is(err, bitonic.ErrLengthNotPowerOfTwo))
	fmt.Println(err)
	fmt.Println(x)
	// Output:
	// true
	// bitonic: length of x is not a power of two (len(x): 3)
	// [10 30 11]
}

func ExampleSortBy() {
	type item struct {
		priority int
		name     string
	}
	items := []item{{2, "b"}, {1, "z"}, {2, "a"}, {1, "y"}}

	byPriorityThenName := bitonic.By(func(i item) int { return i.priority }).
		Then(bitonic.By(func(i item) string { return i.name }))
	if err := bitonic.SortBy(items, byPriorityThenName); err != nil {
		panic(err)
	}
	fmt.Println(items)
	// Output:
	// [{1 y} {1 z} {2 a} {2 b}]
}

func ExampleWithExecutor() {
	pool := workerpool.New(4)
	defer pool.Close()

	s := bitonic.New(bitonic.WithExecutor(pool), bitonic.WithThreshold(2))
	x := []int{7, 3, 5, 1, 8, 2, 6, 4}
	if err := bitonic.SortWith(s, x, bitonic.Ascending); err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output:
	// [1 2 3 4 5 6 7 8]
}

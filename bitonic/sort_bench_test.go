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
	"fmt"
	"slices"
	"testing"

	"github.com/ajroetker/go-bitonic/bitonic/contrib/datagen"
	"github.com/ajroetker/go-bitonic/bitonic/contrib/workerpool"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

func benchmarkSorter(b *testing.B, s *Sorter, n int) {
	ref := datagen.Uint32s(n)
	data := make([]uint32, n)

	b.SetBytes(int64(n) * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if err := SortWith(s, data, Ascending); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSortSequential(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSorter(b, New(Sequential()), n)
		})
	}
}

func BenchmarkSortGoroutines(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSorter(b, New(WithThreshold(DefaultParallelThreshold)), n)
		})
	}
}

func BenchmarkSortPool(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			benchmarkSorter(b, New(WithThreshold(DefaultParallelThreshold), WithExecutor(pool)), n)
		})
	}
}

func BenchmarkSortThresholds(b *testing.B) {
	const n = 1 << 18
	for _, threshold := range []int{256, 1024, 4096, 16384} {
		b.Run(fmt.Sprintf("threshold=%d", threshold), func(b *testing.B) {
			benchmarkSorter(b, New(WithThreshold(threshold)), n)
		})
	}
}

// BenchmarkStdlib is the slices.Sort baseline for the same inputs.
func BenchmarkStdlib(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			ref := datagen.Uint32s(n)
			data := make([]uint32, n)
			b.SetBytes(int64(n) * 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				slices.Sort(data)
			}
		})
	}
}

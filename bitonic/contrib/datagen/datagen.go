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

// Package datagen produces reproducible pseudo-random inputs for benchmarks
// and tests.
package datagen

import "math/rand/v2"

// DefaultSeed is the seed used by Uint32s.
const DefaultSeed uint64 = 0

// Uint32s returns n pseudo-random uint32 values generated from DefaultSeed.
// The same n always yields the same slice.
func Uint32s(n int) []uint32 {
	return Uint32sSeeded(n, DefaultSeed)
}

// Uint32sSeeded returns n pseudo-random uint32 values from a PCG generator
// seeded with seed.
func Uint32sSeeded(n int, seed uint64) []uint32 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]uint32, n)
	for i := range out {
		out[i] = rng.Uint32()
	}
	return out
}

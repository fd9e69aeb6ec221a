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
	"math"
	"os"
	"strconv"
	"sync"
)

const (
	// DefaultParallelThreshold is the half size at or above which the two
	// recursive calls of a split run concurrently. Below it, goroutine
	// coordination costs more than it saves.
	DefaultParallelThreshold = 4096

	// SequentialThreshold disables forking entirely.
	SequentialThreshold = math.MaxInt

	// EnvParallelThreshold overrides DefaultParallelThreshold for the
	// package-level sort functions when set to a positive integer.
	EnvParallelThreshold = "BITONIC_PARALLEL_THRESHOLD"

	// EnvSequential forces the package-level sort functions to run
	// sequentially.
	EnvSequential = "BITONIC_SEQUENTIAL"
)

// envThreshold is read once per process.
var envThreshold = sync.OnceValue(func() int {
	return thresholdFromEnv(os.Getenv(EnvParallelThreshold), os.Getenv(EnvSequential))
})

// ParallelThreshold returns the threshold used by Sort and SortBy.
func ParallelThreshold() int {
	return envThreshold()
}

// thresholdFromEnv resolves the threshold from the raw environment values.
// Unparsable or non-positive thresholds are ignored.
func thresholdFromEnv(threshold, sequential string) int {
	if sequentialEnv(sequential) {
		return SequentialThreshold
	}
	if threshold == "" {
		return DefaultParallelThreshold
	}
	n, err := strconv.Atoi(threshold)
	if err != nil || n < 1 {
		return DefaultParallelThreshold
	}
	return n
}

// sequentialEnv treats any non-empty value as true unless it parses as a
// false boolean.
func sequentialEnv(val string) bool {
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

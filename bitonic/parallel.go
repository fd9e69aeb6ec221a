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

import "golang.org/x/sync/errgroup"

// Executor runs two independent tasks and returns once both have finished.
//
// Join must not return before a and b complete, and must not run either of
// them more than once. The tasks may run in any order or concurrently.
// *workerpool.Pool implements Executor.
type Executor interface {
	Join(a, b func())
}

// SequentialExecutor runs a, then b, on the calling goroutine.
type SequentialExecutor struct{}

// Join implements Executor.
func (SequentialExecutor) Join(a, b func()) {
	a()
	b()
}

// GoroutineExecutor forks b onto a new goroutine and runs a inline.
type GoroutineExecutor struct{}

// Join implements Executor.
func (GoroutineExecutor) Join(a, b func()) {
	var g errgroup.Group
	g.Go(func() error {
		b()
		return nil
	})
	a()
	_ = g.Wait()
}

// forkJoin applies the threshold policy shared by the builder and the
// merger: halves of size mid at or above threshold go through the executor,
// smaller ones run in place.
func forkJoin(exec Executor, threshold, mid int, a, b func()) {
	if mid >= threshold {
		exec.Join(a, b)
		return
	}
	a()
	b()
}

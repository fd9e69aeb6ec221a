// Copyright 2025 The go-bitonic Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join computation. A Pool is created once and reused across many sorts,
// so forked halves are handed to already running goroutines instead of
// spawning new ones at every split.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	s := bitonic.New(bitonic.WithExecutor(pool))
//	for _, batch := range batches {
//	    if err := bitonic.SortWith(s, batch, bitonic.Ascending); err != nil {
//	        return err
//	    }
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// Close must not be called while a Join or ParallelFor is in progress.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit of work handed to a worker.
// barrier is nil for forked Join tasks, which signal through their own task.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		if item.barrier != nil {
			item.barrier.Done()
		}
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// joinTask is the forked half of a Join. Exactly one of the joining caller
// or a worker claims it and runs it.
type joinTask struct {
	fn      func()
	claimed atomic.Bool
	done    chan struct{}
}

func (t *joinTask) claim() bool {
	return t.claimed.CompareAndSwap(false, true)
}

// runIfUnclaimed is what a worker executes for a forked half.
func (t *joinTask) runIfUnclaimed() {
	if !t.claim() {
		return
	}
	defer close(t.done)
	t.fn()
}

// Join runs a and b and returns once both have completed. b is offered to an
// idle worker while a runs on the calling goroutine. If no worker has picked
// b up by the time a returns, the caller runs b itself.
//
// Join never blocks on a full queue and never waits for a task that nobody is
// running, so nested Joins issued from inside workers cannot deadlock the
// pool. Join implements bitonic.Executor.
func (p *Pool) Join(a, b func()) {
	if p.closed.Load() {
		a()
		b()
		return
	}

	t := &joinTask{fn: b, done: make(chan struct{})}
	select {
	case p.workC <- workItem{fn: t.runIfUnclaimed}:
	default:
		// Every worker is busy and the queue is full.
		a()
		b()
		return
	}

	a()

	if t.claim() {
		b()
		return
	}
	<-t.done
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for converting the
// images of a batch in parallel.
//
// A Pool is created once, typically next to the data loader, and shared by
// every conversion of a training step:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	ycc, err := color.ParallelRGBToYCbCrTensor(pool, batch, false)
//
// Elementwise conversions split the flat sample range with ParallelFor.
// Conversions whose work items vary in cost pull them with ParallelForAtomic.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs conversion work on a fixed set of goroutines started by New.
type Pool struct {
	workers int
	tasks   chan func()
	once    sync.Once
	closed  atomic.Bool
}

// New starts a pool of workers goroutines. If workers <= 0, GOMAXPROCS is
// used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for task := range p.tasks {
		task()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers. It is safe to call more than once. A closed pool
// still accepts work and runs it on the calling goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut runs task(w) for every w in [0, k) and returns once all of them are
// done. With k == 1 or a closed pool the tasks run in order on the caller.
func (p *Pool) fanOut(k int, task func(w int)) {
	if k == 1 || p.closed.Load() {
		for w := range k {
			task(w)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(k)
	for w := range k {
		p.tasks <- func() {
			defer wg.Done()
			task(w)
		}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into at most one contiguous, non-empty range per
// worker and calls fn once per range.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunk := (n + p.workers - 1) / p.workers
	ranges := (n + chunk - 1) / chunk
	p.fanOut(ranges, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn for each index in [0, n). Workers claim indices
// one at a time, so items of uneven cost are balanced across the pool.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var next atomic.Int64
	p.fanOut(min(p.workers, n), func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
}

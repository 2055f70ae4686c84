// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 7, 100} {
		planes := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				planes[i]++
			}
		})
		for i, v := range planes {
			if v != 1 {
				t.Errorf("n=%d: plane %d visited %d times, want 1", n, i, v)
			}
		}
	}
}

func TestParallelForRanges(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 5, 9, 13, 1 << 15} {
		var calls, covered atomic.Int64
		pool.ParallelFor(n, func(start, end int) {
			if start >= end {
				t.Errorf("n=%d: empty range [%d, %d)", n, start, end)
			}
			calls.Add(1)
			covered.Add(int64(end - start))
		})
		if covered.Load() != int64(n) {
			t.Errorf("n=%d: covered %d samples", n, covered.Load())
		}
		if calls.Load() > 4 {
			t.Errorf("n=%d: %d ranges for 4 workers", n, calls.Load())
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var visits atomic.Int64
	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
		visits.Add(1)
	})

	if visits.Load() != int64(n) {
		t.Errorf("visited %d items, want %d", visits.Load(), n)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestZeroWork(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomic(-1, func(i int) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			sum += i
		}
	})
	pool.ParallelForAtomic(10, func(i int) {
		sum += i
	})
	if sum != 90 {
		t.Errorf("sum = %d, want 90", sum)
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] = data[i]*0.5 + 1
			}
		})
	}
}

// Copyright 2025 go-highway Authors
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

package color

import (
	"slices"

	"github.com/trainner-go/chroma/hwy/contrib/workerpool"
)

// MinParallelPixels is the number of pixels in one call below which the
// Parallel* conversions run on the calling goroutine.
const MinParallelPixels = 1 << 15

// parallelSpan is the number of pixels of one plane processed per work item.
const parallelSpan = 1 << 14

// forEachSpan calls fn for every image b of the batch with [lo, hi) covering
// the size pixels of its planes. With a pool and enough pixels the spans are
// distributed across the workers.
func forEachSpan(pool *workerpool.Pool, batch, size int, fn func(b, lo, hi int)) {
	if pool == nil || batch*size < MinParallelPixels {
		for b := range batch {
			fn(b, 0, size)
		}
		return
	}
	spans := (size + parallelSpan - 1) / parallelSpan
	pool.ParallelForAtomic(batch*spans, func(i int) {
		b, s := i/spans, i%spans
		lo := s * parallelSpan
		fn(b, lo, min(lo+parallelSpan, size))
	})
}

// forEachRange calls fn over ranges covering [0, n). With a pool and at
// least MinParallelPixels items, [0, n) is split into one contiguous range
// per worker.
func forEachRange(pool *workerpool.Pool, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if pool == nil || n < MinParallelPixels {
		fn(0, n)
		return
	}
	pool.ParallelFor(n, fn)
}

// withChannels returns shape with its channel axis, the third from the end,
// set to c.
func withChannels(shape []int, c int) []int {
	shape = slices.Clone(shape)
	shape[len(shape)-3] = c
	return shape
}

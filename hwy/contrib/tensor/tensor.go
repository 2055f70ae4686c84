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

// Package tensor provides batched, channel-first float tensors.
//
// A Tensor is dense and row-major. Image operations interpret the last three
// axes as (C, H, W) and fold every leading axis into the batch, so a
// (N, C, H, W) tensor holds N*C contiguous planes of H*W samples:
//
//	t := tensor.New[float32](8, 3, 64, 64)
//	for b := range 8 {
//	    r, g, bl := t.Plane(b, 0), t.Plane(b, 1), t.Plane(b, 2)
//	    // process planes with hwy kernels
//	}
package tensor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/trainner-go/chroma/hwy"
)

// ErrShape reports a tensor shape that does not fit the data or the operation.
var ErrShape = errors.New("tensor: invalid shape")

// Tensor is a dense row-major float tensor.
type Tensor[T hwy.Floats] struct {
	data  []T
	shape []int
}

// New creates a zero-filled tensor. Negative dimensions are treated as 0.
func New[T hwy.Floats](shape ...int) *Tensor[T] {
	shape = slices.Clone(shape)
	n := 1
	for i, d := range shape {
		if d < 0 {
			shape[i] = 0
			d = 0
		}
		n *= d
	}
	return &Tensor[T]{data: make([]T, n), shape: shape}
}

// FromSlice wraps data in a tensor of the given shape. The slice is not copied.
func FromSlice[T hwy.Floats](data []T, shape ...int) (*Tensor[T], error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %v", ErrShape, shape)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d elements do not fit shape %v", ErrShape, len(data), shape)
	}
	return &Tensor[T]{data: data, shape: slices.Clone(shape)}, nil
}

// Shape returns a copy of the dimensions.
func (t *Tensor[T]) Shape() []int {
	return slices.Clone(t.shape)
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Len returns the number of elements.
func (t *Tensor[T]) Len() int {
	return len(t.data)
}

// Data returns the backing slice in row-major order.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{data: slices.Clone(t.data), shape: slices.Clone(t.shape)}
}

// SameShape returns true if both tensors have the same dimensions.
func SameShape[T, U hwy.Floats](a *Tensor[T], b *Tensor[U]) bool {
	return slices.Equal(a.shape, b.shape)
}

// ImageDims returns the (*, C, H, W) view of the tensor with every leading
// axis folded into batch. The tensor must have at least three axes.
func (t *Tensor[T]) ImageDims() (batch, channels, height, width int, err error) {
	r := len(t.shape)
	if r < 3 {
		return 0, 0, 0, 0, fmt.Errorf("%w: want (*, C, H, W), got %v", ErrShape, t.shape)
	}
	batch = 1
	for _, d := range t.shape[:r-3] {
		batch *= d
	}
	return batch, t.shape[r-3], t.shape[r-2], t.shape[r-1], nil
}

// Plane returns the mutable H*W plane of channel c of image b, where b
// indexes the folded batch. It returns nil when out of range.
func (t *Tensor[T]) Plane(b, c int) []T {
	batch, channels, height, width, err := t.ImageDims()
	if err != nil || b < 0 || b >= batch || c < 0 || c >= channels {
		return nil
	}
	size := height * width
	start := (b*channels + c) * size
	return t.data[start : start+size : start+size]
}

// offset returns the flat index of idx, or -1 if idx is out of range.
func (t *Tensor[T]) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		return -1
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= t.shape[i] {
			return -1
		}
		off = off*t.shape[i] + x
	}
	return off
}

// At returns the element at idx, or zero when idx is out of range.
func (t *Tensor[T]) At(idx ...int) T {
	off := t.offset(idx)
	if off < 0 {
		var zero T
		return zero
	}
	return t.data[off]
}

// Set stores value at idx. Out-of-range indices are ignored.
func (t *Tensor[T]) Set(value T, idx ...int) {
	if off := t.offset(idx); off >= 0 {
		t.data[off] = value
	}
}

// withChannels returns the shape of t with the channel axis set to c.
func (t *Tensor[T]) withChannels(c int) []int {
	shape := slices.Clone(t.shape)
	shape[len(shape)-3] = c
	return shape
}

// NarrowChannels returns a copy of channels [start, start+length) of every
// image, i.e. t[..., start:start+length, :, :].
func (t *Tensor[T]) NarrowChannels(start, length int) (*Tensor[T], error) {
	batch, channels, _, _, err := t.ImageDims()
	if err != nil {
		return nil, err
	}
	if start < 0 || length < 0 || start+length > channels {
		return nil, fmt.Errorf("%w: channels [%d, %d) out of range for %v", ErrShape, start, start+length, t.shape)
	}
	out := New[T](t.withChannels(length)...)
	for b := range batch {
		for c := range length {
			copy(out.Plane(b, c), t.Plane(b, start+c))
		}
	}
	return out, nil
}

// SetChannels overwrites channels [start, start+C') of t with the C'
// channels of src, i.e. t[..., start:start+C', :, :] = src. The batch and
// spatial dimensions must match.
func (t *Tensor[T]) SetChannels(start int, src *Tensor[T]) error {
	batch, channels, height, width, err := t.ImageDims()
	if err != nil {
		return err
	}
	sBatch, sChannels, sHeight, sWidth, err := src.ImageDims()
	if err != nil {
		return err
	}
	if sBatch != batch || sHeight != height || sWidth != width {
		return fmt.Errorf("%w: cannot assign %v into channels of %v", ErrShape, src.shape, t.shape)
	}
	if start < 0 || start+sChannels > channels {
		return fmt.Errorf("%w: channels [%d, %d) out of range for %v", ErrShape, start, start+sChannels, t.shape)
	}
	for b := range batch {
		for c := range sChannels {
			copy(t.Plane(b, start+c), src.Plane(b, c))
		}
	}
	return nil
}

// ConcatChannels concatenates tensors along the channel axis.
// All inputs must agree on every other dimension.
func ConcatChannels[T hwy.Floats](ts ...*Tensor[T]) (*Tensor[T], error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: nothing to concatenate", ErrShape)
	}
	first := ts[0]
	if _, _, _, _, err := first.ImageDims(); err != nil {
		return nil, err
	}
	total := 0
	for _, t := range ts {
		if _, _, _, _, err := t.ImageDims(); err != nil {
			return nil, err
		}
		if !slices.Equal(t.withChannels(0), first.withChannels(0)) {
			return nil, fmt.Errorf("%w: cannot concatenate %v with %v", ErrShape, t.shape, first.shape)
		}
		total += t.shape[len(t.shape)-3]
	}

	out := New[T](first.withChannels(total)...)
	start := 0
	for _, t := range ts {
		if err := out.SetChannels(start, t); err != nil {
			return nil, err
		}
		start += t.shape[len(t.shape)-3]
	}
	return out, nil
}

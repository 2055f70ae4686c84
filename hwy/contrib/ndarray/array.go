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

// Package ndarray provides host image buffers with a runtime element type.
//
// An Array is the Go counterpart of a NumPy array as produced by an image
// loader: row-major, channel-last (H, W, C), holding uint8 samples in
// [0, 255] or float32 samples in [0, 1]. Other element types can be stored
// so that any .npy file can be loaded; consumers decide which ones they accept.
//
//	a, err := ndarray.From([]uint8{255, 0, 0}, 1, 1, 3)
//	px, err := ndarray.Data[uint8](a)
package ndarray

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrShape reports a shape that does not match the data or the operation.
	ErrShape = errors.New("ndarray: invalid shape")

	// ErrDType reports an element type that is unknown or does not match.
	ErrDType = errors.New("ndarray: invalid dtype")
)

// Array is a dense, row-major N-dimensional buffer.
type Array struct {
	dtype DType
	shape []int
	data  any // []E for the Element type matching dtype
}

// numElements returns the product of the dimensions, or -1 if one is negative.
func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return -1
		}
		n *= d
	}
	return n
}

// From wraps data in an Array of the given shape. The slice is not copied.
func From[E Element](data []E, shape ...int) (*Array, error) {
	if n := numElements(shape); n != len(data) {
		return nil, fmt.Errorf("%w: %d elements do not fit shape %v", ErrShape, len(data), shape)
	}
	return &Array{dtype: dtypeOf[E](), shape: slices.Clone(shape), data: data}, nil
}

// New returns a zero-filled Array.
func New(dtype DType, shape ...int) (*Array, error) {
	n := numElements(shape)
	if n < 0 {
		return nil, fmt.Errorf("%w: negative dimension in %v", ErrShape, shape)
	}
	var data any
	switch dtype {
	case Int8:
		data = make([]int8, n)
	case Uint8:
		data = make([]uint8, n)
	case Int16:
		data = make([]int16, n)
	case Uint16:
		data = make([]uint16, n)
	case Int32:
		data = make([]int32, n)
	case Uint32:
		data = make([]uint32, n)
	case Int64:
		data = make([]int64, n)
	case Uint64:
		data = make([]uint64, n)
	case Float32:
		data = make([]float32, n)
	case Float64:
		data = make([]float64, n)
	default:
		return nil, fmt.Errorf("%w: %v", ErrDType, dtype)
	}
	return &Array{dtype: dtype, shape: slices.Clone(shape), data: data}, nil
}

// Data returns the backing slice of a. It fails with ErrDType when E does not
// match a.DType().
func Data[E Element](a *Array) ([]E, error) {
	data, ok := a.data.([]E)
	if !ok {
		var zero E
		return nil, fmt.Errorf("%w: array holds %v, requested %T", ErrDType, a.dtype, zero)
	}
	return data, nil
}

// DType returns the element type.
func (a *Array) DType() DType {
	return a.dtype
}

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int {
	return slices.Clone(a.shape)
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return numElements(a.shape)
}

// Channels returns the size of the last axis, or 0 for a scalar array.
func (a *Array) Channels() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[len(a.shape)-1]
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	c := &Array{dtype: a.dtype, shape: slices.Clone(a.shape)}
	switch d := a.data.(type) {
	case []int8:
		c.data = slices.Clone(d)
	case []uint8:
		c.data = slices.Clone(d)
	case []int16:
		c.data = slices.Clone(d)
	case []uint16:
		c.data = slices.Clone(d)
	case []int32:
		c.data = slices.Clone(d)
	case []uint32:
		c.data = slices.Clone(d)
	case []int64:
		c.data = slices.Clone(d)
	case []uint64:
		c.data = slices.Clone(d)
	case []float32:
		c.data = slices.Clone(d)
	case []float64:
		c.data = slices.Clone(d)
	}
	return c
}

// Reshape returns an Array sharing a's data with a new shape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	if numElements(shape) != a.Len() {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShape, a.shape, shape)
	}
	return &Array{dtype: a.dtype, shape: slices.Clone(shape), data: a.data}, nil
}

// Float64s returns the elements converted to float64, without scaling.
func (a *Array) Float64s() []float64 {
	switch d := a.data.(type) {
	case []int8:
		return toFloat64(d)
	case []uint8:
		return toFloat64(d)
	case []int16:
		return toFloat64(d)
	case []uint16:
		return toFloat64(d)
	case []int32:
		return toFloat64(d)
	case []uint32:
		return toFloat64(d)
	case []int64:
		return toFloat64(d)
	case []uint64:
		return toFloat64(d)
	case []float32:
		return toFloat64(d)
	case []float64:
		return slices.Clone(d)
	}
	return nil
}

func toFloat64[E Element](src []E) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

// String describes the array header, e.g. "uint8[4 4 3]".
func (a *Array) String() string {
	return fmt.Sprintf("%v%v", a.dtype, a.shape)
}

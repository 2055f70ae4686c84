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

package tensor

import (
	"fmt"
	"io"

	"github.com/trainner-go/chroma/hwy"
	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
)

// FromArray converts a host array to a tensor of the same shape. Values are
// converted without scaling.
func FromArray[T hwy.Floats](a *ndarray.Array) (*Tensor[T], error) {
	src := a.Float64s()
	data := make([]T, len(src))
	for i, v := range src {
		data[i] = T(v)
	}
	return FromSlice(data, a.Shape()...)
}

// ToArray converts the tensor to a float32 or float64 host array of the same
// shape, sharing no memory with t.
func (t *Tensor[T]) ToArray() (*ndarray.Array, error) {
	switch data := any(t.data).(type) {
	case []float32:
		return ndarray.From(append([]float32(nil), data...), t.shape...)
	case []float64:
		return ndarray.From(append([]float64(nil), data...), t.shape...)
	}
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		out[i] = float64(v)
	}
	return ndarray.From(out, t.shape...)
}

// ReadNpy decodes a .npy stream of any numeric dtype into a tensor.
func ReadNpy[T hwy.Floats](r io.Reader) (*Tensor[T], error) {
	a, err := ndarray.ReadNpy(r)
	if err != nil {
		return nil, err
	}
	return FromArray[T](a)
}

// WriteNpy encodes t as a .npy stream.
func (t *Tensor[T]) WriteNpy(w io.Writer) error {
	a, err := t.ToArray()
	if err != nil {
		return err
	}
	return ndarray.WriteNpy(w, a)
}

// Load reads a .npy file into a tensor.
func Load[T hwy.Floats](path string) (*Tensor[T], error) {
	a, err := ndarray.Load(path)
	if err != nil {
		return nil, err
	}
	t, err := FromArray[T](a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Save writes t to path as a .npy file.
func (t *Tensor[T]) Save(path string) error {
	a, err := t.ToArray()
	if err != nil {
		return err
	}
	return ndarray.Save(path, a)
}

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
	"fmt"

	"github.com/trainner-go/chroma/hwy"
	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
)

// ArrayToTensor converts a channel-last (*, H, W, C) uint8 or float32 array
// into a channel-first (*, C, H, W) tensor in [0, 1]. uint8 samples are
// divided by 255.
func ArrayToTensor[T hwy.Floats](a *ndarray.Array) (*tensor.Tensor[T], error) {
	unit, err := ToUnitFloat(a)
	if err != nil {
		return nil, err
	}
	r := a.Rank()
	if r < 3 {
		return nil, fmt.Errorf("%w: array must have a shape of (*, H, W, C). Got %v", ErrShape, a.Shape())
	}
	src, err := ndarray.Data[float32](unit)
	if err != nil {
		return nil, err
	}
	shape := a.Shape()
	height, width, channels := shape[r-3], shape[r-2], shape[r-1]
	out := tensor.New[T](append(shape[:r-3:r-3], channels, height, width)...)

	batch, _, _, _, err := out.ImageDims()
	if err != nil {
		return nil, err
	}
	stride := height * width * channels
	for b := range batch {
		img := src[b*stride : (b+1)*stride]
		for c := range channels {
			plane := out.Plane(b, c)
			for i := range plane {
				plane[i] = T(img[i*channels+c])
			}
		}
	}
	return out, nil
}

// TensorToArray converts a channel-first (*, C, H, W) tensor in [0, 1] into
// a channel-last (*, H, W, C) array of dtype dst. For uint8 the samples are
// scaled by 255, rounded half to even and saturated; float32 samples are
// copied unchanged.
func TensorToArray[T hwy.Floats](t *tensor.Tensor[T], dst ndarray.DType) (*ndarray.Array, error) {
	batch, channels, height, width, err := t.ImageDims()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	shape := t.Shape()
	r := len(shape)
	arrayShape := append(shape[:r-3:r-3], height, width, channels)

	switch dst {
	case ndarray.Float32:
		out, err := interleave(t, batch, func(v T) float32 { return float32(v) })
		if err != nil {
			return nil, err
		}
		return ndarray.From(out, arrayShape...)
	case ndarray.Uint8:
		out, err := interleave(t, batch, func(v T) T { return v })
		if err != nil {
			return nil, err
		}
		return ndarray.From(quantize(out, 255), arrayShape...)
	default:
		return nil, fmt.Errorf("%w: the dst_type should be float32 or uint8, but got %v", ErrUnsupportedDType, dst)
	}
}

// interleave writes every image of t in (H, W, C) order, converting each
// sample with conv.
func interleave[T hwy.Floats, E hwy.Floats](t *tensor.Tensor[T], batch int, conv func(T) E) ([]E, error) {
	out := make([]E, 0, t.Len())
	for b := range batch {
		hwc, err := t.ToHWC(b)
		if err != nil {
			return nil, err
		}
		for _, v := range hwc {
			out = append(out, conv(v))
		}
	}
	return out, nil
}

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
	"github.com/trainner-go/chroma/hwy"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
	"github.com/trainner-go/chroma/hwy/contrib/workerpool"
)

// RGBToLinearRGB decodes a (*, 3, H, W) sRGB batch to linear light:
// ((x+0.055)/1.055)^2.4 above 0.04045 and x/12.92 otherwise.
func RGBToLinearRGB[T hwy.Floats](img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return ParallelRGBToLinearRGB(nil, img)
}

// ParallelRGBToLinearRGB is RGBToLinearRGB spread over pool.
func ParallelRGBToLinearRGB[T hwy.Floats](pool *workerpool.Pool, img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if _, _, _, err := imageDims(img, "(*, 3, H, W)", 3); err != nil {
		return nil, err
	}
	out := tensor.New[T](img.Shape()...)
	src, dst := img.Data(), out.Data()

	forEachRange(pool, len(src), func(lo, hi int) {
		BaseSRGBToLinear(src[lo:hi], dst[lo:hi])
	})
	return out, nil
}

// RGBToXYZ converts a (*, 3, H, W) linear RGB batch to CIE XYZ.
func RGBToXYZ[T hwy.Floats](img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return ParallelRGBToXYZ(nil, img)
}

// ParallelRGBToXYZ is RGBToXYZ spread over pool. The pixels of the whole
// batch are split into ranges that may cross image boundaries.
func ParallelRGBToXYZ[T hwy.Floats](pool *workerpool.Pool, img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	batch, _, size, err := imageDims(img, "(*, 3, H, W)", 3)
	if err != nil {
		return nil, err
	}
	out := tensor.New[T](img.Shape()...)

	forEachRange(pool, batch*size, func(lo, hi int) {
		for lo < hi {
			b, i := lo/size, lo%size
			end := min(size, i+hi-lo)
			BaseLinearRGBToXYZ(
				span(img, b, 0, i, end), span(img, b, 1, i, end), span(img, b, 2, i, end),
				span(out, b, 0, i, end), span(out, b, 1, i, end), span(out, b, 2, i, end),
			)
			lo += end - i
		}
	})
	return out, nil
}

// LinearRGBToLabNorm converts a (*, 3, H, W) linear RGB batch to CIELAB
// under the D65 white point, normalized so that L = L*/100 and
// a, b = (a*+128)/255, (b*+128)/255. Black maps to (0, 128/255, 128/255)
// and white to about (1, 128/255, 128/255).
func LinearRGBToLabNorm[T hwy.Floats](img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return ParallelLinearRGBToLabNorm(nil, img)
}

// ParallelLinearRGBToLabNorm is LinearRGBToLabNorm spread over pool.
func ParallelLinearRGBToLabNorm[T hwy.Floats](pool *workerpool.Pool, img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	batch, _, size, err := imageDims(img, "(*, 3, H, W)", 3)
	if err != nil {
		return nil, err
	}
	out := tensor.New[T](img.Shape()...)

	forEachSpan(pool, batch, size, func(b, lo, hi int) {
		BaseLinearRGBToLabNorm(
			span(img, b, 0, lo, hi), span(img, b, 1, lo, hi), span(img, b, 2, lo, hi),
			span(out, b, 0, lo, hi), span(out, b, 1, lo, hi), span(out, b, 2, lo, hi),
		)
	})
	return out, nil
}

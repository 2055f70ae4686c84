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
	"slices"

	"github.com/trainner-go/chroma/hwy"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
	"github.com/trainner-go/chroma/hwy/contrib/workerpool"
)

// imageDims validates that img is (*, C, H, W) with C one of channels and
// returns the folded batch, C and the plane size H*W.
func imageDims[T hwy.Floats](img *tensor.Tensor[T], want string, channels ...int) (batch, c, size int, err error) {
	batch, c, height, width, err := img.ImageDims()
	if err != nil || !slices.Contains(channels, c) {
		return 0, 0, 0, fmt.Errorf("%w: input size must have a shape of %s. Got %v", ErrShape, want, img.Shape())
	}
	return batch, c, height * width, nil
}

// span returns plane c of image b restricted to [lo, hi).
func span[T hwy.Floats](t *tensor.Tensor[T], b, c, lo, hi int) []T {
	return t.Plane(b, c)[lo:hi]
}

// RGBToYCbCrTensor converts a (*, 3, H, W) RGB batch in [0, 1] to BT.601
// YCbCr in [0, 1]. With yOnly the result is (*, 1, H, W).
func RGBToYCbCrTensor[T hwy.Floats](img *tensor.Tensor[T], yOnly bool) (*tensor.Tensor[T], error) {
	return ParallelRGBToYCbCrTensor(nil, img, yOnly)
}

// ParallelRGBToYCbCrTensor is RGBToYCbCrTensor spread over pool. A nil pool
// or a batch smaller than MinParallelPixels runs sequentially.
func ParallelRGBToYCbCrTensor[T hwy.Floats](pool *workerpool.Pool, img *tensor.Tensor[T], yOnly bool) (*tensor.Tensor[T], error) {
	batch, _, size, err := imageDims(img, "(*, 3, H, W)", 3)
	if err != nil {
		return nil, err
	}
	outChannels := 3
	if yOnly {
		outChannels = 1
	}
	out := tensor.New[T](withChannels(img.Shape(), outChannels)...)

	forEachSpan(pool, batch, size, func(b, lo, hi int) {
		r, g, bl := span(img, b, 0, lo, hi), span(img, b, 1, lo, hi), span(img, b, 2, lo, hi)
		if yOnly {
			BaseRGBToY(r, g, bl, span(out, b, 0, lo, hi))
			return
		}
		BaseRGBToYCbCr(r, g, bl, span(out, b, 0, lo, hi), span(out, b, 1, lo, hi), span(out, b, 2, lo, hi))
	})
	return out, nil
}

// YCbCrToRGBTensor converts a (*, 3, H, W) BT.601 YCbCr batch in [0, 1] back
// to RGB. The result is not clamped.
func YCbCrToRGBTensor[T hwy.Floats](img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return ParallelYCbCrToRGBTensor(nil, img)
}

// ParallelYCbCrToRGBTensor is YCbCrToRGBTensor spread over pool.
func ParallelYCbCrToRGBTensor[T hwy.Floats](pool *workerpool.Pool, img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	batch, _, size, err := imageDims(img, "(*, 3, H, W)", 3)
	if err != nil {
		return nil, err
	}
	out := tensor.New[T](img.Shape()...)

	forEachSpan(pool, batch, size, func(b, lo, hi int) {
		BaseYCbCrToRGB(
			span(img, b, 0, lo, hi), span(img, b, 1, lo, hi), span(img, b, 2, lo, hi),
			span(out, b, 0, lo, hi), span(out, b, 1, lo, hi), span(out, b, 2, lo, hi),
		)
	})
	return out, nil
}

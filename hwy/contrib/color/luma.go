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

// RGBToLuma computes the perceptual lightness CIE L*/100 of a (*, 3, H, W)
// sRGB or (*, 1, H, W) gray batch in [0, 1]. The result is (*, 1, H, W) in
// [0, 1].
//
// Inputs are clamped to [1e-12, 1] and decoded to linear light. Color inputs
// are weighted with the Rec. 709 coefficients (0.2126, 0.7152, 0.0722); gray
// inputs are used as the luminance directly. L* is linear, Y*24389/27, for
// luminance at or below 216/24389. Y is not squared on that segment, so L*
// stays continuous at the threshold.
func RGBToLuma[T hwy.Floats](img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return ParallelRGBToLuma(nil, img)
}

// ParallelRGBToLuma is RGBToLuma spread over pool.
func ParallelRGBToLuma[T hwy.Floats](pool *workerpool.Pool, img *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	batch, channels, size, err := imageDims(img, "(*, 3, H, W) or (*, 1, H, W)", 3, 1)
	if err != nil {
		return nil, err
	}
	out := tensor.New[T](withChannels(img.Shape(), 1)...)

	forEachSpan(pool, batch, size, func(b, lo, hi int) {
		dst := span(out, b, 0, lo, hi)
		if channels == 1 {
			BaseGrayToLuma(span(img, b, 0, lo, hi), dst)
			return
		}
		BaseRGBToLuma(span(img, b, 0, lo, hi), span(img, b, 1, lo, hi), span(img, b, 2, lo, hi), dst)
	})
	return out, nil
}

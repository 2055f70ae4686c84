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

	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
)

// ToUnitFloat returns a float32 copy of img with values in [0, 1].
// uint8 samples are divided by 255; float32 samples are copied unchanged.
func ToUnitFloat(img *ndarray.Array) (*ndarray.Array, error) {
	switch img.DType() {
	case ndarray.Float32:
		return img.Clone(), nil
	case ndarray.Uint8:
		src, err := ndarray.Data[uint8](img)
		if err != nil {
			return nil, err
		}
		dst := make([]float32, len(src))
		for i, v := range src {
			dst[i] = float32(v) / 255
		}
		return ndarray.From(dst, img.Shape()...)
	default:
		return nil, fmt.Errorf("%w: the img type should be float32 or uint8, but got %v", ErrUnsupportedDType, img.DType())
	}
}

// FromUnitFloat converts img, whose values are on the [0, 255] scale, to
// dst. For uint8 the values are rounded half to even and saturated to
// [0, 255]; for float32 they are divided by 255. Any input dtype is read as
// float64.
func FromUnitFloat(img *ndarray.Array, dst ndarray.DType) (*ndarray.Array, error) {
	src := img.Float64s()
	switch dst {
	case ndarray.Uint8:
		return ndarray.From(quantize(src, 1), img.Shape()...)
	case ndarray.Float32:
		out := make([]float32, len(src))
		for i, v := range src {
			out[i] = float32(v / 255)
		}
		return ndarray.From(out, img.Shape()...)
	default:
		return nil, fmt.Errorf("%w: the dst_type should be float32 or uint8, but got %v", ErrUnsupportedDType, dst)
	}
}

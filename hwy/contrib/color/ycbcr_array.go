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

	"gonum.org/v1/gonum/mat"

	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
)

// RGBToYCbCr converts a channel-last (..., 3) RGB array to BT.601 YCbCr.
//
// img must be uint8 in [0, 255] or float32 in [0, 1]; the result has the
// same dtype and range. With yOnly the result has shape (..., 1) and holds
// only Y.
func RGBToYCbCr(img *ndarray.Array, yOnly bool) (*ndarray.Array, error) {
	if yOnly {
		return lumaArray(img, rgbToY)
	}
	return forwardArray(img, rgbToYCbCr)
}

// BGRToYCbCr is RGBToYCbCr for (..., 3) arrays stored in BGR order.
func BGRToYCbCr(img *ndarray.Array, yOnly bool) (*ndarray.Array, error) {
	if yOnly {
		return lumaArray(img, bgrToY)
	}
	return forwardArray(img, bgrToYCbCr)
}

// YCbCrToRGB converts a (..., 3) BT.601 YCbCr array back to RGB. Results
// outside the valid range are saturated for uint8 and left as is for float32.
func YCbCrToRGB(img *ndarray.Array) (*ndarray.Array, error) {
	return inverseArray(img, ycbcrToRGB, rgbBias)
}

// YCbCrToBGR is YCbCrToRGB with the output channels in BGR order.
func YCbCrToBGR(img *ndarray.Array) (*ndarray.Array, error) {
	return inverseArray(img, ycbcrToBGR, bgrBias)
}

// pixels validates img and returns its samples on the [0, 1] scale
// multiplied by scale, as the rows of an (N, 3) matrix. The matrix is nil
// when img is empty.
func pixels(img *ndarray.Array, scale float32) (*mat.Dense, error) {
	unit, err := ToUnitFloat(img)
	if err != nil {
		return nil, err
	}
	if img.Rank() == 0 || img.Channels() != 3 {
		return nil, fmt.Errorf("%w: input size must have a shape of (..., 3). Got %v", ErrShape, img.Shape())
	}
	src, err := ndarray.Data[float32](unit)
	if err != nil {
		return nil, err
	}
	if len(src) == 0 {
		return nil, nil
	}
	data := make([]float64, len(src))
	for i, v := range src {
		data[i] = float64(v * scale)
	}
	return mat.NewDense(len(src)/3, 3, data), nil
}

// restore wraps values on the [0, 255] scale as an array of the given shape
// and converts it back to dtype.
func restore(values []float64, shape []int, dtype ndarray.DType) (*ndarray.Array, error) {
	scaled, err := ndarray.From(values, shape...)
	if err != nil {
		return nil, err
	}
	return FromUnitFloat(scaled, dtype)
}

func forwardArray(img *ndarray.Array, m *mat.Dense) (*ndarray.Array, error) {
	px, err := pixels(img, 1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, img.Len())
	if px != nil {
		rows, _ := px.Dims()
		mat.NewDense(rows, 3, out).Mul(px, m)
		for i := range out {
			out[i] += ycbcrOffsets[i%3]
		}
	}
	return restore(out, img.Shape(), img.DType())
}

func lumaArray(img *ndarray.Array, w *mat.VecDense) (*ndarray.Array, error) {
	px, err := pixels(img, 1)
	if err != nil {
		return nil, err
	}
	shape := img.Shape()
	shape[len(shape)-1] = 1
	out := make([]float64, img.Len()/3)
	if px != nil {
		mat.NewVecDense(len(out), out).MulVec(px, w)
		for i := range out {
			out[i] += YOffset
		}
	}
	return restore(out, shape, img.DType())
}

func inverseArray(img *ndarray.Array, m *mat.Dense, bias [3]float64) (*ndarray.Array, error) {
	px, err := pixels(img, 255)
	if err != nil {
		return nil, err
	}
	out := make([]float64, img.Len())
	if px != nil {
		rows, _ := px.Dims()
		mat.NewDense(rows, 3, out).Mul(px, m)
		for i := range out {
			out[i] = out[i]*255 + bias[i%3]
		}
	}
	return restore(out, img.Shape(), img.DType())
}

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

package ndarray

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// DecodePNG decodes a PNG into an (H, W, 3) uint8 RGB array.
// Samples are taken unpremultiplied and alpha is dropped, so translucent
// pixels keep their color. 16-bit samples are reduced to their high byte.
func DecodePNG(r io.Reader) (*Array, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	data := make([]uint8, height*width*3)
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 3
			data[i] = c.R
			data[i+1] = c.G
			data[i+2] = c.B
		}
	}
	return From(data, height, width, 3)
}

// EncodePNG encodes an (H, W, 1) or (H, W, 3) uint8 array as PNG.
func EncodePNG(w io.Writer, a *Array) error {
	data, err := Data[uint8](a)
	if err != nil {
		return err
	}
	if a.Rank() != 3 || (a.Channels() != 1 && a.Channels() != 3) {
		return fmt.Errorf("%w: png needs (H, W, 1) or (H, W, 3), got %v", ErrShape, a.shape)
	}
	height, width, channels := a.shape[0], a.shape[1], a.shape[2]
	rect := image.Rect(0, 0, width, height)

	if channels == 1 {
		img := image.NewGray(rect)
		for y := range height {
			copy(img.Pix[y*img.Stride:y*img.Stride+width], data[y*width:(y+1)*width])
		}
		return png.Encode(w, img)
	}

	img := image.NewRGBA(rect)
	for y := range height {
		for x := range width {
			src := (y*width + x) * 3
			dst := y*img.Stride + x*4
			img.Pix[dst] = data[src]
			img.Pix[dst+1] = data[src+1]
			img.Pix[dst+2] = data[src+2]
			img.Pix[dst+3] = 255
		}
	}
	return png.Encode(w, img)
}

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
	"strings"

	"github.com/samber/lo"

	"github.com/trainner-go/chroma/hwy"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
)

// PixelFormat names the representation a model consumes and produces.
type PixelFormat string

const (
	// PixelFormatRGB is plain RGB, converted as the identity.
	PixelFormatRGB PixelFormat = "rgb"

	// PixelFormatGray is single-channel gray. Conversions are not implemented.
	PixelFormatGray PixelFormat = "gray"

	// PixelFormatYUV444 is full-resolution BT.601 YCbCr.
	PixelFormatYUV444 PixelFormat = "yuv444"

	// PixelFormatY is the luma channel only. Converting back to RGB takes the
	// chroma from a reference image.
	PixelFormatY PixelFormat = "y"

	// PixelFormatUV is the two chroma channels only. Converting back to RGB
	// takes the luma from a reference image. RGB to uv is not implemented.
	PixelFormatUV PixelFormat = "uv"
)

var pixelFormats = []PixelFormat{PixelFormatRGB, PixelFormatGray, PixelFormatYUV444, PixelFormatY, PixelFormatUV}

// PixelFormats returns every known pixel format.
func PixelFormats() []PixelFormat {
	return slices.Clone(pixelFormats)
}

// PixelFormatNames returns the names of every known pixel format.
func PixelFormatNames() []string {
	return lo.Map(pixelFormats, func(pf PixelFormat, _ int) string {
		return string(pf)
	})
}

// ParsePixelFormat parses a case-insensitive pixel format name.
func ParsePixelFormat(s string) (PixelFormat, error) {
	pf := PixelFormat(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(pixelFormats, pf) {
		return "", fmt.Errorf("%w: pixel format %q, want one of %s", ErrNotImplemented, s, strings.Join(PixelFormatNames(), ", "))
	}
	return pf, nil
}

// String returns the pixel format name.
func (pf PixelFormat) String() string {
	return string(pf)
}

// Channels returns the number of channels of an image in this format, or 0
// for an unknown format.
func (pf PixelFormat) Channels() int {
	switch pf {
	case PixelFormatRGB, PixelFormatYUV444:
		return 3
	case PixelFormatGray, PixelFormatY:
		return 1
	case PixelFormatUV:
		return 2
	default:
		return 0
	}
}

// RequiresReference reports whether converting this format back to RGB needs
// the reference RGB image.
func (pf PixelFormat) RequiresReference() bool {
	return pf == PixelFormatY || pf == PixelFormatUV
}

// RGBToPixelFormat converts a (*, 3, H, W) RGB batch in [0, 1] to pf. The
// result never aliases img.
//
//	rgb    -> copy of img
//	yuv444 -> RGBToYCbCrTensor(img, false)
//	y      -> the Y channel of RGBToYCbCrTensor, shape (*, 1, H, W)
//
// gray and uv fail with ErrNotImplemented, as does any unknown format.
func RGBToPixelFormat[T hwy.Floats](img *tensor.Tensor[T], pf PixelFormat) (*tensor.Tensor[T], error) {
	switch pf {
	case PixelFormatRGB:
		return img.Clone(), nil
	case PixelFormatYUV444:
		return RGBToYCbCrTensor(img, false)
	case PixelFormatY:
		return RGBToYCbCrTensor(img, true)
	case PixelFormatGray, PixelFormatUV:
		return nil, fmt.Errorf("%w: rgb to %s", ErrNotImplemented, pf)
	default:
		return nil, fmt.Errorf("%w: pixel format %q", ErrNotImplemented, string(pf))
	}
}

// PixelFormatToRGB converts a batch in format pf back to RGB.
//
// For y and uv, ref is the (*, 3, H, W) RGB image the batch was derived
// from. Its YCbCr conversion supplies the missing channels: img replaces Y
// for y and Cb, Cr for uv. ref is never modified and may be nil for the
// other formats.
func PixelFormatToRGB[T hwy.Floats](img, ref *tensor.Tensor[T], pf PixelFormat) (*tensor.Tensor[T], error) {
	switch pf {
	case PixelFormatRGB:
		return img.Clone(), nil
	case PixelFormatYUV444:
		return YCbCrToRGBTensor(img)
	case PixelFormatY, PixelFormatUV:
		return spliceReference(img, ref, pf)
	case PixelFormatGray:
		return nil, fmt.Errorf("%w: %s to rgb", ErrNotImplemented, pf)
	default:
		return nil, fmt.Errorf("%w: pixel format %q", ErrNotImplemented, string(pf))
	}
}

// spliceReference replaces the channels of ref's YCbCr that pf carries with
// img and converts the result to RGB.
func spliceReference[T hwy.Floats](img, ref *tensor.Tensor[T], pf PixelFormat) (*tensor.Tensor[T], error) {
	start, kind := 0, "luma"
	if pf == PixelFormatUV {
		start, kind = 1, "chroma"
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: gt is required for %s pixel format", ErrReferenceRequired, kind)
	}
	if _, _, _, err := imageDims(img, fmt.Sprintf("(*, %d, H, W)", pf.Channels()), pf.Channels()); err != nil {
		return nil, err
	}

	ycc, err := RGBToYCbCrTensor(ref, false)
	if err != nil {
		return nil, err
	}
	if err := ycc.SetChannels(start, img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}
	return YCbCrToRGBTensor(ycc)
}

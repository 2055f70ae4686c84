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

// Package color converts images between RGB, BGR, YCbCr, linear RGB, XYZ,
// CIELAB and CIE L* luma for image-restoration training.
//
// Two backends implement the same math on different buffers:
//
//   - Host arrays (ndarray.Array, channel-last, uint8 in [0, 255] or float32
//     in [0, 1]): RGBToYCbCr, BGRToYCbCr, YCbCrToRGB, YCbCrToBGR. Results
//     keep the input dtype and range.
//   - Batched tensors (tensor.Tensor, (N, C, H, W), float in [0, 1]):
//     RGBToYCbCrTensor, YCbCrToRGBTensor, RGBToLuma, RGBToLinearRGB,
//     RGBToXYZ, LinearRGBToLabNorm and the pixel-format dispatchers
//     RGBToPixelFormat and PixelFormatToRGB.
//
// YCbCr follows ITU-R BT.601 with the Matlab rgb2ycbcr/ycbcr2rgb constants
// (studio range, Y in [16, 235]). This is not the full-range JPEG variant
// implemented by OpenCV's cvtColor.
//
// # Usage Example
//
//	batch := tensor.New[float32](16, 3, 128, 128)
//	y, err := color.RGBToPixelFormat(batch, color.PixelFormatY)
//	// ... the network restores y ...
//	rgb, err := color.PixelFormatToRGB(y, batch, color.PixelFormatY)
//
// # Errors
//
// Failures wrap one of ErrUnsupportedDType, ErrShape, ErrReferenceRequired or
// ErrNotImplemented and can be tested with errors.Is.
package color

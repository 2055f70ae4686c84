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

// Package contrib groups the image packages built on the hwy lane core.
//
// # Subpackages
//
//   - color: RGB, BGR, YCbCr, luma, linear RGB, XYZ and Lab conversions
//   - tensor: batched channel-first float tensors
//   - ndarray: channel-last host arrays with a runtime dtype, .npy and PNG I/O
//   - workerpool: persistent worker pool for the Parallel* conversions
//
// # Example
//
//	img, _ := ndarray.Load("photo.npy")      // (H, W, 3) uint8
//	ycc, _ := color.RGBToYCbCr(img, false)   // (H, W, 3) uint8
//
//	batch, _ := color.ArrayToTensor[float32](img)
//	luma, _ := color.RGBToLuma(batch)        // (1, H, W)
package contrib

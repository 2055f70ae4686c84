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

// Command colorconv applies the color conversions of the chroma library to
// .npy and .png files.
//
// Usage:
//
//	colorconv ycbcr [--bgr] [--inverse] [--y-only] FILES...
//	colorconv format --format y [--inverse --ref REF.npy] FILES...
//	colorconv luma FILES...
//	colorconv lab FILES...
//	colorconv info
//
// Results are written as .npy files next to each input, or in --out-dir,
// named after the input and the operation, e.g. photo_ycbcr.npy.
//
// Every persistent flag can also be set with a COLORCONV_ environment
// variable (COLORCONV_OUT_DIR, COLORCONV_WORKERS, ...) or in the file given
// with --config.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trainner-go/chroma/hwy/contrib/color"
	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
)

// loadArray reads a .npy file as is, or decodes a .png into (H, W, 3) uint8.
func loadArray(path string) (*ndarray.Array, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".npy":
		return ndarray.Load(path)
	case ".png":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ndarray.DecodePNG(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q, want .npy or .png", filepath.Ext(path))
	}
}

// loadTensor reads a (*, C, H, W) float .npy file as is. A .png is
// normalized to [0, 1] and laid out as (1, 3, H, W).
func loadTensor(path string) (*tensor.Tensor[float32], error) {
	if strings.ToLower(filepath.Ext(path)) == ".npy" {
		return tensor.Load[float32](path)
	}
	a, err := loadArray(path)
	if err != nil {
		return nil, err
	}
	shape := a.Shape()
	batched, err := a.Reshape(append([]int{1}, shape...)...)
	if err != nil {
		return nil, err
	}
	return color.ArrayToTensor[float32](batched)
}

// outputPath names the result of op applied to the input file at path.
func outputPath(path, outDir, op string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(dir, base+"_"+op+".npy")
}

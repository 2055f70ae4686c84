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
	"github.com/spf13/cobra"

	"github.com/trainner-go/chroma/hwy/contrib/color"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
)

// tensorOp converts one batch.
type tensorOp func(*rootEnv, *tensor.Tensor[float32]) (*tensor.Tensor[float32], error)

// getTensorCmd returns a command applying op to every input file.
func getTensorCmd(root *rootEnv, name, short string, op tensorOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILES...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.forEachFile(cmd.Context(), args, func(path string) error {
				img, err := loadTensor(path)
				if err != nil {
					return err
				}
				out, err := op(root, img)
				if err != nil {
					return err
				}
				dst := outputPath(path, root.outDir, name)
				root.log.Infof("%s %v -> %s %v", path, img.Shape(), dst, out.Shape())
				return out.Save(dst)
			})
		},
	}
}

// getLumaCmd returns the definition of the luma command.
func getLumaCmd(root *rootEnv) *cobra.Command {
	return getTensorCmd(root, "luma", "Compute CIE L*/100 of sRGB or gray batches",
		func(e *rootEnv, img *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
			return color.ParallelRGBToLuma(e.pool, img)
		})
}

// getLabCmd returns the definition of the lab command.
func getLabCmd(root *rootEnv) *cobra.Command {
	return getTensorCmd(root, "lab", "Convert sRGB batches to normalized CIELAB",
		func(e *rootEnv, img *tensor.Tensor[float32]) (*tensor.Tensor[float32], error) {
			lin, err := color.ParallelRGBToLinearRGB(e.pool, img)
			if err != nil {
				return nil, err
			}
			return color.ParallelLinearRGBToLabNorm(e.pool, lin)
		})
}

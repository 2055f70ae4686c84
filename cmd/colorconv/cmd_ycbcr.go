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
	"errors"

	"github.com/spf13/cobra"

	"github.com/trainner-go/chroma/hwy/contrib/color"
	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
)

// ycbcrEnv provides the environment for the ycbcr command.
type ycbcrEnv struct {
	*rootEnv

	bgr     bool
	inverse bool
	yOnly   bool
}

// getYCbCrCmd returns the definition of the ycbcr command.
func getYCbCrCmd(root *rootEnv) *cobra.Command {
	env := &ycbcrEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "ycbcr FILES...",
		Short: "Convert channel-last RGB or BGR images to BT.601 YCbCr and back",
		Long: `
Converts (..., 3) uint8 or float32 arrays, as stored by NumPy or decoded from
PNG, between RGB (or BGR) and BT.601 YCbCr. Results keep the input dtype.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: env.runYCbCrCmd,
	}

	cmd.Flags().BoolVar(&env.bgr, "bgr", false, "Inputs (or outputs with --inverse) are in BGR order")
	cmd.Flags().BoolVar(&env.inverse, "inverse", false, "Convert YCbCr back to RGB/BGR")
	cmd.Flags().BoolVar(&env.yOnly, "y-only", false, "Only output the Y channel")
	return cmd
}

func (y *ycbcrEnv) runYCbCrCmd(cmd *cobra.Command, args []string) error {
	if y.inverse && y.yOnly {
		return errors.New("--y-only cannot be combined with --inverse")
	}
	return y.forEachFile(cmd.Context(), args, func(path string) error {
		img, err := loadArray(path)
		if err != nil {
			return err
		}
		out, op, err := y.convert(img)
		if err != nil {
			return err
		}
		dst := outputPath(path, y.outDir, op)
		y.log.Infof("%s %v -> %s %v", path, img, dst, out)
		return ndarray.Save(dst, out)
	})
}

// convert applies the configured conversion and returns the operation name.
func (y *ycbcrEnv) convert(img *ndarray.Array) (*ndarray.Array, string, error) {
	switch {
	case y.inverse && y.bgr:
		out, err := color.YCbCrToBGR(img)
		return out, "bgr", err
	case y.inverse:
		out, err := color.YCbCrToRGB(img)
		return out, "rgb", err
	case y.bgr:
		out, err := color.BGRToYCbCr(img, y.yOnly)
		return out, y.forwardName(), err
	default:
		out, err := color.RGBToYCbCr(img, y.yOnly)
		return out, y.forwardName(), err
	}
}

func (y *ycbcrEnv) forwardName() string {
	if y.yOnly {
		return "y"
	}
	return "ycbcr"
}

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
	"strings"

	"github.com/spf13/cobra"

	"github.com/trainner-go/chroma/hwy/contrib/color"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
)

// formatEnv provides the environment for the format command.
type formatEnv struct {
	*rootEnv

	format  string
	inverse bool
	ref     string
}

// getFormatCmd returns the definition of the format command.
func getFormatCmd(root *rootEnv) *cobra.Command {
	env := &formatEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "format FILES...",
		Short: "Convert (N, 3, H, W) RGB batches to a model pixel format and back",
		Long: fmt.Sprintf(`
Converts channel-first float batches between RGB and a pixel format (%s).
Converting y or uv back to RGB takes the missing channels from --ref.
`, strings.Join(color.PixelFormatNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: env.runFormatCmd,
	}

	cmd.Flags().StringVar(&env.format, "format", "", "Pixel format")
	cmd.Flags().BoolVar(&env.inverse, "inverse", false, "Convert from the pixel format back to RGB")
	cmd.Flags().StringVar(&env.ref, "ref", "", "Reference RGB image for --inverse with y or uv")
	must(cmd.MarkFlagRequired("format"))
	return cmd
}

func (f *formatEnv) runFormatCmd(cmd *cobra.Command, args []string) error {
	pf, err := color.ParsePixelFormat(f.format)
	if err != nil {
		return err
	}

	var ref *tensor.Tensor[float32]
	if f.inverse && f.ref != "" {
		if ref, err = loadTensor(f.ref); err != nil {
			return err
		}
	}

	return f.forEachFile(cmd.Context(), args, func(path string) error {
		img, err := loadTensor(path)
		if err != nil {
			return err
		}
		var out *tensor.Tensor[float32]
		op := pf.String()
		if f.inverse {
			out, err = color.PixelFormatToRGB(img, ref, pf)
			op = "rgb"
		} else {
			out, err = color.RGBToPixelFormat(img, pf)
		}
		if err != nil {
			return err
		}
		dst := outputPath(path, f.outDir, op)
		f.log.Infof("%s %v -> %s %v", path, img.Shape(), dst, out.Shape())
		return out.Save(dst)
	})
}

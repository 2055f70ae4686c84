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

	"github.com/trainner-go/chroma/hwy"
	"github.com/trainner-go/chroma/hwy/contrib/color"
)

// getInfoCmd returns the definition of the info command.
func getInfoCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected vector width and the supported pixel formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dispatch:      %s (%d bytes)\n", hwy.CurrentLevel(), hwy.CurrentWidth())
			fmt.Fprintf(w, "lanes:         float32=%d float64=%d\n", hwy.MaxLanes[float32](), hwy.MaxLanes[float64]())
			fmt.Fprintf(w, "HWY_NO_SIMD:   %v\n", hwy.NoSimdEnv())
			fmt.Fprintf(w, "workers:       %d\n", root.workers)
			fmt.Fprintf(w, "pixel formats: %s\n", strings.Join(color.PixelFormatNames(), ", "))
			return nil
		},
	}
}

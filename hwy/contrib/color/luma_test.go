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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainner-go/chroma/hwy/contrib/tensor"
	"github.com/trainner-go/chroma/hwy/contrib/workerpool"
)

func TestRGBToLumaShape(t *testing.T) {
	out, err := RGBToLuma(randomTensor(t, 31, 2, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 4, 5}, out.Shape())

	out, err = RGBToLuma(randomTensor(t, 32, 2, 1, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 4, 5}, out.Shape())

	out, err = RGBToLuma(randomTensor(t, 33, 3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 5}, out.Shape())
}

func TestRGBToLumaKnownValues(t *testing.T) {
	for _, tc := range []struct {
		name  string
		value float32
		want  float64
		delta float64
	}{
		{"black", 0, 0, 1e-6},
		{"white", 1, 1, 1e-4},
		{"mid gray", 0.5, 0.5338896, 1e-4},
		// Below 216/24389 luminance L* is linear: Y*24389/27.
		{"near black", 0.001, 0.000699146, 1e-6},
	} {
		img := mustTensor(t, []float32{tc.value, tc.value, tc.value}, 1, 3, 1, 1)
		out, err := RGBToLuma(img)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, out.Data()[0], tc.delta, tc.name)

		gray := mustTensor(t, []float32{tc.value}, 1, 1, 1, 1)
		out, err = RGBToLuma(gray)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, out.Data()[0], tc.delta, "%s (gray)", tc.name)
	}
}

func TestRGBToLumaRange(t *testing.T) {
	img := mustTensor(t, []float32{-0.5, 2, 0.3, 1.5, -3, 0.9, 0.2, 0.2, 7}, 1, 3, 1, 3)
	out, err := RGBToLuma(img)
	require.NoError(t, err)
	for i, v := range out.Data() {
		assert.GreaterOrEqual(t, v, float32(0), "pixel %d", i)
		assert.LessOrEqual(t, v, float32(1), "pixel %d", i)
	}
}

func TestRGBToLumaGreenIsBrighterThanBlue(t *testing.T) {
	img := mustTensor(t, []float32{0, 0, 1, 0, 0, 1}, 1, 3, 1, 2)
	out, err := RGBToLuma(img)
	require.NoError(t, err)
	green, blue := out.Data()[0], out.Data()[1]
	assert.Greater(t, green, blue)
}

func TestRGBToLumaErrors(t *testing.T) {
	_, err := RGBToLuma(tensor.New[float32](1, 2, 4, 4))
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "(*, 3, H, W) or (*, 1, H, W)")

	_, err = RGBToLuma(tensor.New[float32](4, 4))
	assert.ErrorIs(t, err, ErrShape)
}

func TestParallelRGBToLumaMatchesSequential(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	img := randomTensor(t, 34, 3, 3, 100, 120)
	want, err := RGBToLuma(img)
	require.NoError(t, err)
	got, err := ParallelRGBToLuma(pool, img)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}

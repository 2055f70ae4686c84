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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainner-go/chroma/hwy/contrib/tensor"
	"github.com/trainner-go/chroma/hwy/contrib/workerpool"
)

func TestRGBToLinearRGB(t *testing.T) {
	img := mustTensor(t, []float32{0, 0.04045, 0.5, 1, -0.1, 2}, 3, 1, 2)
	out, err := RGBToLinearRGB(img)
	require.NoError(t, err)

	want := []float32{0, 0.04045 / 12.92, 0.21404114, 1, -0.1 / 12.92, 4.9538}
	if diff := cmp.Diff(want, out.Data(), cmpopts.EquateApprox(1e-4, 1e-6)); diff != "" {
		t.Errorf("RGBToLinearRGB mismatch (-want +got):\n%s", diff)
	}
}

func TestRGBToXYZWhite(t *testing.T) {
	img := mustTensor(t, []float32{1, 1, 1}, 1, 3, 1, 1)
	out, err := RGBToXYZ(img)
	require.NoError(t, err)

	want := []float32{0.950456, 1.0, 1.088754}
	if diff := cmp.Diff(want, out.Data(), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("RGBToXYZ(white) mismatch (-want +got):\n%s", diff)
	}
}

func TestLinearRGBToLabNormWhiteAndBlack(t *testing.T) {
	img := mustTensor(t, []float32{1, 0, 1, 0, 1, 0}, 1, 3, 1, 2)
	lin, err := RGBToLinearRGB(img)
	require.NoError(t, err)
	lab, err := LinearRGBToLabNorm(lin)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 1, 2}, lab.Shape())

	neutral := 128.0 / 255
	white := []float32{lab.At(0, 0, 0, 0), lab.At(0, 1, 0, 0), lab.At(0, 2, 0, 0)}
	assert.InDeltaSlice(t, []float64{1, neutral, neutral}, white, 1e-3)

	black := []float32{lab.At(0, 0, 0, 1), lab.At(0, 1, 0, 1), lab.At(0, 2, 0, 1)}
	assert.InDeltaSlice(t, []float64{0, neutral, neutral}, black, 1e-6)
}

func TestLinearRGBToLabNormPrimaries(t *testing.T) {
	// Red has positive a*, blue has negative b*.
	img := mustTensor(t, []float32{1, 0, 0, 0, 0, 1}, 1, 3, 1, 2)
	lab, err := LinearRGBToLabNorm(img)
	require.NoError(t, err)

	neutral := float32(128.0 / 255)
	assert.Greater(t, lab.At(0, 1, 0, 0), neutral, "red a")
	assert.Less(t, lab.At(0, 2, 0, 1), neutral, "blue b")
}

func TestLabShapeErrors(t *testing.T) {
	bad := tensor.New[float32](1, 1, 2, 2)

	_, err := RGBToLinearRGB(bad)
	assert.ErrorIs(t, err, ErrShape)
	_, err = RGBToXYZ(bad)
	assert.ErrorIs(t, err, ErrShape)
	_, err = LinearRGBToLabNorm(bad)
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "Got [1 1 2 2]")
}

func TestLabRejectsTwoChannels(t *testing.T) {
	two := tensor.New[float32](1, 2, 4, 4)

	_, err := RGBToLinearRGB(two)
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "input size must have a shape of (*, 3, H, W). Got [1 2 4 4]")
	_, err = RGBToXYZ(two)
	assert.ErrorIs(t, err, ErrShape)
	_, err = LinearRGBToLabNorm(two)
	assert.ErrorIs(t, err, ErrShape)
}

func TestParallelLinearRGBAndXYZMatchSequential(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	// 3 images of 111*107 pixels: the XYZ ranges cross image boundaries.
	img := randomTensor(t, 17, 3, 3, 111, 107)

	wantLin, err := RGBToLinearRGB(img)
	require.NoError(t, err)
	gotLin, err := ParallelRGBToLinearRGB(pool, img)
	require.NoError(t, err)
	assert.Equal(t, wantLin.Data(), gotLin.Data())

	wantXYZ, err := RGBToXYZ(wantLin)
	require.NoError(t, err)
	gotXYZ, err := ParallelRGBToXYZ(pool, gotLin)
	require.NoError(t, err)
	assert.Equal(t, wantXYZ.Shape(), gotXYZ.Shape())
	assert.Equal(t, wantXYZ.Data(), gotXYZ.Data())
}

func TestParallelLinearRGBToLabNormMatchesSequential(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	img := randomTensor(t, 41, 2, 3, 150, 130)
	want, err := LinearRGBToLabNorm(img)
	require.NoError(t, err)
	got, err := ParallelLinearRGBToLabNorm(pool, img)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}

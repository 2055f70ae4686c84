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

	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
)

func mustArray[E ndarray.Element](t *testing.T, data []E, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.From(data, shape...)
	require.NoError(t, err)
	return a
}

func arrayData[E ndarray.Element](t *testing.T, a *ndarray.Array) []E {
	t.Helper()
	data, err := ndarray.Data[E](a)
	require.NoError(t, err)
	return data
}

func TestToUnitFloat(t *testing.T) {
	in := mustArray(t, []uint8{0, 51, 255}, 1, 1, 3)
	out, err := ToUnitFloat(in)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float32, out.DType())
	assert.Equal(t, []int{1, 1, 3}, out.Shape())
	assert.Equal(t, []float32{0, 0.2, 1}, arrayData[float32](t, out))

	src := []float32{0.25, 0.5, 0.75}
	out, err = ToUnitFloat(mustArray(t, src, 3))
	require.NoError(t, err)
	got := arrayData[float32](t, out)
	assert.Equal(t, src, got)
	got[0] = 9
	assert.Equal(t, float32(0.25), src[0], "result must not alias the input")

	for _, data := range []any{[]float64{0.5}, []int16{1}, []uint16{1}} {
		var a *ndarray.Array
		switch d := data.(type) {
		case []float64:
			a = mustArray(t, d, 1)
		case []int16:
			a = mustArray(t, d, 1)
		case []uint16:
			a = mustArray(t, d, 1)
		}
		_, err := ToUnitFloat(a)
		assert.ErrorIs(t, err, ErrUnsupportedDType, "dtype %v", a.DType())
	}
}

func TestFromUnitFloat(t *testing.T) {
	in := mustArray(t, []float64{-5, 0, 2.5, 3.5, 254.6, 300}, 6)

	out, err := FromUnitFloat(in, ndarray.Uint8)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 2, 4, 255, 255}, arrayData[uint8](t, out))

	out, err = FromUnitFloat(mustArray(t, []float64{0, 51, 255}, 3), ndarray.Float32)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.2, 1}, arrayData[float32](t, out))

	_, err = FromUnitFloat(in, ndarray.Float64)
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestRGBToYCbCrRed(t *testing.T) {
	red := mustArray(t, []uint8{255, 0, 0}, 1, 1, 3)

	ycc, err := RGBToYCbCr(red, false)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Uint8, ycc.DType())
	assert.Equal(t, []int{1, 1, 3}, ycc.Shape())
	assert.Equal(t, []uint8{81, 90, 240}, arrayData[uint8](t, ycc))

	y, err := RGBToYCbCr(red, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, y.Shape())
	assert.Equal(t, []uint8{81}, arrayData[uint8](t, y))
}

func TestBGRToYCbCrMatchesRGB(t *testing.T) {
	rgb := []uint8{255, 0, 0, 12, 200, 33, 0, 0, 0, 255, 255, 255}
	bgr := make([]uint8, len(rgb))
	for i := 0; i < len(rgb); i += 3 {
		bgr[i], bgr[i+1], bgr[i+2] = rgb[i+2], rgb[i+1], rgb[i]
	}

	for _, yOnly := range []bool{false, true} {
		want, err := RGBToYCbCr(mustArray(t, rgb, 2, 2, 3), yOnly)
		require.NoError(t, err)
		got, err := BGRToYCbCr(mustArray(t, bgr, 2, 2, 3), yOnly)
		require.NoError(t, err)
		assert.Equal(t, want.Shape(), got.Shape())
		assert.Equal(t, arrayData[uint8](t, want), arrayData[uint8](t, got), "yOnly=%v", yOnly)
	}
}

func TestYCbCrRangeOfWhiteAndBlack(t *testing.T) {
	img := mustArray(t, []uint8{0, 0, 0, 255, 255, 255}, 1, 2, 3)
	ycc, err := RGBToYCbCr(img, false)
	require.NoError(t, err)
	assert.Equal(t, []uint8{16, 128, 128, 235, 128, 128}, arrayData[uint8](t, ycc))

	back, err := YCbCrToRGB(ycc)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 255, 255, 255}, arrayData[uint8](t, back))
}

func TestYCbCrRoundTripUint8(t *testing.T) {
	var data []uint8
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				data = append(data, uint8(r), uint8(g), uint8(b))
			}
		}
	}
	img := mustArray(t, data, len(data)/3, 3)

	ycc, err := RGBToYCbCr(img, false)
	require.NoError(t, err)
	back, err := YCbCrToRGB(ycc)
	require.NoError(t, err)

	// Two uint8 roundings and the truncated inverse coefficients leave some
	// samples, such as RGB (0, 1, 20), off by 2.
	got := arrayData[uint8](t, back)
	for i, want := range data {
		assert.InDelta(t, float64(want), float64(got[i]), 2, "sample %d", i)
	}
}

func TestYCbCrRoundTripFloat32(t *testing.T) {
	data := []float32{0, 0, 0, 1, 1, 1, 0.2, 0.4, 0.6, 0.9, 0.1, 0.5, 1, 0, 0}
	img := mustArray(t, data, 5, 3)

	for name, pair := range map[string][2]func(*ndarray.Array) (*ndarray.Array, error){
		"rgb": {func(a *ndarray.Array) (*ndarray.Array, error) { return RGBToYCbCr(a, false) }, YCbCrToRGB},
		"bgr": {func(a *ndarray.Array) (*ndarray.Array, error) { return BGRToYCbCr(a, false) }, YCbCrToBGR},
	} {
		ycc, err := pair[0](img)
		require.NoError(t, err, name)
		assert.Equal(t, ndarray.Float32, ycc.DType())
		back, err := pair[1](ycc)
		require.NoError(t, err, name)
		assert.InDeltaSlice(t, data, arrayData[float32](t, back), 1e-3, name)
	}
}

func TestYCbCrArrayErrors(t *testing.T) {
	_, err := RGBToYCbCr(mustArray(t, []float64{0, 0, 0}, 1, 3), false)
	assert.ErrorIs(t, err, ErrUnsupportedDType)
	assert.ErrorContains(t, err, "float64")

	_, err = RGBToYCbCr(mustArray(t, []uint8{0, 0, 0, 0}, 1, 4), false)
	assert.ErrorIs(t, err, ErrShape)

	_, err = YCbCrToRGB(mustArray(t, []uint8{0, 0}, 1, 2))
	assert.ErrorIs(t, err, ErrShape)

	_, err = BGRToYCbCr(mustArray(t, []int32{0, 0, 0}, 3), true)
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestYCbCrArrayEmpty(t *testing.T) {
	img := mustArray(t, []uint8{}, 0, 4, 3)

	ycc, err := RGBToYCbCr(img, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 3}, ycc.Shape())

	y, err := RGBToYCbCr(img, true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 1}, y.Shape())

	back, err := YCbCrToBGR(img)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Len())
}

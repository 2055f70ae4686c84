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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainner-go/chroma/hwy/contrib/ndarray"
	"github.com/trainner-go/chroma/hwy/contrib/tensor"
)

func TestArrayToTensor(t *testing.T) {
	// 1x2 image: red, blue.
	a := mustArray(t, []uint8{255, 0, 0, 0, 0, 255}, 1, 2, 3)
	got, err := ArrayToTensor[float32](a)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, got.Shape())
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1}, got.Data())

	batch := mustArray(t, make([]float32, 2*4*5*3), 2, 4, 5, 3)
	bt, err := ArrayToTensor[float64](batch)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, bt.Shape())
}

func TestArrayTensorRoundTrip(t *testing.T) {
	data := make([]uint8, 2*3*4*3)
	for i := range data {
		data[i] = uint8(i * 7)
	}
	a := mustArray(t, data, 2, 3, 4, 3)

	ten, err := ArrayToTensor[float32](a)
	require.NoError(t, err)
	back, err := TensorToArray(ten, ndarray.Uint8)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), back.Shape())
	assert.Equal(t, data, arrayData[uint8](t, back))

	f, err := TensorToArray(ten, ndarray.Float32)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float32, f.DType())
	assert.InDelta(t, float64(data[5])/255, arrayData[float32](t, f)[5], 1e-6)
}

// viaTensor runs RGBToYCbCrTensor on an (H, W, 3) array and converts the
// result back to the array's dtype.
func viaTensor(t *testing.T, a *ndarray.Array, yOnly bool) *ndarray.Array {
	t.Helper()
	ten, err := ArrayToTensor[float32](a)
	require.NoError(t, err)
	ycc, err := RGBToYCbCrTensor(ten, yOnly)
	require.NoError(t, err)
	out, err := TensorToArray(ycc, a.DType())
	require.NoError(t, err)
	return out
}

func TestYCbCrArrayTensorParityUint8(t *testing.T) {
	a := mustArray(t, []uint8{255, 0, 0, 12, 200, 33, 7, 99, 250, 128, 128, 128}, 2, 2, 3)
	wants := map[bool][]uint8{
		false: {81, 90, 240, 123, 83, 57, 92, 208, 77, 126, 128, 128},
		true:  {81, 123, 92, 126},
	}
	for _, yOnly := range []bool{false, true} {
		t.Run(fmt.Sprintf("yOnly=%v", yOnly), func(t *testing.T) {
			fromArray, err := RGBToYCbCr(a, yOnly)
			require.NoError(t, err)
			fromTensor := viaTensor(t, a, yOnly)

			assert.Equal(t, fromArray.Shape(), fromTensor.Shape())
			assert.Equal(t, wants[yOnly], arrayData[uint8](t, fromArray))
			assert.Equal(t, wants[yOnly], arrayData[uint8](t, fromTensor))
		})
	}
}

func TestYCbCrArrayTensorParityFloat32(t *testing.T) {
	const height, width = 9, 7
	data := make([]float32, height*width*3)
	for i := range data {
		data[i] = float32((i*37)%101) / 100
	}
	a := mustArray(t, data, height, width, 3)

	for _, yOnly := range []bool{false, true} {
		t.Run(fmt.Sprintf("yOnly=%v", yOnly), func(t *testing.T) {
			fromArray, err := RGBToYCbCr(a, yOnly)
			require.NoError(t, err)
			fromTensor := viaTensor(t, a, yOnly)

			assert.Equal(t, fromArray.Shape(), fromTensor.Shape())
			if diff := cmp.Diff(arrayData[float32](t, fromArray), arrayData[float32](t, fromTensor), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
				t.Errorf("array and tensor results differ (-array +tensor):\n%s", diff)
			}
		})
	}
}

func TestTensorToArraySaturates(t *testing.T) {
	ten := mustTensor(t, []float32{-0.2, 0.5, 1.7}, 3, 1, 1)
	a, err := TensorToArray(ten, ndarray.Uint8)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, a.Shape())
	assert.Equal(t, []uint8{0, 128, 255}, arrayData[uint8](t, a))
}

func TestBridgeErrors(t *testing.T) {
	_, err := ArrayToTensor[float32](mustArray(t, []uint8{1, 2, 3}, 1, 3))
	assert.ErrorIs(t, err, ErrShape)

	_, err = ArrayToTensor[float32](mustArray(t, []float64{1, 2, 3}, 1, 1, 3))
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	_, err = TensorToArray(tensor.New[float32](2, 2), ndarray.Uint8)
	assert.ErrorIs(t, err, ErrShape)

	_, err = TensorToArray(tensor.New[float32](1, 2, 2), ndarray.Int16)
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

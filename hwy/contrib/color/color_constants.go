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

import "gonum.org/v1/gonum/mat"

// BT.601 RGB to YCbCr weights (Matlab rgb2ycbcr). They map RGB in [0, 1] to
// YCbCr in [0, 255] before the offsets are added.
const (
	RToY  = 65.481
	GToY  = 128.553
	BToY  = 24.966
	RToCb = -37.797
	GToCb = -74.203
	BToCb = 112.0
	RToCr = 112.0
	GToCr = -93.786
	BToCr = -18.214

	YOffset      = 16.0
	ChromaOffset = 128.0
)

// BT.601 YCbCr to RGB weights (Matlab ycbcr2rgb) applied to YCbCr in
// [0, 255]. The product is scaled by 255 and the bias added.
const (
	YToRGB = 0.00456621
	CbToG  = -0.00153632
	CbToB  = 0.00791071
	CrToR  = 0.00625893
	CrToG  = -0.00318811

	RBias = -222.921
	GBias = 135.576
	BBias = -276.836
)

// Closed-form YCbCr to RGB coefficients used by the tensor backend.
const (
	YScale      = 1.164
	CrToRFactor = 1.596
	CbToGFactor = 0.392
	CrToGFactor = 0.813
	CbToBFactor = 2.017
)

// sRGB transfer function.
const (
	SRGBThreshold   = 0.04045
	SRGBLinearScale = 12.92
	SRGBOffset      = 0.055
	SRGBScale       = 1.055
	SRGBGamma       = 2.4
)

// Rec. 709 relative luminance weights.
const (
	LuminanceR = 0.2126
	LuminanceG = 0.7152
	LuminanceB = 0.0722
)

// CIE L* constants.
const (
	// LumaFloor keeps the sRGB decode away from zero.
	LumaFloor = 1e-12

	// CIEEpsilon is the luminance below which L* is linear.
	CIEEpsilon = 216.0 / 24389.0

	// CIEKappa is the slope of the linear segment of L*.
	CIEKappa = 24389.0 / 27.0
)

// Linear RGB to CIE XYZ (sRGB primaries, D65).
const (
	RToX    = 0.412453
	GToX    = 0.357580
	BToX    = 0.180423
	RToYXYZ = 0.212671
	GToYXYZ = 0.715160
	BToYXYZ = 0.072169
	RToZ    = 0.019334
	GToZ    = 0.119193
	BToZ    = 0.950227
)

// D65 reference white and the CIELAB companding constants.
const (
	WhiteX = 0.95047
	WhiteY = 1.0
	WhiteZ = 1.08883

	LabThreshold = 0.008856
	LabSlope     = 7.787
	LabOffset    = 4.0 / 29.0
)

// Host matrices. Each is multiplied on the right of an (N, 3) pixel matrix,
// so column j produces output channel j.
var (
	rgbToYCbCr = mat.NewDense(3, 3, []float64{
		RToY, RToCb, RToCr,
		GToY, GToCb, GToCr,
		BToY, BToCb, BToCr,
	})
	bgrToYCbCr = mat.NewDense(3, 3, []float64{
		BToY, BToCb, BToCr,
		GToY, GToCb, GToCr,
		RToY, RToCb, RToCr,
	})
	rgbToY = mat.NewVecDense(3, []float64{RToY, GToY, BToY})
	bgrToY = mat.NewVecDense(3, []float64{BToY, GToY, RToY})

	ycbcrToRGB = mat.NewDense(3, 3, []float64{
		YToRGB, YToRGB, YToRGB,
		0, CbToG, CbToB,
		CrToR, CrToG, 0,
	})
	ycbcrToBGR = mat.NewDense(3, 3, []float64{
		YToRGB, YToRGB, YToRGB,
		CbToB, CbToG, 0,
		0, CrToG, CrToR,
	})

	ycbcrOffsets = [3]float64{YOffset, ChromaOffset, ChromaOffset}
	rgbBias      = [3]float64{RBias, GBias, BBias}
	bgrBias      = [3]float64{BBias, GBias, RBias}
)

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
	"math"

	"github.com/trainner-go/chroma/hwy"
)

// mapPlanes runs kernel over the common length of the in and out planes,
// one vector per plane at a time. kernel returns one vector per out plane.
func mapPlanes[T hwy.Floats](in, out [][]T, kernel func(v []hwy.Vec[T]) []hwy.Vec[T]) {
	if len(in) == 0 || len(out) == 0 {
		return
	}
	size := math.MaxInt
	for _, p := range in {
		size = min(size, len(p))
	}
	for _, p := range out {
		size = min(size, len(p))
	}

	lanes := hwy.MaxLanes[T]()
	vin := make([]hwy.Vec[T], len(in))
	i := 0

	// Process full vectors
	for ; i+lanes <= size; i += lanes {
		for c, p := range in {
			vin[c] = hwy.Load(p[i:])
		}
		for c, v := range kernel(vin) {
			hwy.Store(v, out[c][i:])
		}
	}

	// Handle tail elements via buffer
	if remaining := size - i; remaining > 0 {
		buf := make([]T, lanes)
		for c, p := range in {
			copy(buf, p[i:size])
			clear(buf[remaining:])
			vin[c] = hwy.Load(buf)
		}
		for c, v := range kernel(vin) {
			hwy.Store(v, buf)
			copy(out[c][i:size], buf[:remaining])
		}
	}
}

// dot3 computes r*wr + g*wg + b*wb, accumulating left to right.
func dot3[T hwy.Floats](r, g, b, wr, wg, wb hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MulAdd(b, wb, hwy.MulAdd(g, wg, hwy.Mul(r, wr)))
}

// BaseRGBToYCbCr converts planar RGB in [0, 1] to planar BT.601 YCbCr in
// [0, 1]:
//
//	Y  = (65.481*R + 128.553*G + 24.966*B + 16) / 255
//	Cb = (-37.797*R - 74.203*G + 112.0*B + 128) / 255
//	Cr = (112.0*R - 93.786*G - 18.214*B + 128) / 255
func BaseRGBToYCbCr[T hwy.Floats](r, g, b, y, cb, cr []T) {
	ry, gy, by := hwy.Set(T(RToY)), hwy.Set(T(GToY)), hwy.Set(T(BToY))
	rcb, gcb, bcb := hwy.Set(T(RToCb)), hwy.Set(T(GToCb)), hwy.Set(T(BToCb))
	rcr, gcr, bcr := hwy.Set(T(RToCr)), hwy.Set(T(GToCr)), hwy.Set(T(BToCr))
	yOff := hwy.Set(T(YOffset))
	cOff := hwy.Set(T(ChromaOffset))
	scale := hwy.Set(T(255))

	mapPlanes([][]T{r, g, b}, [][]T{y, cb, cr}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		vy := hwy.Add(dot3(v[0], v[1], v[2], ry, gy, by), yOff)
		vcb := hwy.Add(dot3(v[0], v[1], v[2], rcb, gcb, bcb), cOff)
		vcr := hwy.Add(dot3(v[0], v[1], v[2], rcr, gcr, bcr), cOff)
		return []hwy.Vec[T]{hwy.Div(vy, scale), hwy.Div(vcb, scale), hwy.Div(vcr, scale)}
	})
}

// BaseRGBToY computes only the Y plane of BaseRGBToYCbCr.
func BaseRGBToY[T hwy.Floats](r, g, b, y []T) {
	ry, gy, by := hwy.Set(T(RToY)), hwy.Set(T(GToY)), hwy.Set(T(BToY))
	yOff := hwy.Set(T(YOffset))
	scale := hwy.Set(T(255))

	mapPlanes([][]T{r, g, b}, [][]T{y}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		vy := hwy.Add(dot3(v[0], v[1], v[2], ry, gy, by), yOff)
		return []hwy.Vec[T]{hwy.Div(vy, scale)}
	})
}

// BaseYCbCrToRGB converts planar BT.601 YCbCr in [0, 1] back to planar RGB.
// With Y, Cb and Cr on the [0, 255] scale:
//
//	R = 1.164*(Y-16) + 1.596*(Cr-128)
//	G = 1.164*(Y-16) - 0.392*(Cb-128) - 0.813*(Cr-128)
//	B = 1.164*(Y-16) + 2.017*(Cb-128)
//
// and the result is divided by 255. Values are not clamped.
func BaseYCbCrToRGB[T hwy.Floats](y, cb, cr, r, g, b []T) {
	scale := hwy.Set(T(255))
	yOff := hwy.Set(T(YOffset))
	cOff := hwy.Set(T(ChromaOffset))
	yScale := hwy.Set(T(YScale))
	crR := hwy.Set(T(CrToRFactor))
	cbG := hwy.Set(T(CbToGFactor))
	crG := hwy.Set(T(CrToGFactor))
	cbB := hwy.Set(T(CbToBFactor))

	mapPlanes([][]T{y, cb, cr}, [][]T{r, g, b}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		ys := hwy.Mul(yScale, hwy.Sub(hwy.Mul(v[0], scale), yOff))
		cbs := hwy.Sub(hwy.Mul(v[1], scale), cOff)
		crs := hwy.Sub(hwy.Mul(v[2], scale), cOff)

		vr := hwy.Add(ys, hwy.Mul(crR, crs))
		vg := hwy.Sub(hwy.Sub(ys, hwy.Mul(cbG, cbs)), hwy.Mul(crG, crs))
		vb := hwy.Add(ys, hwy.Mul(cbB, cbs))
		return []hwy.Vec[T]{hwy.Div(vr, scale), hwy.Div(vg, scale), hwy.Div(vb, scale)}
	})
}

// BaseQuantize scales src by scale, rounds half to even and clamps the result
// to [0, 255], the uint8 range.
func BaseQuantize[T hwy.Floats](src, dst []T, scale T) {
	vscale := hwy.Set(scale)
	lo, hi := hwy.Zero[T](), hwy.Set(T(255))

	mapPlanes([][]T{src}, [][]T{dst}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		return []hwy.Vec[T]{hwy.Clamp(hwy.RoundToEven(hwy.Mul(v[0], vscale)), lo, hi)}
	})
}

// quantize returns src*scale as uint8 samples, rounded half to even and
// saturated.
func quantize[T hwy.Floats](src []T, scale T) []uint8 {
	buf := make([]T, len(src))
	BaseQuantize(src, buf, scale)
	out := make([]uint8, len(buf))
	for i, v := range buf {
		out[i] = uint8(v)
	}
	return out
}

// srgbCurve holds the broadcast constants of the sRGB decoding function.
type srgbCurve[T hwy.Floats] struct {
	threshold, linear, offset, scale, gamma hwy.Vec[T]
}

func newSRGBCurve[T hwy.Floats]() srgbCurve[T] {
	return srgbCurve[T]{
		threshold: hwy.Set(T(SRGBThreshold)),
		linear:    hwy.Set(T(SRGBLinearScale)),
		offset:    hwy.Set(T(SRGBOffset)),
		scale:     hwy.Set(T(SRGBScale)),
		gamma:     hwy.Set(T(SRGBGamma)),
	}
}

// decode maps gamma-encoded sRGB to linear light.
func (c srgbCurve[T]) decode(v hwy.Vec[T]) hwy.Vec[T] {
	curve := hwy.Pow(hwy.Div(hwy.Add(v, c.offset), c.scale), c.gamma)
	return hwy.IfThenElse(hwy.GreaterThan(v, c.threshold), curve, hwy.Div(v, c.linear))
}

// lightness holds the constants of the normalized CIE L* function.
type lightness[T hwy.Floats] struct {
	floor, one, zero      hwy.Vec[T]
	epsilon, kappa, third hwy.Vec[T]
	v116, v16, v100       hwy.Vec[T]
	wr, wg, wb            hwy.Vec[T]
}

func newLightness[T hwy.Floats]() lightness[T] {
	return lightness[T]{
		floor:   hwy.Set(T(LumaFloor)),
		one:     hwy.Set(T(1)),
		zero:    hwy.Zero[T](),
		epsilon: hwy.Set(T(CIEEpsilon)),
		kappa:   hwy.Set(T(CIEKappa)),
		third:   hwy.Set(T(1.0 / 3.0)),
		v116:    hwy.Set(T(116)),
		v16:     hwy.Set(T(16)),
		v100:    hwy.Set(T(100)),
		wr:      hwy.Set(T(LuminanceR)),
		wg:      hwy.Set(T(LuminanceG)),
		wb:      hwy.Set(T(LuminanceB)),
	}
}

// clampUnit limits v to [LumaFloor, 1].
func (l lightness[T]) clampUnit(v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Clamp(v, l.floor, l.one)
}

// of maps relative luminance Y to L*/100, clamped to [0, 1].
func (l lightness[T]) of(lum hwy.Vec[T]) hwy.Vec[T] {
	curve := hwy.Sub(hwy.Mul(hwy.Pow(lum, l.third), l.v116), l.v16)
	lstar := hwy.IfThenElse(hwy.LessEqual(lum, l.epsilon), hwy.Mul(lum, l.kappa), curve)
	return hwy.Clamp(hwy.Div(lstar, l.v100), l.zero, l.one)
}

// BaseRGBToLuma computes CIE L*/100 in [0, 1] from planar sRGB. Inputs are
// clamped to [1e-12, 1], decoded to linear light and weighted with the
// Rec. 709 luminance coefficients.
func BaseRGBToLuma[T hwy.Floats](r, g, b, out []T) {
	curve := newSRGBCurve[T]()
	l := newLightness[T]()

	mapPlanes([][]T{r, g, b}, [][]T{out}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		lr := curve.decode(l.clampUnit(v[0]))
		lg := curve.decode(l.clampUnit(v[1]))
		lb := curve.decode(l.clampUnit(v[2]))
		return []hwy.Vec[T]{l.of(dot3(lr, lg, lb, l.wr, l.wg, l.wb))}
	})
}

// BaseGrayToLuma is BaseRGBToLuma for a single gray plane, which is used as
// the luminance directly.
func BaseGrayToLuma[T hwy.Floats](gray, out []T) {
	curve := newSRGBCurve[T]()
	l := newLightness[T]()

	mapPlanes([][]T{gray}, [][]T{out}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		return []hwy.Vec[T]{l.of(curve.decode(l.clampUnit(v[0])))}
	})
}

// BaseSRGBToLinear decodes one sRGB plane to linear light. Inputs are not
// clamped.
func BaseSRGBToLinear[T hwy.Floats](src, dst []T) {
	curve := newSRGBCurve[T]()

	mapPlanes([][]T{src}, [][]T{dst}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		return []hwy.Vec[T]{curve.decode(v[0])}
	})
}

// xyzMatrix holds the broadcast linear RGB to XYZ weights.
type xyzMatrix[T hwy.Floats] struct {
	rx, gx, bx, ry, gy, by, rz, gz, bz hwy.Vec[T]
}

func newXYZMatrix[T hwy.Floats]() xyzMatrix[T] {
	return xyzMatrix[T]{
		rx: hwy.Set(T(RToX)), gx: hwy.Set(T(GToX)), bx: hwy.Set(T(BToX)),
		ry: hwy.Set(T(RToYXYZ)), gy: hwy.Set(T(GToYXYZ)), by: hwy.Set(T(BToYXYZ)),
		rz: hwy.Set(T(RToZ)), gz: hwy.Set(T(GToZ)), bz: hwy.Set(T(BToZ)),
	}
}

func (m xyzMatrix[T]) apply(r, g, b hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	x = dot3(r, g, b, m.rx, m.gx, m.bx)
	y = dot3(r, g, b, m.ry, m.gy, m.by)
	z = dot3(r, g, b, m.rz, m.gz, m.bz)
	return x, y, z
}

// BaseLinearRGBToXYZ converts planar linear RGB to CIE XYZ (sRGB primaries,
// D65).
func BaseLinearRGBToXYZ[T hwy.Floats](r, g, b, x, y, z []T) {
	m := newXYZMatrix[T]()

	mapPlanes([][]T{r, g, b}, [][]T{x, y, z}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		vx, vy, vz := m.apply(v[0], v[1], v[2])
		return []hwy.Vec[T]{vx, vy, vz}
	})
}

// BaseLinearRGBToLabNorm converts planar linear RGB to CIELAB under D65 and
// normalizes it for use as a loss space:
//
//	L = (116*f(Y/Yn) - 16) / 100
//	a = (500*(f(X/Xn) - f(Y/Yn)) + 128) / 255
//	b = (200*(f(Y/Yn) - f(Z/Zn)) + 128) / 255
//
// where f(t) = t^(1/3) above 0.008856 and 7.787*t + 4/29 otherwise.
func BaseLinearRGBToLabNorm[T hwy.Floats](r, g, b, outL, outA, outB []T) {
	m := newXYZMatrix[T]()
	wx, wy, wz := hwy.Set(T(WhiteX)), hwy.Set(T(WhiteY)), hwy.Set(T(WhiteZ))
	threshold := hwy.Set(T(LabThreshold))
	slope := hwy.Set(T(LabSlope))
	offset := hwy.Set(T(LabOffset))
	third := hwy.Set(T(1.0 / 3.0))
	v116, v16, v100 := hwy.Set(T(116)), hwy.Set(T(16)), hwy.Set(T(100))
	v500, v200 := hwy.Set(T(500)), hwy.Set(T(200))
	v128, v255 := hwy.Set(T(128)), hwy.Set(T(255))

	f := func(t hwy.Vec[T]) hwy.Vec[T] {
		power := hwy.Pow(hwy.Max(t, threshold), third)
		linear := hwy.Add(hwy.Mul(slope, t), offset)
		return hwy.IfThenElse(hwy.GreaterThan(t, threshold), power, linear)
	}

	mapPlanes([][]T{r, g, b}, [][]T{outL, outA, outB}, func(v []hwy.Vec[T]) []hwy.Vec[T] {
		x, y, z := m.apply(v[0], v[1], v[2])
		fx := f(hwy.Div(x, wx))
		fy := f(hwy.Div(y, wy))
		fz := f(hwy.Div(z, wz))

		vl := hwy.Div(hwy.Sub(hwy.Mul(v116, fy), v16), v100)
		va := hwy.Div(hwy.Add(hwy.Mul(v500, hwy.Sub(fx, fy)), v128), v255)
		vb := hwy.Div(hwy.Add(hwy.Mul(v200, hwy.Sub(fy, fz)), v128), v255)
		return []hwy.Vec[T]{vl, va, vb}
	})
}

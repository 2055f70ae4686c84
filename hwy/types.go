// Package hwy provides the portable lane operations the color kernels are
// written in.
//
// Kernels load a lane-sized chunk of a plane into a Vec, combine vectors with
// element-wise operations and store the result back. The chunk size follows
// the register width detected at startup (16, 32 or 64 bytes), so a kernel
// walks a plane in the same strides a vectorized build would use. Every
// operation has a plain Go body; set HWY_NO_SIMD to pin the width to 16 bytes.
//
// Basic usage:
//
//	import "github.com/trainner-go/chroma/hwy"
//
//	a := hwy.Load(plane[i:])
//	b := hwy.MulAdd(a, hwy.Set[float32](1.164), hwy.Set[float32](-18.624))
//	hwy.Store(b, out[i:])
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding up to MaxLanes[T]() elements.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// Mask represents the result of a comparison operation.
// It selects lanes in IfThenElse.
//
// Mask instances should not be created directly; use comparison operations
// like LessEqual or GreaterThan instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

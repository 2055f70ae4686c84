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

package ndarray

import (
	"fmt"
	"strings"
)

// DType is the runtime element type of an Array.
type DType int

// Supported element types. Names follow NumPy.
const (
	Invalid DType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// Element is the set of Go types an Array can hold.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// String returns the NumPy name of the type, e.g. "uint8" or "float32".
func (d DType) String() string {
	switch d {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Size returns the byte size of one element.
func (d DType) Size() int {
	switch d {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// ParseDType parses a NumPy type name such as "uint8" or "float32".
func ParseDType(s string) (DType, error) {
	for d := Int8; d <= Float64; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return Invalid, fmt.Errorf("%w: unknown dtype %q", ErrDType, s)
}

// npyDescr is the little-endian .npy descriptor of the type.
func (d DType) npyDescr() string {
	switch d {
	case Int8:
		return "|i1"
	case Uint8:
		return "|u1"
	case Int16:
		return "<i2"
	case Uint16:
		return "<u2"
	case Int32:
		return "<i4"
	case Uint32:
		return "<u4"
	case Int64:
		return "<i8"
	case Uint64:
		return "<u8"
	case Float32:
		return "<f4"
	case Float64:
		return "<f8"
	default:
		return ""
	}
}

// dtypeFromDescr maps a .npy descriptor ("<f4", "|u1", ...) to a DType.
// Big-endian descriptors are rejected.
func dtypeFromDescr(descr string) (DType, error) {
	if strings.HasPrefix(descr, ">") {
		return Invalid, fmt.Errorf("%w: big-endian descriptor %q", ErrDType, descr)
	}
	code := strings.TrimLeft(descr, "<|=")
	for d := Int8; d <= Float64; d++ {
		if strings.TrimLeft(d.npyDescr(), "<|") == code {
			return d, nil
		}
	}
	return Invalid, fmt.Errorf("%w: unsupported descriptor %q", ErrDType, descr)
}

// dtypeOf returns the DType matching the Go type E.
func dtypeOf[E Element]() DType {
	var zero E
	switch any(zero).(type) {
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case int64:
		return Int64
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return Invalid
}

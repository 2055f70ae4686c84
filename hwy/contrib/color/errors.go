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

import "errors"

var (
	// ErrUnsupportedDType reports an array dtype other than uint8 or float32.
	ErrUnsupportedDType = errors.New("unsupported dtype")

	// ErrShape reports a wrong channel count or too few axes.
	ErrShape = errors.New("invalid shape")

	// ErrReferenceRequired reports a luma or chroma pixel format converted
	// back to RGB without the reference RGB image.
	ErrReferenceRequired = errors.New("reference image required")

	// ErrNotImplemented reports a pixel format path that is not supported.
	ErrNotImplemented = errors.New("not implemented")
)

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

package tensor

import (
	"fmt"

	"github.com/trainner-go/chroma/hwy"
)

// FromHWC copies a channel-last (H, W, C) image into a (1, C, H, W) tensor.
func FromHWC[T hwy.Floats](data []T, height, width, channels int) (*Tensor[T], error) {
	if height < 0 || width < 0 || channels < 0 || len(data) != height*width*channels {
		return nil, fmt.Errorf("%w: %d elements do not fit (H, W, C) = (%d, %d, %d)",
			ErrShape, len(data), height, width, channels)
	}
	out := New[T](1, channels, height, width)
	for c := range channels {
		plane := out.Plane(0, c)
		for i := range plane {
			plane[i] = data[i*channels+c]
		}
	}
	return out, nil
}

// ToHWC returns image b of the folded batch in channel-last (H, W, C) order.
func (t *Tensor[T]) ToHWC(b int) ([]T, error) {
	batch, channels, height, width, err := t.ImageDims()
	if err != nil {
		return nil, err
	}
	if b < 0 || b >= batch {
		return nil, fmt.Errorf("%w: image %d out of range for %v", ErrShape, b, t.shape)
	}
	out := make([]T, height*width*channels)
	for c := range channels {
		for i, v := range t.Plane(b, c) {
			out[i*channels+c] = v
		}
	}
	return out, nil
}

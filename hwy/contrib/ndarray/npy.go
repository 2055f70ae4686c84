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
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sbinet/npyio"
)

// npyMagic starts every .npy file.
const npyMagic = "\x93NUMPY"

// npyAlign is the alignment of the header end, as written by NumPy >= 1.
const npyAlign = 64

// ReadNpy decodes a C-ordered .npy stream.
func ReadNpy(r io.Reader) (*Array, error) {
	reader, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create npy reader: %w", err)
	}
	descr := reader.Header.Descr
	if descr.Fortran {
		return nil, fmt.Errorf("%w: fortran-ordered arrays are not supported", ErrShape)
	}
	dtype, err := dtypeFromDescr(descr.Type)
	if err != nil {
		return nil, err
	}
	a, err := New(dtype, descr.Shape...)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Int8:
		err = readInto[int8](reader.Read, a)
	case Uint8:
		err = readInto[uint8](reader.Read, a)
	case Int16:
		err = readInto[int16](reader.Read, a)
	case Uint16:
		err = readInto[uint16](reader.Read, a)
	case Int32:
		err = readInto[int32](reader.Read, a)
	case Uint32:
		err = readInto[uint32](reader.Read, a)
	case Int64:
		err = readInto[int64](reader.Read, a)
	case Uint64:
		err = readInto[uint64](reader.Read, a)
	case Float32:
		err = readInto[float32](reader.Read, a)
	case Float64:
		err = readInto[float64](reader.Read, a)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func readInto[E Element](read func(ptr any) error, a *Array) error {
	var data []E
	if err := read(&data); err != nil {
		return fmt.Errorf("could not read npy data: %w", err)
	}
	if len(data) != a.Len() {
		return fmt.Errorf("%w: read %d elements for shape %v", ErrShape, len(data), a.shape)
	}
	a.data = data
	return nil
}

// WriteNpy encodes a as a version 1.0 .npy stream in little-endian C order.
func WriteNpy(w io.Writer, a *Array) error {
	descr := a.dtype.npyDescr()
	if descr == "" {
		return fmt.Errorf("%w: %v", ErrDType, a.dtype)
	}

	dims := make([]string, len(a.shape))
	for i, d := range a.shape {
		dims[i] = strconv.Itoa(d)
	}
	shape := strings.Join(dims, ", ")
	if len(a.shape) == 1 {
		shape += ","
	}
	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%s), }", descr, shape)

	// magic(6) + version(2) + header length(2) + header + '\n'
	pad := npyAlign - (len(npyMagic)+4+len(header)+1)%npyAlign
	if pad == npyAlign {
		pad = 0
	}
	header += strings.Repeat(" ", pad) + "\n"
	if len(header) > 0xffff {
		return fmt.Errorf("%w: npy header too long for shape %v", ErrShape, a.shape)
	}

	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, a.data)
}

// Load reads a .npy file.
func Load(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a, err := ReadNpy(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Save writes a to path as a .npy file.
func Save(path string, a *Array) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := WriteNpy(bw, a); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

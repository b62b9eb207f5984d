// This file is part of c64core.
//
// c64core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// c64core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with c64core.  If not, see <https://www.gnu.org/licenses/>.

// Package snapshot implements the stable, byte-ordered field-by-field
// encoding used to save and restore component state: integers as
// 32-bit big-endian, booleans as single bytes, arrays prefixed by
// their 32-bit length. The sprite writer/reader pair in this package,
// and the VIA and drive CPU snapshot code in their own packages, are
// built from the primitives here, so the wire format stays consistent across components even as
// each one's field list differs.
package snapshot

import (
	"encoding/binary"
	"io"

	"github.com/finnhauge/c64core/curated"
)

// Writer serialises a fixed field order to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered by any Write call, if any.
// Callers write an entire record's fields unconditionally and check
// Err once at the end, rather than after every field.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(v interface{}) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.BigEndian, v)
}

// WriteInt32 writes a signed 32-bit integer.
func (w *Writer) WriteInt32(v int) {
	w.write(int32(v))
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	w.write(v)
}

// WriteBool writes a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	w.write(b)
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.write(v)
}

// WriteBytes writes a 32-bit length prefix followed by data, per the
// array convention.
func (w *Writer) WriteBytes(data []byte) {
	w.WriteUint32(uint32(len(data)))
	if w.err != nil {
		return
	}
	w.write(data)
}

// Reader deserialises a fixed field order from an underlying io.Reader.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered by any Read call, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) read(v interface{}) {
	if r.err != nil {
		return
	}
	r.err = binary.Read(r.r, binary.BigEndian, v)
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() int {
	var v int32
	r.read(&v)
	return int(v)
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() uint32 {
	var v uint32
	r.read(&v)
	return v
}

// ReadBool reads a single byte and reports whether it was nonzero.
func (r *Reader) ReadBool() bool {
	var v uint8
	r.read(&v)
	return v != 0
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() uint8 {
	var v uint8
	r.read(&v)
	return v
}

// ReadBytes reads a 32-bit length prefix followed by that many bytes.
// It fails if the length exceeds maxLen, guarding against a corrupt or
// hostile length prefix driving an unbounded allocation.
func (r *Reader) ReadBytes(maxLen int) []byte {
	n := r.ReadUint32()
	if r.err != nil {
		return nil
	}
	if int(n) > maxLen {
		r.err = curated.Errorf("snapshot: array length %d exceeds maximum %d", n, maxLen)
		return nil
	}
	data := make([]byte, n)
	r.read(data)
	return data
}

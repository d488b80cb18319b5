// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// itemHeaderSize is the size of the tag and length preceding every item and fragment
const itemHeaderSize = 8

// EncapsulatedPixelData represents image pixel data (7FE0,0010) in encapsulated format as
// described in http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4.
type EncapsulatedPixelData struct {
	// OffsetTable is the Basic Offset Table. Each offset is the position of the first fragment
	// of a frame, measured from the first byte of the first fragment item header. It is empty
	// when the encoder did not provide one.
	OffsetTable []uint32

	// Fragments holds the value of every fragment item following the Basic Offset Table
	Fragments [][]byte
}

// NewEncapsulatedPixelData encodes each frame as one or more fragments of at most
// maxFragmentSize bytes, or a single fragment when maxFragmentSize is not positive. Fragments
// are of even length, the last fragment of a frame is padded with a NUL byte if needed.
func NewEncapsulatedPixelData(frames [][]byte, maxFragmentSize int) *EncapsulatedPixelData {
	if maxFragmentSize == 1 {
		maxFragmentSize = 2
	}
	maxFragmentSize &^= 1

	p := &EncapsulatedPixelData{OffsetTable: []uint32{}, Fragments: [][]byte{}}
	var offset uint32
	for _, frame := range frames {
		p.OffsetTable = append(p.OffsetTable, offset)
		data := frame
		if len(data)%2 != 0 {
			data = append(append(make([]byte, 0, len(data)+1), data...), 0x00)
		}
		for first := true; first || len(data) > 0; first = false {
			n := len(data)
			if maxFragmentSize > 0 && n > maxFragmentSize {
				n = maxFragmentSize
			}
			p.Fragments = append(p.Fragments, data[:n:n])
			offset += itemHeaderSize + uint32(n)
			data = data[n:]
		}
	}
	return p
}

// Frames assembles the compressed bytes of each frame. With an empty offset table, fragments
// map one to one to frames when numberOfFrames equals the number of fragments, and all fragments
// form a single frame when numberOfFrames is at most 1. Any other fragment count is ambiguous:
// the single frame is returned together with an error wrapping ErrMalformedLength, so callers
// may decide to carry on with it.
func (p *EncapsulatedPixelData) Frames(numberOfFrames int) ([][]byte, error) {
	if len(p.Fragments) == 0 {
		return [][]byte{}, nil
	}

	if len(p.OffsetTable) == 0 {
		if numberOfFrames > 1 && numberOfFrames == len(p.Fragments) {
			return p.Fragments, nil
		}
		single := [][]byte{bytes.Join(p.Fragments, nil)}
		if numberOfFrames > 1 {
			return single, errorf(ErrMalformedLength, "cannot assign %d fragments to %d frames without an offset table",
				len(p.Fragments), numberOfFrames)
		}
		return single, nil
	}

	// position of each fragment item relative to the first fragment item
	starts := make(map[uint32]int, len(p.Fragments))
	var pos uint32
	for i, f := range p.Fragments {
		starts[pos] = i
		pos += itemHeaderSize + uint32(len(f))
	}

	first := make([]int, len(p.OffsetTable))
	for i, offset := range p.OffsetTable {
		idx, ok := starts[offset]
		if !ok {
			return nil, errorf(ErrMalformedLength, "offset %d of frame %d is not on a fragment boundary", offset, i)
		}
		if i == 0 && offset != 0 {
			return nil, errorf(ErrMalformedLength, "offset of the first frame is %d, want 0", offset)
		}
		if i > 0 && idx <= first[i-1] {
			return nil, errorf(ErrMalformedLength, "offsets are not increasing at frame %d", i)
		}
		first[i] = idx
	}

	frames := make([][]byte, len(first))
	for i, start := range first {
		end := len(p.Fragments)
		if i+1 < len(first) {
			end = first[i+1]
		}
		if end-start == 1 {
			frames[i] = p.Fragments[start]
		} else {
			frames[i] = bytes.Join(p.Fragments[start:end], nil)
		}
	}
	return frames, nil
}

// Equal reports whether both hold the same offset table and fragments
func (p *EncapsulatedPixelData) Equal(o *EncapsulatedPixelData) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.OffsetTable) != len(o.OffsetTable) || len(p.Fragments) != len(o.Fragments) {
		return false
	}
	for i := range p.OffsetTable {
		if p.OffsetTable[i] != o.OffsetTable[i] {
			return false
		}
	}
	for i := range p.Fragments {
		if !bytes.Equal(p.Fragments[i], o.Fragments[i]) {
			return false
		}
	}
	return true
}

// readEncapsulatedPixelData reads the Basic Offset Table item and the fragment items up to the
// Sequence Delimitation Item. With reference set, the fragments are skipped and returned as
// []BulkDataReference, the offset table included.
func (d *decoder) readEncapsulatedPixelData(dr *dcmReader, syntax *TransferSyntax, reference bool) (interface{}, error) {
	order := syntax.ByteOrder
	p := &EncapsulatedPixelData{OffsetTable: []uint32{}, Fragments: [][]byte{}}
	refs := []BulkDataReference{}

	for i := 0; ; i++ {
		offset := dr.Offset()
		tag, err := dr.Tag(order)
		if err == io.EOF {
			return nil, newDecodeError(ErrInconsistentNesting, PixelDataTag, offset, "missing sequence delimitation after fragments")
		}
		if err != nil {
			return nil, err
		}
		if tag == SequenceDelimitationItemTag {
			if err := readDelimiterLength(dr, syntax, tag); err != nil {
				return nil, err
			}
			break
		}
		if tag != ItemTag {
			return nil, newDecodeError(ErrInconsistentNesting, tag, offset, "found %v in encapsulated pixel data, want a fragment item", tag)
		}

		length, err := dr.UInt32(order)
		if err != nil {
			return nil, err
		}
		if length == UndefinedLength {
			return nil, newDecodeError(ErrMalformedLength, PixelDataTag, offset, "fragment of undefined length")
		}
		if length%2 != 0 {
			err := newDecodeError(ErrMalformedLength, PixelDataTag, offset, "odd fragment length %d", length)
			if !d.cfg.lenient {
				return nil, err
			}
			d.warn(err)
		}

		if reference {
			refs = append(refs, BulkDataReference{ByteRegion{dr.Offset(), int64(length)}})
			if err := dr.Skip(int64(length)); err != nil {
				return nil, err
			}
			continue
		}

		value, err := dr.Bytes(int64(length))
		if err != nil {
			return nil, err
		}
		if i > 0 {
			p.Fragments = append(p.Fragments, value)
			continue
		}
		if len(value)%4 != 0 {
			return nil, newDecodeError(ErrMalformedLength, PixelDataTag, offset, "basic offset table length %d is not a multiple of 4", length)
		}
		for j := 0; j < len(value); j += 4 {
			p.OffsetTable = append(p.OffsetTable, order.Uint32(value[j:]))
		}
	}

	if reference {
		return refs, nil
	}
	return p, nil
}

// encodeEncapsulatedPixelData writes the Basic Offset Table item, the fragment items and the
// Sequence Delimitation Item
func encodeEncapsulatedPixelData(order binary.ByteOrder, p *EncapsulatedPixelData) ([]byte, error) {
	buf := &bytes.Buffer{}
	dw := newDcmWriter(buf)

	if err := dw.Item(order, uint32(4*len(p.OffsetTable))); err != nil {
		return nil, fmt.Errorf("writing basic offset table: %w", err)
	}
	for _, offset := range p.OffsetTable {
		if err := dw.UInt32(order, offset); err != nil {
			return nil, fmt.Errorf("writing basic offset table: %w", err)
		}
	}

	for _, fragment := range p.Fragments {
		if len(fragment)%2 != 0 {
			return nil, errorf(ErrMalformedLength, "odd fragment length %d", len(fragment))
		}
		if err := dw.Item(order, uint32(len(fragment))); err != nil {
			return nil, fmt.Errorf("writing fragment: %w", err)
		}
		if err := dw.Bytes(fragment); err != nil {
			return nil, fmt.Errorf("writing fragment: %w", err)
		}
	}

	if err := dw.Delimiter(order, SequenceDelimitationItemTag); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errorf reports a failure that is not bound to a position in the stream
func errorf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

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
	"encoding/binary"
	"fmt"
	"io"
)

const (
	preambleSize = 128
	dicomMagic   = "DICM"
)

// hasDicomSignature peeks at the preamble and the DICM marker without consuming them
func hasDicomSignature(dr *dcmReader) bool {
	b, err := dr.Peek(preambleSize + len(dicomMagic))
	if err != nil {
		return false
	}
	return string(b[preambleSize:]) == dicomMagic
}

// readFileMeta reads the file meta elements, which are always explicit VR little endian. When
// the meta group starts with its group length (0002,0000) exactly that many bytes are read,
// otherwise elements are read for as long as they belong to group 0002.
func (d *decoder) readFileMeta(dr *dcmReader) ([]*DataElement, error) {
	it := newDataElementIterator(d, dr, explicitVRLittleEndian, topLevel)
	var meta []*DataElement

	if nextGroup(dr) != fileMetaGroup {
		return nil, fmt.Errorf("%w: file meta group is empty", ErrUnresolvedTransferSyntax)
	}
	first, err := it.NextElement()
	if err != nil {
		return nil, fmt.Errorf("reading first meta element: %w", err)
	}
	meta = append(meta, first)

	if first.Tag == FileMetaInformationGroupLengthTag {
		length, ok := first.ValueField.([]uint32)
		if !ok || len(length) != 1 {
			return nil, newDecodeError(ErrMalformedLength, first.Tag, dr.Offset(),
				"wrong type for FileMetaInformationGroupLength. Got %v, want 1 uint32", first.ValueField)
		}
		d.log.WithField("length", length[0]).Debug("reading file meta group")
		if err := dr.fits(int64(length[0])); err != nil {
			return nil, err
		}
		it.dr = dr.Limit(int64(length[0]))
		for elem, err := it.NextElement(); err != io.EOF; elem, err = it.NextElement() {
			if err != nil {
				return nil, fmt.Errorf("reading meta element: %w", err)
			}
			meta = append(meta, elem)
		}
		return meta, nil
	}

	d.log.Debug("file meta group length missing, reading group 0002 elements")
	for nextGroup(dr) == fileMetaGroup {
		elem, err := it.NextElement()
		if err != nil {
			return nil, fmt.Errorf("reading meta element: %w", err)
		}
		meta = append(meta, elem)
	}
	return meta, nil
}

const fileMetaGroup = 0x0002

// nextGroup peeks at the group number of the next explicit VR little endian element, 0 at the end
// of the stream
func nextGroup(dr *dcmReader) uint16 {
	b, err := dr.Peek(2)
	if err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

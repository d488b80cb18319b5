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
	"fmt"
	"io"
)

// BulkDataReference describes the location of a contiguous sequence of bytes in a file
type BulkDataReference struct {
	Reference ByteRegion
}

// ByteRegion is a contiguous sequence of bytes in a file described by an Offset and a length
type ByteRegion struct {
	Offset int64
	Length int64
}

// Read returns the referenced bytes from r, which must provide the same bytes that were parsed.
// Offsets of deflated data sets refer to the inflated stream.
func (ref BulkDataReference) Read(r io.ReaderAt) ([]byte, error) {
	b := make([]byte, ref.Reference.Length)
	if _, err := r.ReadAt(b, ref.Reference.Offset); err != nil {
		return nil, fmt.Errorf("reading %d bytes at offset %d: %w", ref.Reference.Length, ref.Reference.Offset, err)
	}
	return b, nil
}

// bulkDataTags hold large binary values which are not part of the metadata of an instance
var bulkDataTags = map[DataElementTag]bool{
	PixelDataTag:            true,
	FloatPixelDataTag:       true,
	DoubleFloatPixelDataTag: true,
	SpectroscopyDataTag:     true,
	EncapsulatedDocumentTag: true,
	WaveformDataTag:         true,
	AudioSampleDataTag:      true,
	CurveDataTag:            true,
	OverlayDataTag:          true,
}

// DefaultBulkDataDefinition reports whether elem holds bulk data as defined by the DICOMweb
// specification: pixel data of all kinds, spectroscopy data, encapsulated documents and the
// repeating groups of waveform, audio, curve and overlay data. Nested elements are bulk data by
// the same rules.
// http://dicom.nema.org/medical/dicom/current/output/html/part18.html#sect_F.2.7
func DefaultBulkDataDefinition(elem *DataElement) bool {
	tag := elem.Tag
	switch tag.GroupNumber() & 0xFF00 {
	case 0x5000, 0x6000:
		// repeating groups 50xx and 60xx
		tag = NewTag(tag.GroupNumber()&0xFF00, tag.ElementNumber())
	}
	return bulkDataTags[tag]
}

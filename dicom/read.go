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
	"errors"

	"github.com/sirupsen/logrus"
)

// errItemDelimiter signals that an Item Delimitation Item closed the enclosing item
var errItemDelimiter = errors.New("item delimitation")

// decoder holds the state shared by all levels of a single decode
type decoder struct {
	cfg *parseConfig
	log logrus.FieldLogger
}

func newDecoder(cfg *parseConfig) *decoder {
	return &decoder{cfg: cfg, log: cfg.logger}
}

func (d *decoder) warn(err error) {
	fields := logrus.Fields{}
	var de *DecodeError
	if errors.As(err, &de) {
		fields["offset"] = de.Offset
		if de.Tag != 0 {
			fields["tag"] = de.Tag.String()
		}
	}
	d.log.WithFields(fields).Warn(err.Error())
}

// readElement reads the next element of ds. It returns io.EOF at a clean end of the stream
// and errItemDelimiter when the enclosing undefined length item is closed. When a nested
// structure fails part way, the element holding what was decoded so far is returned with
// the error. signed tells whether the pixel values of the enclosing data set are signed.
func (d *decoder) readElement(dr *dcmReader, syntax *TransferSyntax, signed bool) (*DataElement, error) {
	offset := dr.Offset()
	tag, err := dr.Tag(syntax.ByteOrder)
	if err != nil {
		return nil, err
	}

	switch tag {
	case ItemDelimitationItemTag:
		if err := readDelimiterLength(dr, syntax, tag); err != nil {
			return nil, err
		}
		return nil, errItemDelimiter
	case SequenceDelimitationItemTag:
		return nil, newDecodeError(ErrInconsistentNesting, tag, offset, "sequence delimitation outside of a sequence")
	case ItemTag:
		return nil, newDecodeError(ErrInconsistentNesting, tag, offset, "item outside of a sequence")
	}

	vr, err := syntax.readVR(dr, tag)
	if err != nil {
		return nil, withTag(err, tag)
	}
	if syntax.Implicit {
		vr = implicitVR(tag, signed)
	}

	length, err := syntax.readValueLength(dr, vr)
	if err != nil {
		return nil, withTag(err, tag)
	}

	elem := &DataElement{Tag: tag, VR: vr, ValueLength: length}
	value, err := d.readValue(dr, syntax, elem)
	if value == nil {
		return nil, withTag(err, tag)
	}
	elem.ValueField = value
	return elem, withTag(err, tag)
}

func (d *decoder) readValue(dr *dcmReader, syntax *TransferSyntax, elem *DataElement) (interface{}, error) {
	offset := dr.Offset()
	length := elem.ValueLength

	if length == UndefinedLength {
		switch {
		case elem.VR == SQVR:
			return d.readSequence(dr, syntax, length)
		case elem.VR == UNVR:
			// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2.2
			// UN of undefined length holds a sequence encoded as implicit VR little endian
			return d.readSequence(dr, implicitVRLittleEndian, length)
		case elem.Tag == PixelDataTag && (elem.VR == OBVR || elem.VR == OWVR):
			return d.readEncapsulatedPixelData(dr, syntax, d.references(elem))
		default:
			return nil, newDecodeError(ErrMalformedLength, elem.Tag, offset, "undefined length not allowed for vr %v", elem.VR)
		}
	}

	if err := dr.fits(int64(length)); err != nil {
		return nil, err
	}

	if elem.VR == SQVR {
		return d.readSequence(dr, syntax, length)
	}

	if length%2 != 0 {
		err := newDecodeError(ErrMalformedLength, elem.Tag, offset, "odd value length %d", length)
		if !d.cfg.lenient {
			return nil, err
		}
		d.warn(err)
	}

	if d.references(elem) {
		if err := dr.Skip(int64(length)); err != nil {
			return nil, err
		}
		return []BulkDataReference{{ByteRegion{offset, int64(length)}}}, nil
	}

	raw, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, err
	}
	value, err := decodeValue(raw, elem.VR, syntax.ByteOrder)
	if err != nil {
		var kind error = ErrMalformedLength
		if errors.Is(err, ErrInvalidValue) {
			kind = ErrInvalidValue
		}
		return nil, &DecodeError{Kind: kind, Tag: elem.Tag, Offset: offset, Err: err}
	}
	return value, nil
}

func (d *decoder) references(elem *DataElement) bool {
	return d.cfg.bulkData != nil && d.cfg.bulkData(elem)
}

// implicitVR resolves the VR of an element in an implicit VR syntax. Tags whose dictionary entry
// permits US or SS follow the Pixel Representation (0028,0103) of the enclosing data set.
func implicitVR(tag DataElementTag, signed bool) *VR {
	entry, ok := LookupTag(tag)
	if !ok {
		return UNVR
	}
	if signed && entry.VR() == USVR && entry.Permits(SSVR) {
		return SSVR
	}
	return entry.VR()
}

func readDelimiterLength(dr *dcmReader, syntax *TransferSyntax, tag DataElementTag) error {
	offset := dr.Offset()
	length, err := dr.UInt32(syntax.ByteOrder)
	if err != nil {
		return withTag(err, tag)
	}
	if length != 0 {
		return newDecodeError(ErrMalformedLength, tag, offset, "delimiter length %d, want 0", length)
	}
	return nil
}

// withTag attaches tag to a DecodeError raised without knowledge of the element
func withTag(err error, tag DataElementTag) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Tag == 0 {
		de.Tag = tag
	}
	return err
}

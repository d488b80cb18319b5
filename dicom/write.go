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
	"fmt"
)

// maxExplicitLength is the largest length that is not the undefined length sentinel
const maxExplicitLength = UndefinedLength - 1

// encoder serialises elements in a transfer syntax. Nested structures are encoded innermost first
// into owned buffers, so every explicit length is known before its header is written.
type encoder struct {
	syntax *TransferSyntax
	cfg    *constructConfig
}

func (e *encoder) with(syntax *TransferSyntax) *encoder {
	return &encoder{syntax: syntax, cfg: e.cfg}
}

// encodeElement returns the header and value of element, nil when an option filters it out
func (e *encoder) encodeElement(element *DataElement) ([]byte, error) {
	element, err := e.cfg.applyTransforms(element)
	if err != nil || element == nil {
		return nil, err
	}

	vr := element.VR
	if vr == nil {
		vr = element.Tag.DictionaryVR()
	}

	var value []byte
	undefined := false
	switch v := element.ValueField.(type) {
	case *Sequence:
		syntax := e.syntax
		undefined = e.cfg.undefined(element.ValueLength)
		if vr == UNVR {
			// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2.2
			syntax, undefined = implicitVRLittleEndian, true
		} else if vr != SQVR {
			return nil, fmt.Errorf("element %v with vr %v holds a sequence", element.Tag, vr)
		}
		value, err = e.with(syntax).encodeSequence(v, undefined)
	case *EncapsulatedPixelData:
		undefined = true
		value, err = encodeEncapsulatedPixelData(e.syntax.ByteOrder, v)
	case []BulkDataReference:
		return nil, fmt.Errorf("element %v holds bulk data references, resolve them before writing", element.Tag)
	default:
		value, err = encodeValue(v, vr, e.syntax.ByteOrder)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding value of %v: %w", element.Tag, err)
	}

	length := UndefinedLength
	if !undefined {
		if int64(len(value)) > int64(maxExplicitLength) {
			return nil, errorf(ErrMalformedLength, "value of %v is %d bytes long", element.Tag, len(value))
		}
		length = uint32(len(value))
	}

	buf := bytes.NewBuffer(make([]byte, 0, int(e.syntax.headerSize(vr))+len(value)))
	if err := newDcmWriter(buf).Header(e.syntax, element.Tag, vr, length); err != nil {
		return nil, fmt.Errorf("writing header of %v: %w", element.Tag, err)
	}
	buf.Write(value)
	return buf.Bytes(), nil
}

// encodeSequence returns the value field of a sequence, including the Sequence Delimitation Item
// when undefined is set
func (e *encoder) encodeSequence(seq *Sequence, undefined bool) ([]byte, error) {
	order := e.syntax.ByteOrder
	buf := &bytes.Buffer{}
	dw := newDcmWriter(buf)

	for i, item := range seq.Items {
		itemBytes, err := e.encodeDataSet(item)
		if err != nil {
			return nil, fmt.Errorf("encoding item %d: %w", i, err)
		}

		if e.cfg.undefined(item.Length) {
			if err := dw.Item(order, UndefinedLength); err != nil {
				return nil, err
			}
			if err := dw.Bytes(itemBytes); err != nil {
				return nil, err
			}
			if err := dw.Delimiter(order, ItemDelimitationItemTag); err != nil {
				return nil, err
			}
			continue
		}

		if int64(len(itemBytes)) > int64(maxExplicitLength) {
			return nil, errorf(ErrMalformedLength, "item %d is %d bytes long", i, len(itemBytes))
		}
		if err := dw.Item(order, uint32(len(itemBytes))); err != nil {
			return nil, err
		}
		if err := dw.Bytes(itemBytes); err != nil {
			return nil, err
		}
	}

	if undefined {
		if err := dw.Delimiter(order, SequenceDelimitationItemTag); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// encodeDataSet returns the elements of ds in ascending tag order
func (e *encoder) encodeDataSet(ds *DataSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, element := range ds.SortedElements() {
		b, err := e.encodeElement(element)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

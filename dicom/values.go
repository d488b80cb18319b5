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
	"strings"
)

// valueDelimiter separates the values of multi-valued text VRs
const valueDelimiter = "\\"

// decodeValue converts the raw bytes of a value field into the ValueField representation of vr.
// Sequences and encapsulated pixel data are not handled here since they are read item by item.
func decodeValue(raw []byte, vr *VR, order binary.ByteOrder) (interface{}, error) {
	switch vr.kind {
	case textVR, uniqueIdentifierVR:
		return decodeText(raw, vr), nil
	case numberBinaryVR:
		return decodeNumberBinary(raw, vr, order)
	case bulkDataVR:
		return decodeBulkData(raw, vr, order)
	case tagVR:
		return decodeTags(raw, order)
	default:
		return nil, fmt.Errorf("no value codec for vr %v", vr)
	}
}

// decodeText splits multi-valued text on the backslash delimiter, keeping empty values. Exactly
// one trailing padding byte is removed: an even length value that ends with a space cannot be
// told apart from a padded one, and DataElement.Equal ignores that byte.
func decodeText(raw []byte, vr *VR) []string {
	if len(raw) == 0 {
		return []string{}
	}

	s := string(raw)
	if s[len(s)-1] == vr.Padding() {
		s = s[:len(s)-1]
	}

	if !vr.multiValued {
		return []string{s}
	}
	return strings.Split(s, valueDelimiter)
}

func decodeNumberBinary(raw []byte, vr *VR, order binary.ByteOrder) (interface{}, error) {
	if len(raw)%vr.size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d for vr %v",
			ErrMalformedLength, len(raw), vr.size, vr)
	}
	n := len(raw) / vr.size

	var data interface{}
	switch vr {
	case SSVR:
		data = make([]int16, n)
	case USVR:
		data = make([]uint16, n)
	case SLVR:
		data = make([]int32, n)
	case ULVR, OLVR:
		data = make([]uint32, n)
	case SVVR:
		data = make([]int64, n)
	case UVVR, OVVR:
		data = make([]uint64, n)
	case FLVR, OFVR:
		data = make([]float32, n)
	case FDVR, ODVR:
		data = make([]float64, n)
	default:
		return nil, fmt.Errorf("unknown vr: %v", vr)
	}

	if err := binary.Read(bytes.NewReader(raw), order, data); err != nil {
		return nil, fmt.Errorf("binary.Read(_, _, _) => %v", err)
	}

	return data, nil
}

// decodeBulkData copies opaque bytes. OW values are held in little endian byte order in memory
// so that they are independent of the transfer syntax they were read from.
func decodeBulkData(raw []byte, vr *VR, order binary.ByteOrder) ([]byte, error) {
	if len(raw)%vr.size != 0 {
		return nil, fmt.Errorf("%w: odd length %d for vr %v", ErrMalformedLength, len(raw), vr)
	}
	b := make([]byte, len(raw))
	copy(b, raw)
	if vr == OWVR && order == binary.BigEndian {
		swapWords(b)
	}
	return b, nil
}

func decodeTags(raw []byte, order binary.ByteOrder) ([]DataElementTag, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of 4 for vr AT", ErrMalformedLength, len(raw))
	}

	ret := make([]DataElementTag, len(raw)/4) // 4 bytes per tag
	for i := range ret {
		ret[i] = NewTag(order.Uint16(raw[4*i:]), order.Uint16(raw[4*i+2:]))
	}
	return ret, nil
}

// encodeValue is the inverse of decodeValue. The returned bytes are padded to an even length
// with the padding byte of vr.
func encodeValue(valueField interface{}, vr *VR, order binary.ByteOrder) ([]byte, error) {
	switch vr.kind {
	case textVR, uniqueIdentifierVR:
		return encodeText(valueField, vr)
	case numberBinaryVR:
		return encodeNumberBinary(valueField, vr, order)
	case bulkDataVR:
		return encodeBulkData(valueField, vr, order)
	case tagVR:
		return encodeTags(valueField, order)
	default:
		return nil, fmt.Errorf("no value codec for vr %v", vr)
	}
}

// encodedText is a text value field that was already joined and converted to the Specific
// Character Set of its data set. It only appears in the copies written by Construct.
type encodedText []byte

func encodeText(v interface{}, vr *VR) ([]byte, error) {
	var b []byte
	switch strs := v.(type) {
	case encodedText:
		b = append([]byte(nil), strs...)
	case []string:
		if err := checkTextValues(strs, vr); err != nil {
			return nil, err
		}
		b = []byte(strings.Join(strs, valueDelimiter))
	default:
		return nil, fmt.Errorf("expected type []string for vr %v, got %T", vr, v)
	}

	if len(b)%2 != 0 {
		b = append(b, vr.Padding())
	}
	return b, nil
}

func checkTextValues(strs []string, vr *VR) error {
	if !vr.multiValued {
		if len(strs) > 1 {
			return fmt.Errorf("%w: vr %v is single valued, got %d values", ErrInvalidValue, vr, len(strs))
		}
		return nil
	}
	for _, s := range strs {
		if strings.Contains(s, valueDelimiter) {
			return fmt.Errorf("%w: value %q of vr %v contains the value delimiter", ErrInvalidValue, s, vr)
		}
	}
	return nil
}

func encodeNumberBinary(v interface{}, vr *VR, order binary.ByteOrder) ([]byte, error) {
	switch v.(type) {
	case []int16, []uint16, []int32, []uint32, []int64, []uint64, []float32, []float64:
	default:
		return nil, fmt.Errorf("unsupported binary number type for vr %v: %T", vr, v)
	}

	buf := &bytes.Buffer{}
	if err := binary.Write(buf, order, v); err != nil {
		return nil, fmt.Errorf("binary.Write(_, _, _) => %v", err)
	}
	if n := numericLen(v); n > 0 && buf.Len()/n != vr.size {
		return nil, fmt.Errorf("value type %T does not match the %d byte width of vr %v", v, vr.size, vr)
	}
	return buf.Bytes(), nil
}

func numericLen(v interface{}) int {
	switch field := v.(type) {
	case []int16:
		return len(field)
	case []uint16:
		return len(field)
	case []int32:
		return len(field)
	case []uint32:
		return len(field)
	case []int64:
		return len(field)
	case []uint64:
		return len(field)
	case []float32:
		return len(field)
	case []float64:
		return len(field)
	}
	return 0
}

func encodeBulkData(v interface{}, vr *VR, order binary.ByteOrder) ([]byte, error) {
	field, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("unknown bulk data type for vr %v: %T", vr, v)
	}
	if vr == OWVR && len(field)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d for vr OW", ErrMalformedLength, len(field))
	}

	b := make([]byte, len(field), len(field)+1)
	copy(b, field)
	if vr == OWVR && order == binary.BigEndian {
		swapWords(b)
	}
	if len(b)%2 != 0 {
		b = append(b, vr.Padding())
	}
	return b, nil
}

func encodeTags(v interface{}, order binary.ByteOrder) ([]byte, error) {
	tags, ok := v.([]DataElementTag)
	if !ok {
		return nil, fmt.Errorf("unexpected type for tag VR: %T (expected []DataElementTag)", v)
	}
	b := make([]byte, 4*len(tags))
	for i, t := range tags {
		order.PutUint16(b[4*i:], t.GroupNumber())
		order.PutUint16(b[4*i+2:], t.ElementNumber())
	}
	return b, nil
}

func swapWords(b []byte) {
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
}

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
	"reflect"
	"sort"
	"strings"
)

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataElement struct {
	Tag DataElementTag

	// Value Representation
	VR *VR

	// ValueField represents the field within a Data Element that contains its value(s)
	// Can be any of of the following types:
	// []string for AE, AS, CS, DA, DS, DT, IS, LO, LT, PN, SH, ST, TM, UC, UI, UR, UT
	// []int16 for SS
	// []uint16 for US
	// []int32 for SL
	// []uint32 for UL, OL
	// []int64 for SV
	// []uint64 for UV, OV
	// []float32 for FL, OF
	// []float64 for FD, OD
	// []DataElementTag for AT
	// []byte for OB, OW (little endian) and UN
	// *Sequence for SQ and for UN of undefined length
	// *EncapsulatedPixelData for pixel data of undefined length
	// []BulkDataReference for values referenced with the ReferenceBulkData option
	ValueField interface{}

	// ValueLength is equal to the length of the ValueField in bytes.
	// Can be equal to 0xFFFFFFFF to represent an undefined length:
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
	ValueLength uint32
}

func (e *DataElement) String() string {
	return e.string(0)
}

func (e *DataElement) string(indentLvl int) string {
	indent := strings.Repeat("  ", indentLvl)
	vr := "??"
	if e.VR != nil {
		vr = e.VR.Name
	}
	header := fmt.Sprintf("%s%v %s %s", indent, e.Tag, vr, e.Tag.Keyword())

	switch v := e.ValueField.(type) {
	case *Sequence:
		return header + v.string(indentLvl)
	case *EncapsulatedPixelData:
		return fmt.Sprintf("%s [%d fragments]", header, len(v.Fragments))
	case []byte:
		if len(v) > 16 {
			return fmt.Sprintf("%s [% X ...] (%d bytes)", header, v[:16], len(v))
		}
		return fmt.Sprintf("%s [% X]", header, v)
	default:
		return fmt.Sprintf("%s %v", header, v)
	}
}

// Equal reports whether two elements have the same tag, VR and value. Lengths are not compared
// since they are recomputed on write.
func (e *DataElement) Equal(o *DataElement) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Tag != o.Tag || e.VR != o.VR {
		return false
	}

	switch v := e.ValueField.(type) {
	case *Sequence:
		w, ok := o.ValueField.(*Sequence)
		return ok && v.Equal(w)
	case []string:
		w, ok := o.ValueField.([]string)
		if !ok || len(v) != len(w) {
			return false
		}
		for i := range v {
			if v[i] != w[i] && (i < len(v)-1 || trimPadding(v[i], e.VR) != trimPadding(w[i], e.VR)) {
				return false
			}
		}
		return true
	case *EncapsulatedPixelData:
		w, ok := o.ValueField.(*EncapsulatedPixelData)
		return ok && v.Equal(w)
	case []byte:
		w, ok := o.ValueField.([]byte)
		return ok && string(v) == string(w)
	default:
		a, b := reflect.ValueOf(e.ValueField), reflect.ValueOf(o.ValueField)
		if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice && a.Type() == b.Type() &&
			a.Len() == 0 && b.Len() == 0 {
			return true
		}
		return reflect.DeepEqual(e.ValueField, o.ValueField)
	}
}

// trimPadding removes one trailing padding byte. A padding byte at the end of a value field is
// not significant, so it is ignored when the last values of two elements are compared.
func trimPadding(s string, vr *VR) string {
	if len(s) > 0 && s[len(s)-1] == vr.Padding() {
		return s[:len(s)-1]
	}
	return s
}

// DataSet models a DICOM Data Set as defined
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataSet struct {
	// Elements is a map of DataElement tags to *DataElement
	Elements map[DataElementTag]*DataElement

	// Length is the length of a sequence item in bytes, UndefinedLength when the item is
	// delimited. It is not used for top level data sets.
	Length uint32
}

// NewDataSet creates a DataSet from a map of tags to ValueFields. The VRs are taken from the
// data dictionary.
func NewDataSet(values map[DataElementTag]interface{}) *DataSet {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for tag, v := range values {
		vr := tag.DictionaryVR()
		if _, ok := v.(*Sequence); ok {
			vr = SQVR
		}
		ds.Elements[tag] = &DataElement{Tag: tag, VR: vr, ValueField: v}
	}
	return ds
}

// Add inserts the element, replacing an element with the same tag
func (ds *DataSet) Add(elem *DataElement) {
	if ds.Elements == nil {
		ds.Elements = map[DataElementTag]*DataElement{}
	}
	ds.Elements[elem.Tag] = elem
}

// Get returns the element with the given tag
func (ds *DataSet) Get(tag DataElementTag) (*DataElement, bool) {
	elem, ok := ds.Elements[tag]
	return elem, ok
}

// FirstString returns the first string value of the element with the given tag, or "" if absent
func (ds *DataSet) FirstString(tag DataElementTag) string {
	if elem, ok := ds.Elements[tag]; ok {
		if s := elem.Strings(); len(s) > 0 {
			return s[0]
		}
	}
	return ""
}

// Uint16 returns the first value of a US element, ok is false if absent
func (ds *DataSet) Uint16(tag DataElementTag) (uint16, bool) {
	if elem, ok := ds.Elements[tag]; ok {
		if v, ok := elem.ValueField.([]uint16); ok && len(v) > 0 {
			return v[0], true
		}
	}
	return 0, false
}

// SortedTags returns the tags of the DataSet in ascending order
func (ds *DataSet) SortedTags() []DataElementTag {
	tags := make([]DataElementTag, 0, len(ds.Elements))
	for tag := range ds.Elements {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// SortedElements returns the elements of the DataSet in ascending tag order
func (ds *DataSet) SortedElements() []*DataElement {
	ret := make([]*DataElement, 0, len(ds.Elements))
	for _, tag := range ds.SortedTags() {
		ret = append(ret, ds.Elements[tag])
	}
	return ret
}

// MetaElements returns a DataSet holding only the file meta elements (group 0002)
func (ds *DataSet) MetaElements() *DataSet {
	ret := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for tag, elem := range ds.Elements {
		if tag.IsMetadataElement() {
			ret.Elements[tag] = elem
		}
	}
	return ret
}

// withoutMeta returns a DataSet holding every element except the file meta elements
func (ds *DataSet) withoutMeta() *DataSet {
	ret := &DataSet{Elements: map[DataElementTag]*DataElement{}, Length: ds.Length}
	for tag, elem := range ds.Elements {
		if !tag.IsMetadataElement() {
			ret.Elements[tag] = elem
		}
	}
	return ret
}

func (ds *DataSet) withoutGroupLength() *DataSet {
	ret := &DataSet{Elements: make(map[DataElementTag]*DataElement, len(ds.Elements)), Length: ds.Length}
	for tag, elem := range ds.Elements {
		if tag != FileMetaInformationGroupLengthTag {
			ret.Elements[tag] = elem
		}
	}
	return ret
}

func (ds *DataSet) isMetaHeader() bool {
	for tag := range ds.Elements {
		if !tag.IsMetadataElement() {
			return false
		}
	}
	return true
}

// TransferSyntax returns the transfer syntax announced by the Transfer Syntax UID element.
// A DataSet without one is implicit VR little endian, the default of bare data sets.
func (ds *DataSet) TransferSyntax() (*TransferSyntax, error) {
	elem, ok := ds.Elements[TransferSyntaxUIDTag]
	if !ok {
		return implicitVRLittleEndian, nil
	}
	uids := elem.Strings()
	if len(uids) != 1 {
		return nil, fmt.Errorf("%w: expected 1 transfer syntax uid, got %d", ErrUnresolvedTransferSyntax, len(uids))
	}
	return LookupTransferSyntax(uids[0])
}

// Equal reports whether both data sets hold equal elements
func (ds *DataSet) Equal(o *DataSet) bool {
	if ds == nil || o == nil {
		return ds == o
	}
	if len(ds.Elements) != len(o.Elements) {
		return false
	}
	for tag, elem := range ds.Elements {
		if !elem.Equal(o.Elements[tag]) {
			return false
		}
	}
	return true
}

func (ds *DataSet) String() string {
	return ds.string(0)
}

func (ds *DataSet) string(indentLvl int) string {
	lines := make([]string, 0, len(ds.Elements))
	for _, elem := range ds.SortedElements() {
		lines = append(lines, elem.string(indentLvl))
	}
	return strings.Join(lines, "\n")
}

// Sequence models a DICOM sequence
type Sequence struct {
	Items []*DataSet
}

// Equal reports whether both sequences hold equal items in the same order
func (seq *Sequence) Equal(o *Sequence) bool {
	if seq == nil || o == nil {
		return seq == o
	}
	if len(seq.Items) != len(o.Items) {
		return false
	}
	for i := range seq.Items {
		if !seq.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

func (seq *Sequence) String() string {
	return seq.string(0)
}

func (seq *Sequence) string(indentLvl int) string {
	lines := make([]string, 0)
	for i, obj := range seq.Items {
		lines = append(lines, fmt.Sprintf("%s> item %d", strings.Repeat("  ", indentLvl+1), i+1))
		lines = append(lines, obj.string(indentLvl+2))
	}
	return "\n" + strings.Join(lines, "\n")
}

func (seq *Sequence) append(dataSet *DataSet) {
	seq.Items = append(seq.Items, dataSet)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataElement_Equal(t *testing.T) {
	name := &DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A", "B"}}

	tests := []struct {
		name  string
		other *DataElement
		want  bool
	}{
		{"same", &DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A", "B"}, ValueLength: 4}, true},
		{"other tag", &DataElement{Tag: PatientIDTag, VR: PNVR, ValueField: []string{"A", "B"}}, false},
		{"other vr", &DataElement{Tag: PatientNameTag, VR: LOVR, ValueField: []string{"A", "B"}}, false},
		{"fewer values", &DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A"}}, false},
		{"padded last value", &DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A", "B "}}, true},
		{"padded inner value", &DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A ", "B"}}, false},
		{"other value type", &DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []byte("A\\B")}, false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, name.Equal(tc.other))
		})
	}

	empty := &DataElement{Tag: RowsTag, VR: USVR, ValueField: []uint16{}}
	assert.True(t, empty.Equal(&DataElement{Tag: RowsTag, VR: USVR, ValueField: []uint16(nil)}))
	assert.False(t, empty.Equal(&DataElement{Tag: RowsTag, VR: USVR, ValueField: []int16{}}))
}

func TestDataElement_Equal_TrailingSpace(t *testing.T) {
	for _, vr := range []*VR{CSVR, LOVR, UTVR, UIVR} {
		t.Run(vr.Name, func(t *testing.T) {
			value := "ABC" + string(vr.Padding())
			elem := &DataElement{Tag: PatientIDTag, VR: vr, ValueField: []string{value}}

			raw, err := encodeValue(elem.ValueField, vr, binary.LittleEndian)
			require.NoError(t, err)
			assert.Len(t, raw, 4)
			decoded, err := decodeValue(raw, vr, binary.LittleEndian)
			require.NoError(t, err)
			assert.Equal(t, []string{"ABC"}, decoded)

			assert.True(t, elem.Equal(&DataElement{Tag: PatientIDTag, VR: vr, ValueField: decoded}))
		})
	}
}

func TestDataSet_Equal(t *testing.T) {
	a := sampleDataSet(ExplicitVRLittleEndianUID)
	b := sampleDataSet(ExplicitVRLittleEndianUID)
	assert.True(t, a.Equal(b))

	item := b.Elements[ReferencedStudySequenceTag].ValueField.(*Sequence).Items[0]
	item.Elements[ReferencedSOPInstanceUIDTag].ValueField = []string{"9.9"}
	assert.False(t, a.Equal(b))

	var none *DataSet
	assert.True(t, none.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestDataSet_String(t *testing.T) {
	ds := sampleDataSet(ExplicitVRLittleEndianUID)
	s := ds.String()
	assert.Contains(t, s, "(0010,0010) PN PatientName [DOE^JOHN]")
	assert.Contains(t, s, "(0008,1110) SQ ReferencedStudySequence\n  > item 1\n    (0008,1150) UI")
	assert.Contains(t, s, "(7FE0,0010) OW PixelData [01 00 02 00 03 00 04 01]")

	elem := &DataElement{Tag: PixelDataTag, VR: OBVR, ValueField: NewEncapsulatedPixelData([][]byte{{1, 2}}, 0)}
	assert.Equal(t, "(7FE0,0010) OB PixelData [1 fragments]", elem.String())
}

func TestDataSet_Accessors(t *testing.T) {
	ds := sampleDataSet(ExplicitVRLittleEndianUID)

	meta := ds.MetaElements()
	assert.Len(t, meta.Elements, 4)
	for tag := range meta.Elements {
		assert.True(t, tag.IsMetadataElement())
	}
	body := ds.withoutMeta()
	assert.Len(t, body.Elements, len(ds.Elements)-4)
	assert.True(t, meta.isMetaHeader())
	assert.False(t, body.isMetaHeader())

	rows, ok := ds.Uint16(RowsTag)
	assert.True(t, ok)
	assert.Equal(t, uint16(2), rows)
	_, ok = ds.Uint16(PatientNameTag)
	assert.False(t, ok)
	assert.Equal(t, "", ds.FirstString(NumberOfFramesTag))

	elem, ok := ds.Get(ModalityTag)
	require.True(t, ok)
	assert.Equal(t, CSVR, elem.VR)

	added := &DataSet{}
	added.Add(&DataElement{Tag: ModalityTag, VR: CSVR, ValueField: []string{"OT"}})
	assert.Equal(t, "OT", added.FirstString(ModalityTag))

	seq := NewDataSet(map[DataElementTag]interface{}{NewTag(0x0009, 0x1010): &Sequence{}})
	assert.Equal(t, SQVR, seq.Elements[NewTag(0x0009, 0x1010)].VR)
}

func TestDataSet_TransferSyntax(t *testing.T) {
	tests := []struct {
		name    string
		uids    []string
		present bool
		wantUID string
		wantErr bool
	}{
		{"absent", nil, false, ImplicitVRLittleEndianUID, false},
		{"known", []string{ExplicitVRBigEndianUID}, true, ExplicitVRBigEndianUID, false},
		{"unknown", []string{"1.2.3.4.999"}, true, "1.2.3.4.999", true},
		{"several", []string{ExplicitVRBigEndianUID, ExplicitVRLittleEndianUID}, true, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := NewDataSet(map[DataElementTag]interface{}{PatientNameTag: []string{"A"}})
			if tc.present {
				ds.Add(&DataElement{Tag: TransferSyntaxUIDTag, VR: UIVR, ValueField: tc.uids})
			}

			syntax, err := ds.TransferSyntax()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnresolvedTransferSyntax)
			} else {
				assert.NoError(t, err)
			}
			if tc.wantUID != "" {
				require.NotNil(t, syntax)
				assert.Equal(t, tc.wantUID, syntax.UID)
			}
		})
	}
}

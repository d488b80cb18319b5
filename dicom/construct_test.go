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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTripSyntaxes = []string{
	ImplicitVRLittleEndianUID,
	ExplicitVRLittleEndianUID,
	ExplicitVRBigEndianUID,
	DeflatedExplicitVRLittleEndianUID,
}

func TestConstruct_RoundTrip(t *testing.T) {
	for _, uid := range roundTripSyntaxes {
		t.Run(uid, func(t *testing.T) {
			want := sampleDataSet(uid)
			encoded := construct(t, want)

			got := parseBytes(t, encoded, DropGroupLengths)
			requireDataSetEqual(t, want, got)
		})
	}
}

func TestConstruct_Idempotent(t *testing.T) {
	for _, uid := range roundTripSyntaxes {
		t.Run(uid, func(t *testing.T) {
			first := construct(t, sampleDataSet(uid))
			parsed := parseBytes(t, first)

			second := construct(t, parsed)
			third := construct(t, parsed)
			assert.Equal(t, first, second)
			assert.Equal(t, second, third)
		})
	}
}

func TestConstruct_DoesNotModifyInput(t *testing.T) {
	ds := sampleDataSet(ExplicitVRLittleEndianUID)
	before := ds.String()
	construct(t, ds, EncodeCharacterSet)
	assert.NotContains(t, ds.Elements, FileMetaInformationGroupLengthTag)
	assert.Equal(t, before, ds.String())
}

// walkExplicit checks the length of every top level element of an explicit VR little endian
// stream and returns the tags in stream order
func walkExplicit(t *testing.T, data []byte) []DataElementTag {
	t.Helper()
	var tags []DataElementTag
	for len(data) > 0 {
		require.GreaterOrEqual(t, len(data), 8)
		tag := NewTag(binary.LittleEndian.Uint16(data), binary.LittleEndian.Uint16(data[2:]))
		vr, err := LookupVR(string(data[4:6]))
		require.NoError(t, err)

		header, length := 8, uint32(binary.LittleEndian.Uint16(data[6:]))
		if vr.IsLongForm() {
			header, length = 12, binary.LittleEndian.Uint32(data[8:])
		}
		require.NotEqual(t, UndefinedLength, length, "%v", tag)
		assert.Zero(t, length%2, "odd length %d for %v", length, tag)
		require.GreaterOrEqual(t, len(data), header+int(length), "%v", tag)

		tags = append(tags, tag)
		data = data[header+int(length):]
	}
	return tags
}

func TestConstruct_ExplicitLengthsAreExact(t *testing.T) {
	encoded := construct(t, sampleDataSet(ExplicitVRLittleEndianUID))

	tags := walkExplicit(t, encoded[preambleSize+4:])
	assert.Equal(t, FileMetaInformationGroupLengthTag, tags[0])
	assert.Equal(t, PixelDataTag, tags[len(tags)-1])
	for i := 1; i < len(tags); i++ {
		assert.Less(t, tags[i-1], tags[i])
	}

	groupLength := binary.LittleEndian.Uint32(encoded[preambleSize+4+8:])
	meta := walkExplicit(t, encoded[preambleSize+4+12:preambleSize+4+12+int(groupLength)])
	assert.Equal(t, []DataElementTag{
		FileMetaInformationVersionTag, MediaStorageSOPClassUIDTag, MediaStorageSOPInstanceUIDTag, TransferSyntaxUIDTag,
	}, meta)
}

func TestConstruct_GroupLengthRecomputed(t *testing.T) {
	ds := sampleDataSet(ExplicitVRLittleEndianUID)
	ds.Add(&DataElement{Tag: FileMetaInformationGroupLengthTag, VR: ULVR, ValueField: []uint32{1}})

	got := parseBytes(t, construct(t, ds))
	length := got.Elements[FileMetaInformationGroupLengthTag].ValueField.([]uint32)
	assert.NotEqual(t, []uint32{1}, length)
	assert.Equal(t, "OT", got.FirstString(ModalityTag))
}

func TestConstruct_NestedSequences(t *testing.T) {
	tests := []struct {
		name   string
		length uint32
	}{
		{"explicit", 0},
		{"undefined", UndefinedLength},
	}

	for _, uid := range roundTripSyntaxes {
		for _, tc := range tests {
			t.Run(uid+"/"+tc.name, func(t *testing.T) {
				want := nestedDataSet(3, 2, tc.length)
				for tag, v := range metaHeader(uid) {
					want.Add(&DataElement{Tag: tag, VR: tag.DictionaryVR(), ValueField: v})
				}
				want.Add(&DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"DOE^JOHN"}})

				encoded := construct(t, want)
				got := parseBytes(t, encoded, DropGroupLengths)
				requireDataSetEqual(t, want, got)

				elem := got.Elements[ReferencedStudySequenceTag]
				assert.Equal(t, tc.length == UndefinedLength, elem.ValueLength == UndefinedLength)
				for _, item := range elem.ValueField.(*Sequence).Items {
					assert.Equal(t, tc.length == UndefinedLength, item.Length == UndefinedLength)
				}
				assert.Equal(t, encoded, construct(t, got))
			})
		}
	}
}

func TestConstruct_LengthPolicies(t *testing.T) {
	tests := []struct {
		name          string
		source        uint32
		opts          []ConstructOption
		wantUndefined bool
	}{
		{"preserve explicit", 0, nil, false},
		{"preserve undefined", UndefinedLength, nil, true},
		{"force explicit", UndefinedLength, []ConstructOption{ExplicitLengths}, false},
		{"force undefined", 0, []ConstructOption{UndefinedLengths}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := nestedDataSet(2, 1, tc.source)
			buf := &bytes.Buffer{}
			require.NoError(t, ConstructDataSet(buf, ds, ExplicitVRLittleEndianUID, tc.opts...))

			got, err := ParseDataSet(bytes.NewReader(buf.Bytes()), ExplicitVRLittleEndianUID)
			require.NoError(t, err)
			requireDataSetEqual(t, ds, got)

			elem := got.Elements[ReferencedStudySequenceTag]
			assert.Equal(t, tc.wantUndefined, elem.ValueLength == UndefinedLength)
			item := elem.ValueField.(*Sequence).Items[0]
			assert.Equal(t, tc.wantUndefined, item.Length == UndefinedLength)
			nested := item.Elements[ReferencedImageSequenceTag]
			assert.Equal(t, tc.wantUndefined, nested.ValueLength == UndefinedLength)
		})
	}
}

func TestConstruct_UndefinedLengthClosure(t *testing.T) {
	ds := nestedDataSet(1, 1, UndefinedLength)
	ds.Add(&DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"AFTER"}})
	ds.Add(&DataElement{Tag: NewTag(0x0011, 0x1010), VR: UNVR, ValueField: &Sequence{Items: []*DataSet{
		NewDataSet(map[DataElementTag]interface{}{ReferencedSOPInstanceUIDTag: []string{"1.2"}}),
	}}})

	buf := &bytes.Buffer{}
	require.NoError(t, ConstructDataSet(buf, ds, ExplicitVRLittleEndianUID))
	encoded := buf.Bytes()
	assert.True(t, bytes.HasSuffix(encoded, []byte{0xFE, 0xFF, 0xDD, 0xE0, 0, 0, 0, 0}),
		"the UN sequence is written with undefined length")

	got, err := ParseDataSet(bytes.NewReader(encoded), ExplicitVRLittleEndianUID)
	require.NoError(t, err)
	requireDataSetEqual(t, ds, got)
	assert.Equal(t, "AFTER", got.FirstString(PatientNameTag))
}

func TestConstruct_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ds      *DataSet
		opts    []ConstructOption
		wantErr error
	}{
		{
			name:    "missing transfer syntax",
			ds:      NewDataSet(map[DataElementTag]interface{}{PatientNameTag: []string{"A"}}),
			wantErr: ErrUnresolvedTransferSyntax,
		},
		{
			name: "value delimiter inside a value",
			ds: func() *DataSet {
				ds := sampleDataSet(ExplicitVRLittleEndianUID)
				ds.Elements[ModalityTag].ValueField = []string{`O\T`}
				return ds
			}(),
			wantErr: ErrInvalidValue,
		},
		{
			name:    "short preamble",
			ds:      sampleDataSet(ExplicitVRLittleEndianUID),
			opts:    []ConstructOption{WithPreamble(make([]byte, 10))},
			wantErr: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Construct(&bytes.Buffer{}, tc.ds, tc.opts...)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	t.Run("bulk data references", func(t *testing.T) {
		ds := sampleDataSet(ExplicitVRLittleEndianUID)
		ds.Elements[PixelDataTag].ValueField = []BulkDataReference{{ByteRegion{0, 8}}}
		assert.Error(t, Construct(&bytes.Buffer{}, ds))
	})

	t.Run("sequence held by a non sequence vr", func(t *testing.T) {
		ds := sampleDataSet(ExplicitVRLittleEndianUID)
		ds.Elements[ReferencedStudySequenceTag].VR = LOVR
		assert.Error(t, Construct(&bytes.Buffer{}, ds))
	})
}

func TestConstruct_UnknownTransferSyntax(t *testing.T) {
	ds := sampleDataSet("1.2.3.4.999")
	encoded := construct(t, ds, WithConstructLogger(quietLogger()))

	got := parseBytes(t, encoded, DropGroupLengths, WithLogger(quietLogger()))
	requireDataSetEqual(t, ds, got)
}

func TestConstruct_Options(t *testing.T) {
	t.Run("preamble", func(t *testing.T) {
		preamble := bytes.Repeat([]byte{0xAB}, preambleSize)
		encoded := construct(t, sampleDataSet(ExplicitVRLittleEndianUID), WithPreamble(preamble))
		assert.Equal(t, preamble, encoded[:preambleSize])
		assert.Equal(t, dicomMagic, string(encoded[preambleSize:preambleSize+4]))
	})

	t.Run("transform", func(t *testing.T) {
		dropName := ConstructOptionWithTransform(func(e *DataElement) (*DataElement, error) {
			if e.Tag == PatientNameTag {
				return nil, nil
			}
			return e, nil
		})
		got := parseBytes(t, construct(t, sampleDataSet(ExplicitVRLittleEndianUID), dropName))
		assert.NotContains(t, got.Elements, PatientNameTag)
		assert.Contains(t, got.Elements, PatientIDTag)
	})

	t.Run("missing vr filled from the dictionary", func(t *testing.T) {
		ds := sampleDataSet(ExplicitVRLittleEndianUID)
		ds.Elements[RowsTag].VR = nil
		got := parseBytes(t, construct(t, ds))
		assert.Equal(t, USVR, got.Elements[RowsTag].VR)
	})
}

func TestConstructDataSet(t *testing.T) {
	for _, uid := range roundTripSyntaxes {
		t.Run(uid, func(t *testing.T) {
			want := sampleDataSet(uid).withoutMeta()
			buf := &bytes.Buffer{}
			require.NoError(t, ConstructDataSet(buf, sampleDataSet(uid), uid))

			got, err := ParseDataSet(bytes.NewReader(buf.Bytes()), uid)
			require.NoError(t, err)
			requireDataSetEqual(t, want, got)
		})
	}

	t.Run("unknown syntax", func(t *testing.T) {
		err := ConstructDataSet(&bytes.Buffer{}, sampleDataSet(ExplicitVRLittleEndianUID), "1.2.3.4.999")
		assert.ErrorIs(t, err, ErrUnresolvedTransferSyntax)
	})
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBulkDataDefinition(t *testing.T) {
	tests := []struct {
		tag  DataElementTag
		want bool
	}{
		{PixelDataTag, true},
		{FloatPixelDataTag, true},
		{EncapsulatedDocumentTag, true},
		{NewTag(0x6002, 0x3000), true},
		{NewTag(0x50FE, 0x3000), true},
		{NewTag(0x5004, 0x200C), true},
		{NewTag(0x6000, 0x0010), false},
		{PatientNameTag, false},
		{NewTag(0x7FE1, 0x0010), false},
	}

	for _, tc := range tests {
		t.Run(tc.tag.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, DefaultBulkDataDefinition(&DataElement{Tag: tc.tag}))
		})
	}
}

func TestReferenceBulkData(t *testing.T) {
	for _, uid := range []string{ImplicitVRLittleEndianUID, ExplicitVRLittleEndianUID} {
		t.Run(uid, func(t *testing.T) {
			ds := sampleDataSet(uid)
			encoded := construct(t, ds)

			got := parseBytes(t, encoded, ReferenceBulkData(DefaultBulkDataDefinition))
			refs, ok := got.Elements[PixelDataTag].ValueField.([]BulkDataReference)
			require.True(t, ok)
			require.Len(t, refs, 1)
			assert.Equal(t, int64(8), refs[0].Reference.Length)

			value, err := refs[0].Read(bytes.NewReader(encoded))
			require.NoError(t, err)
			assert.Equal(t, ds.Elements[PixelDataTag].ValueField, value)
			assert.Equal(t, "DOE^JOHN", got.FirstString(PatientNameTag))

			_, err = BulkDataReference{ByteRegion{int64(len(encoded)) - 2, 8}}.Read(bytes.NewReader(encoded))
			assert.Error(t, err)
		})
	}
}

func TestReferenceBulkData_Encapsulated(t *testing.T) {
	frames := [][]byte{{1, 2, 3, 4}, {5, 6}}
	ds := encapsulatedDataSet(JPEGBaselineUID, frames)
	encoded := construct(t, ds)

	got := parseBytes(t, encoded, ReferenceBulkData(DefaultBulkDataDefinition))
	refs, ok := got.Elements[PixelDataTag].ValueField.([]BulkDataReference)
	require.True(t, ok)

	p := ds.Elements[PixelDataTag].ValueField.(*EncapsulatedPixelData)
	require.Len(t, refs, 1+len(p.Fragments))

	table, err := refs[0].Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Len(t, table, 4*len(p.OffsetTable))
	for i, fragment := range p.Fragments {
		value, err := refs[i+1].Read(bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, fragment, value)
	}

	err = Construct(&bytes.Buffer{}, got)
	assert.Error(t, err, "references must be resolved before writing")
}

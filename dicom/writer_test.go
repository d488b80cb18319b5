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

func TestDataElementWriter(t *testing.T) {
	for _, uid := range roundTripSyntaxes {
		t.Run(uid, func(t *testing.T) {
			want := sampleDataSet(uid)

			buf := &bytes.Buffer{}
			w, err := NewDataElementWriter(buf, want.MetaElements(), WithConstructLogger(quietLogger()))
			require.NoError(t, err)
			for _, elem := range want.withoutMeta().SortedElements() {
				require.NoError(t, w.WriteElement(elem))
			}
			require.NoError(t, w.Close())

			assert.Equal(t, construct(t, want), buf.Bytes())
			got := parseBytes(t, buf.Bytes(), DropGroupLengths)
			requireDataSetEqual(t, want, got)
		})
	}
}

func TestDataElementWriter_Errors(t *testing.T) {
	meta := sampleDataSet(ExplicitVRLittleEndianUID).MetaElements()

	_, err := NewDataElementWriter(&bytes.Buffer{}, sampleDataSet(ExplicitVRLittleEndianUID))
	assert.Equal(t, errExpectedMetaHeader, err)

	noSyntax := meta.withoutGroupLength()
	delete(noSyntax.Elements, TransferSyntaxUIDTag)
	_, err = NewDataElementWriter(&bytes.Buffer{}, noSyntax)
	assert.ErrorIs(t, err, ErrUnresolvedTransferSyntax)

	w, err := NewDataElementWriter(&bytes.Buffer{}, meta)
	require.NoError(t, err)
	require.NoError(t, w.WriteElement(&DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A"}}))
	err = w.WriteElement(&DataElement{Tag: ModalityTag, VR: CSVR, ValueField: []string{"OT"}})
	assert.ErrorIs(t, err, ErrTagOrder)
}

func TestDataElementWriter_DeflatedClose(t *testing.T) {
	want := sampleDataSet(DeflatedExplicitVRLittleEndianUID)

	buf := &bytes.Buffer{}
	w, err := NewDataElementWriter(buf, want.MetaElements())
	require.NoError(t, err)
	for _, elem := range want.withoutMeta().SortedElements() {
		require.NoError(t, w.WriteElement(elem))
	}

	// the deflated tail is only written on Close
	_, err = Parse(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err)

	require.NoError(t, w.Close())
	got := parseBytes(t, buf.Bytes(), DropGroupLengths)
	requireDataSetEqual(t, want, got)
}

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
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataElementIterator_Order(t *testing.T) {
	for _, uid := range roundTripSyntaxes {
		t.Run(uid, func(t *testing.T) {
			ds := sampleDataSet(uid)
			iter, err := NewDataElementIterator(bytes.NewReader(construct(t, ds)))
			require.NoError(t, err)
			assert.Equal(t, uid, iter.TransferSyntax().UID)

			var tags []DataElementTag
			for elem, err := iter.NextElement(); err != io.EOF; elem, err = iter.NextElement() {
				require.NoError(t, err)
				tags = append(tags, elem.Tag)
			}

			want := append([]DataElementTag{FileMetaInformationGroupLengthTag}, ds.SortedTags()...)
			assert.Equal(t, want, tags)

			_, err = iter.NextElement()
			assert.Equal(t, io.EOF, err, "an exhausted iterator keeps returning io.EOF")
		})
	}
}

func TestDataElementIterator_BareDataSet(t *testing.T) {
	data := newStreamBuilder(implicitVRLittleEndian).
		text(ModalityTag, "", "OT").
		text(PatientNameTag, "", "AB").
		bytes()

	iter, err := NewDataElementIterator(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ImplicitVRLittleEndianUID, iter.TransferSyntax().UID)

	ds, err := CollectDataElements(iter)
	require.NoError(t, err)
	assert.Equal(t, "AB", ds.FirstString(PatientNameTag))
	assert.Equal(t, CSVR, ds.Elements[ModalityTag].VR)
}

func TestDataElementIterator_Close(t *testing.T) {
	iter, err := NewDataElementIterator(bytes.NewReader(construct(t, sampleDataSet(ExplicitVRLittleEndianUID))))
	require.NoError(t, err)

	_, err = iter.NextElement()
	require.NoError(t, err)
	require.NoError(t, iter.Close())
	_, err = iter.NextElement()
	assert.Equal(t, io.EOF, err)

	truncated := newStreamBuilder(implicitVRLittleEndian).
		text(ModalityTag, "", "OT").
		header(PatientNameTag, "", 8).raw([]byte("AB")).
		bytes()
	iter, err = NewDataElementIterator(bytes.NewReader(truncated))
	require.NoError(t, err)
	assert.ErrorIs(t, iter.Close(), ErrTruncatedStream)
}

func TestDataElementIterator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		opts    []ParseOption
		wantErr error
	}{
		{
			name:    "missing transfer syntax",
			data:    part10WithoutSyntax(),
			wantErr: ErrUnresolvedTransferSyntax,
		},
		{
			name:    "truncated meta group",
			data:    part10(ExplicitVRLittleEndianUID, nil)[:preambleSize+4+12+6],
			wantErr: ErrTruncatedStream,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDataElementIterator(bytes.NewReader(tc.data), tc.opts...)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// part10WithoutSyntax is a Part 10 file whose meta group lacks the Transfer Syntax UID
func part10WithoutSyntax() []byte {
	return newStreamBuilder(explicitVRLittleEndian).
		raw(make([]byte, preambleSize)).raw([]byte(dicomMagic)).
		element(FileMetaInformationVersionTag, "OB", []byte{0, 1}).
		text(PatientNameTag, "PN", "AB").
		bytes()
}

func TestDataElementIterator_Concurrent(t *testing.T) {
	streams := make([][]byte, 8)
	for i := range streams {
		ds := sampleDataSet(roundTripSyntaxes[i%len(roundTripSyntaxes)])
		ds.Elements[PatientIDTag].ValueField = []string{fmt.Sprintf("ID%02d", i)}
		streams[i] = construct(t, ds)
	}

	ids := make([]string, len(streams))
	errs := make([]error, len(streams))
	var wg sync.WaitGroup
	for i, data := range streams {
		wg.Add(1)
		go func(i int, data []byte) {
			defer wg.Done()
			iter, err := NewDataElementIterator(bytes.NewReader(data), WithLogger(quietLogger()))
			if err != nil {
				errs[i] = err
				return
			}
			ds, err := CollectDataElements(iter)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = ds.FirstString(PatientIDTag)
		}(i, data)
	}
	wg.Wait()

	for i := range streams {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("ID%02d", i), ids[i])
	}
}

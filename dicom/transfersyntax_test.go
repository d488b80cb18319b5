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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTransferSyntax(t *testing.T) {
	tests := []struct {
		uid          string
		implicit     bool
		order        binary.ByteOrder
		deflated     bool
		encapsulated bool
		scheme       CompressionScheme
	}{
		{ImplicitVRLittleEndianUID, true, binary.LittleEndian, false, false, SchemeNone},
		{ExplicitVRLittleEndianUID, false, binary.LittleEndian, false, false, SchemeNone},
		{DeflatedExplicitVRLittleEndianUID, false, binary.LittleEndian, true, false, SchemeNone},
		{ExplicitVRBigEndianUID, false, binary.BigEndian, false, false, SchemeNone},
		{EncapsulatedUncompressedUID, false, binary.LittleEndian, false, true, SchemeUncompressed},
		{JPEGBaselineUID, false, binary.LittleEndian, false, true, SchemeJPEGBaseline},
		{JPEGLosslessSV1UID, false, binary.LittleEndian, false, true, SchemeJPEGLossless},
		{JPEG2000UID, false, binary.LittleEndian, false, true, SchemeJPEG2000},
		{HTJ2KLosslessUID, false, binary.LittleEndian, false, true, SchemeHTJ2K},
		{RLELosslessUID, false, binary.LittleEndian, false, true, SchemeRLE},
		{DeflatedImageFrameCompressionUID, false, binary.LittleEndian, false, true, SchemeDeflate},
	}

	for _, tc := range tests {
		t.Run(tc.uid, func(t *testing.T) {
			ts, err := LookupTransferSyntax(tc.uid + "\x00")
			require.NoError(t, err)
			assert.Equal(t, tc.uid, ts.UID)
			assert.Equal(t, tc.implicit, ts.Implicit)
			assert.Equal(t, tc.order, ts.ByteOrder)
			assert.Equal(t, tc.deflated, ts.Deflated)
			assert.Equal(t, tc.encapsulated, ts.Encapsulated)
			assert.Equal(t, tc.scheme, ts.Scheme)
			assert.True(t, ts.IsResolved())
		})
	}
}

func TestLookupTransferSyntax_Unknown(t *testing.T) {
	ts, err := LookupTransferSyntax("1.2.3.4.999 ")
	assert.ErrorIs(t, err, ErrUnresolvedTransferSyntax)
	require.NotNil(t, ts)
	assert.Equal(t, "1.2.3.4.999", ts.UID)
	assert.False(t, ts.IsResolved())
	assert.False(t, ts.Implicit)
	assert.Equal(t, binary.LittleEndian, ts.ByteOrder)
	assert.Equal(t, "Unknown (1.2.3.4.999)", ts.String())
}

func TestTransferSyntaxes(t *testing.T) {
	all := TransferSyntaxes()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].UID, all[i].UID)
	}
	for _, ts := range all {
		got, err := LookupTransferSyntax(ts.UID)
		require.NoError(t, err)
		assert.Same(t, ts, got)
		assert.NotEqual(t, SchemeUnknown, ts.Scheme)
		assert.False(t, ts.Implicit && ts.ByteOrder != binary.LittleEndian, "implicit syntaxes are little endian")
	}
}

func TestCompressionScheme_String(t *testing.T) {
	assert.Equal(t, "rle", SchemeRLE.String())
	assert.Equal(t, "none", SchemeNone.String())
	assert.Equal(t, "CompressionScheme(99)", CompressionScheme(99).String())
}

func TestTransferSyntax_HeaderSize(t *testing.T) {
	assert.Equal(t, uint32(8), implicitVRLittleEndian.headerSize(OBVR))
	assert.Equal(t, uint32(8), explicitVRLittleEndian.headerSize(USVR))
	assert.Equal(t, uint32(12), explicitVRLittleEndian.headerSize(OBVR))
	assert.Equal(t, uint32(12), explicitVRBigEndian.headerSize(UTVR))
	assert.Equal(t, UndefinedLength, explicitVRLittleEndian.elementSize(SQVR, UndefinedLength))
	assert.Equal(t, uint32(18), explicitVRLittleEndian.elementSize(PNVR, 10))
}

func TestTransferSyntax_ShortLengthOverflow(t *testing.T) {
	comments := NewTag(0x0010, 0x4000)
	ds := NewDataSet(map[DataElementTag]interface{}{comments: []string{strings.Repeat("A", 70000)}})
	ds.Elements[comments].VR = LOVR

	err := ConstructDataSet(&bytes.Buffer{}, ds, ExplicitVRLittleEndianUID)
	assert.ErrorIs(t, err, ErrMalformedLength)

	// implicit VR syntaxes always have 32-bit lengths
	require.NoError(t, ConstructDataSet(&bytes.Buffer{}, ds, ImplicitVRLittleEndianUID))
}

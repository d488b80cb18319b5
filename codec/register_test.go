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

package codec

import (
	"bytes"
	"testing"

	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// imageDataSet holds two 4x4 frames of 16 bit pixels
func imageDataSet() *dicom.DataSet {
	pixels := make([]byte, 2*4*4*2)
	for i := range pixels {
		pixels[i] = byte(i % 5)
	}
	ds := dicom.NewDataSet(map[dicom.DataElementTag]interface{}{
		dicom.FileMetaInformationVersionTag: []byte{0, 1},
		dicom.MediaStorageSOPClassUIDTag:    []string{"1.2.840.10008.5.1.4.1.1.7"},
		dicom.MediaStorageSOPInstanceUIDTag: []string{"1.2.3.4.5"},
		dicom.TransferSyntaxUIDTag:          []string{dicom.ExplicitVRLittleEndianUID},
		dicom.SamplesPerPixelTag:            []uint16{1},
		dicom.RowsTag:                       []uint16{4},
		dicom.ColumnsTag:                    []uint16{4},
		dicom.BitsAllocatedTag:              []uint16{16},
		dicom.BitsStoredTag:                 []uint16{16},
		dicom.PixelRepresentationTag:        []uint16{0},
		dicom.NumberOfFramesTag:             []string{"2"},
		dicom.PixelDataTag:                  pixels,
	})
	ds.Elements[dicom.PixelDataTag].VR = dicom.OWVR
	return ds
}

func lookupSyntax(t *testing.T, uid string) *dicom.TransferSyntax {
	t.Helper()
	syntax, err := dicom.LookupTransferSyntax(uid)
	require.NoError(t, err)
	return syntax
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	for _, scheme := range []dicom.CompressionScheme{dicom.SchemeRLE, dicom.SchemeDeflate, dicom.SchemeJPEGBaseline} {
		c, err := reg.Lookup(scheme)
		require.NoError(t, err, scheme.String())
		assert.Equal(t, scheme, c.Scheme())
	}

	_, err := reg.Lookup(dicom.SchemeJPEG2000)
	assert.ErrorIs(t, err, dicom.ErrUnsupportedCompressionScheme)

	reg = dicom.NewCodecRegistry()
	RegisterDefaults(reg)
	_, err = reg.Lookup(dicom.SchemeRLE)
	assert.NoError(t, err)
}

func TestTranscode_RoundTrip(t *testing.T) {
	native := lookupSyntax(t, dicom.ExplicitVRLittleEndianUID)

	for _, uid := range []string{dicom.RLELosslessUID, dicom.DeflatedImageFrameCompressionUID} {
		t.Run(uid, func(t *testing.T) {
			reg := NewRegistry()
			ds := imageDataSet()
			syntax := lookupSyntax(t, uid)

			compressed, err := dicom.Transcode(ds, native, syntax, reg)
			require.NoError(t, err)

			buf := &bytes.Buffer{}
			require.NoError(t, dicom.Construct(buf, compressed))
			parsed, err := dicom.Parse(buf)
			require.NoError(t, err)
			assert.Equal(t, uid, parsed.FirstString(dicom.TransferSyntaxUIDTag))

			pd, err := dicom.DecodePixelData(parsed, syntax, reg)
			require.NoError(t, err)
			require.False(t, pd.DecompressionSkipped)
			assert.False(t, pd.Compressed)
			require.Len(t, pd.Frames, 2)

			back, err := dicom.Transcode(parsed, syntax, native, reg)
			require.NoError(t, err)
			assert.Equal(t, ds.Elements[dicom.PixelDataTag].ValueField, back.Elements[dicom.PixelDataTag].ValueField)
		})
	}
}

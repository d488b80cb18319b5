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
	"sync"
	"testing"

	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflate_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		info dicom.FrameInfo
		raw  []byte
	}{
		{
			"uniform",
			dicom.FrameInfo{Rows: 64, Columns: 64, SamplesPerPixel: 1, BitsAllocated: 8},
			bytes.Repeat([]byte{0x42}, 64*64),
		},
		{
			"16 bit",
			dicom.FrameInfo{Rows: 2, Columns: 2, SamplesPerPixel: 1, BitsAllocated: 16},
			[]byte{1, 2, 3, 4, 5, 6, 7, 8},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			compressed, err := Deflate{}.Compress(tc.info, tc.raw)
			require.NoError(t, err)

			got, err := Deflate{}.Decompress(tc.info, compressed)
			require.NoError(t, err)
			assert.Equal(t, tc.raw, got)
		})
	}
}

func TestDeflate_Padding(t *testing.T) {
	info := dicom.FrameInfo{Rows: 1, Columns: 3, SamplesPerPixel: 1, BitsAllocated: 8}
	compressed, err := Deflate{}.Compress(info, []byte{1, 2, 3, 0})
	require.NoError(t, err)

	got, err := Deflate{}.Decompress(info, compressed)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestDeflate_Errors(t *testing.T) {
	info := dicom.FrameInfo{Rows: 4, Columns: 4, SamplesPerPixel: 1, BitsAllocated: 8}
	short, err := Deflate{}.Compress(info, []byte{1, 2, 3})
	require.NoError(t, err)

	_, err = Deflate{}.Decompress(info, short)
	assert.ErrorIs(t, err, dicom.ErrMalformedLength)

	_, err = Deflate{}.Decompress(info, []byte{0xFF, 0xFF, 0xFF, 0xFF})
	assert.Error(t, err)
}

func TestDeflate_Concurrent(t *testing.T) {
	info := dicom.FrameInfo{Rows: 16, Columns: 16, SamplesPerPixel: 1, BitsAllocated: 8}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			raw := bytes.Repeat([]byte{byte(g)}, info.FrameSize())
			compressed, err := Deflate{}.Compress(info, raw)
			if !assert.NoError(t, err) {
				return
			}
			got, err := Deflate{}.Decompress(info, compressed)
			assert.NoError(t, err)
			assert.Equal(t, raw, got)
		}(g)
	}
	wg.Wait()
}

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
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefixCodec marks compressed frames with a two byte prefix
type prefixCodec struct {
	scheme CompressionScheme
	fail   bool
}

var errPrefixMissing = errors.New("prefix missing")

func (c prefixCodec) Scheme() CompressionScheme {
	return c.scheme
}

func (c prefixCodec) Decompress(info FrameInfo, frame []byte) ([]byte, error) {
	if c.fail || !bytes.HasPrefix(frame, []byte("ZZ")) || len(frame) < 2+info.FrameSize() {
		return nil, errPrefixMissing
	}
	return frame[2 : 2+info.FrameSize()], nil
}

func (c prefixCodec) Compress(info FrameInfo, raw []byte) ([]byte, error) {
	return append([]byte("ZZ"), raw...), nil
}

func mustSyntax(t *testing.T, uid string) *TransferSyntax {
	t.Helper()
	syntax, err := LookupTransferSyntax(uid)
	require.NoError(t, err)
	return syntax
}

// nativeDataSet holds two 2x2 frames of 8 bit pixels
func nativeDataSet(uid string) *DataSet {
	ds := NewDataSet(metaHeader(uid))
	for tag, v := range map[DataElementTag]interface{}{
		RowsTag:           []uint16{2},
		ColumnsTag:        []uint16{2},
		BitsAllocatedTag:  []uint16{8},
		NumberOfFramesTag: []string{"2"},
		PixelDataTag:      []byte{1, 2, 3, 4, 5, 6, 7, 8},
	} {
		ds.Add(&DataElement{Tag: tag, VR: tag.DictionaryVR(), ValueField: v})
	}
	ds.Elements[PixelDataTag].VR = OBVR
	return ds
}

func TestNewFrameInfo(t *testing.T) {
	fi, err := NewFrameInfo(sampleDataSet(ExplicitVRLittleEndianUID))
	require.NoError(t, err)
	assert.Equal(t, FrameInfo{
		Rows:            2,
		Columns:         2,
		SamplesPerPixel: 1,
		BitsAllocated:   16,
		BitsStored:      12,
	}, fi)
	assert.Equal(t, 8, fi.FrameSize())

	fi, err = NewFrameInfo(nativeDataSet(ExplicitVRLittleEndianUID))
	require.NoError(t, err)
	assert.Equal(t, 8, fi.BitsStored)
	assert.Equal(t, 1, fi.SamplesPerPixel)
	assert.Equal(t, 4, fi.FrameSize())

	ds := nativeDataSet(ExplicitVRLittleEndianUID)
	delete(ds.Elements, ColumnsTag)
	_, err = NewFrameInfo(ds)
	assert.Error(t, err)
}

func TestCodecRegistry(t *testing.T) {
	reg := NewCodecRegistry(prefixCodec{scheme: SchemeRLE})

	for _, scheme := range []CompressionScheme{SchemeNone, SchemeUncompressed} {
		c, err := reg.Lookup(scheme)
		require.NoError(t, err, scheme.String())
		assert.Equal(t, scheme, c.Scheme())
	}

	c, err := reg.Lookup(SchemeRLE)
	require.NoError(t, err)
	assert.Equal(t, prefixCodec{scheme: SchemeRLE}, c)

	_, err = reg.Lookup(SchemeJPEG2000)
	assert.ErrorIs(t, err, ErrUnsupportedCompressionScheme)

	reg.Register(prefixCodec{scheme: SchemeRLE, fail: true})
	c, err = reg.Lookup(SchemeRLE)
	require.NoError(t, err)
	assert.Equal(t, prefixCodec{scheme: SchemeRLE, fail: true}, c)

	var none *CodecRegistry
	_, err = none.Lookup(SchemeUncompressed)
	assert.NoError(t, err)
	_, err = none.Lookup(SchemeRLE)
	assert.ErrorIs(t, err, ErrUnsupportedCompressionScheme)
}

func TestCodecRegistry_Concurrent(t *testing.T) {
	reg := NewCodecRegistry()
	schemes := []CompressionScheme{SchemeRLE, SchemeDeflate, SchemeJPEGBaseline, SchemeJPEG2000}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scheme := schemes[i%len(schemes)]
			reg.Register(prefixCodec{scheme: scheme})
			_, err := reg.Lookup(scheme)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for _, scheme := range schemes {
		_, err := reg.Lookup(scheme)
		assert.NoError(t, err, scheme.String())
	}
}

func TestDecodePixelData_Native(t *testing.T) {
	ds := nativeDataSet(ExplicitVRLittleEndianUID)
	pd, err := DecodePixelData(ds, explicitVRLittleEndian, nil)
	require.NoError(t, err)
	assert.False(t, pd.Compressed)
	assert.Equal(t, SchemeNone, pd.Scheme)
	assert.Equal(t, [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}, pd.Frames)

	ds.Elements[NumberOfFramesTag].ValueField = []string{"3"}
	_, err = DecodePixelData(ds, explicitVRLittleEndian, nil)
	assert.ErrorIs(t, err, ErrMalformedLength)

	ds.Elements[NumberOfFramesTag].ValueField = []string{"x"}
	_, err = DecodePixelData(ds, explicitVRLittleEndian, nil)
	assert.ErrorIs(t, err, ErrInvalidValue)

	delete(ds.Elements, PixelDataTag)
	_, err = DecodePixelData(ds, explicitVRLittleEndian, nil)
	assert.Error(t, err)
}

func TestDecodePixelData_Encapsulated(t *testing.T) {
	rle := mustSyntax(t, RLELosslessUID)
	unknown, err := LookupTransferSyntax("1.2.3.4.999")
	require.ErrorIs(t, err, ErrUnresolvedTransferSyntax)

	compressed := [][]byte{[]byte("ZZ\x01\x02\x03\x04"), []byte("ZZ\x05\x06\x07\x08")}

	tests := []struct {
		name       string
		syntax     *TransferSyntax
		reg        *CodecRegistry
		wantSkip   error
		wantFrames [][]byte
	}{
		{
			name:       "decompressed",
			syntax:     rle,
			reg:        NewCodecRegistry(prefixCodec{scheme: SchemeRLE}),
			wantFrames: [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}},
		},
		{
			name:       "unknown transfer syntax",
			syntax:     unknown,
			reg:        NewCodecRegistry(prefixCodec{scheme: SchemeRLE}),
			wantSkip:   ErrUnresolvedTransferSyntax,
			wantFrames: compressed,
		},
		{
			name:       "no codec",
			syntax:     rle,
			reg:        NewCodecRegistry(),
			wantSkip:   ErrUnsupportedCompressionScheme,
			wantFrames: compressed,
		},
		{
			name:       "codec failure",
			syntax:     rle,
			reg:        NewCodecRegistry(prefixCodec{scheme: SchemeRLE, fail: true}),
			wantSkip:   errPrefixMissing,
			wantFrames: compressed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := encapsulatedDataSet(tc.syntax.UID, compressed)
			ds.Elements[PixelDataTag].ValueField = NewEncapsulatedPixelData(compressed, 0)

			pd, err := DecodePixelData(ds, tc.syntax, tc.reg)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFrames, pd.Frames)
			if tc.wantSkip == nil {
				assert.False(t, pd.DecompressionSkipped)
				assert.False(t, pd.Compressed)
				return
			}
			assert.True(t, pd.DecompressionSkipped)
			assert.True(t, pd.Compressed)
			assert.ErrorIs(t, pd.SkipReason, tc.wantSkip)
		})
	}
}

func TestEncodePixelData(t *testing.T) {
	frames := [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}
	reg := NewCodecRegistry(prefixCodec{scheme: SchemeRLE})
	ds := nativeDataSet(ExplicitVRLittleEndianUID)

	elem, err := EncodePixelData(ds, frames, explicitVRBigEndian, reg)
	require.NoError(t, err)
	assert.Equal(t, OBVR, elem.VR)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, elem.ValueField)

	elem, err = EncodePixelData(ds, frames, mustSyntax(t, RLELosslessUID), reg)
	require.NoError(t, err)
	assert.Equal(t, UndefinedLength, elem.ValueLength)
	p := elem.ValueField.(*EncapsulatedPixelData)
	assert.Equal(t, []uint32{0, 14}, p.OffsetTable)
	assert.Equal(t, [][]byte{[]byte("ZZ\x01\x02\x03\x04"), []byte("ZZ\x05\x06\x07\x08")}, p.Fragments)

	_, err = EncodePixelData(ds, frames, mustSyntax(t, JPEG2000UID), reg)
	assert.ErrorIs(t, err, ErrUnsupportedCompressionScheme)

	unknown, _ := LookupTransferSyntax("1.2.3.4.999")
	_, err = EncodePixelData(ds, frames, unknown, reg)
	assert.ErrorIs(t, err, ErrUnresolvedTransferSyntax)

	wide := sampleDataSet(ExplicitVRLittleEndianUID)
	elem, err = EncodePixelData(wide, [][]byte{make([]byte, 8)}, explicitVRLittleEndian, reg)
	require.NoError(t, err)
	assert.Equal(t, OWVR, elem.VR)
}

func TestTranscode(t *testing.T) {
	reg := NewCodecRegistry(prefixCodec{scheme: SchemeRLE})
	native := nativeDataSet(ExplicitVRLittleEndianUID)
	before := native.String()

	compressed, err := Transcode(native, explicitVRLittleEndian, mustSyntax(t, RLELosslessUID), reg)
	require.NoError(t, err)
	assert.Equal(t, before, native.String(), "the input is not modified")
	assert.Equal(t, RLELosslessUID, compressed.FirstString(TransferSyntaxUIDTag))
	assert.Equal(t, native.Elements[RowsTag], compressed.Elements[RowsTag])
	p, ok := compressed.Elements[PixelDataTag].ValueField.(*EncapsulatedPixelData)
	require.True(t, ok)
	assert.Len(t, p.Fragments, 2)

	// the encapsulated data set survives a round trip through its own syntax
	got := parseBytes(t, construct(t, compressed), DropGroupLengths)
	requireDataSetEqual(t, compressed, got)

	back, err := Transcode(got, mustSyntax(t, RLELosslessUID), explicitVRLittleEndian, reg)
	require.NoError(t, err)
	requireDataSetEqual(t, native, back)
}

func TestTranscode_Native(t *testing.T) {
	native := nativeDataSet(ExplicitVRLittleEndianUID)

	for _, uid := range []string{ExplicitVRLittleEndianUID, ImplicitVRLittleEndianUID, ExplicitVRBigEndianUID} {
		t.Run(uid, func(t *testing.T) {
			out, err := Transcode(native, explicitVRLittleEndian, mustSyntax(t, uid), nil)
			require.NoError(t, err)
			assert.Equal(t, uid, out.FirstString(TransferSyntaxUIDTag))
			assert.Equal(t, native.Elements[PixelDataTag], out.Elements[PixelDataTag])
		})
	}

	bare := native.withoutMeta()
	out, err := Transcode(bare, explicitVRLittleEndian, implicitVRLittleEndian, nil)
	require.NoError(t, err)
	assert.NotContains(t, out.Elements, TransferSyntaxUIDTag)
}

func TestTranscode_Errors(t *testing.T) {
	native := nativeDataSet(ExplicitVRLittleEndianUID)
	_, err := Transcode(native, explicitVRLittleEndian, mustSyntax(t, RLELosslessUID), NewCodecRegistry())
	assert.ErrorIs(t, err, ErrUnsupportedCompressionScheme)

	compressed := encapsulatedDataSet(RLELosslessUID, [][]byte{[]byte("ZZ\x01\x02\x03\x04"), []byte("ZZ\x05\x06\x07\x08")})
	_, err = Transcode(compressed, mustSyntax(t, RLELosslessUID), explicitVRLittleEndian, NewCodecRegistry())
	assert.ErrorIs(t, err, ErrUnsupportedCompressionScheme)
}

// ambiguousDataSet holds three fragments without an offset table for two frames
func ambiguousDataSet() *DataSet {
	ds := encapsulatedDataSet(RLELosslessUID, [][]byte{[]byte("ZZ\x01\x02\x03\x04")})
	ds.Elements[PixelDataTag].ValueField = &EncapsulatedPixelData{
		OffsetTable: []uint32{},
		Fragments:   [][]byte{[]byte("ZZ\x01\x02"), []byte("\x03\x04"), []byte("\x05\x06")},
	}
	return ds
}

func TestDecodePixelData_SingleFrameFallback(t *testing.T) {
	rle := mustSyntax(t, RLELosslessUID)
	reg := NewCodecRegistry(prefixCodec{scheme: SchemeRLE})

	_, err := DecodePixelData(ambiguousDataSet(), rle, reg)
	assert.ErrorIs(t, err, ErrMalformedLength)

	logger, hook := test.NewNullLogger()
	pd, err := DecodePixelData(ambiguousDataSet(), rle, reg, SingleFrameFallback, WithPixelDataLogger(logger))
	require.NoError(t, err)
	assert.False(t, pd.DecompressionSkipped)
	assert.Equal(t, [][]byte{{1, 2, 3, 4}}, pd.Frames)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.ErrorIs(t, hook.LastEntry().Data[logrus.ErrorKey].(error), ErrMalformedLength)

	out, err := Transcode(ambiguousDataSet(), rle, explicitVRLittleEndian, reg, SingleFrameFallback, WithPixelDataLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, out.Elements[PixelDataTag].ValueField)
	assert.Equal(t, "1", out.FirstString(NumberOfFramesTag))
}

func TestDecodePixelData_Logger(t *testing.T) {
	compressed := [][]byte{[]byte("ZZ\x01\x02\x03\x04"), []byte("ZZ\x05\x06\x07\x08")}

	tests := []struct {
		name     string
		reg      *CodecRegistry
		wantLogs int
	}{
		{"decompressed", NewCodecRegistry(prefixCodec{scheme: SchemeRLE}), 0},
		{"no codec", NewCodecRegistry(), 1},
		{"codec failure", NewCodecRegistry(prefixCodec{scheme: SchemeRLE, fail: true}), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			global := test.NewGlobal()

			_, err := DecodePixelData(encapsulatedDataSet(RLELosslessUID, compressed), mustSyntax(t, RLELosslessUID), tc.reg,
				WithPixelDataLogger(logger))
			require.NoError(t, err)
			assert.Empty(t, global.Entries, "the standard logger is not used")
			require.Len(t, hook.Entries, tc.wantLogs)
			if tc.wantLogs > 0 {
				assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
				assert.Equal(t, "rle", hook.LastEntry().Data["scheme"])
			}
		})
	}
}

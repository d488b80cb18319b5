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
	"strconv"
	"strings"
	"sync"
)

// FrameInfo describes the layout of the pixels of a single uncompressed frame, taken from the
// Image Pixel module.
// http://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.7.6.3
type FrameInfo struct {
	Rows                      int
	Columns                   int
	SamplesPerPixel           int
	BitsAllocated             int
	BitsStored                int
	PixelRepresentation       int
	PlanarConfiguration       int
	PhotometricInterpretation string
}

// FrameSize is the number of bytes of one uncompressed frame
func (fi FrameInfo) FrameSize() int {
	return (fi.Rows*fi.Columns*fi.SamplesPerPixel*fi.BitsAllocated + 7) / 8
}

// NewFrameInfo reads the Image Pixel module attributes of ds. Rows, Columns and Bits Allocated are
// required, Samples per Pixel defaults to 1 and Bits Stored to Bits Allocated.
func NewFrameInfo(ds *DataSet) (FrameInfo, error) {
	fi := FrameInfo{
		SamplesPerPixel:           1,
		PhotometricInterpretation: strings.TrimSpace(ds.FirstString(PhotometricInterpretationTag)),
	}

	required := []struct {
		tag DataElementTag
		dst *int
	}{
		{RowsTag, &fi.Rows},
		{ColumnsTag, &fi.Columns},
		{BitsAllocatedTag, &fi.BitsAllocated},
	}
	for _, r := range required {
		v, ok := ds.Uint16(r.tag)
		if !ok {
			return FrameInfo{}, fmt.Errorf("missing %v %s", r.tag, r.tag.Keyword())
		}
		*r.dst = int(v)
	}

	optional := []struct {
		tag DataElementTag
		dst *int
	}{
		{SamplesPerPixelTag, &fi.SamplesPerPixel},
		{BitsStoredTag, &fi.BitsStored},
		{PixelRepresentationTag, &fi.PixelRepresentation},
		{PlanarConfigurationTag, &fi.PlanarConfiguration},
	}
	for _, o := range optional {
		if v, ok := ds.Uint16(o.tag); ok {
			*o.dst = int(v)
		}
	}
	if fi.BitsStored == 0 {
		fi.BitsStored = fi.BitsAllocated
	}
	return fi, nil
}

// numberOfFrames returns the Number of Frames (0028,0008), 1 when absent
func numberOfFrames(ds *DataSet) (int, error) {
	s := strings.TrimSpace(ds.FirstString(NumberOfFramesTag))
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errorf(ErrInvalidValue, "number of frames %q", s)
	}
	return n, nil
}

// PixelCodec compresses and decompresses single frames of one compression scheme
type PixelCodec interface {
	Scheme() CompressionScheme

	// Decompress returns the uncompressed pixels of a frame, laid out as described by info
	Decompress(info FrameInfo, frame []byte) ([]byte, error)

	// Compress returns the compressed bytes of the uncompressed frame raw
	Compress(info FrameInfo, raw []byte) ([]byte, error)
}

// PhotometricConverter is implemented by codecs whose compressed frames use another color space
// or sample layout than the uncompressed frames they were made from.
type PhotometricConverter interface {
	// CompressedInfo returns the Image Pixel module describing frames compressed from info
	CompressedInfo(info FrameInfo) FrameInfo

	// DecompressedInfo returns the Image Pixel module of the frames Decompress returns for info
	DecompressedInfo(info FrameInfo) FrameInfo
}

// lossyMethods holds the Lossy Image Compression Method (0028,2114) defined term of each lossy
// compression scheme
var lossyMethods = map[CompressionScheme]string{
	SchemeJPEGBaseline: "ISO_10918_1",
	SchemeJPEGExtended: "ISO_10918_1",
	SchemeJPEGLS:       "ISO_14495_1",
	SchemeJPEG2000:     "ISO_15444_1",
	SchemeHTJ2K:        "ISO_15444_15",
	SchemeMPEG2:        "ISO_13818_2",
	SchemeMPEG4:        "ISO_14496_10",
	SchemeHEVC:         "ISO_23008_2",
}

// CodecRegistry holds the pixel codecs available for transcoding. It is safe for concurrent use.
type CodecRegistry struct {
	mu     sync.RWMutex
	codecs map[CompressionScheme]PixelCodec
}

// NewCodecRegistry returns a registry holding the given codecs
func NewCodecRegistry(codecs ...PixelCodec) *CodecRegistry {
	r := &CodecRegistry{codecs: map[CompressionScheme]PixelCodec{}}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing a codec registered for the same scheme
func (r *CodecRegistry) Register(c PixelCodec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[c.Scheme()] = c
}

// Lookup returns the codec for scheme. Uncompressed schemes are always available.
func (r *CodecRegistry) Lookup(scheme CompressionScheme) (PixelCodec, error) {
	switch scheme {
	case SchemeNone, SchemeUncompressed:
		return uncompressedCodec{scheme}, nil
	}

	if r != nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		if c, ok := r.codecs[scheme]; ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no codec registered for %v", ErrUnsupportedCompressionScheme, scheme)
}

// uncompressedCodec passes frames through, as used by the encapsulated uncompressed syntax
type uncompressedCodec struct {
	scheme CompressionScheme
}

func (c uncompressedCodec) Scheme() CompressionScheme {
	return c.scheme
}

func (c uncompressedCodec) Decompress(info FrameInfo, frame []byte) ([]byte, error) {
	if size := info.FrameSize(); len(frame) < size {
		return nil, errorf(ErrMalformedLength, "frame of %d bytes, want %d", len(frame), size)
	}
	return frame[:info.FrameSize()], nil
}

func (c uncompressedCodec) Compress(info FrameInfo, raw []byte) ([]byte, error) {
	return raw, nil
}

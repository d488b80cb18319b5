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
	"encoding/binary"
	"fmt"

	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
)

const (
	rleHeaderSize  = 64
	rleMaxSegments = 15
	maxRunLength   = 128
)

// RLE is the RLE Lossless codec of PS3.5 Annex G. Every byte plane of every sample is
// compressed with PackBits into its own segment, most significant byte first.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_G
type RLE struct{}

var _ dicom.PixelCodec = RLE{}

// Scheme returns dicom.SchemeRLE
func (RLE) Scheme() dicom.CompressionScheme {
	return dicom.SchemeRLE
}

// planeLayout maps the byte planes stored in RLE segments to offsets in a raw frame
type planeLayout struct {
	pixels, samples, bytesPerSample int
	planar                          bool
}

func newPlaneLayout(info dicom.FrameInfo) (planeLayout, error) {
	switch info.BitsAllocated {
	case 8, 16, 32:
	default:
		return planeLayout{}, fmt.Errorf("%w: rle with %d bits allocated",
			dicom.ErrUnsupportedCompressionScheme, info.BitsAllocated)
	}
	l := planeLayout{
		pixels:         info.Rows * info.Columns,
		samples:        info.SamplesPerPixel,
		bytesPerSample: info.BitsAllocated / 8,
		planar:         info.PlanarConfiguration == 1,
	}
	if n := l.segments(); n > rleMaxSegments {
		return planeLayout{}, fmt.Errorf("%w: %d rle segments exceed the maximum of %d",
			dicom.ErrUnsupportedCompressionScheme, n, rleMaxSegments)
	}
	return l, nil
}

func (l planeLayout) segments() int {
	return l.samples * l.bytesPerSample
}

// offset of the byte of segment seg belonging to pixel i in a little endian raw frame
func (l planeLayout) offset(seg, i int) int {
	s, b := seg/l.bytesPerSample, l.bytesPerSample-1-seg%l.bytesPerSample
	if l.planar {
		return (s*l.pixels+i)*l.bytesPerSample + b
	}
	return (i*l.samples+s)*l.bytesPerSample + b
}

// Compress encodes a raw frame into an RLE header followed by one segment per byte plane
func (RLE) Compress(info dicom.FrameInfo, raw []byte) ([]byte, error) {
	l, err := newPlaneLayout(info)
	if err != nil {
		return nil, err
	}
	if len(raw) < info.FrameSize() {
		return nil, fmt.Errorf("%w: frame of %d bytes, want %d", dicom.ErrMalformedLength, len(raw), info.FrameSize())
	}

	header := make([]byte, rleHeaderSize)
	binary.LittleEndian.PutUint32(header, uint32(l.segments()))
	buf := bytes.NewBuffer(header)
	plane := make([]byte, l.pixels)
	for seg := 0; seg < l.segments(); seg++ {
		binary.LittleEndian.PutUint32(buf.Bytes()[4+4*seg:], uint32(buf.Len()))
		for i := range plane {
			plane[i] = raw[l.offset(seg, i)]
		}
		buf.Write(packBits(plane))
		if buf.Len()%2 != 0 {
			buf.WriteByte(0)
		}
	}
	return buf.Bytes(), nil
}

// Decompress decodes the segments of an RLE frame into a raw little endian frame
func (RLE) Decompress(info dicom.FrameInfo, frame []byte) ([]byte, error) {
	l, err := newPlaneLayout(info)
	if err != nil {
		return nil, err
	}
	if len(frame) < rleHeaderSize {
		return nil, fmt.Errorf("%w: rle frame of %d bytes has no header", dicom.ErrMalformedLength, len(frame))
	}

	n := int(binary.LittleEndian.Uint32(frame))
	if n != l.segments() {
		return nil, fmt.Errorf("%w: %d rle segments, want %d", dicom.ErrMalformedLength, n, l.segments())
	}
	offsets := make([]int, n+1)
	for i := 0; i < n; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(frame[4+4*i:]))
	}
	offsets[n] = len(frame)
	for i := 0; i < n; i++ {
		if offsets[i] < rleHeaderSize || offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("%w: rle segment %d at offset %d", dicom.ErrMalformedLength, i, offsets[i])
		}
	}

	raw := make([]byte, info.FrameSize())
	for seg := 0; seg < n; seg++ {
		plane, err := unpackBits(frame[offsets[seg]:offsets[seg+1]], l.pixels)
		if err != nil {
			return nil, fmt.Errorf("decoding rle segment %d: %w", seg, err)
		}
		for i, v := range plane {
			raw[l.offset(seg, i)] = v
		}
	}
	return raw, nil
}

// packBits compresses data with runs of 2 to 128 equal bytes and literals of up to 128 bytes
func packBits(data []byte) []byte {
	buf := &bytes.Buffer{}
	for i := 0; i < len(data); {
		run := 1
		for i+run < len(data) && run < maxRunLength && data[i+run] == data[i] {
			run++
		}
		if run > 1 {
			buf.WriteByte(byte(1 - run))
			buf.WriteByte(data[i])
			i += run
			continue
		}

		// a literal ends where a run of at least 3 bytes starts
		n := 1
		for i+n < len(data) && n < maxRunLength {
			if i+n+2 < len(data) && data[i+n] == data[i+n+1] && data[i+n] == data[i+n+2] {
				break
			}
			n++
		}
		buf.WriteByte(byte(n - 1))
		buf.Write(data[i : i+n])
		i += n
	}
	return buf.Bytes()
}

// unpackBits decodes exactly size bytes from a PackBits segment. Trailing padding is ignored.
func unpackBits(data []byte, size int) ([]byte, error) {
	out := make([]byte, 0, size)
	for i := 0; i < len(data) && len(out) < size; {
		h := int8(data[i])
		i++
		switch {
		case h == -128:
		case h >= 0:
			n := int(h) + 1
			if i+n > len(data) {
				return nil, fmt.Errorf("%w: literal of %d bytes at %d", dicom.ErrTruncatedStream, n, i)
			}
			out = append(out, data[i:i+n]...)
			i += n
		default:
			if i >= len(data) {
				return nil, fmt.Errorf("%w: replicate run at %d", dicom.ErrTruncatedStream, i)
			}
			for n := 1 - int(h); n > 0; n-- {
				out = append(out, data[i])
			}
			i++
		}
	}
	if len(out) < size {
		return nil, fmt.Errorf("%w: segment holds %d of %d bytes", dicom.ErrTruncatedStream, len(out), size)
	}
	return out[:size], nil
}

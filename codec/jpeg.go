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
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
)

// DefaultJPEGQuality is the quality used by JPEGBaseline when Quality is 0
const DefaultJPEGQuality = 90

// JPEGBaseline is the codec of the JPEG Baseline (Process 1) transfer syntax. It handles 8 bit
// monochrome frames and 8 bit RGB frames of 3 samples. Color frames are stored as YBR_FULL_422
// and decompressed to interleaved RGB.
type JPEGBaseline struct {
	// Quality ranges from 1 to 100
	Quality int
}

var (
	_ dicom.PixelCodec           = JPEGBaseline{}
	_ dicom.PhotometricConverter = JPEGBaseline{}
)

// CompressedInfo returns info with the YBR_FULL_422 photometric interpretation for color frames
func (JPEGBaseline) CompressedInfo(info dicom.FrameInfo) dicom.FrameInfo {
	if info.SamplesPerPixel == 3 {
		info.PhotometricInterpretation = "YBR_FULL_422"
		info.PlanarConfiguration = 0
	}
	return info
}

// DecompressedInfo returns info with the RGB photometric interpretation for color frames
func (JPEGBaseline) DecompressedInfo(info dicom.FrameInfo) dicom.FrameInfo {
	if info.SamplesPerPixel == 3 {
		info.PhotometricInterpretation = "RGB"
		info.PlanarConfiguration = 0
	}
	return info
}

// Scheme returns dicom.SchemeJPEGBaseline
func (JPEGBaseline) Scheme() dicom.CompressionScheme {
	return dicom.SchemeJPEGBaseline
}

func checkBaseline(info dicom.FrameInfo) error {
	if info.BitsAllocated != 8 {
		return fmt.Errorf("%w: jpeg baseline with %d bits allocated", dicom.ErrUnsupportedCompressionScheme, info.BitsAllocated)
	}
	if info.SamplesPerPixel != 1 && info.SamplesPerPixel != 3 {
		return fmt.Errorf("%w: jpeg baseline with %d samples per pixel", dicom.ErrUnsupportedCompressionScheme, info.SamplesPerPixel)
	}
	return nil
}

// Compress encodes an 8 bit frame. Color frames must be RGB, either interleaved or planar.
func (c JPEGBaseline) Compress(info dicom.FrameInfo, raw []byte) ([]byte, error) {
	if err := checkBaseline(info); err != nil {
		return nil, err
	}
	if info.SamplesPerPixel == 3 && info.PhotometricInterpretation != "" && info.PhotometricInterpretation != "RGB" {
		return nil, fmt.Errorf("%w: jpeg baseline compression of %s frames",
			dicom.ErrUnsupportedCompressionScheme, info.PhotometricInterpretation)
	}
	if len(raw) < info.FrameSize() {
		return nil, fmt.Errorf("%w: frame of %d bytes, want %d", dicom.ErrMalformedLength, len(raw), info.FrameSize())
	}

	rect := image.Rect(0, 0, info.Columns, info.Rows)
	var img image.Image
	if info.SamplesPerPixel == 1 {
		gray := image.NewGray(rect)
		copy(gray.Pix, raw)
		img = gray
	} else {
		pixels := info.Rows * info.Columns
		// offset of sample s of pixel i
		at := func(i, s int) int { return 3*i + s }
		if info.PlanarConfiguration == 1 {
			at = func(i, s int) int { return s*pixels + i }
		}
		rgba := image.NewRGBA(rect)
		for i := 0; i < pixels; i++ {
			rgba.Pix[4*i] = raw[at(i, 0)]
			rgba.Pix[4*i+1] = raw[at(i, 1)]
			rgba.Pix[4*i+2] = raw[at(i, 2)]
			rgba.Pix[4*i+3] = 0xFF
		}
		img = rgba
	}

	quality := c.Quality
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress decodes a JPEG frame to 8 bit monochrome or interleaved RGB samples
func (JPEGBaseline) Decompress(info dicom.FrameInfo, frame []byte) ([]byte, error) {
	if err := checkBaseline(info); err != nil {
		return nil, err
	}
	img, err := jpeg.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("decoding jpeg: %w", err)
	}
	if b := img.Bounds(); b.Dx() != info.Columns || b.Dy() != info.Rows {
		return nil, fmt.Errorf("%w: jpeg of %dx%d, want %dx%d", dicom.ErrMalformedLength,
			b.Dx(), b.Dy(), info.Columns, info.Rows)
	}

	raw := make([]byte, 0, info.FrameSize())
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if info.SamplesPerPixel == 1 {
				raw = append(raw, color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
				continue
			}
			rgb := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			raw = append(raw, rgb.R, rgb.G, rgb.B)
		}
	}
	return raw, nil
}

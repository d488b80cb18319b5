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
	"fmt"

	"github.com/sirupsen/logrus"
)

// PixelDataOption configures DecodePixelData and Transcode
type PixelDataOption struct {
	configure func(*pixelDataConfig)
}

type pixelDataConfig struct {
	logger      logrus.FieldLogger
	singleFrame bool
}

func newPixelDataConfig(opts []PixelDataOption) *pixelDataConfig {
	cfg := &pixelDataConfig{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt.configure(cfg)
	}
	return cfg
}

// WithPixelDataLogger sets the logger receiving warnings about frames that are left compressed or
// assembled as a single frame. The logrus standard logger is used by default.
func WithPixelDataLogger(logger logrus.FieldLogger) PixelDataOption {
	return PixelDataOption{configure: func(c *pixelDataConfig) { c.logger = logger }}
}

// SingleFrameFallback decodes encapsulated pixel data without an offset table whose fragments
// cannot be assigned to the Number of Frames (0028,0008) as a single frame holding all fragments.
// A warning is logged instead of failing with ErrMalformedLength.
var SingleFrameFallback = PixelDataOption{configure: func(c *pixelDataConfig) { c.singleFrame = true }}

// PixelData holds the frames of the Pixel Data (7FE0,0010) of a data set
type PixelData struct {
	// Info describes the frames as held in Frames. Codecs implementing PhotometricConverter may
	// return decompressed frames in another color space than the one of the data set.
	Info FrameInfo

	// Frames holds one buffer per frame. The buffers are uncompressed unless Compressed is set.
	Frames [][]byte

	// Compressed is true when Frames hold the bytes of encapsulated pixel data as stored
	Compressed bool
	Scheme     CompressionScheme

	// DecompressionSkipped is true when encapsulated frames could not be decompressed.
	// SkipReason wraps ErrUnresolvedTransferSyntax, ErrUnsupportedCompressionScheme or the
	// error of the codec.
	DecompressionSkipped bool
	SkipReason           error
}

func (pd *PixelData) skip(log logrus.FieldLogger, reason error) {
	pd.DecompressionSkipped = true
	pd.SkipReason = reason
	log.WithFields(logrus.Fields{"scheme": pd.Scheme.String()}).Warnf("pixel data left compressed: %v", reason)
}

// DecodePixelData splits the pixel data of ds into frames and decompresses encapsulated frames
// with the codec registered for the compression scheme of syntax. When no codec can be used the
// compressed frames are returned with DecompressionSkipped set, and the error is nil. Errors are
// returned for missing pixel data and for a malformed frame layout only.
func DecodePixelData(ds *DataSet, syntax *TransferSyntax, reg *CodecRegistry, opts ...PixelDataOption) (*PixelData, error) {
	cfg := newPixelDataConfig(opts)
	elem, ok := ds.Elements[PixelDataTag]
	if !ok {
		return nil, fmt.Errorf("pixel data element not found")
	}
	info, err := NewFrameInfo(ds)
	if err != nil {
		return nil, fmt.Errorf("reading image pixel module: %w", err)
	}
	n, err := numberOfFrames(ds)
	if err != nil {
		return nil, err
	}

	switch v := elem.ValueField.(type) {
	case []byte:
		frames, err := splitNativeFrames(v, info.FrameSize(), n)
		if err != nil {
			return nil, err
		}
		return &PixelData{Info: info, Frames: frames, Scheme: SchemeNone}, nil
	case *EncapsulatedPixelData:
		frames, err := v.Frames(n)
		if err != nil {
			if !cfg.singleFrame || len(frames) != 1 {
				return nil, fmt.Errorf("assembling frames: %w", err)
			}
			cfg.logger.WithError(err).Warn("decoding the fragments as a single frame")
		}
		pd := &PixelData{Info: info, Frames: frames, Compressed: true, Scheme: syntax.Scheme}
		if !syntax.IsResolved() {
			pd.skip(cfg.logger, fmt.Errorf("%w: %s", ErrUnresolvedTransferSyntax, syntax.UID))
			return pd, nil
		}
		codec, err := reg.Lookup(syntax.Scheme)
		if err != nil {
			pd.skip(cfg.logger, err)
			return pd, nil
		}

		raw := make([][]byte, len(frames))
		for i, frame := range frames {
			if raw[i], err = codec.Decompress(info, frame); err != nil {
				pd.skip(cfg.logger, fmt.Errorf("decompressing frame %d: %w", i, err))
				return pd, nil
			}
		}
		if conv, ok := codec.(PhotometricConverter); ok {
			pd.Info = conv.DecompressedInfo(info)
		}
		pd.Frames, pd.Compressed, pd.Scheme = raw, false, SchemeNone
		return pd, nil
	case []BulkDataReference:
		return nil, errors.New("pixel data was parsed as bulk data references")
	default:
		return nil, fmt.Errorf("unexpected pixel data type %T", v)
	}
}

func splitNativeFrames(data []byte, frameSize, n int) ([][]byte, error) {
	if n <= 1 || frameSize == 0 {
		return [][]byte{data}, nil
	}
	if frameSize*n > len(data) {
		return nil, errorf(ErrMalformedLength, "%d frames of %d bytes exceed the %d bytes of pixel data", n, frameSize, len(data))
	}
	frames := make([][]byte, n)
	for i := range frames {
		frames[i] = data[i*frameSize : (i+1)*frameSize : (i+1)*frameSize]
	}
	return frames, nil
}

// EncodePixelData returns the Pixel Data element holding the uncompressed frames encoded for
// syntax. Native syntaxes get a single OB or OW value, encapsulated syntaxes one fragment per
// frame compressed with the registered codec.
func EncodePixelData(ds *DataSet, frames [][]byte, syntax *TransferSyntax, reg *CodecRegistry) (*DataElement, error) {
	info, err := NewFrameInfo(ds)
	if err != nil {
		return nil, fmt.Errorf("reading image pixel module: %w", err)
	}
	elem, _, err := encodeFrames(info, frames, syntax, reg)
	return elem, err
}

// encodeFrames returns the Pixel Data element of frames laid out as described by info, and the
// Image Pixel module of the encoded frames
func encodeFrames(info FrameInfo, frames [][]byte, syntax *TransferSyntax, reg *CodecRegistry) (*DataElement, FrameInfo, error) {
	if !syntax.IsResolved() {
		return nil, info, fmt.Errorf("%w: %s", ErrUnresolvedTransferSyntax, syntax.UID)
	}

	if !syntax.Encapsulated {
		vr := OBVR
		if info.BitsAllocated > 8 {
			vr = OWVR
		}
		return &DataElement{Tag: PixelDataTag, VR: vr, ValueField: bytes.Join(frames, nil)}, info, nil
	}

	codec, err := reg.Lookup(syntax.Scheme)
	if err != nil {
		return nil, info, err
	}
	compressed := make([][]byte, len(frames))
	for i, frame := range frames {
		if compressed[i], err = codec.Compress(info, frame); err != nil {
			return nil, info, fmt.Errorf("compressing frame %d: %w", i, err)
		}
	}
	if conv, ok := codec.(PhotometricConverter); ok {
		info = conv.CompressedInfo(info)
	}
	return &DataElement{
		Tag:         PixelDataTag,
		VR:          OBVR,
		ValueField:  NewEncapsulatedPixelData(compressed, 0),
		ValueLength: UndefinedLength,
	}, info, nil
}

// Transcode returns a copy of ds whose pixel data is re-encoded from the transfer syntax from to
// the transfer syntax to. The Transfer Syntax UID (0002,0010) is updated when present. Photometric
// Interpretation (0028,0004) and Planar Configuration (0028,0006) are updated when a codec changes
// the color space of the frames, and Lossy Image Compression (0028,2110) and Lossy Image
// Compression Method (0028,2114) are set when to is lossy. Other elements are shared with ds.
func Transcode(ds *DataSet, from, to *TransferSyntax, reg *CodecRegistry, opts ...PixelDataOption) (*DataSet, error) {
	out := &DataSet{Elements: make(map[DataElementTag]*DataElement, len(ds.Elements)), Length: ds.Length}
	for tag, elem := range ds.Elements {
		out.Elements[tag] = elem
	}
	if _, ok := out.Elements[TransferSyntaxUIDTag]; ok {
		out.Elements[TransferSyntaxUIDTag] = &DataElement{
			Tag:        TransferSyntaxUIDTag,
			VR:         UIVR,
			ValueField: []string{to.UID},
		}
	}

	if _, ok := ds.Elements[PixelDataTag]; !ok || from.UID == to.UID {
		return out, nil
	}
	if !from.Encapsulated && !to.Encapsulated && from.IsResolved() {
		// native pixel data is held in little endian byte order whatever the syntax
		return out, nil
	}

	pd, err := DecodePixelData(ds, from, reg, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding pixel data: %w", err)
	}
	if pd.DecompressionSkipped {
		return nil, fmt.Errorf("decoding pixel data: %w", pd.SkipReason)
	}

	elem, info, err := encodeFrames(pd.Info, pd.Frames, to, reg)
	if err != nil {
		return nil, fmt.Errorf("encoding pixel data: %w", err)
	}
	out.Elements[PixelDataTag] = elem
	setImagePixel(out, info)
	if to.Lossy && to.Encapsulated {
		setLossyCompression(out, to.Scheme)
	}
	if len(pd.Frames) == 1 {
		if n, err := numberOfFrames(ds); err == nil && n > 1 {
			out.Elements[NumberOfFramesTag] = &DataElement{Tag: NumberOfFramesTag, VR: ISVR, ValueField: []string{"1"}}
		}
	}
	return out, nil
}

// setImagePixel replaces the Photometric Interpretation and Planar Configuration of ds that differ
// from info. Planar Configuration is required for frames of more than one sample.
func setImagePixel(ds *DataSet, info FrameInfo) {
	current, err := NewFrameInfo(ds)
	if err != nil {
		return
	}
	if p := info.PhotometricInterpretation; p != "" && p != current.PhotometricInterpretation {
		ds.Elements[PhotometricInterpretationTag] = &DataElement{Tag: PhotometricInterpretationTag, VR: CSVR, ValueField: []string{p}}
	}
	_, present := ds.Elements[PlanarConfigurationTag]
	if info.SamplesPerPixel > 1 && (!present || info.PlanarConfiguration != current.PlanarConfiguration) {
		ds.Elements[PlanarConfigurationTag] = &DataElement{
			Tag:        PlanarConfigurationTag,
			VR:         USVR,
			ValueField: []uint16{uint16(info.PlanarConfiguration)},
		}
	}
}

// setLossyCompression records that the pixel data of ds went through the lossy compression
// scheme. Methods of earlier lossy compressions are kept in the order they were applied.
func setLossyCompression(ds *DataSet, scheme CompressionScheme) {
	ds.Elements[LossyImageCompressionTag] = &DataElement{Tag: LossyImageCompressionTag, VR: CSVR, ValueField: []string{"01"}}
	method, ok := lossyMethods[scheme]
	if !ok {
		return
	}
	var methods []string
	if elem, ok := ds.Elements[LossyImageCompressionMethodTag]; ok {
		if v, ok := elem.ValueField.([]string); ok {
			methods = append(methods, v...)
		}
	}
	ds.Elements[LossyImageCompressionMethodTag] = &DataElement{
		Tag:        LossyImageCompressionMethodTag,
		VR:         CSVR,
		ValueField: append(methods, method),
	}
}

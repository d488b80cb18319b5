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
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// EncapsulatedUncompressedUID is the Encapsulated Uncompressed Explicit VR Little Endian UID
	EncapsulatedUncompressedUID = "1.2.840.10008.1.2.1.98"
	// DeflatedExplicitVRLittleEndianUID is the Deflated Explicit VR Little Endian UID
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
	// ExplicitVRBigEndianUID is the retired Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// JPEGBaselineUID is the JPEG Baseline (Process 1) transfer syntax UID
	JPEGBaselineUID = "1.2.840.10008.1.2.4.50"
	// JPEGExtendedUID is the JPEG Extended (Process 2 & 4) transfer syntax UID
	JPEGExtendedUID = "1.2.840.10008.1.2.4.51"
	// JPEGLosslessUID is the JPEG Lossless, Non-Hierarchical (Process 14) transfer syntax UID
	JPEGLosslessUID = "1.2.840.10008.1.2.4.57"
	// JPEGLosslessSV1UID is the JPEG Lossless, First-Order Prediction transfer syntax UID
	JPEGLosslessSV1UID = "1.2.840.10008.1.2.4.70"
	// JPEGLSLosslessUID is the JPEG-LS Lossless transfer syntax UID
	JPEGLSLosslessUID = "1.2.840.10008.1.2.4.80"
	// JPEGLSNearLosslessUID is the JPEG-LS Lossy (Near-Lossless) transfer syntax UID
	JPEGLSNearLosslessUID = "1.2.840.10008.1.2.4.81"
	// JPEG2000LosslessUID is the JPEG 2000 (Lossless Only) transfer syntax UID
	JPEG2000LosslessUID = "1.2.840.10008.1.2.4.90"
	// JPEG2000UID is the JPEG 2000 transfer syntax UID
	JPEG2000UID = "1.2.840.10008.1.2.4.91"
	// MPEG2MainProfileUID is the MPEG2 Main Profile / Main Level transfer syntax UID
	MPEG2MainProfileUID = "1.2.840.10008.1.2.4.100"
	// MPEG2HighLevelUID is the MPEG2 Main Profile / High Level transfer syntax UID
	MPEG2HighLevelUID = "1.2.840.10008.1.2.4.101"
	// MPEG4HighProfileUID is the MPEG-4 AVC/H.264 High Profile / Level 4.1 transfer syntax UID
	MPEG4HighProfileUID = "1.2.840.10008.1.2.4.102"
	// MPEG4BDCompatibleUID is the MPEG-4 AVC/H.264 BD-compatible High Profile transfer syntax UID
	MPEG4BDCompatibleUID = "1.2.840.10008.1.2.4.103"
	// MPEG4HighProfile2DUID is the MPEG-4 AVC/H.264 High Profile / Level 4.2 For 2D Video UID
	MPEG4HighProfile2DUID = "1.2.840.10008.1.2.4.104"
	// MPEG4HighProfile3DUID is the MPEG-4 AVC/H.264 High Profile / Level 4.2 For 3D Video UID
	MPEG4HighProfile3DUID = "1.2.840.10008.1.2.4.105"
	// MPEG4StereoHighProfileUID is the MPEG-4 AVC/H.264 Stereo High Profile / Level 4.2 UID
	MPEG4StereoHighProfileUID = "1.2.840.10008.1.2.4.106"
	// HEVCMainProfileUID is the HEVC/H.265 Main Profile / Level 5.1 transfer syntax UID
	HEVCMainProfileUID = "1.2.840.10008.1.2.4.107"
	// HEVCMain10ProfileUID is the HEVC/H.265 Main 10 Profile / Level 5.1 transfer syntax UID
	HEVCMain10ProfileUID = "1.2.840.10008.1.2.4.108"
	// HTJ2KLosslessUID is the High-Throughput JPEG 2000 (Lossless Only) transfer syntax UID
	HTJ2KLosslessUID = "1.2.840.10008.1.2.4.201"
	// HTJ2KLosslessRPCLUID is the High-Throughput JPEG 2000 with RPCL Options (Lossless Only) UID
	HTJ2KLosslessRPCLUID = "1.2.840.10008.1.2.4.202"
	// HTJ2KUID is the High-Throughput JPEG 2000 transfer syntax UID
	HTJ2KUID = "1.2.840.10008.1.2.4.203"
	// RLELosslessUID is the RLE Lossless transfer syntax UID
	RLELosslessUID = "1.2.840.10008.1.2.5"
	// DeflatedImageFrameCompressionUID is the Deflated Image Frame Compression transfer syntax UID
	DeflatedImageFrameCompressionUID = "1.2.840.10008.1.2.8.1"
)

// CompressionScheme identifies how the frames of encapsulated pixel data are compressed
type CompressionScheme int

// Compression schemes of the encapsulated transfer syntaxes
const (
	// SchemeNone is native (not encapsulated) pixel data
	SchemeNone CompressionScheme = iota
	// SchemeUnknown is used for transfer syntaxes that could not be resolved
	SchemeUnknown
	SchemeUncompressed
	SchemeJPEGBaseline
	SchemeJPEGExtended
	SchemeJPEGLossless
	SchemeJPEGLS
	SchemeJPEG2000
	SchemeHTJ2K
	SchemeMPEG2
	SchemeMPEG4
	SchemeHEVC
	SchemeRLE
	SchemeDeflate
)

var schemeNames = map[CompressionScheme]string{
	SchemeNone:         "none",
	SchemeUnknown:      "unknown",
	SchemeUncompressed: "uncompressed",
	SchemeJPEGBaseline: "jpeg-baseline",
	SchemeJPEGExtended: "jpeg-extended",
	SchemeJPEGLossless: "jpeg-lossless",
	SchemeJPEGLS:       "jpeg-ls",
	SchemeJPEG2000:     "jpeg2000",
	SchemeHTJ2K:        "htj2k",
	SchemeMPEG2:        "mpeg2",
	SchemeMPEG4:        "mpeg4",
	SchemeHEVC:         "hevc",
	SchemeRLE:          "rle",
	SchemeDeflate:      "deflate",
}

func (s CompressionScheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("CompressionScheme(%d)", int(s))
}

// TransferSyntax is the encoding policy identified by a transfer syntax UID. Implicit VR
// syntaxes are always little endian.
type TransferSyntax struct {
	UID  string
	Name string

	ByteOrder binary.ByteOrder
	Implicit  bool

	// Deflated is true when everything after the file meta group is deflate compressed
	Deflated bool

	// Encapsulated is true when pixel data is stored as fragments, Scheme names the compression
	Encapsulated bool
	Scheme       CompressionScheme

	Lossy   bool
	Retired bool
}

func (ts *TransferSyntax) String() string {
	return fmt.Sprintf("%s (%s)", ts.Name, ts.UID)
}

// IsResolved is false for transfer syntaxes created for unknown UIDs
func (ts *TransferSyntax) IsResolved() bool {
	return ts.Scheme != SchemeUnknown
}

func explicitLE(uid, name string, scheme CompressionScheme, lossy bool) *TransferSyntax {
	return &TransferSyntax{
		UID:          uid,
		Name:         name,
		ByteOrder:    binary.LittleEndian,
		Encapsulated: true,
		Scheme:       scheme,
		Lossy:        lossy,
	}
}

var (
	implicitVRLittleEndian = &TransferSyntax{
		UID: ImplicitVRLittleEndianUID, Name: "Implicit VR Little Endian",
		ByteOrder: binary.LittleEndian, Implicit: true}
	explicitVRLittleEndian = &TransferSyntax{
		UID: ExplicitVRLittleEndianUID, Name: "Explicit VR Little Endian",
		ByteOrder: binary.LittleEndian}
	deflatedExplicitVRLittleEndian = &TransferSyntax{
		UID: DeflatedExplicitVRLittleEndianUID, Name: "Deflated Explicit VR Little Endian",
		ByteOrder: binary.LittleEndian, Deflated: true}
	explicitVRBigEndian = &TransferSyntax{
		UID: ExplicitVRBigEndianUID, Name: "Explicit VR Big Endian",
		ByteOrder: binary.BigEndian, Retired: true}
)

var transferSyntaxes = map[string]*TransferSyntax{}

func init() {
	for _, ts := range []*TransferSyntax{
		implicitVRLittleEndian,
		explicitVRLittleEndian,
		deflatedExplicitVRLittleEndian,
		explicitVRBigEndian,
		explicitLE(EncapsulatedUncompressedUID, "Encapsulated Uncompressed Explicit VR Little Endian", SchemeUncompressed, false),
		explicitLE(JPEGBaselineUID, "JPEG Baseline (Process 1)", SchemeJPEGBaseline, true),
		explicitLE(JPEGExtendedUID, "JPEG Extended (Process 2 & 4)", SchemeJPEGExtended, true),
		explicitLE(JPEGLosslessUID, "JPEG Lossless, Non-Hierarchical (Process 14)", SchemeJPEGLossless, false),
		explicitLE(JPEGLosslessSV1UID, "JPEG Lossless, Non-Hierarchical, First-Order Prediction", SchemeJPEGLossless, false),
		explicitLE(JPEGLSLosslessUID, "JPEG-LS Lossless Image Compression", SchemeJPEGLS, false),
		explicitLE(JPEGLSNearLosslessUID, "JPEG-LS Lossy (Near-Lossless) Image Compression", SchemeJPEGLS, true),
		explicitLE(JPEG2000LosslessUID, "JPEG 2000 Image Compression (Lossless Only)", SchemeJPEG2000, false),
		explicitLE(JPEG2000UID, "JPEG 2000 Image Compression", SchemeJPEG2000, true),
		explicitLE(HTJ2KLosslessUID, "High-Throughput JPEG 2000 Image Compression (Lossless Only)", SchemeHTJ2K, false),
		explicitLE(HTJ2KLosslessRPCLUID, "High-Throughput JPEG 2000 with RPCL Options Image Compression (Lossless Only)", SchemeHTJ2K, false),
		explicitLE(HTJ2KUID, "High-Throughput JPEG 2000 Image Compression", SchemeHTJ2K, true),
		explicitLE(MPEG2MainProfileUID, "MPEG2 Main Profile / Main Level", SchemeMPEG2, true),
		explicitLE(MPEG2HighLevelUID, "MPEG2 Main Profile / High Level", SchemeMPEG2, true),
		explicitLE(MPEG4HighProfileUID, "MPEG-4 AVC/H.264 High Profile / Level 4.1", SchemeMPEG4, true),
		explicitLE(MPEG4BDCompatibleUID, "MPEG-4 AVC/H.264 BD-compatible High Profile / Level 4.1", SchemeMPEG4, true),
		explicitLE(MPEG4HighProfile2DUID, "MPEG-4 AVC/H.264 High Profile / Level 4.2 For 2D Video", SchemeMPEG4, true),
		explicitLE(MPEG4HighProfile3DUID, "MPEG-4 AVC/H.264 High Profile / Level 4.2 For 3D Video", SchemeMPEG4, true),
		explicitLE(MPEG4StereoHighProfileUID, "MPEG-4 AVC/H.264 Stereo High Profile / Level 4.2", SchemeMPEG4, true),
		explicitLE(HEVCMainProfileUID, "HEVC/H.265 Main Profile / Level 5.1", SchemeHEVC, true),
		explicitLE(HEVCMain10ProfileUID, "HEVC/H.265 Main 10 Profile / Level 5.1", SchemeHEVC, true),
		explicitLE(RLELosslessUID, "RLE Lossless", SchemeRLE, false),
		explicitLE(DeflatedImageFrameCompressionUID, "Deflated Image Frame Compression", SchemeDeflate, false),
	} {
		transferSyntaxes[ts.UID] = ts
	}
}

// LookupTransferSyntax resolves a transfer syntax UID. For unknown UIDs the returned
// TransferSyntax is explicit VR little endian, which is the encoding all encapsulated syntaxes
// share according to PS3.5 A.4, and the error wraps ErrUnresolvedTransferSyntax.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
func LookupTransferSyntax(uid string) (*TransferSyntax, error) {
	uid = strings.TrimRight(uid, "\x00 ")
	if ts, ok := transferSyntaxes[uid]; ok {
		return ts, nil
	}

	unknown := &TransferSyntax{
		UID:       uid,
		Name:      "Unknown",
		ByteOrder: binary.LittleEndian,
		Scheme:    SchemeUnknown,
	}
	return unknown, fmt.Errorf("%w: unknown transfer syntax uid %q", ErrUnresolvedTransferSyntax, uid)
}

// TransferSyntaxes returns all known transfer syntaxes ordered by UID
func TransferSyntaxes() []*TransferSyntax {
	ret := make([]*TransferSyntax, 0, len(transferSyntaxes))
	for _, ts := range transferSyntaxes {
		ret = append(ret, ts)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].UID < ret[j].UID })
	return ret
}

const (
	vrSize  = 2
	tagSize = 4
)

// headerSize is the number of bytes preceding the value field of an element
func (ts *TransferSyntax) headerSize(vr *VR) uint32 {
	if ts.Implicit {
		return tagSize + 4 /*length*/
	}
	if vr.IsLongForm() {
		return tagSize + vrSize + 2 /*reserved*/ + 4 /*32-bit length*/
	}
	return tagSize + vrSize + 2 /*16-bit length*/
}

func (ts *TransferSyntax) elementSize(vr *VR, valueFieldLength uint32) uint32 {
	if valueFieldLength == UndefinedLength {
		return UndefinedLength
	}
	return ts.headerSize(vr) + valueFieldLength
}

// readVR reads the VR of an explicit syntax, implicit syntaxes consult the data dictionary
func (ts *TransferSyntax) readVR(dr *dcmReader, tag DataElementTag) (*VR, error) {
	if ts.Implicit {
		return tag.DictionaryVR(), nil
	}

	offset := dr.Offset()
	vrString, err := dr.String(vrSize)
	if err != nil {
		return nil, err
	}
	vr, err := LookupVR(vrString)
	if err != nil {
		return nil, newDecodeError(ErrInvalidVR, tag, offset, "unknown vr code %q", vrString)
	}
	return vr, nil
}

func (ts *TransferSyntax) readValueLength(dr *dcmReader, vr *VR) (uint32, error) {
	if ts.Implicit {
		return dr.UInt32(ts.ByteOrder)
	}

	if vr.IsLongForm() {
		if _, err := dr.UInt16(ts.ByteOrder); err != nil {
			return 0, fmt.Errorf("reading reserved field: %w", err)
		}
		return dr.UInt32(ts.ByteOrder)
	}

	length, err := dr.UInt16(ts.ByteOrder)
	return uint32(length), err
}

func (ts *TransferSyntax) writeVR(dw *dcmWriter, vr *VR) error {
	if ts.Implicit {
		// implicit VR syntax does not include VR in the DICOM file
		return nil
	}
	return dw.String(vr.Name)
}

func (ts *TransferSyntax) writeValueLength(dw *dcmWriter, vr *VR, valueFieldLength uint32) error {
	if ts.Implicit {
		return dw.UInt32(ts.ByteOrder, valueFieldLength)
	}

	// For explicit VR, lengths can be stored in a 32 bit field or a 16 bit field
	// depending on the VR type. The 2 cases are defined at the link:
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
	if vr.IsLongForm() {
		if err := dw.UInt16(ts.ByteOrder, 0); err != nil {
			return fmt.Errorf("writing reserved field: %w", err)
		}
		return dw.UInt32(ts.ByteOrder, valueFieldLength)
	}

	if valueFieldLength > math.MaxUint16 {
		return fmt.Errorf("%w: value length %d of vr %v exceeds unsigned 16-bit length",
			ErrMalformedLength, valueFieldLength, vr)
	}
	return dw.UInt16(ts.ByteOrder, uint16(valueFieldLength))
}

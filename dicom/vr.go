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
)

// vrType is to group common encodings together
type vrType int

const (
	// textVR is for value fields that will be interpreted as simple text with space padding
	textVR vrType = iota

	// numberBinaryVR is for value fields that are parsed as binary numbers
	numberBinaryVR

	// bulkDataVR groups opaque byte streams (OB, OW, UN)
	bulkDataVR

	// uniqueIdentifierVR is for VR: UI. It has null padding
	uniqueIdentifierVR

	// sequenceVR is for VR: SQ
	sequenceVR

	// tagVR is for tags. Distinct from numberBinaryVR since each value is a pair of uint16
	tagVR
)

// UndefinedLength as specified
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
const UndefinedLength uint32 = 0xffffffff

// VR models the DICOM Value representations (VR)
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type VR struct {
	// Name represents the 2-character VR Code
	Name string

	kind vrType

	// longForm is true for VRs using a reserved field and a 32-bit length in explicit syntaxes
	longForm bool

	// multiValued is true for text VRs whose values are delimited by a backslash
	multiValued bool

	// size is the width in bytes of one binary value, 0 for text and opaque VRs
	size int
}

func (vr *VR) String() string {
	return vr.Name
}

// Padding returns the byte appended to odd-length values of this VR.
func (vr *VR) Padding() byte {
	if vr.kind == textVR {
		return ' '
	}
	return 0x00
}

// IsLongForm is true when the explicit VR encoding uses a 32-bit length field.
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (vr *VR) IsLongForm() bool {
	return vr.longForm
}

// IsText is true for VRs whose values are character strings.
func (vr *VR) IsText() bool {
	return vr.kind == textVR || vr.kind == uniqueIdentifierVR
}

var vrLookupMap = map[string]*VR{}

type vrOption func(*VR)

func long(vr *VR)  { vr.longForm = true }
func multi(vr *VR) { vr.multiValued = true }

func width(n int) vrOption {
	return func(vr *VR) { vr.size = n }
}

func newVR(text string, kind vrType, opts ...vrOption) *VR {
	vr := &VR{Name: text, kind: kind}
	for _, opt := range opts {
		opt(vr)
	}
	vrLookupMap[vr.Name] = vr

	return vr
}

// LookupVR returns the VR with the given 2-character code.
func LookupVR(name string) (*VR, error) {
	r, ok := vrLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vr name %q", ErrInvalidVR, name)
	}
	return r, nil
}

// VR list obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
var (
	// textual VRs
	CSVR = newVR("CS", textVR, multi)
	SHVR = newVR("SH", textVR, multi)
	LOVR = newVR("LO", textVR, multi)
	STVR = newVR("ST", textVR)
	LTVR = newVR("LT", textVR)
	ASVR = newVR("AS", textVR, multi)

	// person name
	PNVR = newVR("PN", textVR, multi)

	// application entity
	AEVR = newVR("AE", textVR, multi)

	// dates/time VR
	DAVR = newVR("DA", textVR, multi)
	TMVR = newVR("TM", textVR, multi)
	DTVR = newVR("DT", textVR, multi)

	// textual numbers
	ISVR = newVR("IS", textVR, multi)
	DSVR = newVR("DS", textVR, multi)

	// unlimited characters, URL and unlimited text
	UCVR = newVR("UC", textVR, long, multi)
	URVR = newVR("UR", textVR, long)
	UTVR = newVR("UT", textVR, long)

	// binary numbers
	SSVR = newVR("SS", numberBinaryVR, width(2))
	USVR = newVR("US", numberBinaryVR, width(2))
	SLVR = newVR("SL", numberBinaryVR, width(4))
	ULVR = newVR("UL", numberBinaryVR, width(4))
	SVVR = newVR("SV", numberBinaryVR, long, width(8))
	UVVR = newVR("UV", numberBinaryVR, long, width(8))
	FLVR = newVR("FL", numberBinaryVR, width(4))
	FDVR = newVR("FD", numberBinaryVR, width(8))

	// "other" binary numbers, decoded like their fixed width counterparts
	ODVR = newVR("OD", numberBinaryVR, long, width(8))
	OFVR = newVR("OF", numberBinaryVR, long, width(4))
	OLVR = newVR("OL", numberBinaryVR, long, width(4))
	OVVR = newVR("OV", numberBinaryVR, long, width(8))

	// opaque bytes
	OBVR = newVR("OB", bulkDataVR, long, width(1))
	OWVR = newVR("OW", bulkDataVR, long, width(2))
	UNVR = newVR("UN", bulkDataVR, long, width(1))

	// attribute tag
	ATVR = newVR("AT", tagVR, width(4))

	// unique identifier
	UIVR = newVR("UI", uniqueIdentifierVR, multi)

	// sequence
	SQVR = newVR("SQ", sequenceVR, long)
)

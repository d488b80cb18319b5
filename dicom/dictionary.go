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
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DictionaryEntry is an attribute definition of the DICOM data dictionary
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
type DictionaryEntry struct {
	Tag DataElementTag

	// VRs lists the permitted VRs. The first one is used when the VR is not present in the
	// stream (implicit VR syntaxes).
	VRs []*VR

	// VM is the value multiplicity, e.g. "1", "1-n", "2-2n"
	VM string

	Keyword string
	Name    string
	Retired bool
}

// VR returns the default VR of the entry.
func (e DictionaryEntry) VR() *VR {
	return e.VRs[0]
}

// Permits is true if vr is one of the VRs of the entry.
func (e DictionaryEntry) Permits(vr *VR) bool {
	for _, v := range e.VRs {
		if v == vr {
			return true
		}
	}
	return false
}

//go:generate go run ../internal/gendict -in part06.xml -out dictionary_table.go

// dictionaryRow is one registry row of PS3.6. A non-zero mask marks a wildcard row.
type dictionaryRow struct {
	tag     uint32
	mask    uint32
	vr      string
	vm      string
	keyword string
	name    string
	retired bool
}

// Tags in the DICOM data dictionary have wildcards (e.g. tags like (gggg,eexx), (ggxx,eeee)).
// The table stores the value of the tag with the x's set to '0' in hex. For example the Curve
// Data tag is defined as (50xx,3000) and stored as 0x50003000, so a tag t matches when
// (t & 0xFF00FFFF) == 0x50003000.
var wildcardMasks = []uint32{0xFFFFFF00, 0xFFFFFF0F, 0xFFFF000F, 0xFFFF0000, 0xFF00FFFF}

// keywordIndex is keyed by the xxhash digest of the keyword. Keywords whose digests collide share
// a bucket and are told apart by comparing the keyword.
var keywordIndex = map[uint64][]*DictionaryEntry{}

var (
	exactEntries    = map[DataElementTag]*DictionaryEntry{}
	wildcardEntries = map[uint32]map[DataElementTag]*DictionaryEntry{}

	groupLengthEntry = DictionaryEntry{
		VRs: []*VR{ULVR}, VM: "1", Keyword: "GenericGroupLength", Name: "Generic Group Length"}
	privateCreatorEntry = DictionaryEntry{
		VRs: []*VR{LOVR}, VM: "1", Keyword: "PrivateCreator", Name: "Private Creator"}
)

func init() {
	for _, row := range dictionaryRows {
		entry := row.entry()
		if row.mask == 0 {
			exactEntries[entry.Tag] = entry
		} else {
			if row.tag&row.mask != row.tag {
				panic(fmt.Sprintf("dictionary row %08X: tag is not masked by %08X", row.tag, row.mask))
			}
			if wildcardEntries[row.mask] == nil {
				wildcardEntries[row.mask] = map[DataElementTag]*DictionaryEntry{}
			}
			wildcardEntries[row.mask][entry.Tag] = entry
		}
		indexKeyword(entry)
	}
}

func indexKeyword(entry *DictionaryEntry) {
	h := xxhash.Sum64String(entry.Keyword)
	for _, e := range keywordIndex[h] {
		if e.Keyword == entry.Keyword {
			return
		}
	}
	keywordIndex[h] = append(keywordIndex[h], entry)
}

func (row dictionaryRow) entry() *DictionaryEntry {
	var vrs []*VR
	for _, name := range strings.Split(row.vr, "/") {
		vr, err := LookupVR(name)
		if err != nil {
			panic(fmt.Sprintf("dictionary row %08X: %v", row.tag, err))
		}
		vrs = append(vrs, vr)
	}
	return &DictionaryEntry{
		Tag:     DataElementTag(row.tag),
		VRs:     vrs,
		VM:      row.vm,
		Keyword: row.keyword,
		Name:    row.name,
		Retired: row.retired,
	}
}

// LookupTag returns the data dictionary entry of the tag. Group length and private creator
// elements resolve to generic entries.
func LookupTag(tag DataElementTag) (DictionaryEntry, bool) {
	if e, ok := exactEntries[tag]; ok {
		return *e, true
	}
	for _, m := range wildcardMasks {
		if e, ok := wildcardEntries[m][DataElementTag(uint32(tag)&m)]; ok {
			entry := *e
			entry.Tag = tag
			return entry, true
		}
	}
	if tag.IsGroupLength() && !tag.isDelimiter() {
		e := groupLengthEntry
		e.Tag = tag
		return e, true
	}
	if tag.IsPrivateCreator() {
		e := privateCreatorEntry
		e.Tag = tag
		return e, true
	}
	return DictionaryEntry{}, false
}

// LookupKeyword returns the data dictionary entry with the given keyword, e.g. "PatientName".
func LookupKeyword(keyword string) (DictionaryEntry, bool) {
	for _, e := range keywordIndex[xxhash.Sum64String(keyword)] {
		if e.Keyword == keyword {
			return *e, true
		}
	}
	return DictionaryEntry{}, false
}

// DictionaryVR returns the default VR of the tag in the data dictionary, or UN if the tag is
// unknown.
func (t DataElementTag) DictionaryVR() *VR {
	if e, ok := LookupTag(t); ok {
		return e.VR()
	}
	return UNVR
}

// Keyword returns the data dictionary keyword of the tag, or an empty string if unknown.
func (t DataElementTag) Keyword() string {
	if e, ok := LookupTag(t); ok {
		return e.Keyword
	}
	return ""
}

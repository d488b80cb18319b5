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

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// lookupLabelByTerm is a mapping of specific character set defined terms to golang charset labels.
// See link below for list of character set defined terms.
// http://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
var lookupLabelByTerm = map[string]string{
	"ISO_IR 100": "iso-ir-100",
	"ISO_IR 101": "iso-ir-101",
	"ISO_IR 109": "iso-ir-109",
	"ISO_IR 110": "iso-ir-110",
	"ISO_IR 144": "iso-ir-144",
	"ISO_IR 127": "iso-ir-127",
	"ISO_IR 126": "iso-ir-126",
	"ISO_IR 138": "iso-ir-138",
	"ISO_IR 148": "iso-ir-148",
	"ISO_IR 13":  "shift-jis",
	"ISO_IR 166": "tis-620",
	"ISO_IR 192": "utf-8",
	"GB18030":    "gb18030",
	"GBK":        "gbk",

	"ISO 2022 IR 6":   "us-ascii",
	"ISO 2022 IR 100": "iso-ir-100",
	"ISO 2022 IR 101": "iso-ir-101",
	"ISO 2022 IR 109": "iso-ir-109",
	"ISO 2022 IR 110": "iso-ir-110",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 13":  "shift-jis",
	"ISO 2022 IR 166": "tis-620",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO 2022 IR 149": "iso-ir-149",
}

// lookupEncoding returns the encoding of a defined term. Code extensions are not switched within
// a value, the first non default term decides the encoding of the whole data set.
func lookupEncoding(term string) (encoding.Encoding, error) {
	label, ok := lookupLabelByTerm[term]
	if !ok {
		return nil, fmt.Errorf("%w: specific character set defined term not found: %v", ErrInvalidValue, term)
	}

	coding, _ := charset.Lookup(label)
	if coding == nil {
		return nil, fmt.Errorf("missing encoding for label %q", label)
	}
	return coding, nil
}

// characterSetEncoding returns the encoding for the values of (0008,0005), nil for the default
// repertoire which needs no conversion
func characterSetEncoding(terms []string) (encoding.Encoding, error) {
	for _, term := range terms {
		switch term {
		case "", "ISO_IR 6", "ISO 2022 IR 6":
			continue
		}
		return lookupEncoding(term)
	}
	return nil, nil
}

// textVRsWithCharacterSet are the VRs whose values are affected by the Specific Character Set
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
var textVRsWithCharacterSet = map[*VR]bool{
	SHVR: true,
	LOVR: true,
	STVR: true,
	LTVR: true,
	PNVR: true,
	UCVR: true,
	UTVR: true,
}

// decodeCharacterSets converts text values of ds to UTF-8 in place. Sequence items inherit the
// character set of their parent unless they specify their own.
func (d *decoder) decodeCharacterSets(ds *DataSet, inherited encoding.Encoding) error {
	coding, err := d.dataSetEncoding(ds, inherited)
	if err != nil {
		return err
	}

	for _, elem := range ds.Elements {
		switch v := elem.ValueField.(type) {
		case *Sequence:
			for _, item := range v.Items {
				if err := d.decodeCharacterSets(item, coding); err != nil {
					return err
				}
			}
		case []string:
			if coding == nil || !textVRsWithCharacterSet[elem.VR] {
				continue
			}
			// the delimiter byte can be part of a multi-byte character, so values are decoded
			// as a whole and split afterwards
			decoded, err := coding.NewDecoder().String(strings.Join(v, valueDelimiter))
			if err != nil {
				return fmt.Errorf("decoding %v: %w", elem.Tag, err)
			}
			if elem.VR.multiValued {
				elem.ValueField = strings.Split(decoded, valueDelimiter)
			} else {
				elem.ValueField = []string{decoded}
			}
		}
	}
	return nil
}

func (d *decoder) dataSetEncoding(ds *DataSet, inherited encoding.Encoding) (encoding.Encoding, error) {
	elem, ok := ds.Elements[SpecificCharacterSetTag]
	if !ok {
		return inherited, nil
	}
	coding, err := characterSetEncoding(elem.Strings())
	if err != nil {
		if !d.cfg.lenient {
			return nil, err
		}
		d.warn(err)
		return inherited, nil
	}
	return coding, nil
}

// encodeCharacterSets returns a copy of ds whose text values are converted from UTF-8 to the
// Specific Character Set of their data set. ds is not modified.
func encodeCharacterSets(ds *DataSet, inherited encoding.Encoding) (*DataSet, error) {
	coding := inherited
	if elem, ok := ds.Elements[SpecificCharacterSetTag]; ok {
		c, err := characterSetEncoding(elem.Strings())
		if err != nil {
			return nil, err
		}
		coding = c
	}

	out := &DataSet{Elements: make(map[DataElementTag]*DataElement, len(ds.Elements)), Length: ds.Length}
	for tag, elem := range ds.Elements {
		c := *elem
		switch v := elem.ValueField.(type) {
		case *Sequence:
			seq := &Sequence{Items: make([]*DataSet, 0, len(v.Items))}
			for _, item := range v.Items {
				encoded, err := encodeCharacterSets(item, coding)
				if err != nil {
					return nil, err
				}
				seq.append(encoded)
			}
			c.ValueField = seq
		case []string:
			if coding != nil && textVRsWithCharacterSet[elem.VR] {
				if err := checkTextValues(v, elem.VR); err != nil {
					return nil, fmt.Errorf("encoding %v: %w", tag, err)
				}
				encoded, err := coding.NewEncoder().String(strings.Join(v, valueDelimiter))
				if err != nil {
					return nil, fmt.Errorf("encoding %v: %w", tag, err)
				}
				c.ValueField = encodedText(encoded)
			}
		}
		out.Elements[tag] = &c
	}
	return out, nil
}

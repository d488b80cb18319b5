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

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// Transform describes a transformation applied to a DataElement
type Transform func(*DataElement) (*DataElement, error)

// ParseOption configures the behavior of the Parse function.
type ParseOption struct {
	transform Transform
	configure func(*parseConfig)
}

type parseConfig struct {
	transforms []Transform
	bestEffort bool
	lenient    bool
	validate   bool
	charsets   bool
	include    []glob.Glob
	bulkData   func(*DataElement) bool
	logger     logrus.FieldLogger
}

func newParseConfig(opts []ParseOption) *parseConfig {
	cfg := &parseConfig{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt.transform != nil {
			cfg.transforms = append(cfg.transforms, opt.transform)
		}
		if opt.configure != nil {
			opt.configure(cfg)
		}
	}
	return cfg
}

// WithTransform returns a ParseOption that applies the given transformation to each DataElement in
// the DICOM file in the order encountered. For DataElements that contain a sequence, the transform
// is applied to nested DataElements first (i.e. transform is called on DataElements in post-order).
// If the transform returns an error, Parse will stop parsing and return an error.
// If no error is returned and a non-nil DataElement is returned, this DataElement will be added to
// the returned DataSet of Parse. If a nil DataElement is returned, this DataElement will be
// excluded from the DataSet returned from Parse.
func WithTransform(t Transform) ParseOption {
	return ParseOption{transform: t}
}

// WithLogger sets the logger receiving warnings about recovered format violations and debug
// information about transfer syntax changes. The logrus standard logger is used by default.
func WithLogger(logger logrus.FieldLogger) ParseOption {
	return ParseOption{configure: func(c *parseConfig) { c.logger = logger }}
}

// BestEffort makes Parse return the DataSet decoded up to a structural error together with the
// error, instead of discarding it.
var BestEffort = ParseOption{configure: func(c *parseConfig) { c.bestEffort = true }}

// Lenient accepts duplicate tags (the last occurrence wins), tags out of ascending order and odd
// value lengths. Every recovery is logged as a warning.
var Lenient = ParseOption{configure: func(c *parseConfig) { c.lenient = true }}

// ValidateValues checks DA, TM and DT values against their grammar. Partial precision values
// such as a year only date are valid.
var ValidateValues = ParseOption{configure: func(c *parseConfig) { c.validate = true }}

// DecodeCharacterSet converts the values of text VRs affected by the Specific Character Set
// (0008,0005) to UTF-8.
var DecodeCharacterSet = ParseOption{configure: func(c *parseConfig) { c.charsets = true }}

// IncludeKeywords keeps only the top level elements whose data dictionary keyword matches one of
// the glob patterns, e.g. "Patient*". File meta elements are always kept.
func IncludeKeywords(patterns ...string) (ParseOption, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return ParseOption{}, fmt.Errorf("compiling keyword pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return ParseOption{configure: func(c *parseConfig) { c.include = append(c.include, globs...) }}, nil
}

// ReferenceBulkData replaces the values of DataElements for which bulkDataDefinition returns true
// with []BulkDataReference describing where the value is located in the stream. The bytes of
// these values are skipped rather than buffered.
func ReferenceBulkData(bulkDataDefinition func(*DataElement) bool) ParseOption {
	return ParseOption{configure: func(c *parseConfig) { c.bulkData = bulkDataDefinition }}
}

// DropGroupLengths will exclude all group length elements (gggg,0000) from the returned DataSet
var DropGroupLengths = WithTransform(func(element *DataElement) (*DataElement, error) {
	if element.Tag.IsGroupLength() {
		return nil, nil
	}
	return element, nil
})

// DropBasicOffsetTable will exclude the basic offset table from pixel data encoded using
// the encapsulated (compressed) format. For more information on the offset table and encapsulated
// formats please see http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
var DropBasicOffsetTable = WithTransform(func(element *DataElement) (*DataElement, error) {
	if p, ok := element.ValueField.(*EncapsulatedPixelData); ok && element.Tag == PixelDataTag {
		element.ValueField = &EncapsulatedPixelData{OffsetTable: []uint32{}, Fragments: p.Fragments}
	}
	return element, nil
})

func (c *parseConfig) included(tag DataElementTag) bool {
	if len(c.include) == 0 || tag.IsMetadataElement() {
		return true
	}
	keyword := tag.Keyword()
	for _, g := range c.include {
		if g.Match(keyword) {
			return true
		}
	}
	return false
}

func (c *parseConfig) applyTransforms(element *DataElement) (*DataElement, error) {
	var err error
	for i, t := range c.transforms {
		element, err = t(element)
		if err != nil {
			return nil, fmt.Errorf("applying option %v: %w", i, err)
		}
		if element == nil { // option wants to filter this element out
			return nil, nil
		}
	}
	return element, nil
}

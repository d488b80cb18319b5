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

	"github.com/sirupsen/logrus"
)

// ConstructOption configures how the Construct function behaves
type ConstructOption struct {
	transform Transform
	configure func(*constructConfig)
}

// lengthPolicy decides between explicit and undefined lengths for sequences and items
type lengthPolicy int

const (
	// keep the length kind each sequence and item was decoded with
	preserveLengths lengthPolicy = iota
	explicitLengths
	undefinedLengths
)

type constructConfig struct {
	transforms []Transform
	lengths    lengthPolicy
	charsets   bool
	preamble   []byte
	logger     logrus.FieldLogger
}

func newConstructConfig(opts []ConstructOption) *constructConfig {
	cfg := &constructConfig{logger: logrus.StandardLogger(), preamble: make([]byte, preambleSize)}
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

// ConstructOptionWithTransform returns a construct option that applies the given transformation to
// each DataElement before it is written to the DICOM file. For sequence DataElements, the transform
// is applied to the parent DataElement first before being applied to its children
// (i.e. the transform is applied to DataElements in pre-order). Returning a nil DataElement
// excludes it from the output.
//
// After all the ConstructOptions are applied to a DataElement, the length of the DataElement is
// re-calculated and VRs added from the DICOM data dictionary if the DataElement has a nil VR.
func ConstructOptionWithTransform(transform func(element *DataElement) (*DataElement, error)) ConstructOption {
	return ConstructOption{transform: transform}
}

// ExplicitLengths ensures all sequences and sequence items are written with explicit length. The
// behaviour when used in conjunction with UndefinedLengths is that the last option given wins.
var ExplicitLengths = ConstructOption{configure: func(c *constructConfig) { c.lengths = explicitLengths }}

// UndefinedLengths ensures all sequences and sequence items are written with undefined length.
// Encapsulated pixel data is always written with undefined length.
var UndefinedLengths = ConstructOption{configure: func(c *constructConfig) { c.lengths = undefinedLengths }}

// EncodeCharacterSet converts the values of text VRs from UTF-8 to the Specific Character Set
// (0008,0005) of their data set. It is the counterpart of the DecodeCharacterSet ParseOption.
// Transforms no longer see the converted values as []string.
var EncodeCharacterSet = ConstructOption{configure: func(c *constructConfig) { c.charsets = true }}

// WithPreamble sets the 128 byte preamble of a Part 10 file. It is zero filled by default.
func WithPreamble(preamble []byte) ConstructOption {
	return ConstructOption{configure: func(c *constructConfig) { c.preamble = preamble }}
}

// WithConstructLogger sets the logger used while writing. The logrus standard logger is used by
// default.
func WithConstructLogger(logger logrus.FieldLogger) ConstructOption {
	return ConstructOption{configure: func(c *constructConfig) { c.logger = logger }}
}

func (c *constructConfig) applyTransforms(element *DataElement) (*DataElement, error) {
	var err error
	for i, t := range c.transforms {
		element, err = t(element)
		if err != nil {
			return nil, fmt.Errorf("applying option %v: %w", i, err)
		}
		if element == nil {
			return nil, nil
		}
	}
	return element, nil
}

// undefined reports whether a sequence or item decoded with length is written with undefined
// length
func (c *constructConfig) undefined(length uint32) bool {
	switch c.lengths {
	case explicitLengths:
		return false
	case undefinedLengths:
		return true
	default:
		return length == UndefinedLength
	}
}

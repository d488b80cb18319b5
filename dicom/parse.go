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
	"io"
)

// Parse parses a DICOM file represented as an io.Reader, returning the DataSet defined by applying
// options sequentially in the order given to DataElements in the file.
//
// A Part 10 file starts with a 128 byte preamble and the DICM marker, followed by the file meta
// group in explicit VR little endian and the data set in the transfer syntax it announces.
// Streams without the marker are parsed as a bare data set in implicit VR little endian.
//
// An unknown transfer syntax does not fail the parse: the data set is decoded as explicit VR
// little endian and DataSet.TransferSyntax reports ErrUnresolvedTransferSyntax. Structural
// errors fail the parse unless BestEffort is given, which returns the DataSet decoded up to the
// error together with the error.
func Parse(r io.Reader, opts ...ParseOption) (*DataSet, error) {
	iter, err := NewDataElementIterator(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating new data element iterator: %w", err)
	}

	ds, err := CollectDataElements(iter)
	if err != nil && !iter.state().cfg.bestEffort {
		return nil, err
	}
	return ds, err
}

// ParseDataSet parses a bare data set encoded with the transfer syntax identified by uid, as
// exchanged on the network where the transfer syntax is negotiated out of band. As with Parse, an
// unknown uid is logged and the data set is decoded as explicit VR little endian.
func ParseDataSet(r io.Reader, uid string, opts ...ParseOption) (*DataSet, error) {
	iter := newDataSetIterator(r, uid, opts)
	ds, err := CollectDataElements(iter)
	if err != nil && !iter.d.cfg.bestEffort {
		return nil, err
	}
	return ds, err
}

// CollectDataElements returns the DataSet defined by the elements in the DataElementIterator,
// applying the options the iterator was created with. When an error occurs, the DataSet holding
// the elements collected so far is returned with it.
func CollectDataElements(iter DataElementIterator) (*DataSet, error) {
	d := iter.state()
	ds, err := d.collect(iter, true)
	if err != nil {
		return ds, err
	}
	if d.cfg.charsets {
		if err := d.decodeCharacterSets(ds, nil); err != nil {
			return ds, fmt.Errorf("decoding character sets: %w", err)
		}
	}
	return ds, nil
}

// collect reads the elements of one data set. Nested data sets are collected while their
// sequence element is read, so options are applied in post-order.
func (d *decoder) collect(iter DataElementIterator, top bool) (*DataSet, error) {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{}}

	for elem, err := iter.NextElement(); err != io.EOF; elem, err = iter.NextElement() {
		if err != nil {
			if elem != nil {
				// partially decoded sequence
				ds.Elements[elem.Tag] = elem
			}
			return ds, err
		}

		processed, err := d.process(elem, top)
		if err != nil {
			return ds, err
		}
		if processed != nil { // nil check to test if ParseOption wants to filter out element
			ds.Elements[processed.Tag] = processed
		}
	}
	return ds, nil
}

func (d *decoder) process(elem *DataElement, top bool) (*DataElement, error) {
	if top && !d.cfg.included(elem.Tag) {
		return nil, nil
	}

	if d.cfg.validate {
		if err := validateTemporal(elem); err != nil {
			err = fmt.Errorf("validating %v: %w", elem.Tag, err)
			if !d.cfg.lenient {
				return nil, err
			}
			d.warn(err)
		}
	}

	return d.cfg.applyTransforms(elem)
}

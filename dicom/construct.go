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

// Construct writes the given *DataSet as a DICOM file to the given io.Writer. The desired output
// transfer syntax is specified as a required TransferSyntax DataElement (0002,0010). By default,
// there is no validation against the DICOM standard of any form.
//
// If a *DataElement in the *DataSet is missing VR it will be filled in from the
// DICOM Data Dictionary. The ValueLength of DataElements is only used to keep the undefined
// length of sequences and items, all lengths are re-calculated. The given DataSet is not modified.
func Construct(w io.Writer, dataSet *DataSet, opts ...ConstructOption) error {
	cfg := newConstructConfig(opts)
	dataSet, err := prepareForConstruct(dataSet, cfg)
	if err != nil {
		return err
	}

	dew, err := newDataElementWriter(w, dataSet.MetaElements(), cfg)
	if err != nil {
		return fmt.Errorf("writing file meta group: %w", err)
	}
	return writeElements(dew, dataSet.withoutMeta())
}

// ConstructDataSet writes the given *DataSet without preamble and file meta group in the transfer
// syntax identified by uid, as exchanged on the network where the transfer syntax is negotiated
// out of band. File meta elements of dataSet are not written.
func ConstructDataSet(w io.Writer, dataSet *DataSet, uid string, opts ...ConstructOption) error {
	syntax, err := LookupTransferSyntax(uid)
	if err != nil {
		return err
	}

	cfg := newConstructConfig(opts)
	dataSet, err = prepareForConstruct(dataSet, cfg)
	if err != nil {
		return err
	}
	return writeElements(newBodyWriter(w, syntax, cfg), dataSet.withoutMeta())
}

func prepareForConstruct(dataSet *DataSet, cfg *constructConfig) (*DataSet, error) {
	if !cfg.charsets {
		return dataSet, nil
	}
	encoded, err := encodeCharacterSets(dataSet, nil)
	if err != nil {
		return nil, fmt.Errorf("encoding character sets: %w", err)
	}
	return encoded, nil
}

func writeElements(dew DataElementWriter, dataSet *DataSet) error {
	for _, element := range dataSet.SortedElements() {
		if err := dew.WriteElement(element); err != nil {
			return fmt.Errorf("writing data element: %w", err)
		}
	}
	return dew.Close()
}

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
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// DataElementWriter writes DataElements one at a time
type DataElementWriter interface {
	// WriteElement writes element in the transfer syntax of the writer. Elements must be given
	// in ascending tag order.
	WriteElement(element *DataElement) error

	// Close flushes buffered output, such as the tail of a deflated data set. It does not close
	// the underlying io.Writer.
	Close() error
}

var errExpectedMetaHeader = errors.New("expected header to only contain file meta elements, " +
	"use DataSet.MetaElements to filter DataSet")

// NewDataElementWriter writes the DICOM preamble, signature, and meta header to w and returns a
// DataElementWriter that writes DataElements in the transfer syntax specified by the header.
// The options are applied in the order given to all DataElements including File Meta Elements
// before being written to w. The File Meta Information Group Length is always recomputed.
func NewDataElementWriter(w io.Writer, header *DataSet, opts ...ConstructOption) (DataElementWriter, error) {
	return newDataElementWriter(w, header, newConstructConfig(opts))
}

func newDataElementWriter(w io.Writer, header *DataSet, cfg *constructConfig) (*dataElementWriter, error) {
	if !header.isMetaHeader() {
		return nil, errExpectedMetaHeader
	}
	if _, ok := header.Elements[TransferSyntaxUIDTag]; !ok {
		return nil, fmt.Errorf("%w: transfer syntax element is missing from header", ErrUnresolvedTransferSyntax)
	}
	syntax, err := header.TransferSyntax()
	if syntax == nil {
		return nil, fmt.Errorf("getting transfer syntax from header: %w", err)
	}
	if err != nil {
		cfg.logger.WithField("transfer_syntax", syntax.UID).Warn(err.Error())
	}

	dw := newDcmWriter(w)
	if err := writeDicomSignature(dw, cfg.preamble); err != nil {
		return nil, err
	}

	// Meta elements are always written in the Explicit VR Little Endian syntax in ascending order.
	// http://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
	meta := &encoder{syntax: explicitVRLittleEndian, cfg: cfg}
	body := header.withoutGroupLength()
	metaBytes, err := meta.encodeDataSet(body)
	if err != nil {
		return nil, fmt.Errorf("encoding meta elements: %w", err)
	}

	// The FileMetaInformationGroupLength element is a critical component of the Meta Header. It
	// stores how long the meta header is. Thus, we need to re-calculate it properly.
	groupLength := &DataElement{
		Tag:        FileMetaInformationGroupLengthTag,
		VR:         ULVR,
		ValueField: []uint32{uint32(len(metaBytes))},
	}
	groupLengthBytes, err := (&encoder{syntax: explicitVRLittleEndian, cfg: &constructConfig{}}).encodeElement(groupLength)
	if err != nil {
		return nil, fmt.Errorf("creating meta group length element: %w", err)
	}
	if err := dw.Bytes(groupLengthBytes); err != nil {
		return nil, fmt.Errorf("writing meta group length element: %w", err)
	}
	if err := dw.Bytes(metaBytes); err != nil {
		return nil, fmt.Errorf("writing meta elements: %w", err)
	}
	cfg.logger.WithField("length", len(metaBytes)).Debug("wrote file meta group")

	return newBodyWriter(w, syntax, cfg), nil
}

// newBodyWriter returns a writer for the elements of a data set in syntax, deflating them for
// the deflated transfer syntax
func newBodyWriter(w io.Writer, syntax *TransferSyntax, cfg *constructConfig) *dataElementWriter {
	dew := &dataElementWriter{enc: &encoder{syntax: syntax, cfg: cfg}}
	if syntax.Deflated {
		cfg.logger.WithField("transfer_syntax", syntax.UID).Debug("deflating the data set")
		// only invalid compression levels fail
		fw, _ := flate.NewWriter(w, flate.DefaultCompression)
		dew.closer = fw
		w = fw
	}
	dew.dw = newDcmWriter(w)
	return dew
}

type dataElementWriter struct {
	dw     *dcmWriter
	enc    *encoder
	closer io.Closer
	last   DataElementTag
}

func (dew *dataElementWriter) WriteElement(element *DataElement) error {
	if element.Tag < dew.last {
		return errorf(ErrTagOrder, "%v written after %v", element.Tag, dew.last)
	}
	dew.last = element.Tag

	b, err := dew.enc.encodeElement(element)
	if err != nil {
		return err
	}
	return dew.dw.Bytes(b)
}

func (dew *dataElementWriter) Close() error {
	if dew.closer == nil {
		return nil
	}
	return dew.closer.Close()
}

func writeDicomSignature(dw *dcmWriter, preamble []byte) error {
	if len(preamble) != preambleSize {
		return fmt.Errorf("preamble is %d bytes, want %d", len(preamble), preambleSize)
	}
	if err := dw.Bytes(preamble); err != nil {
		return fmt.Errorf("writing DICOM preamble: %w", err)
	}

	if err := dw.String(dicomMagic); err != nil {
		return fmt.Errorf("writing DICOM signature: %w", err)
	}

	return nil
}

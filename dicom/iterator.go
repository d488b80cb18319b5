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

	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
)

// DataElementIterator represents an iterator over a DataSet's DataElements
type DataElementIterator interface {
	// NextElement returns the next DataElement in the DataSet. If there is no next DataElement, the
	// error io.EOF is returned. Sequences are returned fully decoded. When a sequence fails part
	// way, the element holding the items decoded so far is returned together with the error.
	NextElement() (*DataElement, error)

	// Close discards all remaining DataElements in the iterator
	Close() error

	// TransferSyntax returns the transfer syntax the elements are decoded with
	TransferSyntax() *TransferSyntax

	state() *decoder
}

// NewDataElementIterator creates a DataElementIterator from a DICOM file. The implementation
// returned will consume input from the io.Reader given as needed. Streams without the DICM
// marker are read as a bare data set in implicit VR little endian.
func NewDataElementIterator(r io.Reader, opts ...ParseOption) (DataElementIterator, error) {
	d := newDecoder(newParseConfig(opts))
	dr := newDcmReader(r)

	if !hasDicomSignature(dr) {
		d.log.Debug("no DICM marker found, reading a bare implicit VR little endian data set")
		return newDataElementIterator(d, dr, implicitVRLittleEndian, topLevel), nil
	}
	if err := dr.Skip(preambleSize + 4); err != nil {
		return nil, fmt.Errorf("skipping preamble: %w", err)
	}

	meta, err := d.readFileMeta(dr)
	if err != nil {
		return nil, fmt.Errorf("reading meta header: %w", err)
	}

	syntax, err := d.findSyntax(meta, dr)
	if err != nil {
		return nil, fmt.Errorf("finding transfer syntax: %w", err)
	}
	d.log.WithField("transfer_syntax", syntax.UID).Debug("switching to the transfer syntax of the data set")

	body := dr
	if syntax.Deflated {
		d.log.Debug("inflating the data set")
		body = newDcmReader(flate.NewReader(dr.cr.r))
	}
	it := newDataElementIterator(d, body, syntax, topLevel)
	it.meta = meta
	for _, elem := range meta {
		it.tags[elem.Tag] = true
		it.last = elem.Tag
	}
	return it, nil
}

// newDataSetIterator creates a DataElementIterator over a bare data set encoded with the transfer
// syntax uid, as exchanged on the network where the transfer syntax is negotiated out of band.
func newDataSetIterator(r io.Reader, uid string, opts []ParseOption) *dataElementIterator {
	d := newDecoder(newParseConfig(opts))
	syntax, err := LookupTransferSyntax(uid)
	if err != nil {
		d.log.WithField("transfer_syntax", uid).Warn(err.Error())
	}
	if syntax.Deflated {
		r = flate.NewReader(r)
	}
	return newDataElementIterator(d, newDcmReader(r), syntax, topLevel)
}

// containerKind tells how the end of a run of elements is detected
type containerKind int

const (
	// topLevel ends at the end of the stream
	topLevel containerKind = iota

	// definedItem ends when the bytes of an item of explicit length are consumed
	definedItem

	// undefinedItem ends with an Item Delimitation Item
	undefinedItem
)

func newDataElementIterator(d *decoder, dr *dcmReader, syntax *TransferSyntax, kind containerKind) *dataElementIterator {
	return &dataElementIterator{
		d:      d,
		dr:     dr,
		syntax: syntax,
		kind:   kind,
		tags:   map[DataElementTag]bool{},
	}
}

type dataElementIterator struct {
	d      *decoder
	dr     *dcmReader
	syntax *TransferSyntax
	kind   containerKind

	// meta holds the file meta elements, returned before the elements of the data set
	meta []*DataElement

	tags   map[DataElementTag]bool
	last   DataElementTag
	signed bool
	empty  bool
}

func (it *dataElementIterator) NextElement() (*DataElement, error) {
	if len(it.meta) > 0 {
		elem := it.meta[0]
		it.meta = it.meta[1:]
		return elem, nil
	}
	if it.empty {
		return nil, io.EOF
	}

	offset := it.dr.Offset()
	elem, err := it.d.readElement(it.dr, it.syntax, it.signed)
	switch {
	case err == io.EOF:
		it.empty = true
		if it.kind == undefinedItem {
			return nil, newDecodeError(ErrInconsistentNesting, 0, offset, "missing item delimitation")
		}
		return nil, io.EOF
	case err == errItemDelimiter:
		it.empty = true
		if it.kind != undefinedItem {
			return nil, newDecodeError(ErrInconsistentNesting, ItemDelimitationItemTag, offset,
				"item delimitation outside of an item of undefined length")
		}
		return nil, io.EOF
	case err != nil:
		it.empty = true
		return elem, err
	}

	if err := it.check(elem.Tag, offset); err != nil {
		it.empty = true
		return nil, err
	}
	if elem.Tag == PixelRepresentationTag {
		if v, ok := elem.ValueField.([]uint16); ok && len(v) > 0 {
			it.signed = v[0] == 1
		}
	}
	return elem, nil
}

// check enforces unique tags in ascending order. Lenient decodes log the violation instead.
func (it *dataElementIterator) check(tag DataElementTag, offset int64) error {
	var err error
	switch {
	case it.tags[tag]:
		err = newDecodeError(ErrDuplicateTag, tag, offset, "")
	case tag < it.last:
		err = newDecodeError(ErrTagOrder, tag, offset, "follows %v", it.last)
	}
	it.tags[tag] = true
	if tag > it.last {
		it.last = tag
	}

	if err != nil && it.d.cfg.lenient {
		it.d.warn(err)
		return nil
	}
	return err
}

func (it *dataElementIterator) TransferSyntax() *TransferSyntax {
	return it.syntax
}

func (it *dataElementIterator) state() *decoder {
	return it.d
}

func (it *dataElementIterator) Close() error {
	// empty the iterator
	for _, err := it.NextElement(); err != io.EOF; _, err = it.NextElement() {
		if err != nil {
			return fmt.Errorf("unexpected error closing iterator: %w", err)
		}
	}
	return nil
}

func (d *decoder) findSyntax(meta []*DataElement, dr *dcmReader) (*TransferSyntax, error) {
	for _, elem := range meta {
		if elem.Tag != TransferSyntaxUIDTag {
			continue
		}
		uids := elem.Strings()
		if len(uids) != 1 {
			return nil, fmt.Errorf("%w: expected 1 value for transfer syntax, got %d", ErrUnresolvedTransferSyntax, len(uids))
		}
		syntax, err := LookupTransferSyntax(uids[0])
		if err != nil {
			// metadata stays readable as explicit VR little endian, pixel data is left compressed
			d.log.WithField("transfer_syntax", uids[0]).Warn(err.Error())
		}
		return syntax, nil
	}

	if !d.cfg.lenient && !d.cfg.bestEffort {
		return nil, fmt.Errorf("%w: transfer syntax uid not found in the file meta group", ErrUnresolvedTransferSyntax)
	}
	syntax := guessSyntax(dr)
	d.log.WithFields(logrus.Fields{"transfer_syntax": syntax.UID}).Warn("transfer syntax uid missing, guessed from the data set")
	return syntax, nil
}

// guessSyntax inspects the first element header of the data set: an explicit VR syntax has a
// known VR code after the tag. The group number tells the byte order.
func guessSyntax(dr *dcmReader) *TransferSyntax {
	b, err := dr.Peek(6)
	if err != nil {
		return implicitVRLittleEndian
	}
	if _, err := LookupVR(string(b[4:6])); err != nil {
		return implicitVRLittleEndian
	}
	if b[0] == 0 && b[1] != 0 {
		return explicitVRBigEndian
	}
	return explicitVRLittleEndian
}

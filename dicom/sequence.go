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
	"io"
)

// readSequence reads the items of a sequence. Sequences of explicit length end when their
// bytes are consumed, sequences of undefined length end with a Sequence Delimitation Item.
// Items of either kind may appear in sequences of either kind. The returned Sequence holds the
// items decoded so far, also when an error is returned.
func (d *decoder) readSequence(dr *dcmReader, syntax *TransferSyntax, length uint32) (*Sequence, error) {
	seq := &Sequence{Items: []*DataSet{}}
	undefined := length == UndefinedLength
	if !undefined {
		dr = dr.Limit(int64(length))
	}

	for {
		if !undefined && dr.AtEnd() {
			return seq, nil
		}

		offset := dr.Offset()
		tag, err := dr.Tag(syntax.ByteOrder)
		if err == io.EOF {
			if undefined {
				return seq, newDecodeError(ErrInconsistentNesting, 0, offset, "missing sequence delimitation")
			}
			return seq, newDecodeError(ErrTruncatedStream, 0, offset, "sequence ended early")
		}
		if err != nil {
			return seq, err
		}

		switch tag {
		case SequenceDelimitationItemTag:
			if err := readDelimiterLength(dr, syntax, tag); err != nil {
				return seq, err
			}
			if undefined {
				return seq, nil
			}
			err := newDecodeError(ErrInconsistentNesting, tag, offset, "sequence delimitation in a sequence of explicit length")
			if !d.cfg.lenient || dr.Remaining() != 0 {
				return seq, err
			}
			d.warn(err)
			return seq, nil
		case ItemTag:
			itemLength, err := dr.UInt32(syntax.ByteOrder)
			if err != nil {
				return seq, err
			}
			item, err := d.readItem(dr, syntax, itemLength)
			seq.append(item)
			if err != nil {
				return seq, err
			}
		case ItemDelimitationItemTag:
			return seq, newDecodeError(ErrInconsistentNesting, tag, offset, "item delimitation outside of an item")
		default:
			return seq, newDecodeError(ErrInconsistentNesting, tag, offset, "found %v in a sequence, want an item", tag)
		}
	}
}

// readItem reads the data set of a single sequence item. An item of explicit length must be
// consumed exactly, an item of undefined length ends with an Item Delimitation Item.
func (d *decoder) readItem(dr *dcmReader, syntax *TransferSyntax, length uint32) (*DataSet, error) {
	if length == UndefinedLength {
		ds, err := d.collect(newDataElementIterator(d, dr, syntax, undefinedItem), false)
		ds.Length = UndefinedLength
		return ds, err
	}

	if err := dr.fits(int64(length)); err != nil {
		return &DataSet{Elements: map[DataElementTag]*DataElement{}, Length: length}, err
	}
	ds, err := d.collect(newDataElementIterator(d, dr.Limit(int64(length)), syntax, definedItem), false)
	ds.Length = length
	return ds, err
}

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
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// streamBuilder assembles encoded elements by hand, independently of the encoder under test
type streamBuilder struct {
	buf    bytes.Buffer
	syntax *TransferSyntax
}

func newStreamBuilder(syntax *TransferSyntax) *streamBuilder {
	return &streamBuilder{syntax: syntax}
}

func (b *streamBuilder) u16(v uint16) *streamBuilder {
	p := make([]byte, 2)
	b.syntax.ByteOrder.PutUint16(p, v)
	b.buf.Write(p)
	return b
}

func (b *streamBuilder) u32(v uint32) *streamBuilder {
	p := make([]byte, 4)
	b.syntax.ByteOrder.PutUint32(p, v)
	b.buf.Write(p)
	return b
}

func (b *streamBuilder) tag(t DataElementTag) *streamBuilder {
	return b.u16(t.GroupNumber()).u16(t.ElementNumber())
}

// header writes a tag, VR and length. vr is ignored for implicit syntaxes.
func (b *streamBuilder) header(t DataElementTag, vr string, length uint32) *streamBuilder {
	b.tag(t)
	if b.syntax.Implicit {
		return b.u32(length)
	}
	b.buf.WriteString(vr)
	if v, err := LookupVR(vr); err == nil && v.IsLongForm() {
		return b.u16(0).u32(length)
	}
	return b.u16(uint16(length))
}

func (b *streamBuilder) element(t DataElementTag, vr string, value []byte) *streamBuilder {
	b.header(t, vr, uint32(len(value)))
	b.buf.Write(value)
	return b
}

func (b *streamBuilder) text(t DataElementTag, vr, value string) *streamBuilder {
	return b.element(t, vr, []byte(value))
}

func (b *streamBuilder) item(length uint32) *streamBuilder {
	return b.tag(ItemTag).u32(length)
}

func (b *streamBuilder) itemDelimiter() *streamBuilder {
	return b.tag(ItemDelimitationItemTag).u32(0)
}

func (b *streamBuilder) sequenceDelimiter() *streamBuilder {
	return b.tag(SequenceDelimitationItemTag).u32(0)
}

func (b *streamBuilder) raw(p []byte) *streamBuilder {
	b.buf.Write(p)
	return b
}

func (b *streamBuilder) bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

// part10 wraps body into a Part 10 file announcing the transfer syntax uid
func part10(uid string, body []byte) []byte {
	if len(uid)%2 != 0 {
		uid += "\x00"
	}
	meta := newStreamBuilder(explicitVRLittleEndian).
		element(FileMetaInformationVersionTag, "OB", []byte{0, 1}).
		text(TransferSyntaxUIDTag, "UI", uid).
		bytes()

	b := newStreamBuilder(explicitVRLittleEndian)
	b.raw(make([]byte, preambleSize)).raw([]byte(dicomMagic))
	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(len(meta)))
	b.element(FileMetaInformationGroupLengthTag, "UL", groupLength)
	return b.raw(meta).raw(body).bytes()
}

func metaHeader(uid string) map[DataElementTag]interface{} {
	return map[DataElementTag]interface{}{
		FileMetaInformationVersionTag: []byte{0, 1},
		MediaStorageSOPClassUIDTag:    []string{"1.2.840.10008.5.1.4.1.1.7"},
		MediaStorageSOPInstanceUIDTag: []string{"1.2.3.4.5"},
		TransferSyntaxUIDTag:          []string{uid},
	}
}

// sampleDataSet holds values of every VR category, a nested sequence and native pixel data
func sampleDataSet(uid string) *DataSet {
	values := metaHeader(uid)
	values[SpecificCharacterSetTag] = []string{"ISO_IR 100"}
	values[SOPInstanceUIDTag] = []string{"1.2.3.4.5"}
	values[StudyDateTag] = []string{"20181231"}
	values[ModalityTag] = []string{"OT"}
	values[PatientNameTag] = []string{"DOE^JOHN"}
	values[PatientIDTag] = []string{"12345"}
	values[SamplesPerPixelTag] = []uint16{1}
	values[RowsTag] = []uint16{2}
	values[ColumnsTag] = []uint16{2}
	values[BitsAllocatedTag] = []uint16{16}
	values[BitsStoredTag] = []uint16{12}
	values[PixelRepresentationTag] = []uint16{0}
	values[PixelDataTag] = []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04, 0x01}
	values[ReferencedStudySequenceTag] = &Sequence{Items: []*DataSet{
		NewDataSet(map[DataElementTag]interface{}{
			ReferencedSOPClassUIDTag:    []string{"1.2.840.10008.3.1.2.3.1"},
			ReferencedSOPInstanceUIDTag: []string{"1.2.3.4.6"},
		}),
	}}
	ds := NewDataSet(values)
	ds.Elements[PixelDataTag].VR = OWVR
	return ds
}

// nestedDataSet returns a sequence of outer items, each holding a nested sequence of inner items
func nestedDataSet(outer, inner int, length uint32) *DataSet {
	seq := &Sequence{Items: []*DataSet{}}
	for i := 0; i < outer; i++ {
		nested := &Sequence{Items: []*DataSet{}}
		for j := 0; j < inner; j++ {
			item := NewDataSet(map[DataElementTag]interface{}{
				ReferencedSOPInstanceUIDTag: []string{"1.2.3." + string(rune('1'+i)) + "." + string(rune('1'+j))},
			})
			item.Length = length
			nested.append(item)
		}
		item := &DataSet{Elements: map[DataElementTag]*DataElement{
			ReferencedImageSequenceTag: {Tag: ReferencedImageSequenceTag, VR: SQVR, ValueField: nested, ValueLength: length},
		}, Length: length}
		seq.append(item)
	}
	return &DataSet{Elements: map[DataElementTag]*DataElement{
		ReferencedStudySequenceTag: {Tag: ReferencedStudySequenceTag, VR: SQVR, ValueField: seq, ValueLength: length},
	}}
}

func construct(t *testing.T, ds *DataSet, opts ...ConstructOption) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, Construct(buf, ds, opts...))
	return buf.Bytes()
}

func parseBytes(t *testing.T, data []byte, opts ...ParseOption) *DataSet {
	t.Helper()
	ds, err := Parse(bytes.NewReader(data), opts...)
	require.NoError(t, err)
	return ds
}

// quietLogger discards log output of tests exercising recoverable errors
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func requireDataSetEqual(t *testing.T, want, got *DataSet) {
	t.Helper()
	require.True(t, want.Equal(got), "data sets differ\nwant:\n%v\ngot:\n%v", want, got)
}

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
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// readChunkSize bounds up-front allocations when reading values, so that a corrupt length
// cannot allocate more memory than the stream actually holds.
const readChunkSize = 1 << 20

// dcmReader is a wrapper around io.Reader, providing convenience methods for
// parsing tags, numbers, strings. A dcmReader may be limited to the bytes of an enclosing
// item or sequence of explicit length.
type dcmReader struct {
	cr *countReader

	// end is the stream offset at which this reader is exhausted, -1 when unbounded
	end int64
}

func newDcmReader(r io.Reader) *dcmReader {
	return &dcmReader{cr: &countReader{r: bufio.NewReader(r)}, end: -1}
}

// Limit returns a dcmReader that shares the same underlying io.Reader that returns
// EOF after reading n bytes.
func (dr *dcmReader) Limit(n int64) *dcmReader {
	return &dcmReader{cr: dr.cr, end: dr.cr.bytesRead + n}
}

// Offset returns the number of bytes consumed from the underlying stream
func (dr *dcmReader) Offset() int64 {
	return dr.cr.bytesRead
}

// Remaining returns the number of bytes left in a limited reader, or -1 when unbounded
func (dr *dcmReader) Remaining() int64 {
	if dr.end < 0 {
		return -1
	}
	return dr.end - dr.cr.bytesRead
}

// fits checks that n more bytes can be consumed without crossing the limit of the reader
func (dr *dcmReader) fits(n int64) error {
	if rem := dr.Remaining(); rem >= 0 && n > rem {
		return newDecodeError(ErrMalformedLength, 0, dr.Offset(),
			"%d bytes exceed the %d bytes remaining in the enclosing item", n, rem)
	}
	return nil
}

// AtEnd is true when a limited reader is exhausted or the underlying stream has no more bytes
func (dr *dcmReader) AtEnd() bool {
	if rem := dr.Remaining(); rem >= 0 {
		return rem == 0
	}
	_, err := dr.cr.r.Peek(1)
	return err != nil
}

// Peek returns the next n bytes without consuming them
func (dr *dcmReader) Peek(n int) ([]byte, error) {
	if err := dr.fits(int64(n)); err != nil {
		return nil, err
	}
	return dr.cr.r.Peek(n)
}

// Tag reads a tag. io.EOF is returned only when no byte of the tag could be read.
func (dr *dcmReader) Tag(order binary.ByteOrder) (DataElementTag, error) {
	if dr.Remaining() == 0 {
		return 0, io.EOF
	}
	if err := dr.fits(4); err != nil {
		return 0, err
	}
	b := make([]byte, 4)
	if err := dr.full(b, true); err != nil {
		return 0, err
	}
	return NewTag(order.Uint16(b), order.Uint16(b[2:])), nil
}

// Skip advances the input stream by n bytes
func (dr *dcmReader) Skip(n int64) error {
	if err := dr.fits(n); err != nil {
		return err
	}
	start := dr.Offset()
	if _, err := io.CopyN(io.Discard, dr.cr, n); err != nil {
		return truncated(start, n, err)
	}
	return nil
}

// String returns a string of length n from the input stream
func (dr *dcmReader) String(n int64) (string, error) {
	b, err := dr.Bytes(n)
	return string(b), err
}

// Bytes returns a byte array of size n from the input stream
func (dr *dcmReader) Bytes(n int64) ([]byte, error) {
	if err := dr.fits(n); err != nil {
		return nil, err
	}
	if n <= readChunkSize {
		b := make([]byte, n)
		return b, dr.full(b, false)
	}

	start := dr.Offset()
	buf := &bytes.Buffer{}
	if _, err := io.CopyN(buf, dr.cr, n); err != nil {
		return nil, truncated(start, n, err)
	}
	return buf.Bytes(), nil
}

// UInt32 returns a uint32 from the input stream
func (dr *dcmReader) UInt32(byteOrder binary.ByteOrder) (uint32, error) {
	b := make([]byte, 4)
	if err := dr.fits(4); err != nil {
		return 0, err
	}
	if err := dr.full(b, false); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(b), nil
}

// UInt16 returns a uint16 from the input stream
func (dr *dcmReader) UInt16(byteOrder binary.ByteOrder) (uint16, error) {
	b := make([]byte, 2)
	if err := dr.fits(2); err != nil {
		return 0, err
	}
	if err := dr.full(b, false); err != nil {
		return 0, err
	}
	return byteOrder.Uint16(b), nil
}

// full fills b. At an element boundary a clean end of stream before the first byte is reported
// as io.EOF, any other shortfall as ErrTruncatedStream.
func (dr *dcmReader) full(b []byte, boundary bool) error {
	start := dr.Offset()
	n, err := io.ReadFull(dr.cr, b)
	if boundary && err == io.EOF && n == 0 {
		return io.EOF
	}
	if err != nil {
		return truncated(start, int64(len(b)), err)
	}
	return nil
}

func truncated(offset, want int64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newDecodeError(ErrTruncatedStream, 0, offset, "wanted %d bytes", want)
	}
	return err
}

// countReader is an io.Reader that counts how many bytes read
type countReader struct {
	r         *bufio.Reader
	bytesRead int64 // number of bytes read
}

func (cr *countReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.bytesRead += int64(n)
	return n, err
}

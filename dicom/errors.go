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
)

// Error kinds reported while decoding and encoding. Use errors.Is to test for a kind, the
// concrete error is usually a *DecodeError carrying the position of the failure.
var (
	// ErrTruncatedStream means fewer bytes were available than a declared length requires.
	ErrTruncatedStream = errors.New("dicom: truncated stream")

	// ErrInvalidVR means a VR code is not part of the recognized set.
	ErrInvalidVR = errors.New("dicom: invalid value representation")

	// ErrMalformedLength means a length is odd where it must be even, is undefined where
	// undefined length is forbidden or does not fit the enclosing structure.
	ErrMalformedLength = errors.New("dicom: malformed length")

	// ErrDuplicateTag means a tag occurs twice within one data set.
	ErrDuplicateTag = errors.New("dicom: duplicate tag")

	// ErrTagOrder means tags within a data set are not in ascending order.
	ErrTagOrder = errors.New("dicom: tags out of order")

	// ErrUnresolvedTransferSyntax means the transfer syntax is missing or unknown.
	ErrUnresolvedTransferSyntax = errors.New("dicom: unresolved transfer syntax")

	// ErrUnsupportedCompressionScheme means no pixel codec is available for a scheme.
	ErrUnsupportedCompressionScheme = errors.New("dicom: unsupported compression scheme")

	// ErrInconsistentNesting means a delimiter was found at the wrong depth or was missing
	// before the end of the stream.
	ErrInconsistentNesting = errors.New("dicom: inconsistent nesting")

	// ErrInvalidValue means a value does not follow the grammar of its VR.
	ErrInvalidValue = errors.New("dicom: invalid value")
)

// DecodeError describes a failure at a position in the byte stream.
type DecodeError struct {
	// Kind is one of the Err* sentinel values of this package.
	Kind error

	// Tag is the tag of the element being processed, zero if unknown.
	Tag DataElementTag

	// Offset is the number of bytes consumed from the stream when the error occurred.
	Offset int64

	// Err is the underlying cause, may be nil.
	Err error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
	if e.Tag != 0 {
		msg = fmt.Sprintf("%v in element %v at offset %d", e.Kind, e.Tag, e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns both the kind and the cause so errors.Is matches either.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newDecodeError(kind error, tag DataElementTag, offset int64, format string, args ...interface{}) *DecodeError {
	var cause error
	if format != "" {
		cause = fmt.Errorf(format, args...)
	}
	return &DecodeError{Kind: kind, Tag: tag, Offset: offset, Err: cause}
}

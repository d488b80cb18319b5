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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name string
		err  *DecodeError
		want string
	}{
		{
			name: "without tag",
			err:  &DecodeError{Kind: ErrTruncatedStream, Offset: 12},
			want: "dicom: truncated stream at offset 12",
		},
		{
			name: "with tag and cause",
			err:  newDecodeError(ErrMalformedLength, PatientNameTag, 140, "odd value length %d", 3),
			want: "dicom: malformed length in element (0010,0010) at offset 140: odd value length 3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
			assert.ErrorIs(t, tc.err, tc.err.Kind)
		})
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	err := fmt.Errorf("reading meta element: %w", &DecodeError{Kind: ErrTruncatedStream, Err: io.ErrUnexpectedEOF})
	assert.ErrorIs(t, err, ErrTruncatedStream)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, ErrMalformedLength)

	var de *DecodeError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, ErrTruncatedStream, de.Kind)
}

func TestWithTag(t *testing.T) {
	err := withTag(newDecodeError(ErrTruncatedStream, 0, 4, ""), PatientIDTag)
	var de *DecodeError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, PatientIDTag, de.Tag)

	err = withTag(newDecodeError(ErrTruncatedStream, PatientNameTag, 4, ""), PatientIDTag)
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, PatientNameTag, de.Tag, "a known tag is kept")

	assert.Equal(t, io.EOF, withTag(io.EOF, PatientIDTag))
}

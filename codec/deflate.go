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

package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
	"github.com/klauspost/compress/flate"
)

// flateWriterPool reuses deflate writers, which allocate large tables on creation
var flateWriterPool = sync.Pool{
	New: func() interface{} {
		// only invalid levels fail
		w, _ := flate.NewWriter(nil, flate.BestCompression)
		return w
	},
}

// Deflate is the codec of the Deflated Image Frame Compression transfer syntax: every frame is
// compressed on its own with raw deflate (RFC 1951).
type Deflate struct{}

var _ dicom.PixelCodec = Deflate{}

// Scheme returns dicom.SchemeDeflate
func (Deflate) Scheme() dicom.CompressionScheme {
	return dicom.SchemeDeflate
}

// Compress deflates raw
func (Deflate) Compress(info dicom.FrameInfo, raw []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := flateWriterPool.Get().(*flate.Writer)
	defer flateWriterPool.Put(w)
	w.Reset(buf)

	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("deflating frame: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflating frame: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates frame, which must hold at least one uncompressed frame
func (Deflate) Decompress(info dicom.FrameInfo, frame []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(frame))
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflating frame: %w", err)
	}
	if size := info.FrameSize(); len(raw) < size {
		return nil, fmt.Errorf("%w: inflated frame of %d bytes, want %d", dicom.ErrMalformedLength, len(raw), size)
	}
	return raw[:info.FrameSize()], nil
}

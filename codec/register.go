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
	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
)

// Defaults returns the codecs of this package
func Defaults() []dicom.PixelCodec {
	return []dicom.PixelCodec{RLE{}, Deflate{}, JPEGBaseline{}}
}

// RegisterDefaults adds the codecs of this package to reg
func RegisterDefaults(reg *dicom.CodecRegistry) {
	for _, c := range Defaults() {
		reg.Register(c)
	}
}

// NewRegistry returns a registry holding the codecs of this package
func NewRegistry() *dicom.CodecRegistry {
	return dicom.NewCodecRegistry(Defaults()...)
}

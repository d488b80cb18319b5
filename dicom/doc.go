// Package dicom provides functions and data structures for manipulating the DICOM file format.
// The package provides a high level and low level API for parsing and writing the DICOM format.
// The high level API consists of functions such as Parse and Construct which operate on DICOM
// Data Elements buffered into memory as a DataSet. The low level API consists of the
// DataElementIterator and the DataElementWriter which operate on top level DataElements one at
// a time.
//
// Values are decoded according to their VR: text VRs become []string, binary numbers typed
// slices, sequences *Sequence and encapsulated pixel data *EncapsulatedPixelData. Byte order
// only matters in the stream, so a DataSet parsed from one transfer syntax can be written in
// any other. Pixel data compression is delegated to the PixelCodecs of a CodecRegistry, see
// DecodePixelData and Transcode.
//
// Decoding failures are reported as *DecodeError values carrying the kind of failure, the tag
// and the stream offset. Use errors.Is with the Err* values of this package to test the kind.
package dicom

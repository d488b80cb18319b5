// Package codec provides pixel codecs for the encapsulated transfer syntaxes that can be
// handled without native libraries: RLE Lossless, Deflated Image Frame Compression and 8 bit
// JPEG Baseline. Register them with a dicom.CodecRegistry to decompress or transcode frames.
package codec

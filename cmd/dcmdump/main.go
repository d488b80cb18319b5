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

// dcmdump prints the elements of a DICOM file, extracts its frames or transcodes it to another
// transfer syntax.
//
//	dcmdump [flags] <dicomfile>
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoogleCloudPlatform/go-dicom-codec/codec"
	"github.com/GoogleCloudPlatform/go-dicom-codec/dicom"
	log "github.com/sirupsen/logrus"
)

var (
	printMetadata  = flag.Bool("print-metadata", true, "Print the data elements")
	hexDump        = flag.Bool("hex", false, "Print binary values as a hex dump")
	extractFrames  = flag.String("extract-frames", "", "Write every frame into a file of this directory")
	transferSyntax = flag.String("transfer-syntax", "", "Transcode to this transfer syntax UID, written to -out")
	out            = flag.String("out", "", "Output file of -transfer-syntax")
	include        = flag.String("include", "", "Comma separated keyword patterns of the elements to keep, e.g. Patient*")
	lenient        = flag.Bool("lenient", false, "Accept recoverable encoding errors")
	bestEffort     = flag.Bool("best-effort", false, "Print what was decoded before a structural error")
	charset        = flag.Bool("charset", true, "Decode text values to UTF-8")
	singleFrame    = flag.Bool("single-frame-fallback", false, "Read pixel data whose fragments do not match the number of frames as one frame")
	verbose        = flag.Bool("v", false, "Log parser warnings and debug messages")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dcmdump [flags] <dicomfile>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	ds, err := parseFile(flag.Arg(0), logger)
	if err != nil && ds == nil {
		logger.WithError(err).Fatal("parsing file")
	}
	if err != nil {
		logger.WithError(err).Warn("data set is incomplete")
	}
	syntax, err := ds.TransferSyntax()
	if err != nil {
		logger.WithError(err).Warn("resolving transfer syntax")
	}

	if *printMetadata {
		dump(ds)
	}
	reg := codec.NewRegistry()
	if *extractFrames != "" {
		if err := writeFrames(ds, syntax, reg, *extractFrames, logger); err != nil {
			logger.WithError(err).Fatal("extracting frames")
		}
	}
	if *transferSyntax != "" {
		if err := transcode(ds, syntax, reg, logger); err != nil {
			logger.WithError(err).Fatal("transcoding")
		}
	}
}

func parseFile(path string, logger *log.Logger) (*dicom.DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := []dicom.ParseOption{dicom.WithLogger(logger)}
	if *lenient {
		opts = append(opts, dicom.Lenient)
	}
	if *bestEffort {
		opts = append(opts, dicom.BestEffort)
	}
	if *charset {
		opts = append(opts, dicom.DecodeCharacterSet)
	}
	if *include != "" {
		opt, err := dicom.IncludeKeywords(strings.Split(*include, ",")...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return dicom.Parse(bufio.NewReader(f), opts...)
}

func dump(ds *dicom.DataSet) {
	for _, elem := range ds.SortedElements() {
		fmt.Println(elem.String())
		if b, ok := elem.ValueField.([]byte); ok && *hexDump {
			fmt.Print(hex.Dump(b))
		}
	}
}

func writeFrames(ds *dicom.DataSet, syntax *dicom.TransferSyntax, reg *dicom.CodecRegistry, dir string, logger *log.Logger) error {
	if syntax == nil {
		return fmt.Errorf("%w: source transfer syntax", dicom.ErrUnresolvedTransferSyntax)
	}
	pd, err := dicom.DecodePixelData(ds, syntax, reg, pixelDataOptions(logger)...)
	if err != nil {
		return err
	}
	ext := "raw"
	if pd.Compressed {
		logger.WithError(pd.SkipReason).Warn("writing compressed frames")
		ext = pd.Scheme.String()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i, frame := range pd.Frames {
		path := filepath.Join(dir, fmt.Sprintf("frame.%d.%s", i, ext))
		if err := os.WriteFile(path, frame, 0644); err != nil {
			return err
		}
		fmt.Printf("%s: %d bytes\n", path, len(frame))
	}
	return nil
}

func pixelDataOptions(logger *log.Logger) []dicom.PixelDataOption {
	opts := []dicom.PixelDataOption{dicom.WithPixelDataLogger(logger)}
	if *singleFrame {
		opts = append(opts, dicom.SingleFrameFallback)
	}
	return opts
}

func transcode(ds *dicom.DataSet, from *dicom.TransferSyntax, reg *dicom.CodecRegistry, logger *log.Logger) error {
	if *out == "" {
		return fmt.Errorf("-transfer-syntax requires -out")
	}
	to, err := dicom.LookupTransferSyntax(*transferSyntax)
	if err != nil {
		return err
	}
	if from == nil {
		return fmt.Errorf("%w: source transfer syntax", dicom.ErrUnresolvedTransferSyntax)
	}

	transcoded, err := dicom.Transcode(ds, from, to, reg, pixelDataOptions(logger)...)
	if err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := dicom.Construct(w, transcoded, dicom.WithConstructLogger(logger)); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

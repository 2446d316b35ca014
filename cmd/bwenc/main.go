/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

// Bwenc converts between WAV files and the BRAINWIRE format, in either
// direction, and prints a compression report for the file it wrote.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/phoboslab/neuralink-brainwire"
	"github.com/phoboslab/neuralink-brainwire/internal/compress"
	"github.com/phoboslab/neuralink-brainwire/internal/wav"
)

func main() {
	compare := flag.Bool("compare", false, "report general purpose compressors on the same samples")
	verify := flag.Bool("verify", false, "decode the written .bw file, re-encode it and compare fingerprints")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	inPath, outPath := flag.Arg(0), flag.Arg(1)

	samples, sampleRate, err := loadSamples(inPath)
	if err != nil {
		fatal("can't load/decode %s: %v", inPath, err)
	}

	bytesWritten, stream, err := storeSamples(outPath, samples, sampleRate)
	if err != nil {
		fatal("can't write/encode %s: %v", outPath, err)
	}

	fmt.Printf(
		"%s: size: %d kb (%d bytes) = %.2fx compression\n",
		outPath, bytesWritten/1024, bytesWritten,
		float64(2*len(samples))/float64(bytesWritten),
	)

	if *compare {
		if err := compareBaselines(os.Stdout, samples); err != nil {
			fatal("%v", err)
		}
	}

	if *verify {
		if stream == nil {
			fatal("-verify needs a .bw output")
		}

		sum, err := verifyStream(stream)
		if err != nil {
			fatal("verifying %s: %v", outPath, err)
		}
		fmt.Printf("%s: verify ok (xxh64 %016x)\n", outPath, sum)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bwenc [-compare] [-verify] in.{wav,bw} out.{wav,bw}\n\nFlags:\n")
	flag.PrintDefaults()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "bwenc: "+format+"\n", args...)
	os.Exit(1)
}

// loadSamples decodes the input file into samples and a rate, dispatching
// on the file extension like the original tool.
func loadSamples(path string) ([]int16, uint32, error) {
	switch filepath.Ext(path) {
	case ".wav":
		samples, sampleRate, err := wav.ReadFile(path)
		if err != nil {
			return nil, 0, wavErr(err)
		}

		return samples, sampleRate, nil

	case ".bw":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", brainwire.ErrIO, err)
		}

		samples, info, err := brainwire.Decode(data)
		if err != nil {
			return nil, 0, err
		}

		return samples, info.SampleRate, nil

	default:
		return nil, 0, fmt.Errorf("%w: unknown file type", brainwire.ErrUnsupportedFormat)
	}
}

// storeSamples encodes samples into the output file, again dispatching on
// the extension. It reports the number of bytes written and, for .bw
// outputs, the encoded stream.
func storeSamples(path string, samples []int16, sampleRate uint32) (int, []byte, error) {
	switch filepath.Ext(path) {
	case ".wav":
		if err := wav.WriteFile(path, samples, sampleRate); err != nil {
			return 0, nil, wavErr(err)
		}

		fi, err := os.Stat(path)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %w", brainwire.ErrIO, err)
		}

		return int(fi.Size()), nil, nil //nolint:gosec // A just-written WAV fits in int.

	case ".bw":
		stream, err := brainwire.Encode(samples, sampleRate)
		if err != nil {
			return 0, nil, err
		}

		if err := os.WriteFile(path, stream, 0o644); err != nil {
			return 0, nil, fmt.Errorf("%w: %w", brainwire.ErrIO, err)
		}

		return len(stream), stream, nil

	default:
		return 0, nil, fmt.Errorf("%w: unknown file type", brainwire.ErrUnsupportedFormat)
	}
}

// wavErr sorts container errors into the codec's public kinds: format
// rejections map to ErrUnsupportedFormat, everything else to ErrIO.
func wavErr(err error) error {
	for _, formatErr := range []error{wav.ErrNotWave, wav.ErrNotPCM, wav.ErrBitDepth, wav.ErrNumChannels} {
		if errors.Is(err, formatErr) {
			return fmt.Errorf("%w: %w", brainwire.ErrUnsupportedFormat, err)
		}
	}

	return fmt.Errorf("%w: %w", brainwire.ErrIO, err)
}

// compareBaselines prints, for each general purpose compressor, the same
// report line the tool prints for its own output.
func compareBaselines(w io.Writer, samples []int16) error {
	raw := rawBytes(samples)

	for _, c := range compress.Baselines() {
		st, err := compress.Measure(c, raw)
		if err != nil {
			return fmt.Errorf("%s baseline: %w", c.Name(), err)
		}

		fmt.Fprintf(
			w, "%s: size: %d kb (%d bytes) = %.2fx compression\n",
			st.Codec, st.CompressedSize/1024, st.CompressedSize, st.Ratio(),
		)
	}

	return nil
}

// verifyStream decodes a stream, encodes the recovered samples again and
// checks that both streams carry the same fingerprint. Returns the
// fingerprint of the verified stream.
func verifyStream(stream []byte) (uint64, error) {
	samples, info, err := brainwire.Decode(stream)
	if err != nil {
		return 0, err
	}

	again, err := brainwire.Encode(samples, info.SampleRate)
	if err != nil {
		return 0, err
	}

	sum, againSum := xxhash.Sum64(stream), xxhash.Sum64(again)
	if againSum != sum {
		return 0, fmt.Errorf("re-encode mismatch: xxh64 %016x, want %016x", againSum, sum)
	}

	return sum, nil
}

// rawBytes lays samples out as little endian 16 bit PCM, the raw form
// the compression ratios are measured against.
func rawBytes(samples []int16) []byte {
	raw := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(s)) //nolint:gosec // 16 bit wire layout.
	}

	return raw
}

/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

// Package compress wraps the general purpose compressors that bwenc pits
// against the BRAINWIRE codec in its comparison report. Raw little endian
// PCM goes in, self-contained compressed blocks come out. None of these
// codecs take part in the .bw format itself.
package compress

// Compressor compresses one payload as a single block.
type Compressor interface {
	// Compress returns a compressed copy of data. The input is not
	// modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions under a report name.
type Codec interface {
	Compressor
	Decompressor

	// Name identifies the algorithm in the comparison report.
	Name() string
}

// Baselines returns the codecs the comparison report measures, in report
// order.
func Baselines() []Codec {
	return []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()}
}

// Stats records how one codec fared on a payload.
type Stats struct {
	Codec          string
	OriginalSize   int
	CompressedSize int
}

// Ratio returns original size over compressed size, the "Nx compression"
// figure of the bwenc report. A ratio below 1 means the codec expanded
// the payload.
func (s Stats) Ratio() float64 {
	if s.CompressedSize == 0 {
		return 0
	}

	return float64(s.OriginalSize) / float64(s.CompressedSize)
}

// Measure runs one codec over a payload and reports the resulting sizes.
func Measure(c Codec, data []byte) (Stats, error) {
	compressed, err := c.Compress(data)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Codec:          c.Name(),
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
	}, nil
}

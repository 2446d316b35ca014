/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

// Package brainwire implements the BRAINWIRE codec for mono 16 bit PCM:
// a fixed nonlinear quantizer feeding delta-coded adaptive Golomb-Rice
// compression. Ported from bwenc.c.
//
// The codec is lossy at the quantizer only. Decoding an encoded stream
// and encoding it again reproduces the stream byte for byte.
package brainwire

import (
	"fmt"
	"math"

	bwint "github.com/phoboslab/neuralink-brainwire/internal/brainwire"
)

// headerRiceK is the fixed Rice parameter for the two header fields,
// sample count then sample rate. The adaptive estimator only runs over
// the residuals that follow.
const headerRiceK = 16

// rawSampleBytes is the uncompressed size of one sample, the baseline
// both the initial write buffer estimate and compression ratios are
// measured against.
const rawSampleBytes = 2

// Encode compresses mono 16 bit PCM samples into a BRAINWIRE stream.
// The stream carries its own sample count and rate; there is no magic
// number, version field or checksum.
func Encode(samples []int16, sampleRate uint32) ([]byte, error) {
	if len(samples) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d samples exceed the 32 bit header field", ErrUnsupportedFormat, len(samples))
	}

	// Raw PCM size is the usual worst case, but only a starting
	// estimate: pathological input expands and the writer grows with
	// it.
	w := bwint.NewWriter(len(samples) * rawSampleBytes)

	// Header fields take the signed code path like the int fields in
	// bwenc.c. Zigzag is a 32 bit bijection, so rates above MaxInt32
	// survive the reinterpretation.
	if _, err := bwint.RiceWrite(w, int32(len(samples)), headerRiceK); err != nil { //nolint:gosec
		return nil, fmt.Errorf("%w: sample count header: %w", ErrInvalidRiceParam, err)
	}

	if _, err := bwint.RiceWrite(w, int32(sampleRate), headerRiceK); err != nil { //nolint:gosec
		return nil, fmt.Errorf("%w: sample rate header: %w", ErrInvalidRiceParam, err)
	}

	est := bwint.NewEstimator()
	prevQuantized := int32(0)

	for i, s := range samples {
		quantized := bwint.Quantize(s)
		residual := quantized - prevQuantized
		prevQuantized = quantized

		k, err := est.Param()
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %w", ErrInvalidRiceParam, i, err)
		}

		n, err := bwint.RiceWrite(w, residual, k)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %w", ErrInvalidRiceParam, i, err)
		}

		est.Update(n)
	}

	return w.Bytes(), nil
}

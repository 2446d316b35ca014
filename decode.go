/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

//nolint:gosec // Sample narrowing matches bwenc.c's int to short conversion.
package brainwire

import (
	"errors"
	"fmt"

	bwint "github.com/phoboslab/neuralink-brainwire/internal/brainwire"
)

// StreamInfo describes a BRAINWIRE stream, the two fields its header
// carries.
type StreamInfo struct {
	SampleCount uint32
	SampleRate  uint32
}

// Decode expands a BRAINWIRE stream back into mono 16 bit PCM. The
// returned slice holds exactly StreamInfo.SampleCount samples.
func Decode(data []byte) ([]int16, StreamInfo, error) {
	r := bwint.NewReader(data)

	count, _, err := bwint.RiceRead(r, headerRiceK)
	if err != nil {
		return nil, StreamInfo{}, decodeErr("sample count header", err)
	}

	rate, _, err := bwint.RiceRead(r, headerRiceK)
	if err != nil {
		return nil, StreamInfo{}, decodeErr("sample rate header", err)
	}

	// The count steers the output allocation, so check it against the
	// stream before trusting it: every residual takes at least one bit,
	// a count beyond the remaining bits only comes from corrupt data.
	if count < 0 || int(count) > r.Remaining() {
		return nil, StreamInfo{}, fmt.Errorf("%w: %w: %d samples in %d bits",
			ErrOutOfData, bwint.ErrSampleOverrun, count, r.Remaining())
	}

	info := StreamInfo{SampleCount: uint32(count), SampleRate: uint32(rate)}
	samples := make([]int16, count)

	est := bwint.NewEstimator()
	prevQuantized := int32(0)

	for i := range samples {
		k, err := est.Param()
		if err != nil {
			return nil, StreamInfo{}, decodeErr(fmt.Sprintf("sample %d", i), err)
		}

		residual, n, err := bwint.RiceRead(r, k)
		if err != nil {
			return nil, StreamInfo{}, decodeErr(fmt.Sprintf("sample %d", i), err)
		}

		quantized := prevQuantized + residual
		prevQuantized = quantized
		samples[i] = int16(bwint.Dequantize(quantized))

		est.Update(n)
	}

	return samples, info, nil
}

// decodeErr wraps an internal bitstream error with the public kind it
// maps to.
func decodeErr(what string, err error) error {
	kind := ErrOutOfData
	if errors.Is(err, bwint.ErrRiceParam) || errors.Is(err, bwint.ErrResidualRange) {
		kind = ErrInvalidRiceParam
	}

	return fmt.Errorf("%w: %s: %w", kind, what, err)
}

/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package brainwire

import "math"

// Dequantization scale and offset from bwenc.c. The original 10 bit
// Neuralink data was upscaled to 16 bit by something other than a plain
// shift; these values were found through a brute force search and happen
// to replicate that upscale exactly. Keep them verbatim.
const (
	dequantScale  = 64.061577
	dequantOffset = 31.034184
)

// Quantize maps a PCM sample to its 10 bit bucket, floor(s/64).
// Equivalent to brainwire_quant in bwenc.c; for the int16 domain the
// arithmetic shift is the same floor division.
func Quantize(s int16) int32 {
	return int32(s) >> 6
}

// Dequantize maps a bucket index back to a 16 bit sample value, the
// mirrored affine upscale with round-half-away-from-zero like C round().
// Equivalent to brainwire_dequant in bwenc.c.
func Dequantize(q int32) int32 {
	if q >= 0 {
		return int32(math.Round(float64(q)*dequantScale + dequantOffset))
	}

	return -int32(math.Round(float64(-q-1)*dequantScale+dequantOffset)) - 1
}

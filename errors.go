/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package brainwire

import "errors"

// Public sentinel errors for consumer error matching.
var (
	// ErrOutOfData indicates the bitstream ended in the middle of a
	// decode (truncated input, or a header sample count the remaining
	// bits cannot cover).
	ErrOutOfData = errors.New("out of data")

	// ErrInvalidRiceParam indicates a Rice parameter the format cannot
	// express (the adaptive estimate driven outside [0, 31], or a
	// residual too large for a 32 bit code).
	ErrInvalidRiceParam = errors.New("invalid rice parameter")

	// ErrUnsupportedFormat indicates audio the codec does not accept
	// (not 16 bit, not mono, not linear PCM).
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrIO indicates the underlying file could not be opened, read or
	// written.
	ErrIO = errors.New("io failure")
)

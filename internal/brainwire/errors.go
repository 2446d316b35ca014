/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package brainwire

import "errors"

// BRAINWIRE bitstream error sentinels.
//
//revive:disable:exported
var (
	ErrBitstreamOverrun = errors.New("brainwire: bitstream overrun")
	ErrRiceParam        = errors.New("brainwire: rice parameter out of range")
	ErrResidualRange    = errors.New("brainwire: residual exceeds 32-bit range")
	ErrSampleOverrun    = errors.New("brainwire: sample count exceeds bitstream")
)

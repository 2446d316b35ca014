/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package wav

import "errors"

// WAV container error sentinels.
//
//revive:disable:exported
var (
	ErrNotWave     = errors.New("wav: not a RIFF/WAVE file")
	ErrNotPCM      = errors.New("wav: not linear PCM")
	ErrBitDepth    = errors.New("wav: unsupported bit depth")
	ErrNumChannels = errors.New("wav: not mono")
)

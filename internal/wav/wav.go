/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

// Package wav reads and writes the uncompressed side of the codec:
// 16 bit mono PCM in a RIFF/WAVE container. The chunk walking that
// bwenc.c does by hand is delegated to go-audio; this package only
// enforces the format the codec accepts and converts to its sample
// type.
package wav

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const (
	pcmFormat    = 1 // WAVE_FORMAT_PCM
	sampleDepth  = 16
	monoChannels = 1
)

// ReadFile loads a WAV file and returns its samples and rate. Files
// that are not 16 bit mono linear PCM are rejected with the matching
// sentinel, like the format asserts in bwenc.c's wav_read.
func ReadFile(path string) ([]int16, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // Read-only descriptor.

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotWave, path)
	}

	if dec.WavAudioFormat != pcmFormat {
		return nil, 0, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	if dec.BitDepth != sampleDepth {
		return nil, 0, fmt.Errorf("%w: %d bit", ErrBitDepth, dec.BitDepth)
	}

	if dec.NumChans != monoChannels {
		return nil, 0, fmt.Errorf("%w: %d channels", ErrNumChannels, dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v) //nolint:gosec // 16 bit depth enforced above.
	}

	return samples, dec.SampleRate, nil
}

// WriteFile writes samples as a canonical 16 bit mono PCM WAV file.
func WriteFile(path string, samples []int16, sampleRate uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  int(sampleRate),
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: sampleDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	enc := gowav.NewEncoder(f, int(sampleRate), sampleDepth, monoChannels, pcmFormat)

	if err := enc.Write(buf); err != nil {
		f.Close() //nolint:errcheck,gosec // Write error takes precedence.

		return fmt.Errorf("writing %s: %w", path, err)
	}

	// Close backfills the RIFF sizes, it has to happen before the file
	// is closed.
	if err := enc.Close(); err != nil {
		f.Close() //nolint:errcheck,gosec // Encoder error takes precedence.

		return fmt.Errorf("finalizing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

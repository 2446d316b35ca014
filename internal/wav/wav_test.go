/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package wav_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/phoboslab/neuralink-brainwire/internal/wav"
)

func TestReadFile_RoundTrip(t *testing.T) {
	const rate = 19531

	samples := []int16{0, 64, -64, 32767, -32768, 1000, -1000}
	path := filepath.Join(t.TempDir(), "roundtrip.wav")

	require.NoError(t, wav.WriteFile(path, samples, rate))

	got, gotRate, err := wav.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, samples, got)
	require.Equal(t, uint32(rate), gotRate)
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := wav.ReadFile(filepath.Join(t.TempDir(), "missing.wav"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile_NotWave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	require.NoError(t, os.WriteFile(path, []byte("this is not a riff container"), 0o600))

	_, _, err := wav.ReadFile(path)
	require.ErrorIs(t, err, wav.ErrNotWave)
}

// writeFixture builds a WAV file with an arbitrary channel count, bit
// depth and format tag, for the rejection cases WriteFile refuses to
// produce.
func writeFixture(t *testing.T, path string, numChans, bitDepth, audioFormat int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	data := make([]int, 256*numChans)
	for i := range data {
		data[i] = i % 128
	}

	enc := gowav.NewEncoder(f, 44100, bitDepth, numChans, audioFormat)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

func TestReadFile_RejectsStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeFixture(t, path, 2, 16, 1)

	_, _, err := wav.ReadFile(path)
	require.ErrorIs(t, err, wav.ErrNumChannels)
}

func TestReadFile_Rejects24Bit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep.wav")
	writeFixture(t, path, 1, 24, 1)

	_, _, err := wav.ReadFile(path)
	require.ErrorIs(t, err, wav.ErrBitDepth)
}

func TestReadFile_RejectsNonPCM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "float.wav")
	writeFixture(t, path, 1, 16, 3) // WAVE_FORMAT_IEEE_FLOAT tag

	_, _, err := wav.ReadFile(path)
	require.ErrorIs(t, err, wav.ErrNotPCM)
}

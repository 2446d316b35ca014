/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package brainwire_test

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/mycophonic/agar/pkg/agar"
	"github.com/stretchr/testify/require"

	"github.com/phoboslab/neuralink-brainwire"
)

// bucketDelta is the quantizer step: decoded samples may differ from the
// input by less than one bucket, never more.
const bucketDelta = 64

func TestRoundTrip_WhiteNoise(t *testing.T) {
	const sampleRate = 19531

	raw := agar.GenerateWhiteNoise(sampleRate, 16, 1, 1)
	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}

	stream, err := brainwire.Encode(samples, sampleRate)
	require.NoError(t, err)

	decoded, info, err := brainwire.Decode(stream)
	require.NoError(t, err)
	require.Equal(t, uint32(len(samples)), info.SampleCount)
	require.Equal(t, uint32(sampleRate), info.SampleRate)
	require.Len(t, decoded, len(samples))

	for i := range samples {
		require.InDelta(t, float64(samples[i]), float64(decoded[i]), bucketDelta, "sample %d", i)
		require.Equal(t, samples[i]>>6, decoded[i]>>6, "bucket drift at sample %d", i)
	}

	// Re-encoding the lossy output must reproduce the stream exactly.
	restream, err := brainwire.Encode(decoded, sampleRate)
	require.NoError(t, err)
	require.Equal(t, stream, restream)
}

func TestRoundTrip_RandomWalk(t *testing.T) {
	const sampleRate = 19531

	rng := rand.New(rand.NewSource(3))
	samples := make([]int16, 100_000)
	v := 0
	for i := range samples {
		v += rng.Intn(2001) - 1000
		if v > math.MaxInt16 {
			v = math.MaxInt16
		}
		if v < math.MinInt16 {
			v = math.MinInt16
		}
		samples[i] = int16(v)
	}

	stream, err := brainwire.Encode(samples, sampleRate)
	require.NoError(t, err)
	// A correlated signal must land under the raw PCM size.
	require.Less(t, len(stream), len(samples)*2)

	decoded, info, err := brainwire.Decode(stream)
	require.NoError(t, err)
	require.Equal(t, uint32(len(samples)), info.SampleCount)

	for i := range samples {
		require.Equal(t, samples[i]>>6, decoded[i]>>6, "bucket drift at sample %d", i)
	}

	restream, err := brainwire.Encode(decoded, sampleRate)
	require.NoError(t, err)
	require.Equal(t, stream, restream)
}

func TestRoundTrip_ExtremeRates(t *testing.T) {
	// Header fields above 16 bits spill into the unary quotient; the
	// zigzag fold keeps even MaxUint32 intact through the signed code
	// path.
	rates := []uint32{0, 1, 65535, 65536, 5_000_000, math.MaxUint32}
	samples := []int16{100, -100, 200}

	for _, rate := range rates {
		stream, err := brainwire.Encode(samples, rate)
		require.NoError(t, err)

		_, info, err := brainwire.Decode(stream)
		require.NoError(t, err)
		require.Equal(t, rate, info.SampleRate, "rate=%d", rate)
		require.Equal(t, uint32(len(samples)), info.SampleCount)
	}
}

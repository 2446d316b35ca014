/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package brainwire_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phoboslab/neuralink-brainwire/internal/brainwire"
)

func TestDeltaChain_FixedParamRoundTrip(t *testing.T) {
	const k = 4

	quantized := []int32{0, 1, 2, -1, -2, 5, 5, 5, -100, 100, 0, 511, -512}

	w := brainwire.NewWriter(0)
	prev := int32(0)
	for _, q := range quantized {
		_, err := brainwire.RiceWrite(w, q-prev, k)
		require.NoError(t, err)
		prev = q
	}

	r := brainwire.NewReader(w.Bytes())
	prev = 0
	for i, want := range quantized {
		residual, _, err := brainwire.RiceRead(r, k)
		require.NoError(t, err)
		prev += residual
		require.Equal(t, want, prev, "index %d", i)
	}
}

func TestDeltaChain_AdaptiveTrajectoryAgreement(t *testing.T) {
	const numSamples = 50_000

	rng := rand.New(rand.NewSource(99))

	// A quantized random walk shaped like a plausible neural channel.
	quantized := make([]int32, numSamples)
	walk := int32(0)
	for i := range quantized {
		walk += int32(rng.Intn(31) - 15)
		if walk > 511 {
			walk = 511
		}
		if walk < -512 {
			walk = -512
		}
		quantized[i] = walk
	}

	// Encode pass, recording the parameter used for every symbol.
	w := brainwire.NewWriter(numSamples * 2)
	encK := make([]int, numSamples)
	encEst := brainwire.NewEstimator()
	prev := int32(0)
	for i, q := range quantized {
		k, err := encEst.Param()
		require.NoError(t, err)
		encK[i] = k

		n, err := brainwire.RiceWrite(w, q-prev, k)
		require.NoError(t, err)
		encEst.Update(n)
		prev = q
	}

	// Decode pass. It derives its parameters independently, from the
	// lengths of the symbols it reads back; any divergence from the
	// encoder's sequence corrupts everything after it.
	r := brainwire.NewReader(w.Bytes())
	decEst := brainwire.NewEstimator()
	prev = 0
	for i, want := range quantized {
		k, err := decEst.Param()
		require.NoError(t, err)
		require.Equal(t, encK[i], k, "parameter diverged at symbol %d", i)

		residual, n, err := brainwire.RiceRead(r, k)
		require.NoError(t, err)
		prev += residual
		require.Equal(t, want, prev, "symbol %d", i)
		decEst.Update(n)
	}

	// Nothing but byte padding may remain.
	require.Less(t, r.Remaining(), 8)
}

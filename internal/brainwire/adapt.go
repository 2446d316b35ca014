/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package brainwire

import "math"

// Tuning constants from bwenc.c. Changing any of these breaks bitstream
// compatibility with existing .bw files.
const (
	initialK     = 3.0
	decayFactor  = 0.99
	lengthScale  = 1.55
	lengthWeight = 0.01
)

// Estimator tracks the adaptive Rice parameter as an exponential moving
// average of recent symbol bit lengths. Ported from the rice_k update in
// bwenc.c.
//
// The state is a float32 like the C tool's float rice_k, and the update
// runs in float64 the way C promotes float operands to double. Both
// matter: encoder and decoder reproduce the same parameter sequence only
// if rounding happens at the same places.
type Estimator struct {
	k float32
}

// NewEstimator returns an Estimator at the initial parameter value.
func NewEstimator() Estimator {
	return Estimator{k: initialK}
}

// Param returns the Rice parameter for the next symbol, the floored
// estimate. A result outside [0, MaxRiceK] fails with ErrRiceParam
// instead of being clamped.
func (e *Estimator) Param() (int, error) {
	k := int(math.Floor(float64(e.k)))
	if k < 0 || k > MaxRiceK {
		return 0, ErrRiceParam
	}

	return k, nil
}

// Update folds the bit length of the symbol just coded into the
// estimate.
func (e *Estimator) Update(bitLen int) {
	e.k = float32(float64(e.k)*decayFactor + float64(bitLen)/lengthScale*lengthWeight)
}

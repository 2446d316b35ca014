/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

package compress

// NoOpCompressor passes payloads through untouched. It anchors tests and
// benchmarks at a known 1.00x ratio.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor returns the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Name implements Codec.
func (NoOpCompressor) Name() string { return "none" }

// Compress returns data unmodified. The result aliases the input.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unmodified. The result aliases the input.
func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

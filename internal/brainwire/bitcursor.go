/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

//nolint:gosec // Bit-width arithmetic matches the fixed-width C implementation in bwenc.c.
package brainwire

import (
	"encoding/binary"
	"math/bits"
)

// Writer accumulates a bitstream, most significant bit first within each
// byte. Ported from rice_write in bwenc.c, with one difference: the C
// tool ORs bits into a fixed guess-sized buffer, this Writer grows its
// backing storage on demand.
type Writer struct {
	buf    []byte // zeroed storage; bits are ORed in, never rewritten
	bitPos int    // write head in bits
}

// writerSlack is the zero headroom kept past the write head so WriteBits
// can OR a whole 64-bit lane without per-byte bounds checks.
const writerSlack = 8

// NewWriter returns a Writer with sizeHint bytes preallocated. The hint
// is a starting estimate, not a cap.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < writerSlack {
		sizeHint = writerSlack
	}

	return &Writer{buf: make([]byte, sizeHint)}
}

// WriteBits appends the low width bits of pattern, most significant bit
// first. width must be in [0, 32].
func (w *Writer) WriteBits(pattern uint32, width int) {
	if width == 0 {
		return
	}

	end := w.bitPos + width
	if (end+7)/8+writerSlack > len(w.buf) {
		w.grow((end+7)/8 + writerSlack)
	}

	v := uint64(pattern) & (1<<uint(width) - 1)
	used := w.bitPos & 7
	// Left-align v in a 64-bit lane anchored at the current byte. The lane
	// holds bits only in the [bitPos, end) window, so the first byte ORs
	// over the partial byte already in place and the rest over zero
	// storage.
	lane := v << uint(64-used-width)
	for i := w.bitPos >> 3; lane != 0; i++ {
		w.buf[i] |= byte(lane >> 56)
		lane <<= 8
	}

	w.bitPos = end
}

func (w *Writer) grow(n int) {
	c := 2 * len(w.buf)
	if c < n {
		c = n
	}

	next := make([]byte, c)
	copy(next, w.buf)
	w.buf = next
}

// BitLength returns the number of bits written so far.
func (w *Writer) BitLength() int {
	return w.bitPos
}

// Bytes returns the finished stream, (BitLength+7)/8 bytes with the final
// partial byte zero-padded. The slice aliases the Writer's storage.
func (w *Writer) Bytes() []byte {
	return w.buf[:(w.bitPos+7)/8]
}

// Reader consumes a bitstream, most significant bit first within each
// byte. Unlike rice_read in bwenc.c, which walks raw bytes with no
// bounds accounting, every read is checked against the stream length and
// fails with ErrBitstreamOverrun instead of running past the buffer.
type Reader struct {
	data     []byte
	bytePos  int    // next unread byte in data
	bitBuf   uint64 // unread bits, left-aligned, zero-filled below bitCount
	bitCount int    // valid bit count in bitBuf
}

// NewReader returns a Reader over data. The data is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBits consumes width bits and returns them right-aligned. width must
// be in [0, 32].
func (r *Reader) ReadBits(width int) (uint32, error) {
	if width == 0 {
		return 0, nil
	}

	if width <= r.bitCount {
		v := uint32(r.bitBuf >> uint(64-width))
		r.bitBuf <<= uint(width)
		r.bitCount -= width

		return v, nil
	}

	var v uint64
	for need := width; need > 0; {
		if r.bitCount == 0 {
			if !r.fill() {
				return 0, ErrBitstreamOverrun
			}
		}

		take := need
		if take > r.bitCount {
			take = r.bitCount
		}

		v = v<<uint(take) | r.bitBuf>>uint(64-take)
		r.bitBuf <<= uint(take)
		r.bitCount -= take
		need -= take
	}

	return uint32(v), nil
}

// ReadUnary consumes zero bits up to and including the terminating one
// bit and returns the zero count.
func (r *Reader) ReadUnary() (int, error) {
	q := 0
	for {
		if r.bitCount == 0 {
			if !r.fill() {
				return 0, ErrBitstreamOverrun
			}
		}

		lz := bits.LeadingZeros64(r.bitBuf)
		if lz >= r.bitCount {
			// Every buffered bit is zero, the run continues.
			q += r.bitCount
			r.bitCount = 0

			continue
		}

		q += lz
		r.bitBuf <<= uint(lz + 1)
		r.bitCount -= lz + 1

		return q, nil
	}
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.bitCount + (len(r.data)-r.bytePos)*8
}

func (r *Reader) fill() bool {
	avail := len(r.data) - r.bytePos
	if avail == 0 {
		return false
	}

	if avail >= 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.bytePos:])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for _, b := range r.data[r.bytePos:] {
		r.bitBuf = r.bitBuf<<8 | uint64(b)
	}

	// Left-align the partial tail so extraction from the MSB stays uniform.
	r.bitBuf <<= uint(8-avail) * 8
	r.bytePos = len(r.data)
	r.bitCount = avail * 8

	return true
}

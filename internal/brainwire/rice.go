/*
   Copyright (c) 2024, Dominic Szablewski - https://phoboslab.org

   SPDX-License-Identifier: MIT
*/

//nolint:gosec // Zigzag and quotient arithmetic match bwenc.c's unsigned 32-bit semantics.
package brainwire

import "math"

// MaxRiceK is the largest usable Rice parameter. The terminator bit plus
// a MaxRiceK-bit remainder fills one 32-bit write.
const MaxRiceK = 31

// RiceWrite appends val as a Golomb-Rice code with parameter k and
// returns the emitted bit count. Equivalent to rice_write in bwenc.c:
// the value is zigzag-folded to unsigned, the quotient leaves as a run
// of zero bits and the terminator plus k-bit remainder as one pattern.
// k outside [0, MaxRiceK] fails with ErrRiceParam.
func RiceWrite(w *Writer, val int32, k int) (int, error) {
	if k < 0 || k > MaxRiceK {
		return 0, ErrRiceParam
	}

	uval := uint32(val) << 1
	uval ^= uint32(val >> 31)

	q := int(uval >> uint(k))
	for run := q; run > 0; {
		chunk := run
		if chunk > 32 {
			chunk = 32
		}
		w.WriteBits(0, chunk)
		run -= chunk
	}

	w.WriteBits(uint32(1)<<uint(k)|uval&(uint32(1)<<uint(k)-1), k+1)

	return q + 1 + k, nil
}

// RiceRead consumes one Golomb-Rice code with parameter k and returns
// the decoded value and its bit length. Equivalent to rice_read in
// bwenc.c, with two guards the C tool does not have: reads are bounds
// checked, and a quotient too large for a 32-bit zigzag value fails with
// ErrResidualRange instead of overflowing.
func RiceRead(r *Reader, k int) (int32, int, error) {
	if k < 0 || k > MaxRiceK {
		return 0, 0, ErrRiceParam
	}

	q, err := r.ReadUnary()
	if err != nil {
		return 0, 0, err
	}
	if uint64(q) > uint64(math.MaxUint32)>>uint(k) {
		return 0, 0, ErrResidualRange
	}

	lsbs, err := r.ReadBits(k)
	if err != nil {
		return 0, 0, err
	}

	uval := uint32(q)<<uint(k) | lsbs

	var val int32
	if uval&1 != 0 {
		val = -int32(uval>>1) - 1
	} else {
		val = int32(uval >> 1)
	}

	return val, q + 1 + k, nil
}

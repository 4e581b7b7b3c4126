// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package limb provides the fixed-width word primitives (L0) that the
// multi-limb layer (internal/nat) builds on: add/subtract with carry,
// a two-word product, a two-word-by-one-word division step, and
// leading/trailing zero counts. This is the Go analogue of GMP's
// mp_limb_t primitives and of math/big's arith.go.
package limb

import "math/bits"

// Word is a single digit of a multi-precision unsigned integer, the
// fixed-width "limb" of the specification. The width W is pinned to 64
// bits at build time (see the Open Question decision in SPEC_FULL.md);
// unlike the teacher's arith.go there is no 32-bit fallback path.
type Word = uint64

const (
	// W is the limb width in bits.
	W = 64
	// No constant is declared for B = 2**W, one past the largest
	// representable Word: it does not fit in a Word.
	_ = 0

	// Half-word splitting constants. Nothing uses them: AddWW, MulWW and
	// DivWW are built on math/bits, with no portable fallback path.
	w2 = W / 2
	m2 = 1<<w2 - 1
)

// AddWW returns z1:z0 = x + y + c, with c == 0 or 1 and z1 the carry out.
func AddWW(x, y, c Word) (z1, z0 Word) {
	var carry uint64
	z0, carry = bits.Add64(x, y, c)
	return carry, z0
}

// SubWW returns z1:z0 = x - y - c, with c == 0 or 1 and z1 the borrow out.
func SubWW(x, y, c Word) (z1, z0 Word) {
	var borrow uint64
	z0, borrow = bits.Sub64(x, y, c)
	return borrow, z0
}

// MulWW returns z1:z0 = x*y, the full 2W-bit product of two limbs.
func MulWW(x, y Word) (z1, z0 Word) {
	z1, z0 = bits.Mul64(x, y)
	return
}

// MulAddWWW returns z1:z0 = x*y + c.
func MulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(x, y)
	var carry uint64
	z0, carry = bits.Add64(lo, c, 0)
	z1 = hi + carry
	return
}

// DivWW returns the quotient and remainder of (u1<<W + u0) / v.
// It panics if the quotient would overflow a Word (i.e. u1 >= v).
func DivWW(u1, u0, v Word) (q, r Word) {
	q, r = bits.Div64(u1, u0, v)
	return
}

// BitLen returns the number of bits required to represent x; BitLen(0) == 0.
func BitLen(x Word) int {
	return bits.Len64(x)
}

// LeadingZeros returns the number of leading zero bits in x, i.e. W-BitLen(x).
func LeadingZeros(x Word) uint {
	return uint(bits.LeadingZeros64(x))
}

// TrailingZeros returns the number of trailing zero bits in x.
// TrailingZeros(0) == W.
func TrailingZeros(x Word) uint {
	return uint(bits.TrailingZeros64(x))
}

// Log2 computes the integer binary logarithm of x: the n for which
// 2^n <= x < 2^(n+1). Log2(0) == -1.
func Log2(x Word) int {
	return BitLen(x) - 1
}

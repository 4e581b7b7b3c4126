// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/mpfloat/mpfloat/internal/nat"

// Sqrt sets z to sqrt(x), correctly rounded at c.Precision under m, and
// returns the ternary value.
//
// The teacher's math/big snapshot this exercise is grounded on has no
// Float.Sqrt (only Int.ModSqrt, a modular-arithmetic operation unrelated
// to floating-point square root), so this is grounded directly on spec
// §4.7's mpn_sqrtrem-based algorithm, built on top of the already-tested
// internal/nat.Sqrt (itself grounded on a Newton-iteration integer
// square root, see internal/nat/nat.go's doc comment on Sqrt).
//
// Using pointRightExp's convention, value(x) = Mx * 2^ex where Mx is
// x.mant read as a plain integer. If ex is odd, rewrite value(x) as
// (2*Mx) * 2^(ex-1) so the scaling exponent paired with the radicand is
// always even — sqrt(value(x)) = sqrt(Mx') * 2^(ex'/2) with ex' even.
// Mx' is then left-padded by an even number of zero bits (enough that
// its integer square root carries c.Precision+guard significant bits),
// and internal/nat.Sqrt computes s = floor(sqrt(Mx')), r = Mx' - s*s
// exactly. A non-zero remainder means the true root has a non-zero
// fractional part below s's least-significant bit, folded in as one
// extra forced sticky bit exactly the way Div folds in its division
// remainder (see div.go) — safe for the same reason: the padding
// guarantees guard bits between the injected bit and the eventual
// round-bit position.
func (c *Context) Sqrt(z, x *Float, m RoundingMode) int {
	if handled, t := c.specialSqrt(z, x); handled {
		return t
	}

	pp := int(c.Precision)

	ex := pointRightExp(x)
	mx := x.mant
	if ex%2 != 0 {
		var widened nat.Nat
		widened = widened.Shl(mx, 1)
		mx = widened
		ex--
	}

	const guard = 2
	minBits := 2 * (pp + guard)
	if pad := minBits - mx.BitLen(); pad > 0 {
		if pad%2 != 0 {
			pad++
		}
		var padded nat.Nat
		padded = padded.Shl(mx, uint(pad))
		mx = padded
		ex -= pad
	}

	var s, r nat.Nat
	s, r = s.Sqrt(r, mx)
	resultEx := ex / 2

	if !r.Norm().IsZero() {
		var wid nat.Nat
		wid = wid.Shl(s, 1)
		wid[0] |= 1
		s = wid
		resultEx--
	}

	return c.roundMagnitude(z, s, resultEx, false, m)
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/mpfloat/mpfloat/internal/nat"

// icbrt computes s = floor(cbrt(m)) and r = m - s*s*s for m >= 0, via
// Newton's iteration s_{k+1} = (2*s_k + m/s_k^2) / 3, the cube-root
// analogue of internal/nat.Sqrt's own Newton loop (same convergence
// argument: the sequence is monotone decreasing once it overshoots, and
// stops the iteration the first time it stops decreasing).
func icbrt(m nat.Nat) (s, r nat.Nat) {
	mn := m.Norm()
	if mn.Cmp(nat.Nat{1}) <= 0 {
		return mn, nat.Nat{}.SetWord(0)
	}
	var three nat.Nat
	three = three.SetWord(3)

	var z1 nat.Nat
	z1 = z1.SetWord(1)
	z1 = z1.Shl(z1, uint(mn.BitLen()/3+1))
	for {
		var sq, q, sum, z2 nat.Nat
		sq = sq.Sqr(z1)
		q, _ = q.DivMod(nil, mn, sq)
		sum = sum.Add(q, z1)
		sum = sum.Add(sum, z1)
		z2, _ = z2.DivMod(nil, sum, three)
		if z2.Cmp(z1) >= 0 {
			s = z1
			var cube nat.Nat
			cube = cube.Mul(s, s)
			cube = cube.Mul(cube, s)
			r = r.Sub(mn, cube)
			return s, r
		}
		z1, z2 = z2, z1
	}
}

// Cbrt sets z to the cube root of x, correctly rounded at c.Precision
// under m, and returns the ternary value.
//
// Grounded on src/cbrt.c's structure (rescale the mantissa so its
// scaling exponent is a multiple of 3, take the integer cube root of
// the rescaled mantissa, fold a non-zero remainder back in as the round
// decision) rather than a line-for-line port of its mpz_root-based GMP
// call: the integer cube root itself is icbrt above, a small
// Newton-style correction atop internal/nat, and the remainder-to-round
// handoff reuses the same sticky-bit-injection idiom as Sqrt and Div
// (see sqrt.go, div.go) instead of cbrt.c's own explicit "add one ulp"
// branch. Unlike Sqrt, the result's sign simply follows x's — cube root
// is defined and odd over the whole real line.
func (c *Context) Cbrt(z, x *Float, m RoundingMode) int {
	switch {
	case x.IsNaN():
		c.flags |= NaNFlag
		z.SetNaN()
		return 0
	case x.IsZero():
		z.SetZero(x.neg)
		return 0
	case x.IsInf():
		z.SetInf(x.neg)
		return 0
	}

	pp := int(c.Precision)
	ex := pointRightExp(x)
	mx := x.mant

	if rem := ((ex % 3) + 3) % 3; rem != 0 {
		var widened nat.Nat
		widened = widened.Shl(mx, uint(rem))
		mx = widened
		ex -= rem
	}

	const guard = 2
	minBits := 3 * (pp + guard)
	if pad := minBits - mx.BitLen(); pad > 0 {
		if r := pad % 3; r != 0 {
			pad += 3 - r
		}
		var padded nat.Nat
		padded = padded.Shl(mx, uint(pad))
		mx = padded
		ex -= pad
	}

	s, r := icbrt(mx)
	resultEx := ex / 3

	if !r.Norm().IsZero() {
		var wid nat.Nat
		wid = wid.Shl(s, 1)
		wid[0] |= 1
		s = wid
		resultEx--
	}

	return c.roundMagnitude(z, s, resultEx, x.neg, m)
}

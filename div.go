// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// Div sets z to x / y, correctly rounded at c.Precision under m, and
// returns the ternary value.
//
// Grounded on big.Float.uquo: pad x's mantissa with enough extra
// "digits" that the integer quotient x_padded/y carries at least
// c.Precision+1 bits (the +1 is the round bit), divide exactly via
// internal/nat.DivMod (Knuth Algorithm D, already grounded and tested
// in internal/nat), then fold any non-zero division remainder in as an
// extra forced sticky bit before rounding — exactly uquo's
// round(sbit) call, adapted to this package's roundRaw taking the
// sticky bit as part of the mantissa rather than as a side parameter.
//
// Like Mul, this does not wire in the Mulders divhigh_n short-division
// fast path of spec §4.6 at this call site — see mul.go's note and
// DESIGN.md for the same trim, same justification.
func (c *Context) Div(z, x, y *Float, m RoundingMode) int {
	if handled, t := c.specialDiv(z, x, y); handled {
		return t
	}

	neg := x.neg != y.neg
	pp := int(c.Precision)

	// Guard digits: enough limbs past c.Precision that the quotient
	// carries at least one round bit beyond the target precision.
	n := pp/limb.W + 2

	xadj := x.mant
	if d := n - len(x.mant) + len(y.mant); d > 0 {
		padded := make(nat.Nat, len(x.mant)+d)
		copy(padded[d:], x.mant)
		xadj = padded
	}

	var q, r nat.Nat
	q, r = q.DivMod(r, xadj.Norm(), y.mant.Norm())
	if len(q) == 0 {
		q = nat.Nat{0}
	}

	// xadj represents the same value as x but re-encoded with d extra
	// low-order zero limbs (d = len(xadj)-len(x.mant)), so its raw
	// integer M_xadj = M_x * 2^(d*W) and its point-right exponent is
	// pointRightExp(x) - d*W (scaled down to compensate for the larger
	// raw integer). xadj/y = q + r/My, representing value q * 2^ex with
	// ex = pointRightExp(xadj) - pointRightExp(y).
	exAdj := pointRightExp(x) - (len(xadj)-len(x.mant))*limb.W
	ex := exAdj - pointRightExp(y)

	if len(r) > 0 {
		// Fold the discarded remainder in as one extra forced sticky
		// bit below every bit DivMod actually computed, by appending a
		// low zero bit to q and setting it — this never collides with
		// a real round-bit position because that position is always
		// at least one bit above this newly appended one.
		var widened nat.Nat
		widened = widened.Shl(q, 1)
		widened[0] |= 1
		q = widened
		ex--
	}

	return c.roundMagnitude(z, q, ex, neg, m)
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/mpfloat/mpfloat/internal/limb"

// This file implements the bit-exact special-value algebra table of
// spec §6.4. Every elementary operation consults the relevant
// special{Add,Mul,Div,Sqrt} helper before falling into its regular
// (both-operands-finite-nonzero) numerical path; each helper reports
// whether it fully handled the case (leaving z set and a ternary value
// to return) so the caller's numerical path only ever runs on regular,
// finite, nonzero operands.

// specialAdd resolves NaN/Inf/zero cases for Add (and, via the a-b ==
// a+(-b) identity the caller applies before calling this, Sub). It
// implements the "NaN op anything", "(±∞)+(±∞) same sign", and
// "(±∞)+(∓∞)" rows of spec §6.4, plus zero-operand identities. m is the
// rounding mode the caller was given for this call (not necessarily
// c.Rounding), since the zero-operand identity and the mixed-sign-zero
// rule are both mode-dependent.
func (c *Context) specialAdd(z, x, y *Float, m RoundingMode) (handled bool, ternary int) {
	switch {
	case x.IsNaN() || y.IsNaN():
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case x.IsInf() && y.IsInf():
		if x.neg != y.neg {
			c.flags |= NaNFlag
			z.SetNaN()
			return true, 0
		}
		z.SetInf(x.neg)
		return true, 0

	case x.IsInf():
		z.SetInf(x.neg)
		return true, 0

	case y.IsInf():
		z.SetInf(y.neg)
		return true, 0

	case x.IsZero() && y.IsZero():
		// +0 + +0 = +0; -0 + -0 = -0; mixed-sign same-operation zeros
		// follow the rounding-mode convention that ToNegativeInf alone
		// produces -0, matching IEEE 754's addition rule.
		neg := x.neg && y.neg
		if x.neg != y.neg {
			neg = m == ToNegativeInf
		}
		z.SetZero(neg)
		return true, 0

	case x.IsZero():
		return true, c.roundAndCheck(z, y, uint(len(y.mant))*limb.W, m)

	case y.IsZero():
		return true, c.roundAndCheck(z, x, uint(len(x.mant))*limb.W, m)
	}
	return false, 0
}

// specialMul resolves NaN/Inf/zero cases for Mul: "NaN op anything",
// "(±0)·finite" (zero, sign is the XOR of operand signs), and "0·∞".
func (c *Context) specialMul(z, x, y *Float) (handled bool, ternary int) {
	switch {
	case x.IsNaN() || y.IsNaN():
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case (x.IsZero() && y.IsInf()) || (x.IsInf() && y.IsZero()):
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case x.IsInf() || y.IsInf():
		z.SetInf(x.neg != y.neg)
		return true, 0

	case x.IsZero() || y.IsZero():
		z.SetZero(x.neg != y.neg)
		return true, 0
	}
	return false, 0
}

// specialDiv resolves NaN/Inf/zero cases for Div: "finite/0" (±∞,
// DivByZero set), "0/0 or ∞/∞" (NaN), and the remaining Inf/zero
// combinations.
func (c *Context) specialDiv(z, x, y *Float) (handled bool, ternary int) {
	switch {
	case x.IsNaN() || y.IsNaN():
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case x.IsInf() && y.IsInf():
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case x.IsZero() && y.IsZero():
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case y.IsZero():
		c.flags |= DivByZero
		z.SetInf(x.neg != y.neg)
		return true, 0

	case x.IsZero():
		z.SetZero(x.neg != y.neg)
		return true, 0

	case x.IsInf():
		z.SetInf(x.neg != y.neg)
		return true, 0

	case y.IsInf():
		z.SetZero(x.neg != y.neg)
		return true, 0
	}
	return false, 0
}

// specialSqrt resolves NaN/Inf/zero/negative cases for Sqrt:
// "√(−x) for x > 0" is NaN, "√(−0) = −0" (the one case spec §6.4 calls
// out as a signed-zero exception to the general negative-input rule).
func (c *Context) specialSqrt(z, x *Float) (handled bool, ternary int) {
	switch {
	case x.IsNaN():
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case x.IsZero():
		z.SetZero(x.neg)
		return true, 0

	case x.neg:
		c.flags |= NaNFlag
		z.SetNaN()
		return true, 0

	case x.IsInf():
		z.SetInf(false)
		return true, 0
	}
	return false, 0
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// NextAbove and NextBelow implement spec §6.1's next_above/next_below,
// one of SPEC_FULL.md §4's supplemented features (present in the
// operation surface but detailed nowhere else in spec.md). Grounded on
// MPFR's mpfr_nexttoward family and its exponent-boundary handling
// (original_source/src/mpfr-impl.h's boundary macros): step z's
// mantissa by exactly one ulp at z's own precision, carrying into (or
// borrowing from) the exponent exactly the way an extra rounding step
// would. Unlike MPFR, this core has no subnormal representation (§3.1),
// so the boundary transition at the smallest normal magnitude is a
// direct step to/from a signed zero rather than into a subnormal range.

// NextAbove sets z to the next representable value strictly greater
// than x, at x's own precision. z and x may be the same *Float.
func (c *Context) NextAbove(z, x *Float) {
	copyFloat(z, x)

	switch {
	case z.IsNaN():
		return
	case z.IsInf():
		if !z.neg {
			return
		}
		z.kind = kindRegular
		z.neg = true
		z.mant = maxFiniteMantissa(z.prec)
		z.exp = c.MaxExp
		return
	case z.IsZero():
		z.kind = kindRegular
		z.neg = false
		z.mant = smallestNormalMantissa(z.prec)
		z.exp = c.MinExp
		return
	}

	if !z.neg {
		stepMantissaUp(z)
		if z.exp > c.MaxExp {
			z.SetInf(false)
		}
		return
	}

	stepMantissaDown(z)
	if z.exp < c.MinExp {
		z.SetZero(true)
	}
}

// NextBelow sets z to the next representable value strictly less than
// x, at x's own precision. Grounded the same way as NextAbove, via
// x -> -x -> NextAbove -> negate, the same sign-flip idiom Sub uses over
// Add (see add.go).
func (c *Context) NextBelow(z, x *Float) {
	copyFloat(z, x)
	if z.IsNaN() {
		return
	}
	z.SetSign(!z.Signbit())
	c.NextAbove(z, z)
	if !z.IsNaN() {
		z.SetSign(!z.Signbit())
	}
}

// copyFloat copies x's full state into z (a no-op if z and x are the
// same pointer).
func copyFloat(z, x *Float) {
	if z == x {
		return
	}
	z.prec = x.prec
	z.neg = x.neg
	z.kind = x.kind
	z.mant = x.mant
	z.exp = x.exp
}

// stepMantissaUp adds one ulp to a positive regular z's magnitude,
// renormalizing (and incrementing the exponent) if the mantissa
// overflows past all-ones.
func stepMantissaUp(z *Float) {
	full := uint(len(z.mant)) * limb.W
	var ulp, bumped nat.Nat
	ulp = ulp.SetWord(1)
	ulp = ulp.Shl(ulp, full-z.prec)
	bumped = bumped.Add(z.mant, ulp)
	if uint(bumped.BitLen()) > full {
		var shifted nat.Nat
		shifted = shifted.Shr(bumped, 1)
		z.mant = shifted
		z.exp++
		return
	}
	z.mant = bumped
}

// stepMantissaDown subtracts one ulp from a positive regular z's
// magnitude, renormalizing (and decrementing the exponent) if the
// mantissa drops below the top-bit-set invariant.
func stepMantissaDown(z *Float) {
	full := uint(len(z.mant)) * limb.W
	var ulp, reduced nat.Nat
	ulp = ulp.SetWord(1)
	ulp = ulp.Shl(ulp, full-z.prec)
	reduced = reduced.Sub(z.mant, ulp)
	if reduced.Norm().IsZero() || uint(reduced.BitLen()) < full {
		var shifted nat.Nat
		shifted = shifted.Shl(reduced, 1)
		shifted = shifted.Add(shifted, ulp)
		z.mant = shifted
		z.exp--
		return
	}
	z.mant = reduced
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// roundAndCheck rounds src's over-precise sp-bit mantissa into z at c's
// configured precision and rounding mode, then range-checks the result
// against c's exponent bounds (spec §6: check_range). src and z may be
// the same *Float. It returns the final ternary value, which folds
// together roundRaw's ternary and any overflow/underflow adjustment
// check_range makes.
func (c *Context) roundAndCheck(z, src *Float, sp uint, m RoundingMode) int {
	if src.kind != kindRegular {
		if z != src {
			z.prec = src.prec
			z.neg = src.neg
			z.kind = src.kind
			z.mant = src.mant
			z.exp = src.exp
		}
		return 0
	}

	t, ternary, carry := roundRaw(src.mant, int(sp), c.Precision, m, src.neg)
	exp := src.exp
	if carry {
		exp++
	}

	z.prec = c.Precision
	z.neg = src.neg
	z.kind = kindRegular
	z.mant = t
	z.exp = exp
	if mpfloatDebug {
		z.validate()
	}

	return c.checkRange(z, ternary, m)
}

// checkRange implements spec §6's check_range: a regular result whose
// exponent lies outside [MinExp, MaxExp] is clamped to the representable
// extreme (±Inf/largest-finite on overflow, ±0/smallest-normal on
// underflow) per the mode-dependent rules of §7's Overflow/Underflow
// rows, using this call's own rounding mode m (not necessarily
// c.Rounding). A value already inside range passes through with t
// unchanged, except that spec §4.2/§7 require Inexact to be raised
// whenever the ternary is non-zero, overflow/underflow or not — an
// ordinary in-range rounding that discarded bits is exactly such a case.
func (c *Context) checkRange(z *Float, t int, m RoundingMode) int {
	if z.kind != kindRegular {
		return t
	}
	switch {
	case z.exp > c.MaxExp:
		return c.overflow(z, m)
	case z.exp < c.MinExp:
		return c.underflow(z, m)
	default:
		if t != 0 {
			c.flags |= Inexact
		}
		return t
	}
}

// overflow clamps z (already known to have exp > c.MaxExp) to the
// representable extreme for its sign and mode m, sets the Overflow and
// Inexact flags, and returns the resulting ternary value.
func (c *Context) overflow(z *Float, m RoundingMode) int {
	c.flags |= Overflow | Inexact

	if roundsTowardZeroOnOverflow(m, z.neg) {
		z.mant = maxFiniteMantissa(z.prec)
		z.exp = c.MaxExp
		if z.neg {
			return 1
		}
		return -1
	}

	z.SetInf(z.neg)
	if z.neg {
		return -1
	}
	return 1
}

// underflow clamps z (already known to have exp < c.MinExp) to ±0 or
// the smallest normalized representable value for its sign and mode m,
// sets the Underflow and Inexact flags, and returns the resulting
// ternary value.
//
// This core has no subnormal representation (§3.1: a regular datum's
// mantissa is always normalized), so unlike IEEE 754 gradual underflow,
// underflow here always flushes either to zero or to the smallest
// normal magnitude at MinExp — there is no intermediate case. The
// boundary refinement MPFR applies when the exact result lies precisely
// at the emin-1/emin frontier (reround at reduced precision to decide
// between the two) is not implemented; see DESIGN.md's Open Questions.
func (c *Context) underflow(z *Float, m RoundingMode) int {
	c.flags |= Underflow | Inexact

	if roundsAwayFromZeroOnUnderflow(m, z.neg) {
		z.mant = smallestNormalMantissa(z.prec)
		z.exp = c.MinExp
		if z.neg {
			return -1
		}
		return 1
	}

	z.SetZero(z.neg)
	if z.neg {
		return 1
	}
	return -1
}

// roundsTowardZeroOnOverflow reports whether mode m, applied to a value
// of the given sign that has overflowed, picks the largest finite
// magnitude (true) rather than infinity (false). By the time check_range
// sees the overflow, roundRaw has already resolved ties, so RNDN always
// goes to infinity here: only the two directed modes whose target sign
// matches "toward zero" for this operand's sign — and the dedicated
// to-zero modes — clamp to a finite value.
func roundsTowardZeroOnOverflow(m RoundingMode, neg bool) bool {
	switch m {
	case ToZero, Faithful:
		return true
	case ToPositiveInf:
		return neg
	case ToNegativeInf:
		return !neg
	default: // AwayFromZero, ToNearestEven
		return false
	}
}

// roundsAwayFromZeroOnUnderflow is overflow's mirror image for the
// underflow side: it reports whether mode m picks the smallest normal
// magnitude (true) rather than zero (false).
func roundsAwayFromZeroOnUnderflow(m RoundingMode, neg bool) bool {
	switch m {
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	default: // ToZero, Faithful, ToNearestEven
		return false
	}
}

// maxFiniteMantissa returns the all-ones, trailing-zero-padded p-bit
// mantissa: the significand of the largest finite value at precision p.
func maxFiniteMantissa(p uint) nat.Nat {
	n := limbsForPrec(p)
	m := make(nat.Nat, n)
	for i := range m {
		m[i] = ^limb.Word(0)
	}
	pad := uint(n)*limb.W - p
	if pad > 0 {
		m[0] &^= (limb.Word(1) << pad) - 1
	}
	return m
}

// smallestNormalMantissa returns the 10...0 pattern: the significand of
// the smallest-magnitude representable value at precision p (mantissa
// value exactly one half, msb set, every other bit clear).
func smallestNormalMantissa(p uint) nat.Nat {
	n := limbsForPrec(p)
	m := make(nat.Nat, n)
	m[n-1] = limb.Word(1) << (limb.W - 1)
	return m
}

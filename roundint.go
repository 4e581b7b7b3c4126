// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/mpfloat/mpfloat/internal/nat"

// This file implements spec §6.1's "rounding-to-integer" row: round,
// floor, ceil, trunc. No teacher file grounds these directly (big.Float
// has no integer-rounding entry points at all), so they are grounded on
// MPFR's rint family's structure as described by spec §6.1's naming and
// general IEEE 754 roundToIntegral semantics: split the operand's exact
// value into an integer part and a (possibly zero) fractional remainder
// using the same point-right exponent convention the rest of this
// package shares, decide whether to keep or bump the integer part per
// the requested integer-rounding rule, then hand the result to the
// usual roundMagnitude path so it gets fitted to the destination's
// precision exactly like every other operation here.

// splitInteger separates a regular, non-zero x into its integer part
// (as a plain non-negative integer) and whether any fractional bits
// were discarded.
func splitInteger(x *Float) (intPart nat.Nat, fracNonZero bool) {
	ex := pointRightExp(x)
	if ex >= 0 {
		var widened nat.Nat
		widened = widened.Shl(x.mant, uint(ex))
		return widened, false
	}
	shift := uint(-ex)
	if shift >= uint(x.mant.BitLen()) {
		return nat.Nat{}, !x.mant.Norm().IsZero()
	}
	var whole nat.Nat
	whole = whole.Shr(x.mant, shift)
	return whole, x.mant.Sticky(shift) != 0
}

func bumpAwayFromZero(n nat.Nat) nat.Nat {
	var one, bumped nat.Nat
	one = one.SetWord(1)
	bumped = bumped.Add(n, one)
	return bumped
}

// Trunc sets z to x rounded toward zero to an integer, fitted to
// c.Precision under m, and returns the ternary value.
func (c *Context) Trunc(z, x *Float, m RoundingMode) int {
	if !x.IsRegular() {
		return c.roundAndCheck(z, x, x.prec, m)
	}
	intPart, _ := splitInteger(x)
	return c.roundMagnitude(z, intPart, 0, x.neg, m)
}

// Floor sets z to the largest integer <= x, fitted to c.Precision under
// m, and returns the ternary value.
func (c *Context) Floor(z, x *Float, m RoundingMode) int {
	if !x.IsRegular() {
		return c.roundAndCheck(z, x, x.prec, m)
	}
	intPart, frac := splitInteger(x)
	if frac && x.neg {
		intPart = bumpAwayFromZero(intPart)
	}
	return c.roundMagnitude(z, intPart, 0, x.neg, m)
}

// Ceil sets z to the smallest integer >= x, fitted to c.Precision under
// m, and returns the ternary value.
func (c *Context) Ceil(z, x *Float, m RoundingMode) int {
	if !x.IsRegular() {
		return c.roundAndCheck(z, x, x.prec, m)
	}
	intPart, frac := splitInteger(x)
	if frac && !x.neg {
		intPart = bumpAwayFromZero(intPart)
	}
	return c.roundMagnitude(z, intPart, 0, x.neg, m)
}

// Round sets z to x rounded to the nearest integer, ties away from zero
// (MPFR's mpfr_round convention, distinct from this package's own
// ToNearestEven float-rounding mode), fitted to c.Precision under m, and
// returns the ternary value.
func (c *Context) Round(z, x *Float, m RoundingMode) int {
	if !x.IsRegular() {
		return c.roundAndCheck(z, x, x.prec, m)
	}

	ex := pointRightExp(x)
	var intPart nat.Nat
	bump := false
	if ex >= 0 {
		intPart = intPart.Shl(x.mant, uint(ex))
	} else {
		shift := uint(-ex)
		intPart = intPart.Shr(x.mant, shift)
		// The fractional remainder is >= half (hence rounds away from
		// zero, ties included) exactly when its top bit is set — Bit
		// safely returns 0 for a position past x.mant's actual length,
		// which is exactly right when shift exceeds the mantissa's bit
		// length (|x| far below 1).
		bump = x.mant.Bit(shift-1) != 0
	}
	if bump {
		intPart = bumpAwayFromZero(intPart)
	}
	return c.roundMagnitude(z, intPart, 0, x.neg, m)
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// roundRaw implements the ROUND_RAW contract of spec §4.1: s is a
// normalized (most significant bit set), positive, sp-bit mantissa; p is
// a target precision with p <= sp; m is the rounding mode; neg is the
// sign of the value s belongs to. It returns the rounded mantissa packed
// into the limb-aligned, trailing-zero-padded form Float.mant uses (see
// SPEC_FULL.md's carried-forward spec §3.3), the ternary value, and
// whether rounding overflowed into an extra bit (the caller must then
// increment the result's exponent — the returned mantissa is already the
// correct 10…0 pattern for that case).
func roundRaw(s nat.Nat, sp int, p uint, m RoundingMode, neg bool) (t nat.Nat, ternary int, carry bool) {
	pp := int(p)
	if pp >= sp {
		return packMantissa(s, p), 0, false
	}

	shift := uint(sp - pp)
	rbPos := shift - 1
	rb := s.Bit(rbPos)
	sb := s.Sticky(rbPos)

	var top nat.Nat
	top = top.Shr(s, shift)

	signVal := 1
	if neg {
		signVal = -1
	}

	inexact := rb != 0 || sb != 0
	var inc bool
	switch m {
	case ToZero, Faithful:
		inc = false
	case ToPositiveInf:
		inc = !neg && inexact
	case ToNegativeInf:
		inc = neg && inexact
	case AwayFromZero:
		inc = inexact
	case ToNearestEven:
		switch {
		case rb == 0:
			inc = false
		case sb != 0:
			inc = true
		default: // exact halfway: break tie to even
			inc = top.Bit(0) != 0
		}
	default:
		panic("mpfloat: roundRaw: invalid rounding mode")
	}

	switch {
	case !inexact:
		ternary = 0
	case inc:
		ternary = signVal
	default:
		ternary = -signVal
	}

	if inc {
		top = top.Add(top, nat.Nat{1})
		if top.BitLen() > pp {
			carry = true
			var carried nat.Nat
			carried = carried.SetWord(1)
			carried = carried.Shl(carried, uint(pp-1))
			return packMantissa(carried, p), ternary, true
		}
	}
	return packMantissa(top, p), ternary, false
}

// packMantissa left-aligns the integer value v (which must have at most
// p significant bits, most significant bit set if v != 0) into the
// ceil(p/limb.W)-limb, trailing-zero-padded form Float.mant invariants
// require.
func packMantissa(v nat.Nat, p uint) nat.Nat {
	n := limbsForPrec(p)
	pad := uint(n)*limb.W - uint(v.BitLen())
	var z nat.Nat
	z = z.Shl(v, pad)
	if len(z) < n {
		full := make(nat.Nat, n)
		copy(full, z)
		z = full
	}
	return z
}

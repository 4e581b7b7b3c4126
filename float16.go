// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "math"

// This file implements the IEEE 754 binary16 boundary conversions
// SPEC_FULL.md §4 calls out: "bindings to fixed-width IEEE formats" are
// out of the core's scope, but the core must expose entry points for
// them, the same way it already does for float64 via SetFloat64/Float64
// (float.go). Go has no native half-precision type, so both directions
// work against the raw IEEE 754 binary16 bit pattern as a uint16,
// grounded on original_source/src/set_float16.c's and get_float16.c's
// bit layout (1 sign bit, 5 exponent bits, 10 fraction bits, exponent
// bias 15).
const (
	float16ExpBits  = 5
	float16ExpBias  = 15
	float16FracBits = 10
	float16FracMask = 1<<float16FracBits - 1
	float16ExpMask  = 1<<float16ExpBits - 1
)

// SetFloat16 sets z to the value encoded by bits (an IEEE 754 binary16
// bit pattern), correctly rounded at c.Precision under m (z's precision
// becomes c.Precision), and returns the ternary value. Grounded on set_float16.c's decode-to-
// signed-integer-times-power-of-two structure (mpfr_set_si_2exp),
// expressed here as SetInt64 followed by an exact exponent shift via
// Float.SetExp, since this package has no separate "set from scaled
// integer" entry point of its own.
func (c *Context) SetFloat16(z *Float, bits uint16, m RoundingMode) int {
	e := int((bits >> float16FracBits) & float16ExpMask)
	neg := bits&0x8000 != 0
	frac := int64(bits & float16FracMask)

	switch {
	case e == float16ExpMask:
		if frac != 0 {
			c.flags |= NaNFlag
			z.SetNaN()
			return 0
		}
		z.SetInf(neg)
		return 0
	case e == 0:
		if frac == 0 {
			z.SetZero(neg)
			return 0
		}
		e++ // subnormal: same implicit exponent as the smallest normal
	default:
		frac += 1 << float16FracBits // restore the implicit leading bit
	}

	mant := frac
	if neg {
		mant = -mant
	}
	ternary := c.SetInt64(z, mant, m)
	// value = mant * 2^(e-25); SetInt64 already rounded mant itself, and
	// rescaling by an exact power of two changes no rounding decision.
	if z.IsRegular() {
		z.SetExp(z.GetExp() + e - (float16FracBits + float16ExpBias))
	}
	return ternary
}

// Float16 converts z to an IEEE 754 binary16 bit pattern, returning the
// pattern and an indicator. There is no rounding-mode parameter: z goes
// through Float64, and the float64 is rounded to binary16 to nearest,
// ties away from zero. The indicator is Float64's own; the second
// rounding step is not reflected in it. Grounded on get_float16.c's shape (classify by
// exponent range, then round the rescaled significand to an integer),
// but routed through Float64 rather than a second multi-precision
// rescale-and-round pass of its own: since this is a boundary/testing
// conversion rather than a core arithmetic primitive, composing it with
// the existing (already-approximate for p>53) Float64 conversion is an
// accepted, documented simplification rather than a third bit-exact
// kernel — see DESIGN.md.
func (z *Float) Float16() (bits uint16, ternary int) {
	switch {
	case z.IsNaN():
		return 0x7e00, 0
	case z.IsZero():
		if z.neg {
			return 0x8000, 0
		}
		return 0, 0
	case z.IsInf():
		if z.neg {
			return 0xfc00, 0
		}
		return 0x7c00, 0
	}

	f, fternary := z.Float64()
	bits = encodeFloat16(f)
	return bits, fternary
}

func encodeFloat16(f float64) uint16 {
	if f == 0 {
		if math.Signbit(f) {
			return 0x8000
		}
		return 0
	}
	sign := uint16(0)
	if f < 0 {
		sign = 0x8000
		f = -f
	}

	e := int(math.Floor(math.Log2(f)))
	mant := f / math.Ldexp(1, e) // in [1, 2)

	switch {
	case e > 15 || (e == 15 && mant >= 1.99951171875 /* rounds up past max finite */):
		return sign | 0x7c00
	case e < -24:
		return sign
	case e < -14:
		// Subnormal: scale so the implicit bit lands at 2^-14 and round
		// the fractional part to the nearest 2^-24 unit.
		scaled := f / math.Ldexp(1, -24)
		m := uint16(math.Round(scaled))
		return sign | m
	default:
		frac := mant - 1 // in [0, 1)
		m := uint16(math.Round(frac * (1 << float16FracBits)))
		if m == 1<<float16FracBits {
			m = 0
			e++
			if e > 15 {
				return sign | 0x7c00
			}
		}
		return sign | uint16(e+float16ExpBias)<<float16FracBits | m
	}
}

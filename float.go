// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mpfloat implements correctly-rounded arbitrary-precision binary
// floating-point arithmetic: a number representation with five variants
// (NaN, ±∞, ±0, and a regular sign/exponent/mantissa triple), a rounding
// kernel that converts an over-precise intermediate into a target
// precision under any of six rounding modes, and the elementary
// operations (add, sub, mul, div, sqr, sqrt, rsqrt, cbrt) built on top of
// it. Like in the GNU MPFR library this package is modelled on, the
// rounding mode and exponent range live in an explicit *Context rather
// than on the Float value itself, since unlike math/big.Float this
// package's operands are not expected to each carry their own rounding
// preference.
package mpfloat

import (
	"math"

	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// mpfloatDebug gates the validate() invariant checks of invariants.go. It
// mirrors the teacher's own debugFloat switch in math/big/float.go: a
// compile-time constant rather than a logger, since a logging call on
// every limb operation would dwarf the arithmetic it instruments.
const mpfloatDebug = false

// kind distinguishes the five variants of §3.1's data model. Only
// kindRegular values carry a meaningful mantissa and exponent.
type kind uint8

const (
	kindNaN kind = iota
	kindRegular
	kindZero
	kindInf
)

// Float is a multi-precision binary floating-point value:
//
//	sign * mantissa * 2**(exponent - precision)
//
// with the mantissa an integer whose most significant bit is 1 (so
// mantissa/2**precision lies in [1/2, 1)), for kindRegular values. The
// zero value of Float is ready to use and represents NaN at precision 0;
// callers normally start from Init.
type Float struct {
	prec uint
	neg  bool
	kind kind
	mant nat.Nat
	exp  int
}

// limbsForPrec returns ceil(p/W), the number of limbs a p-bit mantissa
// occupies.
func limbsForPrec(p uint) int {
	return int((p + limb.W - 1) / limb.W)
}

// Init allocates z at precision p (p must be positive) and sets it to
// +0. Matches spec §3.4: "a datum is created by an init operation taking
// a precision".
func (z *Float) Init(p uint) *Float {
	if p == 0 {
		panic("mpfloat: Init: precision must be positive")
	}
	z.prec = p
	z.neg = false
	z.kind = kindZero
	z.mant = nil
	z.exp = 0
	return z
}

// Prec returns z's precision in bits.
func (z *Float) Prec() uint { return z.prec }

// SetPrec changes z's precision to p and discards z's value, setting it
// to +0 — per spec §3.4, set_prec "destroys and reallocates its buffer,
// discarding the value". (Context.Round is round-to-integer; it does not
// change a value's precision.)
func (z *Float) SetPrec(p uint) *Float {
	return z.Init(p)
}

func (z *Float) IsNaN() bool  { return z.kind == kindNaN }
func (z *Float) IsInf() bool  { return z.kind == kindInf }
func (z *Float) IsZero() bool { return z.kind == kindZero }
func (z *Float) IsRegular() bool { return z.kind == kindRegular }

// Signbit reports the sign bit of z, which is meaningful even for NaN
// (an implementation-defined but stable bit), ±0, and ±∞.
func (z *Float) Signbit() bool { return z.neg }

// Sign returns -1, 0, or +1 for a regular value, following the usual
// convention that signed zero's sign is 0 (use Signbit to distinguish
// ±0). NaN's sign is undefined and Sign panics on it, matching the
// spec's treatment of NaN as having "no meaningful sign".
func (z *Float) Sign() int {
	switch z.kind {
	case kindNaN:
		panic("mpfloat: Sign of NaN")
	case kindZero:
		return 0
	default:
		if z.neg {
			return -1
		}
		return 1
	}
}

// SetSign sets z's sign bit directly, without otherwise changing z's
// value (this is setsign from spec §6.1 — it does not negate, it
// assigns).
func (z *Float) SetSign(neg bool) *Float {
	z.neg = neg
	return z
}

// SetNaN sets z to NaN.
func (z *Float) SetNaN() *Float {
	z.kind = kindNaN
	z.neg = false
	z.mant = nil
	z.exp = 0
	return z
}

// SetInf sets z to signed infinity.
func (z *Float) SetInf(neg bool) *Float {
	z.kind = kindInf
	z.neg = neg
	z.mant = nil
	z.exp = 0
	return z
}

// SetZero sets z to signed zero.
func (z *Float) SetZero(neg bool) *Float {
	z.kind = kindZero
	z.neg = neg
	z.mant = nil
	z.exp = 0
	return z
}

// setRegular installs a normalized regular value: sign neg, mantissa m
// (already normalized to z.prec bits, most significant bit set), and
// exponent exp satisfying x = ±(m̂/2^prec) * 2^exp. The caller is
// responsible for range-checking exp.
func (z *Float) setRegular(neg bool, m nat.Nat, exp int) *Float {
	z.kind = kindRegular
	z.neg = neg
	z.mant = m
	z.exp = exp
	if mpfloatDebug {
		z.validate()
	}
	return z
}

// GetExp returns the exponent of a regular z (the e such that
// 1/2 <= |z|/2^e < 1). It panics for NaN, ±Inf, and ±0, which have no
// meaningful exponent.
func (z *Float) GetExp() int {
	if z.kind != kindRegular {
		panic("mpfloat: GetExp of non-regular value")
	}
	return z.exp
}

// SetExp sets the exponent of a regular z without touching its mantissa
// or sign; the new exponent is not range-checked here (callers combine
// this with Context.checkRange when a checked result is needed).
func (z *Float) SetExp(e int) *Float {
	if z.kind != kindRegular {
		panic("mpfloat: SetExp of non-regular value")
	}
	z.exp = e
	return z
}

// SetUint64 sets z to x, correctly rounded at c.Precision under mode m
// (z's precision becomes c.Precision), and returns the ternary value.
func (c *Context) SetUint64(z *Float, x uint64, m RoundingMode) int {
	if x == 0 {
		z.SetZero(false)
		return 0
	}
	var m0 nat.Nat
	m0 = m0.SetUint64(x)
	bits := m0.BitLen()
	sh := uint(limbsForPrec(z.prec))*limb.W - uint(bits)
	m0 = m0.Shl(m0, sh)
	z.setRegular(false, m0, bits)
	return c.roundAndCheck(z, z, uint(limbsForPrec(z.prec))*limb.W, m)
}

// SetInt64 sets z to x, correctly rounded, and returns the ternary value.
func (c *Context) SetInt64(z *Float, x int64, m RoundingMode) int {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-x)
	}
	t := c.SetUint64(z, ux, m)
	if neg && !z.IsZero() {
		z.neg = true
		t = -t
	}
	return t
}

// SetFloat64 sets z to x, correctly rounded at c.Precision (z's precision
// becomes c.Precision; x is always exactly representable once
// c.Precision is >= 53, so for the DefaultContext's 53-bit precision this
// is always exact apart from NaN/Inf handling).
func (c *Context) SetFloat64(z *Float, x float64, m RoundingMode) int {
	switch {
	case math.IsNaN(x):
		z.SetNaN()
		return 0
	case math.IsInf(x, 0):
		z.SetInf(x < 0)
		return 0
	case x == 0:
		z.SetZero(math.Signbit(x))
		return 0
	}

	neg := math.Signbit(x)
	ax := math.Abs(x)
	frac, exp := math.Frexp(ax) // ax == frac * 2**exp, 0.5 <= frac < 1
	mantBits := uint64(frac * (1 << 53))
	var m0 nat.Nat
	m0 = m0.SetUint64(mantBits)
	sh := uint(limbsForPrec(z.prec))*limb.W - 53
	m0 = m0.Shl(m0, sh)
	z.setRegular(neg, m0, exp)
	return c.roundAndCheck(z, z, uint(limbsForPrec(z.prec))*limb.W, m)
}

// Float64 returns z converted to a float64 by truncating its mantissa to
// the top 53 bits (it does not round to nearest), and an indicator. A
// regular z with exponent above 1024 gives ±Inf and one below -1021 gives
// ±0 (float64 subnormals are not produced); in those two cases the
// indicator is the ternary sign of the result against z. Otherwise the
// indicator is 1 whenever z's precision exceeds 53 bits, whether or not
// bits were actually dropped, and 0 otherwise. NaN, ±Inf and ±0 convert
// exactly with indicator 0. (The spec declares bindings to fixed-width
// IEEE formats out of the core's scope but requires the core to expose
// the entry points; see SPEC_FULL.md §4.)
func (z *Float) Float64() (float64, int) {
	switch z.kind {
	case kindNaN:
		return math.NaN(), 0
	case kindInf:
		if z.neg {
			return math.Inf(-1), 0
		}
		return math.Inf(1), 0
	case kindZero:
		if z.neg {
			return math.Copysign(0, -1), 0
		}
		return 0, 0
	}

	if z.exp > 1024 {
		if z.neg {
			return math.Inf(-1), -1
		}
		return math.Inf(1), 1
	}
	if z.exp < -1021 {
		if z.neg {
			return math.Copysign(0, -1), 1
		}
		return 0, -1
	}

	top := limbsForPrec(53)
	var m nat.Nat
	m = m.Shr(z.mant, uint(z.mant.BitLen())-53)
	if m.BitLen() > 53 {
		m = m.Shr(m, 1)
	}
	_ = top
	mant := uint64(0)
	for i := len(m) - 1; i >= 0; i-- {
		mant = mant<<limb.W | uint64(m[i])
	}
	frac := float64(mant) / (1 << 53)
	v := math.Ldexp(frac, z.exp)
	if z.neg {
		v = -v
	}
	ternary := 0
	if z.prec > 53 {
		ternary = 1 // conservatively inexact; exactness at higher precision is rare for non-dyadic mantissas
	}
	return v, ternary
}

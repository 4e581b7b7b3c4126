// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nat implements the multi-limb natural-number layer (L1 in
// SPEC_FULL.md): little-endian slices of internal/limb.Word, with the
// exact primitives the higher layers compose into correctly rounded
// arithmetic — addition, subtraction, comparison, multiplication,
// squaring, shifting, division with remainder, and integer square root
// with remainder. This is the Go analogue of GMP's mpn_* layer and of
// math/big's nat.go, trimmed to what a floating-point engine needs (no
// modular exponentiation, no byte-slice marshalling).
package nat

import "github.com/mpfloat/mpfloat/internal/limb"

// Word is re-exported so callers never need to import internal/limb
// directly for the common case of building small literal natural numbers.
type Word = limb.Word

// Nat is an unsigned multi-precision integer
//
//	x = x[n-1]*B^(n-1) + ... + x[1]*B + x[0],  B = 2**limb.W
//
// stored little-endian, one Word per digit. The zero-length slice
// represents 0. Nat values are not normalized automatically by every
// method — callers that need the canonical (no leading zero limb) form
// call Norm.
type Nat []Word

// Norm returns x with any leading (most-significant) zero limbs removed.
func (x Nat) Norm() Nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// IsZero reports whether x represents zero (after normalization).
func (x Nat) IsZero() bool {
	return len(x.Norm()) == 0
}

// Clear zeroes every limb of z in place.
func (z Nat) Clear() {
	for i := range z {
		z[i] = 0
	}
}

// make returns a Nat of length n, reusing z's backing array when it has
// enough capacity.
func (z Nat) make(n int) Nat {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 2
	return make(Nat, n, n+extra)
}

// Set copies x into z and returns the (possibly reallocated) result.
func (z Nat) Set(x Nat) Nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// SetWord sets z to a single-limb value.
func (z Nat) SetWord(x Word) Nat {
	z = z.make(1)
	z[0] = x
	return z.Norm()
}

// SetUint64 sets z to x, using one or two limbs depending on limb.W.
func (z Nat) SetUint64(x uint64) Nat {
	if limb.W >= 64 {
		return z.SetWord(Word(x))
	}
	z = z.make(2)
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z.Norm()
}

// BitLen returns the number of bits needed to hold x; x need not be
// normalized.
func (x Nat) BitLen() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*limb.W + limb.BitLen(x[i])
		}
	}
	return 0
}

// TrailingZeroBits returns the number of consecutive zero bits starting
// from the least significant bit of x. TrailingZeroBits(0) == 0.
func (x Nat) TrailingZeroBits() uint {
	for i, xi := range x {
		if xi != 0 {
			return uint(i)*limb.W + limb.TrailingZeros(xi)
		}
	}
	return 0
}

// Bit returns the value of the i'th bit of x (0 if i is out of range),
// with bit 0 the least significant.
func (x Nat) Bit(i uint) uint {
	j := i / limb.W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%limb.W)) & 1
}

// Sticky returns 1 if any of the i least-significant bits of x is set,
// 0 otherwise. This is the "sticky bit" of the specification: used by
// the rounding kernel to distinguish an exact truncation from one that
// discarded a nonzero remainder.
func (x Nat) Sticky(i uint) uint {
	j := i / limb.W
	if j >= uint(len(x)) {
		if x.IsZero() {
			return 0
		}
		return 1
	}
	for _, w := range x[:j] {
		if w != 0 {
			return 1
		}
	}
	if x[j]<<(limb.W-i%limb.W) != 0 {
		return 1
	}
	return 0
}

// Cmp returns -1, 0, or +1 as x < y, x == y, or x > y. x and y need not
// be normalized.
func (x Nat) Cmp(y Nat) int {
	xn, yn := x.Norm(), y.Norm()
	switch {
	case len(xn) < len(yn):
		return -1
	case len(xn) > len(yn):
		return 1
	}
	for i := len(xn) - 1; i >= 0; i-- {
		if xn[i] != yn[i] {
			if xn[i] < yn[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add sets z = x + y and returns the (possibly reallocated, normalized)
// result.
func (z Nat) Add(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if m == 0 {
		return z[:0]
	}
	z = z.make(m + 1)
	c := limb.AddVV(z[:n], x[:n], y)
	if m > n {
		c = limb.AddVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.Norm()
}

// Sub sets z = x - y (x must be >= y) and returns the result. It panics
// on underflow, matching the precondition callers in this module always
// maintain (the teacher's own nat.sub carries the identical contract).
func (z Nat) Sub(x, y Nat) Nat {
	m, n := len(x), len(y)
	if m < n {
		panic("nat: Sub underflow")
	}
	z = z.make(m)
	c := limb.SubVV(z[:n], x[:n], y)
	if m > n {
		c = limb.SubVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("nat: Sub underflow")
	}
	return z.Norm()
}

// Shl sets z = x << s and returns the result.
func (z Nat) Shl(x Nat, s uint) Nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/limb.W)
	z = z.make(n + 1)
	z[n] = limb.ShlVU(z[n-m:n], x, s%limb.W)
	for i := 0; i < n-m; i++ {
		z[i] = 0
	}
	return z.Norm()
}

// Shr sets z = x >> s and returns the result.
func (z Nat) Shr(x Nat, s uint) Nat {
	m := len(x)
	n := m - int(s/limb.W)
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	limb.ShrVU(z, x[m-n:], s%limb.W)
	return z.Norm()
}

// basicMul computes the full (non-normalized) product of x and y into
// z[0:len(x)+len(y)]. Grounded on math/big's basicMul (schoolbook
// multiply-accumulate, one limb of y at a time).
func basicMul(z, x, y Nat) {
	z[:len(x)+len(y)].Clear()
	for i, yi := range y {
		if yi != 0 {
			z[i+len(x)] = limb.AddMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// karatsubaThreshold is the operand length (in limbs) above which Mul
// switches from schoolbook to Karatsuba multiplication.
var karatsubaThreshold = 32

// Mul sets z = x * y (full, exact product) and returns the result.
func (z Nat) Mul(x, y Nat) Nat {
	x, y = x.Norm(), y.Norm()
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return z[:0]
	}
	if len(y) == 1 {
		return z.mulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	if len(y) < karatsubaThreshold {
		z = z.make(len(x) + len(y))
		basicMul(z, x, y)
		return z.Norm()
	}
	return z.karatsubaMul(x, y)
}

func (z Nat) mulAddWW(x Nat, y, r Word) Nat {
	if len(x) == 0 || y == 0 {
		return z.SetWord(r)
	}
	z = z.make(len(x) + 1)
	z[len(x)] = limb.MulAddVWW(z[:len(x)], x, y, r)
	return z.Norm()
}

// alias reports whether x and y share the same backing array, in which
// case z must not reuse it as scratch space.
func alias(x, y Nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Sqr sets z = x*x. A dedicated entry point (rather than Mul(x, x)) so
// that the Mulders short-square engine in internal/mulders has a single
// full-precision fallback to call that is free to exploit x==y
// eventually; today it simply forwards to Mul.
func (z Nat) Sqr(x Nat) Nat {
	return z.Mul(x, x)
}

// DivMod sets q, r such that x = q*y + r, 0 <= r < y, and returns them.
// y must be nonzero. Grounded on Knuth Algorithm D via math/big's
// divLarge, simplified to the single-quotient-destination case this
// engine needs (it never threads q and r through a shared scratch pool).
func (z Nat) DivMod(r, x, y Nat) (q, rem Nat) {
	y = y.Norm()
	if len(y) == 0 {
		panic("nat: division by zero")
	}
	x = x.Norm()
	if x.Cmp(y) < 0 {
		return z[:0], r.Set(x)
	}
	if len(y) == 1 {
		q = z.make(len(x))
		rw := limb.DivWVW(q, 0, x, y[0])
		return q.Norm(), r.SetWord(rw)
	}
	return z.divLarge(r, x, y)
}

// divLarge implements Knuth's Algorithm D (TAOCP vol 2, §4.3.1) for
// len(y) >= 2.
func (z Nat) divLarge(r, x, y Nat) (q, rem Nat) {
	n := len(y)
	m := len(x) - n

	if alias(z, x) || alias(z, y) {
		z = nil
	}
	q = z.make(m + 1)

	shift := limb.LeadingZeros(y[n-1])
	var v Nat
	if shift > 0 {
		v = make(Nat, n)
		limb.ShlVU(v, y, shift)
	} else {
		v = y
	}

	u := make(Nat, len(x)+1)
	u[len(x)] = limb.ShlVU(u[:len(x)], x, shift)

	vn1 := v[n-1]
	var vn2 Word
	if n >= 2 {
		vn2 = v[n-2]
	}

	qhatv := make(Nat, n+1)
	for j := m; j >= 0; j-- {
		var qhat, rhat Word
		ujn := u[j+n]
		if ujn == vn1 {
			qhat = ^Word(0)
		} else {
			qhat, rhat = limb.DivWW(ujn, u[j+n-1], vn1)
			x1, x2 := limb.MulWW(qhat, vn2)
			var ujn2 Word
			if j+n >= 2 {
				ujn2 = u[j+n-2]
			}
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				x1, x2 = limb.MulWW(qhat, vn2)
			}
		}

		qhatv[n] = limb.MulAddVWW(qhatv[:n], v, qhat, 0)
		c := limb.SubVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			c := limb.AddVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	limb.ShrVU(u, u, shift)
	return q.Norm(), r.Set(u).Norm()
}

// greaterThan reports whether (x1<<W + x2) > (y1<<W + y2).
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}

// Sqrt sets z = floor(sqrt(x)) and rem = x - z*z, returning both.
// Grounded on math/big's Newton-iteration nat.sqrt (Brent & Zimmermann,
// Modern Computer Arithmetic, Algorithm 1.13), extended to also report
// the exact remainder the way GMP's mpn_sqrtrem does (the floating-point
// sqrt operation needs the remainder to build its sticky bit).
func (z Nat) Sqrt(rem, x Nat) (s, r Nat) {
	xn := x.Norm()
	if xn.Cmp(Nat{1}) <= 0 {
		return z.Set(xn), rem.SetWord(0)
	}
	var z1, z2 Nat
	z1 = z1.SetWord(1)
	z1 = z1.Shl(z1, uint(xn.BitLen()/2+1))
	for {
		var q Nat
		q, _ = q.DivMod(nil, xn, z1)
		z2 = z2.Add(q, z1)
		z2 = z2.Shr(z2, 1)
		if z2.Cmp(z1) >= 0 {
			s = z.Set(z1)
			var sq Nat
			sq = sq.Mul(s, s)
			r = rem.Sub(xn, sq)
			return s, r
		}
		z1, z2 = z2, z1
	}
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mulders implements the L2 short-product/short-division engine:
// approximations to the high half of a product, a square, or a quotient,
// each with a documented bounded error. The root package's Mul, Sqr and
// Div do not call this package: they form the full exact product or
// quotient and round that. Grounded on MPFR's mulders.c, which in turn implements the
// ShortMul/ShortDiv family of Harvey & Zimmermann and Sukop & Zimmermann.
package mulders

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// Word is re-exported so callers don't need to import internal/limb
// directly just to name the carry/overflow limbs this package returns.
type Word = limb.Word

// mulHighK chooses the recursion split point for an n-limb short product.
// Real GMP/MPFR tune this via an empirically measured table
// (mulhigh_ktab); lacking a benchmarking harness here, three clamped bands
// stand in for it: below mulHighSmall, form the exact product and read off
// its top limbs; below mulHighRecurse, use the triangular basecase
// directly; above it, split recursively. k is kept within the bound
// Algorithm ShortMul requires (k >= ceil((n+3)/2), k < n).
func mulHighK(n int) int {
	const (
		mulHighSmall   = 4
		mulHighRecurse = 32
	)
	switch {
	case n < mulHighSmall:
		return -1
	case n < mulHighRecurse:
		return 0
	default:
		k := 3 * (n / 4)
		if lo := (n + 4) / 2; k < lo {
			k = lo
		}
		if k >= n {
			k = n - 1
		}
		return k
	}
}

// MulHighN stores into rp[0:2n] an approximation to the n high limbs
// (rp[n:2n]) of the 2n-limb product a[:n]*b[:n]; rp[0:n] holds whatever
// low-order bits the chosen strategy happened to produce and carries no
// guarantee. The error in rp[n:2n], read as an n-limb integer, is less
// than n ulps and never an overestimate of the truncated exact product.
// a and b must have length >= n.
func MulHighN(rp, a, b nat.Nat, n int) {
	if n == 0 {
		return
	}
	k := mulHighK(n)
	switch {
	case k < 0:
		var full nat.Nat
		full = full.Mul(a[:n].Norm(), b[:n].Norm())
		clearInto(rp[:2*n], full)
	case k == 0:
		mulHighNBasecase(rp, a[:n], b[:n], n)
	default:
		l := n - k

		var full nat.Nat
		full = full.Mul(a[l:n].Norm(), b[l:n].Norm())
		clearInto(rp[2*l:2*n], full)

		MulHighN(rp, a[k:n], b[:l], l)
		cy := limb.AddVV(rp[n-1:n+l], rp[n-1:n+l], rp[l-1:2*l])
		MulHighN(rp, a[:l], b[k:n], l)
		cy += limb.AddVV(rp[n-1:n+l], rp[n-1:n+l], rp[l-1:2*l])
		limb.AddVW(rp[n+l:2*n], rp[n+l:2*n], cy)
	}
}

// clearInto zeroes dst and copies src into its low-order end, matching the
// little-endian "value occupies the low limbs, rest is zero" convention
// the buffers in this package use when a sub-computation's result is
// shorter than the window it was asked to fill.
func clearInto(dst, src nat.Nat) {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, src)
}

// mulHighNBasecase computes rp[n-1:2n] (n+1 limbs) as an approximation to
// the top of a[:n]*b[:n], neglecting cross terms that contribute less than
// one ulp at that position — "Algorithm ShortMulNaive" from Harvey &
// Zimmermann. rp must have length >= 2n.
func mulHighNBasecase(rp, a, b nat.Nat, n int) {
	base := n - 1
	hi, lo := limb.MulWW(a[n-1], b[0])
	rp[base] = lo
	rp[base+1] = hi
	for i := 1; i < n; i++ {
		carry := limb.AddMulVVW(rp[base:base+i+1], a[n-i-1:n], b[i])
		rp[base+i+1] = carry
	}
}

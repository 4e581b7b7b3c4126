// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mulders

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// sqrHighK mirrors mulHighK, tightened slightly (k < n is required even at
// the smallest recursive size, since squaring has no second independent
// operand to fall back on).
func sqrHighK(n int) int {
	const (
		sqrHighSmall   = 3
		sqrHighRecurse = 32
	)
	switch {
	case n < sqrHighSmall:
		return -1
	case n < sqrHighRecurse:
		return 0
	default:
		k := (n + 4) / 2
		if k >= n {
			k = n - 1
		}
		return k
	}
}

// SqrHighN stores into rp[0:2n] an approximation to the n high limbs
// (rp[n:2n]) of the 2n-limb square a[:n]^2, with the same error bound as
// MulHighN. It exploits a[:n]*a[:n]'s symmetry: only one off-diagonal
// short product needs computing, doubled via a left shift rather than
// added twice.
func SqrHighN(rp, a nat.Nat, n int) {
	if n == 0 {
		return
	}
	k := sqrHighK(n)
	switch {
	case k < 0:
		var full nat.Nat
		full = full.Sqr(a[:n].Norm())
		clearInto(rp[:2*n], full)
	case k == 0:
		mulHighNBasecase(rp, a[:n], a[:n], n)
	default:
		l := n - k

		var full nat.Nat
		full = full.Sqr(a[l:n].Norm())
		clearInto(rp[2*l:2*n], full)

		MulHighN(rp, a[:l], a[k:n], l)
		cy := limb.ShlVU(rp[l-1:2*l], rp[l-1:2*l], 1)
		cy += limb.AddVV(rp[n-1:n+l], rp[n-1:n+l], rp[l-1:2*l])
		limb.AddVW(rp[n+l:2*n], rp[n+l:2*n], cy)
	}
}

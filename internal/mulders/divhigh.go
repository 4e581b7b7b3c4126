// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mulders

import (
	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
)

// divHighK picks the recursion split for DivHighN, clamped to the bound
// Algorithm BasecaseShortDiv/ShortDiv needs (k >= ceil((n+4)/2), k < n-1,
// which in turn forces n >= 5 for the recursive branch to fire).
func divHighK(n int) int {
	const divHighRecurse = 16
	if n < divHighRecurse {
		return 0
	}
	k := 2 * (n / 3)
	if lo := (n + 4) / 2; k < lo {
		k = lo
	}
	if k >= n-1 {
		k = n - 2
	}
	return k
}

// DivHighN stores into qp[0:n] an approximation q' to the true n-limb high
// quotient of N={np,2n} divided by D={dp,n} (the top bit of dp[n-1] must
// be set), satisfying q - (2n-2) < q' <= q + 4, and returns the quotient's
// own extra high limb (0 or 1). np is clobbered as scratch. Requires
// n >= 2. Implements the divide-and-conquer shape of Algorithm ShortDiv
// (Sukop & Zimmermann): divide the top 2k limbs exactly, correct the
// residue for the low k quotient limbs not yet known, then recurse on the
// remaining l = n-k limbs.
func DivHighN(qp, np, dp nat.Nat, n int) Word {
	k := divHighK(n)
	if k <= 0 {
		return divHighNBasecase(qp[:n], np[:2*n], dp[:n], n)
	}
	l := n - k

	var q, r nat.Nat
	q, r = q.DivMod(r, np[2*l:2*n].Norm(), dp[l:n].Norm())

	var qh Word
	if len(q) > k {
		qh = q[k]
	}
	clearInto(qp[l:n], q)
	clearInto(np[2*l:n+l], r)

	tp := make(nat.Nat, 2*l)
	MulHighN(tp, qp[k:n], dp[:l], l)
	cy := int(limb.SubVV(np[n:n+l], np[n:n+l], tp[l:2*l]))
	if qh != 0 {
		cy += int(limb.SubVV(np[n:n+l], np[n:n+l], dp[:l]))
	}
	for cy > 0 {
		qh -= limb.SubVW(qp[l:n], qp[l:n], 1)
		cy -= int(limb.AddVV(np[l:l+n], np[l:l+n], dp[:n]))
	}

	cy2 := DivHighN(qp[:l], np[k:k+2*l], dp[k:n], l)
	qh += limb.AddVW(qp[l:n], qp[l:n], cy2)
	return qh
}

// divHighNBasecase is the recursion's leaf. MPFR's own leaf
// (mpfr_divhigh_n_basecase) uses a 3-by-2 udiv_qr_3by2 quotient-digit
// selection loop with a precomputed two-limb reciprocal, accepting a
// bounded approximation error in exchange for speed. This engine instead
// computes the exact n-limb high quotient via internal/nat's full
// division: at the size this leaf is reached, correctness-by-construction
// was judged more valuable than the constant factor the approximate
// selection loop saves, and an exact quotient trivially satisfies the
// bound any approximation would have to meet.
func divHighNBasecase(qp, np, dp nat.Nat, n int) Word {
	var q, r nat.Nat
	q, r = q.DivMod(r, np.Norm(), dp.Norm())
	var qh Word
	if len(q) > n {
		qh = q[n]
	}
	clearInto(qp, q)
	return qh
}

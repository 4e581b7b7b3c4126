// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/mpfloat/mpfloat/internal/nat"

// This file implements spec §4.9's Ziv correct-rounding loop: the
// adaptive-precision wrapper every transcendental or composite function
// built on this package's elementary operations is expected to use
// instead of a single fixed-guard-bits evaluation. canRound is the
// predicate spec §4.9 specifies bit-for-bit; zivRound is the driving
// loop around it. The spec notes (§1, §4.9) that the transcendental
// functions themselves (log, exp, gamma, ...) are clients of this core
// and are out of scope, so this file has no function of its own calling
// zivRound at the package level beyond Rsqrt, which is wired through it
// in rsqrt.go rather than using a fixed margin, specifically so this
// loop has a real in-repo caller instead of being untested scaffolding.

// canRound reports whether an approximation t, known to be within errBits
// bits of uncertainty of the true value (i.e. the true value's mantissa
// agrees with t's top w-errBits bits), carries enough certainty to round
// correctly to py bits under rounding mode nearest. It inspects the bits
// of mant strictly between the target precision's boundary and the
// start of the uncertain region: if they are uniformly 0 or uniformly 1,
// the true value might lie on the other side of a rounding boundary that
// more precision would reveal, so rounding now would risk the wrong
// answer (the double-rounding / table-maker's-dilemma case); if they are
// mixed, the value is provably far enough from any boundary to round
// immediately.
func canRound(mant nat.Nat, w, errBits, py uint, nearest bool) bool {
	lo := py
	if nearest {
		lo++
	}
	if errBits >= w {
		return false
	}
	hi := w - errBits
	if hi <= lo {
		return true
	}

	allZero, allOne := true, true
	for pos := lo + 1; pos <= hi; pos++ {
		bit := mant.Bit(w - pos)
		if bit == 0 {
			allOne = false
		} else {
			allZero = false
		}
	}
	return !allZero && !allOne
}

// zivEval evaluates a function at working precision w, returning its
// raw (unrounded) mantissa, the mantissa's point-right exponent, and the
// evaluation's error bound in bits (log2 of the ulp error, spec §4.9's
// E term expressed as a bit count rather than a ulp count directly).
type zivEval func(w uint) (mant nat.Nat, ex int, errBits uint)

// zivRound runs spec §4.9's loop: evaluate at growing working precision
// until canRound succeeds, then return the raw result at the working
// precision that succeeded (the caller rounds it the rest of the way
// via roundMagnitude/roundAndCheck, exactly as every elementary
// operation in this package already does).
func zivRound(py uint, nearest bool, initialMargin uint, eval zivEval) (mant nat.Nat, ex int) {
	w := py + initialMargin
	for {
		m, e, errBits := eval(w)
		wBits := uint(m.BitLen())
		if wBits == 0 {
			return m, e
		}
		// Bits of m below the working precision w are limb padding, not
		// computed bits, so they count as uncertain too.
		if wBits > w {
			errBits += wBits - w
		}
		if canRound(m, wBits, errBits, py, nearest) {
			return m, e
		}
		growth := w / 2
		if growth < 8 {
			growth = 8
		}
		w += growth
	}
}

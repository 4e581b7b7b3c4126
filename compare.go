// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

// ucmp compares the absolute values of two regular Floats, assuming
// neither is zero. Grounded on big.Float.ucmp: compare exponents first
// (the common case — no need to ever look at the mantissa), then fall
// back to a most-significant-limb-first mantissa comparison.
func (x *Float) ucmp(y *Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	return x.mant.Cmp(y.mant)
}

// Compare returns -1, 0, or +1 according to whether x < y, x == y, or
// x > y, treating -0 == +0 as ordinary IEEE comparison does. Comparing
// against NaN (in either position) sets the NaN flag on c and returns 0;
// callers that need to distinguish "equal" from "unordered" must check
// IsNaN themselves, per spec §6.1's "NaN comparison distinguished via
// flags" contract.
func (c *Context) Compare(x, y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		c.flags |= NaNFlag
		return 0
	}

	xZero, yZero := x.IsZero(), y.IsZero()
	switch {
	case x.IsInf() && y.IsInf():
		switch {
		case x.neg == y.neg:
			return 0
		case x.neg:
			return -1
		default:
			return 1
		}
	case x.IsInf():
		if x.neg {
			return -1
		}
		return 1
	case y.IsInf():
		if y.neg {
			return 1
		}
		return -1
	case xZero && yZero:
		return 0
	case xZero:
		return -signOf(y.neg)
	case yZero:
		return signOf(x.neg)
	}

	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	r := x.ucmp(y)
	if x.neg {
		r = -r
	}
	return r
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// CompareAbs is Compare with both operands' signs ignored.
func (c *Context) CompareAbs(x, y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		c.flags |= NaNFlag
		return 0
	}
	switch {
	case x.IsInf() && y.IsInf():
		return 0
	case x.IsInf():
		return 1
	case y.IsInf():
		return -1
	case x.IsZero() && y.IsZero():
		return 0
	case x.IsZero():
		return -1
	case y.IsZero():
		return 1
	default:
		return x.ucmp(y)
	}
}

// totalOrderFinite orders two non-NaN values by the usual signed real
// order, distinguishing -0 from +0. The caller has already handled the
// differing-sign case, so x.neg == y.neg here.
func totalOrderFinite(x, y *Float) bool {
	neg := x.neg // == y.neg
	xZ, yZ := x.IsZero(), y.IsZero()
	switch {
	case xZ && yZ:
		return true
	case xZ:
		return !neg
	case yZ:
		return neg
	}

	xInf, yInf := x.IsInf(), y.IsInf()
	switch {
	case xInf && yInf:
		return true
	case xInf:
		return neg
	case yInf:
		return !neg
	}

	c := x.ucmp(y)
	if neg {
		return c >= 0
	}
	return c <= 0
}

// TotalOrder implements the IEEE 754-2008 §5.10 totalOrder predicate:
// unlike Compare, it is a total order over every representable value
// including NaN and distinguishes -0 from +0. It reports whether x
// precedes y (or equals y) in that order. This is a supplemented
// feature (SPEC_FULL.md §4), grounded on MPFR's total_order.c, which in
// turn follows the IEEE predicate: negative-signed values (including
// -NaN) order before positive-signed ones (including +NaN), -0 strictly
// precedes +0, and same-sign finite/infinite values order by the usual
// magnitude rule (more negative first on the negative side). This core
// carries a single internal NaN representation, so same-sign NaNs
// compare equal to each other (there is no payload to break the tie).
func (x *Float) TotalOrder(y *Float) bool {
	xNaN, yNaN := x.IsNaN(), y.IsNaN()
	switch {
	case xNaN && yNaN:
		return x.Signbit() == y.Signbit() || x.Signbit()
	case xNaN:
		return x.Signbit()
	case yNaN:
		return !y.Signbit()
	default:
		if x.neg != y.neg {
			return x.neg
		}
		return totalOrderFinite(x, y)
	}
}

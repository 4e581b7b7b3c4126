// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limb

// This file provides the little-endian Word-slice primitives used by
// internal/nat: addition/subtraction with carry propagation, shifts, and
// the multiply-accumulate steps needed by schoolbook multiplication and
// division. All slices are little-endian (index 0 is the least
// significant limb), mirroring the teacher's arith.go vector routines
// (addVV_g, subVV_g, shlVU_g, shrVU_g, mulAddVWW_g, addMulVVW_g,
// divWVW_g) generalised off their 32/64-bit split and onto bits.Add64
// etc.

// AddVV sets z = x + y for equal-length x, y, z and returns the carry out.
func AddVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = AddWW(x[i], y[i], c)
	}
	return
}

// SubVV sets z = x - y for equal-length x, y, z and returns the borrow out.
func SubVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = SubWW(x[i], y[i], c)
	}
	return
}

// AddVW sets z = x + y, where y is a single limb added into the low end,
// and returns the carry out.
func AddVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = AddWW(x[i], c, 0)
	}
	return
}

// SubVW sets z = x - y, where y is a single limb subtracted at the low
// end, and returns the borrow out.
func SubVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = SubWW(x[i], c, 0)
	}
	return
}

// ShlVU sets z = x << s, 0 <= s < W, and returns the bits shifted out the
// top as a single limb (the "carry").
func ShlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(z)
	if n == 0 {
		return
	}
	sComp := W - s
	w1 := x[n-1]
	c = w1 >> sComp
	for i := n - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>sComp
	}
	z[0] = w1 << s
	return
}

// ShrVU sets z = x >> s, 0 <= s < W, and returns the bits shifted out the
// bottom, placed at the top of the returned limb.
func ShrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(z)
	if n == 0 {
		return
	}
	sComp := W - s
	w1 := x[0]
	c = w1 << sComp
	for i := 0; i < n-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<sComp
	}
	z[n-1] = w1 >> s
	return
}

// MulAddVWW sets z = x*y + r (r a single limb added into the low end) and
// returns the carry out.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return
}

// AddMulVVW sets z += x*y (y a single limb) and returns the carry out.
// z and x must have equal length.
func AddMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := MulAddWWW(x[i], y, z[i])
		c, z[i] = AddWW(z0, c, 0)
		c += z1
	}
	return
}

// DivWVW divides (xn:x) by y, storing the quotient in z (same length as
// x) and returning the remainder.
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = DivWW(r, x[i], y)
	}
	return
}

// CmpVV returns whether x < y and whether x != y, comparing equal-length
// slices most-significant limb first.
func CmpVV(x, y []Word) (lt, ne Word) {
	for i := len(x) - 1; i >= 0; i-- {
		xi, yi := x[i], y[i]
		if xi != yi {
			ne = 1
			if xi < yi {
				lt = 1
			}
			return
		}
	}
	return
}

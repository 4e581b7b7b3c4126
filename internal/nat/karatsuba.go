// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nat

import "github.com/mpfloat/mpfloat/internal/limb"

// karatsubaMul multiplies x and y (len(x) >= len(y) >= karatsubaThreshold)
// using the Karatsuba algorithm, falling back to schoolbook multiplication
// for the low-order split and for any high-order remainder. Grounded on
// math/big's nat.mul / karatsuba (vartime path only — this engine has no
// constant-time requirement, so the zcap-threading machinery of the
// reference implementation is dropped).
func (z Nat) karatsubaMul(x, y Nat) Nat {
	m, n := len(x), len(y)
	k := karatsubaLen(n)

	x0, y0 := x[:k], y[:k]
	work := z.make(max6(k, m+n))
	karatsuba(work, x0.Norm(), y0.Norm())
	full := work[:m+n]
	for i := 2 * k; i < len(full); i++ {
		full[i] = 0
	}

	if k < n || m != n {
		var t Nat
		y1 := y[k:]
		y0n := y0.Norm()
		t = t.Mul(x0.Norm(), y1)
		addAt(full, t, k)

		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xi = xi.Norm()
			t = t.Mul(xi, y0n)
			addAt(full, t, i)
			t = t.Mul(xi, y1)
			addAt(full, t, i+k)
		}
	}
	return full.Norm()
}

// karatsubaLen computes the largest k <= n of the form p*2^i (p <=
// karatsubaThreshold) — the split point used recursively.
func karatsubaLen(n int) int {
	i := uint(0)
	for n > karatsubaThreshold {
		n >>= 1
		i++
	}
	return n << i
}

func max6(k, mn int) int {
	if 6*k > mn {
		return 6 * k
	}
	return mn
}

// karatsuba multiplies equal-length x, y (length a power-of-two multiple
// of some p <= karatsubaThreshold) into z[0:2*len(y)], using z as scratch
// for the recursive sub-products.
func karatsuba(z, x, y Nat) {
	n := len(y)
	if n&1 != 0 || n < karatsubaThreshold || n < 2 {
		basicMul(z, x, y)
		return
	}

	n2 := n >> 1
	x1, x0 := x[n2:], x[:n2]
	y1, y0 := y[n2:], y[:n2]

	karatsuba(z, x0, y0)
	karatsuba(z[n:], x1, y1)

	neg := Word(0)
	xd := z[2*n : 2*n+n2]
	c := limb.SubVV(xd, x1, x0)
	if c != 0 {
		limb.SubVV(xd, x0, x1)
	}
	neg ^= c

	yd := z[2*n+n2 : 3*n]
	c = limb.SubVV(yd, y0, y1)
	if c != 0 {
		limb.SubVV(yd, y1, y0)
	}
	neg ^= c

	p := z[3*n:]
	karatsuba(p, xd, yd)

	r := z[4*n:]
	copy(r, z[:2*n])

	zn2 := z[n2 : 2*n]
	karatsubaAdd(zn2, r, n)
	karatsubaAdd(zn2, r[n:], n)
	if neg == 0 {
		karatsubaAdd(zn2, p, n)
	} else {
		karatsubaSub(zn2, p, n)
	}
}

func karatsubaAdd(z, x Nat, n int) {
	if c := limb.AddVV(z[:n], z, x); c != 0 {
		limb.AddVW(z[n:n+n>>1], z[n:], c)
	}
}

func karatsubaSub(z, x Nat, n int) {
	if c := limb.SubVV(z[:n], z, x); c != 0 {
		limb.SubVW(z[n:n+n>>1], z[n:], c)
	}
}

// addAt implements z += x<<(W*i), in place, without normalizing.
func addAt(z, x Nat, i int) {
	n := len(x)
	if n == 0 {
		return
	}
	if c := limb.AddVV(z[i:i+n], z[i:], x); c != 0 {
		j := i + n
		if j < len(z) {
			limb.AddVW(z[j:], z[j:], c)
		}
	}
}

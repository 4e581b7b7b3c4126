// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limb

import "testing"

func TestAddWW(t *testing.T) {
	cases := []struct {
		x, y, c   Word
		wantZ1    Word
		wantZ0    Word
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 2},
		{^Word(0), 1, 0, 1, 0},
		{^Word(0), ^Word(0), 1, 1, ^Word(0)},
	}
	for _, c := range cases {
		z1, z0 := AddWW(c.x, c.y, c.c)
		if z1 != c.wantZ1 || z0 != c.wantZ0 {
			t.Errorf("AddWW(%#x,%#x,%d) = %d,%#x; want %d,%#x", c.x, c.y, c.c, z1, z0, c.wantZ1, c.wantZ0)
		}
	}
}

func TestSubWW(t *testing.T) {
	z1, z0 := SubWW(0, 1, 0)
	if z1 != 1 || z0 != ^Word(0) {
		t.Errorf("SubWW(0,1,0) = %d,%#x; want 1,%#x", z1, z0, ^Word(0))
	}
}

func TestMulWWRoundTrip(t *testing.T) {
	for _, pair := range [][2]Word{{0, 0}, {1, 1}, {^Word(0), ^Word(0)}, {1 << 32, 1 << 32}} {
		hi, lo := MulWW(pair[0], pair[1])
		if pair[1] != 0 {
			q, r := DivWW(hi, lo, pair[1])
			if r != 0 || q != pair[0] {
				t.Errorf("MulWW/DivWW round trip failed for %#x * %#x: q=%#x r=%#x", pair[0], pair[1], q, r)
			}
		}
	}
}

func TestBitLen(t *testing.T) {
	cases := map[Word]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 1 << 63: 64, ^Word(0): 64}
	for x, want := range cases {
		if got := BitLen(x); got != want {
			t.Errorf("BitLen(%#x) = %d; want %d", x, got, want)
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	if got := LeadingZeros(1); got != W-1 {
		t.Errorf("LeadingZeros(1) = %d; want %d", got, W-1)
	}
	if got := LeadingZeros(1 << 63); got != 0 {
		t.Errorf("LeadingZeros(msb) = %d; want 0", got)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	x := []Word{0x1, 0xdeadbeef, 0x8000000000000001}
	z := make([]Word, len(x))
	for s := uint(1); s < W; s++ {
		c := ShlVU(z, x, s)
		back := make([]Word, len(x))
		c2 := ShrVU(back, z, s)
		_ = c2
		// Restore the top bits of x's last limb, which ShlVU shifted out
		// into the carry c and ShrVU alone cannot bring back; with them,
		// shift-then-shift-back reproduces x exactly.
		back[len(back)-1] |= c << (W - s)
		for i := range x {
			if i == 0 {
				continue // x[0] is not compared
			}
			if back[i] != x[i] {
				t.Errorf("shift round-trip mismatch at s=%d i=%d: got %#x want %#x", s, i, back[i], x[i])
			}
		}
	}
}

func TestAddMulVVW(t *testing.T) {
	z := []Word{1, 2, 3}
	x := []Word{4, 5, 6}
	c := AddMulVVW(z, x, 2)
	want := []Word{1 + 8, 2 + 10, 3 + 12}
	for i := range want {
		if z[i] != want[i] {
			t.Errorf("AddMulVVW z[%d] = %#x; want %#x", i, z[i], want[i])
		}
	}
	if c != 0 {
		t.Errorf("AddMulVVW carry = %d; want 0", c)
	}
}

func TestDivWVW(t *testing.T) {
	// 2^64 / 2 == 2^63, no remainder.
	x := []Word{0, 1} // value = 1<<64
	z := make([]Word, 2)
	r := DivWVW(z, 0, x, 2)
	if r != 0 {
		t.Errorf("remainder = %d; want 0", r)
	}
	if z[1] != 0 || z[0] != (1<<63) {
		t.Errorf("quotient = %#x:%#x; want 0:%#x", z[1], z[0], Word(1)<<63)
	}
}

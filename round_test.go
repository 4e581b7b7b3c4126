// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/mpfloat/mpfloat/internal/limb"
	"github.com/mpfloat/mpfloat/internal/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkNat builds a normalized Nat of bitLen bits from a big.Int-free
// literal pattern: bits is a string of '0'/'1' read most-significant
// bit first, left-padded internally to a limb boundary.
func mkNat(bits string) (nat.Nat, int) {
	n := (len(bits) + int(limb.W) - 1) / int(limb.W)
	v := make(nat.Nat, n)
	for i, c := range bits {
		if c != '1' {
			continue
		}
		pos := uint(len(bits) - 1 - i)
		v[pos/limb.W] |= 1 << (pos % limb.W)
	}
	return v, len(bits)
}

func TestRoundRawExactNoRounding(t *testing.T) {
	s, sp := mkNat("1011000000000000000000000000000000000000000000000000000000000000")
	out, ternary, carry := roundRaw(s, sp, 4, ToNearestEven, false)
	require.False(t, carry)
	assert.Equal(t, 0, ternary)
	assert.Equal(t, uint(1), out.Bit(uint(len(out))*limb.W-1))
	_ = out
}

func TestRoundRawTiesToEven(t *testing.T) {
	// mantissa 1010|1000... : round bit=1, sticky=0, retained lsb=0 -> even,
	// no increment, but the discarded round bit still makes the result
	// inexact (ternary is negative: the truncated value is below exact).
	s, sp := mkNat("10101000")
	out, ternary, carry := roundRaw(s, sp, 4, ToNearestEven, false)
	require.False(t, carry)
	assert.Equal(t, -1, ternary)
	top := out.Shr(out, uint(len(out))*limb.W-4)
	assert.Equal(t, nat.Nat{0b1010}, top.Norm())

	// mantissa 1011|1000... : round bit=1, sticky=0, retained lsb=1 -> round up to 1100.
	s2, sp2 := mkNat("10111000")
	out2, ternary2, carry2 := roundRaw(s2, sp2, 4, ToNearestEven, false)
	require.False(t, carry2)
	assert.Equal(t, 1, ternary2)
	top2 := out2.Shr(out2, uint(len(out2))*limb.W-4)
	assert.Equal(t, nat.Nat{0b1100}, top2.Norm())
}

func TestRoundRawToZeroTruncates(t *testing.T) {
	s, sp := mkNat("11111111")
	out, ternary, carry := roundRaw(s, sp, 4, ToZero, false)
	require.False(t, carry)
	assert.Equal(t, -1, ternary)
	top := out.Shr(out, uint(len(out))*limb.W-4)
	assert.Equal(t, nat.Nat{0b1111}, top.Norm())
}

func TestRoundRawAwayFromZero(t *testing.T) {
	s, sp := mkNat("10111001")
	out, ternary, carry := roundRaw(s, sp, 4, AwayFromZero, false)
	require.False(t, carry)
	assert.Equal(t, 1, ternary)
	top := out.Shr(out, uint(len(out))*limb.W-4)
	assert.Equal(t, nat.Nat{0b1100}, top.Norm())
}

func TestRoundRawCarryOverflowsIntoExtraBit(t *testing.T) {
	// All ones rounded up carries out: 1111 + 1 = 10000, which must be
	// reported via carry=true and a renormalized 1000 mantissa.
	s, sp := mkNat("11111001")
	out, ternary, carry := roundRaw(s, sp, 4, ToNearestEven, false)
	require.True(t, carry)
	assert.Equal(t, 1, ternary)
	top := out.Shr(out, uint(len(out))*limb.W-4)
	assert.Equal(t, nat.Nat{0b1000}, top.Norm())
}

func TestRoundRawDirectedModesRespectSign(t *testing.T) {
	// ToPositiveInf always rounds toward +Inf, so the result is never
	// below the exact value regardless of sign: ternary is never negative.
	s, sp := mkNat("10101000")
	_, posTernary, _ := roundRaw(s, sp, 4, ToPositiveInf, false)
	_, negTernary, _ := roundRaw(s, sp, 4, ToPositiveInf, true)
	assert.Equal(t, 1, posTernary)
	assert.Equal(t, 1, negTernary)
}

func TestRoundRawNoOpWhenAlreadyAtTargetPrecision(t *testing.T) {
	s, sp := mkNat("1010000000000000000000000000000000000000000000000000000000000000")
	out, ternary, carry := roundRaw(s, sp, uint(sp), ToNearestEven, false)
	require.False(t, carry)
	assert.Equal(t, 0, ternary)

	// pp >= sp takes the direct packMantissa(s, p) path, which
	// left-aligns s to the output's top-bit-set convention; shifting
	// back down by the padding recovers the original right-aligned
	// value s was built with.
	n := limbsForPrec(uint(sp))
	pad := uint(n)*limb.W - uint(sp)
	var back nat.Nat
	back = back.Shr(out, pad)
	assert.Equal(t, s.Norm(), back.Norm())
}

func TestPackMantissaPadsTrailingBits(t *testing.T) {
	v := nat.Nat{0b1010}
	out := packMantissa(v, 4)
	n := limbsForPrec(4)
	require.Len(t, out, n)
	pad := uint(n)*limb.W - 4
	assert.Zero(t, out[0]&((1<<pad)-1))
}

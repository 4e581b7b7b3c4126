// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtExactPerfectSquare(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, 9), new(Float).Init(53)

	ternary := c.Sqrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 0, ternary)
	assert.Equal(t, 3.0, got)
}

func TestSqrtExactPowerOfTwo(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, 64), new(Float).Init(53)

	c.Sqrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 8.0, got)
}

func TestSqrtInexactIsBracketedCorrectly(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, 2), new(Float).Init(53)

	ternary := c.Sqrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.NotEqual(t, 0, ternary)
	assert.InDelta(t, 1.4142135623730951, got, 1e-15)
}

func TestSqrtNegativeIsNaN(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, -4), new(Float).Init(53)

	c.Sqrt(z, x, ToNearestEven)
	assert.True(t, z.IsNaN())
	assert.True(t, c.Flags().Has(NaNFlag))
}

func TestSqrtNegativeZeroStaysNegativeZero(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	negZero := setF(t, c, 0)
	negZero.SetSign(true)
	z := new(Float).Init(53)

	c.Sqrt(z, negZero, ToNearestEven)
	assert.True(t, z.IsZero())
	assert.True(t, z.Signbit())
}

func TestSqrtOfInfinity(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	inf := new(Float).Init(53)
	inf.SetInf(false)
	z := new(Float).Init(53)

	c.Sqrt(z, inf, ToNearestEven)
	assert.True(t, z.IsInf())
	assert.False(t, z.Signbit())
}

func TestSqrtOddBitLengthRadicand(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	// 5 has an odd point-right exponent (3 - 64 = -61) relative to 1-limb alignment;
	// exercises the parity-fix branch before the main Newton loop.
	x, z := setF(t, c, 5), new(Float).Init(53)

	c.Sqrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.InDelta(t, 2.23606797749979, got, 1e-14)
}

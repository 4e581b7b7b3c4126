// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCbrtExactPerfectCube(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, 27), new(Float).Init(53)

	ternary := c.Cbrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 0, ternary)
	assert.Equal(t, 3.0, got)
}

func TestCbrtNegativeIsOddFunction(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, -8), new(Float).Init(53)

	c.Cbrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, -2.0, got)
}

func TestCbrtInexact(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, z := setF(t, c, 2), new(Float).Init(53)

	ternary := c.Cbrt(z, x, ToNearestEven)
	got, _ := z.Float64()
	assert.NotEqual(t, 0, ternary)
	assert.InDelta(t, 1.2599210498948732, got, 1e-14)
}

func TestCbrtZeroPreservesSign(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	negZero := setF(t, c, 0)
	negZero.SetSign(true)
	z := new(Float).Init(53)

	c.Cbrt(z, negZero, ToNearestEven)
	assert.True(t, z.IsZero())
	assert.True(t, z.Signbit())
}

func TestCbrtInfinityPreservesSign(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	negInf := new(Float).Init(53)
	negInf.SetInf(true)
	z := new(Float).Init(53)

	c.Cbrt(z, negInf, ToNearestEven)
	assert.True(t, z.IsInf())
	assert.True(t, z.Signbit())
}

func TestCbrtNaN(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	nan := new(Float).Init(53)
	nan.SetNaN()
	z := new(Float).Init(53)

	c.Cbrt(z, nan, ToNearestEven)
	assert.True(t, z.IsNaN())
	assert.True(t, c.Flags().Has(NaNFlag))
}

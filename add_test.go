// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExactSameSign(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 1), setF(t, c, 2), new(Float).Init(53)

	ternary := c.Add(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 0, ternary)
	assert.Equal(t, 3.0, got)
}

func TestAddOppositeSignsCancel(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 5), setF(t, c, -5), new(Float).Init(53)

	ternary := c.Add(z, x, y, ToNearestEven)
	assert.Equal(t, 0, ternary)
	assert.True(t, z.IsZero())
	assert.False(t, z.Signbit())
}

func TestAddDifferentMagnitudesAligns(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 1), setF(t, c, 0.0009765625 /* 2^-10 */), new(Float).Init(53)

	c.Add(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.InDelta(t, 1.0009765625, got, 1e-12)
}

func TestSubIsAddOfNegation(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 3), setF(t, c, 1), new(Float).Init(53)

	c.Sub(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 2.0, got)
}

func TestAddWithInfinityAndZero(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	posInf := new(Float).Init(53)
	posInf.SetInf(false)
	zero := setF(t, c, 0)
	z := new(Float).Init(53)

	c.Add(z, posInf, zero, ToNearestEven)
	assert.True(t, z.IsInf())
	assert.False(t, z.Signbit())
}

func TestAddOppositeInfinitiesIsNaN(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	posInf := new(Float).Init(53)
	posInf.SetInf(false)
	negInf := new(Float).Init(53)
	negInf.SetInf(true)
	z := new(Float).Init(53)

	c.Add(z, posInf, negInf, ToNearestEven)
	assert.True(t, z.IsNaN())
	assert.True(t, c.Flags().Has(NaNFlag))
}

func TestAddRoundsAtTargetPrecision(t *testing.T) {
	c, err := NewContext(4)
	require.NoError(t, err)
	// 1 + 2^-10: at 4 bits of precision the tiny term is entirely
	// rounded away, so the sum must come back exactly 1 with a
	// non-zero (inexact) ternary value.
	x := new(Float).Init(4)
	c.SetUint64(x, 1, ToNearestEven)
	y := new(Float).Init(53)
	wide, err := NewContext(53)
	require.NoError(t, err)
	wide.SetFloat64(y, 0.0009765625, ToNearestEven)
	z := new(Float).Init(4)

	ternary := c.Add(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 1.0, got)
	assert.NotEqual(t, 0, ternary)
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivExact(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 12), setF(t, c, 4), new(Float).Init(53)

	ternary := c.Div(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, 0, ternary)
	assert.Equal(t, 3.0, got)
}

func TestDivInexactSetsTernary(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 1), setF(t, c, 3), new(Float).Init(53)

	ternary := c.Div(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.NotEqual(t, 0, ternary)
	assert.InDelta(t, 1.0/3.0, got, 1e-15)
}

func TestDivByZeroSetsFlagAndInfinity(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 1), setF(t, c, 0), new(Float).Init(53)

	c.Div(z, x, y, ToNearestEven)
	assert.True(t, z.IsInf())
	assert.False(t, z.Signbit())
	assert.True(t, c.Flags().Has(DivByZero))
}

func TestDivZeroByZeroIsNaN(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, 0), setF(t, c, 0), new(Float).Init(53)

	c.Div(z, x, y, ToNearestEven)
	assert.True(t, z.IsNaN())
	assert.True(t, c.Flags().Has(NaNFlag))
}

func TestDivSignRules(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	x, y, z := setF(t, c, -12), setF(t, c, 4), new(Float).Init(53)

	c.Div(z, x, y, ToNearestEven)
	got, _ := z.Float64()
	assert.Equal(t, -3.0, got)
}

func TestDivInfinityByFinite(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	inf := new(Float).Init(53)
	inf.SetInf(false)
	y, z := setF(t, c, -2), new(Float).Init(53)

	c.Div(z, inf, y, ToNearestEven)
	assert.True(t, z.IsInf())
	assert.True(t, z.Signbit())
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setF(t *testing.T, c *Context, v float64) *Float {
	t.Helper()
	z := new(Float).Init(c.Precision)
	c.SetFloat64(z, v, ToNearestEven)
	return z
}

func TestCompareOrdering(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)

	one := setF(t, c, 1)
	two := setF(t, c, 2)
	negOne := setF(t, c, -1)
	posZero := setF(t, c, 0)
	negZero := setF(t, c, 0)
	negZero.SetSign(true)

	assert.Equal(t, -1, c.Compare(one, two))
	assert.Equal(t, 1, c.Compare(two, one))
	assert.Equal(t, 0, c.Compare(one, one))
	assert.Equal(t, -1, c.Compare(negOne, one))
	assert.Equal(t, 0, c.Compare(posZero, negZero), "Compare treats -0 == +0")
}

func TestCompareWithInfinities(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	posInf := new(Float).Init(53)
	posInf.SetInf(false)
	negInf := new(Float).Init(53)
	negInf.SetInf(true)
	one := setF(t, c, 1)

	assert.Equal(t, 1, c.Compare(posInf, one))
	assert.Equal(t, -1, c.Compare(negInf, one))
	assert.Equal(t, -1, c.Compare(one, posInf))
	assert.Equal(t, 0, c.Compare(posInf, posInf))
	assert.Equal(t, -1, c.Compare(negInf, posInf))
}

func TestCompareWithNaNSetsFlag(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	nan := new(Float).Init(53)
	nan.SetNaN()
	one := setF(t, c, 1)

	got := c.Compare(nan, one)
	assert.Equal(t, 0, got)
	assert.True(t, c.Flags().Has(NaNFlag))
}

func TestCompareAbsIgnoresSign(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	negTwo := setF(t, c, -2)
	one := setF(t, c, 1)
	assert.Equal(t, 1, c.CompareAbs(negTwo, one))
	assert.Equal(t, -1, c.CompareAbs(one, negTwo))
}

func TestTotalOrderDistinguishesSignedZero(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	posZero := setF(t, c, 0)
	negZero := setF(t, c, 0)
	negZero.SetSign(true)

	assert.True(t, negZero.TotalOrder(posZero))
	assert.False(t, posZero.TotalOrder(negZero))
	assert.True(t, posZero.TotalOrder(posZero))
}

func TestTotalOrderPlacesNaNAtTheExtremes(t *testing.T) {
	negNaN := new(Float).Init(53)
	negNaN.SetNaN()
	negNaN.SetSign(true)
	posNaN := new(Float).Init(53)
	posNaN.SetNaN()

	c, err := NewContext(53)
	require.NoError(t, err)
	one := setF(t, c, 1)
	negOne := setF(t, c, -1)

	assert.True(t, negNaN.TotalOrder(negOne))
	assert.True(t, negNaN.TotalOrder(posNaN))
	assert.False(t, posNaN.TotalOrder(one))
	assert.True(t, one.TotalOrder(posNaN))
}

func TestTotalOrderOrdersNegativesByDescendingMagnitude(t *testing.T) {
	c, err := NewContext(53)
	require.NoError(t, err)
	negTwo := setF(t, c, -2)
	negOne := setF(t, c, -1)
	assert.True(t, negTwo.TotalOrder(negOne))
	assert.False(t, negOne.TotalOrder(negTwo))
}

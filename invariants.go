// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/mpfloat/mpfloat/internal/limb"

// validate checks the invariants spec §3.3 requires of a regular datum:
// the mantissa occupies exactly ceil(prec/W) limbs, its top bit is set,
// and its low (ceil(prec/W)*W - prec) bits are zero. It is only ever
// called when mpfloatDebug is true, the same gate the teacher's own
// debugFloat-style assertions use in math/big/float.go.
func (z *Float) validate() {
	if z.kind != kindRegular {
		return
	}
	n := limbsForPrec(z.prec)
	if len(z.mant) != n {
		panic("mpfloat: invariant violated: mantissa has wrong limb count")
	}
	if n > 0 && z.mant[n-1]>>(limb.W-1) == 0 {
		panic("mpfloat: invariant violated: mantissa not normalized (msb clear)")
	}
	pad := uint(n)*limb.W - z.prec
	if pad > 0 && z.mant[0]&(1<<pad-1) != 0 {
		panic("mpfloat: invariant violated: trailing mantissa bits not zero")
	}
}

// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import (
	"fmt"
	"strings"

	"github.com/mpfloat/mpfloat/internal/limb"
)

// DebugString returns z in an unspecified, human-readable debug format
// for use in tests and diagnostics — not a parseable or stable output
// format (the format may change without notice). Grounded on MPFR's
// mpfr_dump/mpfr_fprint_binary (original_source/src/dump.c): a leading
// sign, then @NaN@/@Inf@/0 for the non-regular cases, or "0." followed
// by the mantissa's significant bits (most significant first, exactly
// z.Precision() of them, independent of the limb-aligned zero-padding
// Float.mant actually stores them in) and "E" followed by the exponent
// GetExp reports. This lets a reader see precisely which bits rounding
// kept, the same purpose mpfr_dump serves for MPFR's own test suite.
func (z *Float) DebugString() string {
	var b strings.Builder

	if z.IsNaN() {
		return "@NaN@"
	}
	if z.neg {
		b.WriteByte('-')
	}

	switch {
	case z.IsInf():
		b.WriteString("@Inf@")
	case z.IsZero():
		b.WriteByte('0')
	default:
		b.WriteString("0.")
		total := uint(len(z.mant)) * limb.W
		for i := uint(0); i < z.prec; i++ {
			if z.mant.Bit(total-1-i) == 0 {
				b.WriteByte('0')
			} else {
				b.WriteByte('1')
			}
		}
		fmt.Fprintf(&b, "E%d", z.GetExp())
	}

	return b.String()
}

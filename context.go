// Copyright 2024 The Mpfloat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfloat

import "github.com/pkg/errors"

// RoundingMode determines how an over-precise intermediate mantissa is
// rounded into a destination of fixed precision. The names and ordering
// follow IEEE 754-2008 §4.3 where an equivalent exists.
type RoundingMode uint8

const (
	ToNearestEven RoundingMode = iota // roundTiesToEven
	ToZero                            // roundTowardZero
	ToPositiveInf                     // roundTowardPositive
	ToNegativeInf                     // roundTowardNegative
	AwayFromZero                      // no IEEE 754-2008 equivalent
	Faithful                          // either nearest representable value is acceptable
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToZero:
		return "ToZero"
	case ToPositiveInf:
		return "ToPositiveInf"
	case ToNegativeInf:
		return "ToNegativeInf"
	case AwayFromZero:
		return "AwayFromZero"
	case Faithful:
		return "Faithful"
	default:
		return "RoundingMode(invalid)"
	}
}

// Default exponent range extrema, ±2^30. A regular Float's exponent field
// is a Go int, so these bounds leave headroom for the temporary widening
// of §5.4 and for exponent arithmetic on values inside the range.
const (
	MinExponent = -(1 << 30)
	MaxExponent = (1 << 30) - 1
)

// Context threads the thread-local configuration spec §5.3 requires
// (precision, rounding mode, exponent range, sticky flags) through an
// explicit receiver rather than goroutine-local storage, which Go has
// none of. Every elementary operation is a method on *Context; the method
// mutates a destination Float, accumulates flags into c.flags, and
// returns the ternary value and nothing else. Go errors come only from
// NewContext and NewContextRange (zero precision, or emin > emax).
type Context struct {
	Precision uint
	Rounding  RoundingMode
	MinExp    int
	MaxExp    int

	// Traps is read only by raise, which reports a trapped flag as an
	// error. No operation in this package calls raise, so setting Traps
	// changes no result, return value or flag: operations return only the
	// ternary value and record flags silently.
	Traps Flags

	flags Flags
}

// DefaultContext gives zero-configuration callers 53-bit double-like
// behaviour, mirroring math/big.Float's zero value being ready to use.
var DefaultContext = &Context{
	Precision: 53,
	Rounding:  ToNearestEven,
	MinExp:    MinExponent,
	MaxExp:    MaxExponent,
}

// NewContext returns a Context at the given precision with
// ToNearestEven rounding and the default exponent range.
func NewContext(precision uint) (*Context, error) {
	if precision == 0 {
		return nil, errors.New("mpfloat: NewContext: precision must be positive")
	}
	return &Context{
		Precision: precision,
		Rounding:  ToNearestEven,
		MinExp:    MinExponent,
		MaxExp:    MaxExponent,
	}, nil
}

// WithPrecision returns a copy of c with Precision replaced by p,
// mirroring apd.Context's method of the same name.
func (c *Context) WithPrecision(p uint) *Context {
	r := *c
	r.Precision = p
	return &r
}

// WithRounding returns a copy of c with Rounding replaced by m.
func (c *Context) WithRounding(m RoundingMode) *Context {
	r := *c
	r.Rounding = m
	return &r
}

// validateExponentRange reports an error if emin > emax, the one
// construction-time mistake check_range cannot recover from as a sticky
// flag because it would have no sensible range to clamp into.
func validateExponentRange(emin, emax int) error {
	if emin > emax {
		return errors.Errorf("mpfloat: invalid exponent range: emin %d > emax %d", emin, emax)
	}
	return nil
}

// NewContextRange returns a Context with an explicit exponent range.
func NewContextRange(precision uint, emin, emax int) (*Context, error) {
	if precision == 0 {
		return nil, errors.New("mpfloat: NewContextRange: precision must be positive")
	}
	if err := validateExponentRange(emin, emax); err != nil {
		return nil, errors.Wrap(err, "NewContextRange")
	}
	return &Context{
		Precision: precision,
		Rounding:  ToNearestEven,
		MinExp:    emin,
		MaxExp:    emax,
	}, nil
}

// Flags returns the sticky status flags accumulated since the last
// ClearFlags.
func (c *Context) Flags() Flags { return c.flags }

// SetFlags ORs f into the sticky status flags.
func (c *Context) SetFlags(f Flags) { c.flags |= f }

// ClearFlags resets the sticky status flags to none.
func (c *Context) ClearFlags() { c.flags = 0 }

// raise ORs f into the accumulated flags and, for any bit of f that is
// also set in c.Traps, returns a non-nil error describing the trapped
// condition. Arithmetic results themselves are never invalidated by a
// trapped flag; the caller decides whether to propagate the error.
func (c *Context) raise(f Flags, op string) error {
	c.flags |= f
	if c.Traps&f != 0 {
		return errors.Errorf("mpfloat: %s: trapped flags %s", op, (f & c.Traps).String())
	}
	return nil
}

// widenRange temporarily sets emin/emax to their extrema for the
// duration of a compound or transcendental operation's inner iterations
// (spec §5.4), returning a restore function that puts the saved range
// back and folds any flags raised in between into c.flags (which already
// happened via raise/SetFlags — restore only needs to reinstate the
// range). The returned function must be called on every exit path,
// typically via defer.
func (c *Context) widenRange() func() {
	savedMin, savedMax := c.MinExp, c.MaxExp
	c.MinExp, c.MaxExp = MinExponent, MaxExponent
	return func() {
		c.MinExp, c.MaxExp = savedMin, savedMax
	}
}

package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// finish normalizes the raw result of an operation to the type t and
// describes the operation in the error, if any.
func (c Context) finish(r apd.Decimal, t Type, format string, args ...any) (Decimal, error) {
	d, err := c.normalize(r, t)
	if err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("computing [%v] as %v: %w", fmt.Sprintf(format, args...), t, err))
	}
	return d, nil
}

// Add returns the (possibly rounded) sum of d and e as a value of type t.
func (c Context) Add(d, e Decimal, t Type) (Decimal, error) {
	r, c := c.binary((*apd.Context).Add, &d.v, &e.v)
	return c.finish(r, t, "%v + %v", d, e)
}

// Sub returns the (possibly rounded) difference of d and e as a value of type t.
func (c Context) Sub(d, e Decimal, t Type) (Decimal, error) {
	r, c := c.binary((*apd.Context).Sub, &d.v, &e.v)
	return c.finish(r, t, "%v - %v", d, e)
}

// Mul returns the (possibly rounded) product of d and e as a value of type t.
func (c Context) Mul(d, e Decimal, t Type) (Decimal, error) {
	r, c := c.binary((*apd.Context).Mul, &d.v, &e.v)
	return c.finish(r, t, "%v * %v", d, e)
}

// Quo returns the (possibly rounded) quotient of d and e as a value of type t.
//
// Quo returns error:
//   - [DivisionByZero], if e is 0 and d is not.
//   - [DivisionUndefined], if both d and e are 0.
//   - [Overflow], if the quotient does not fit t.
func (c Context) Quo(d, e Decimal, t Type) (Decimal, error) {
	r, c := c.binary((*apd.Context).Quo, &d.v, &e.v)
	return c.finish(r, t, "%v / %v", d, e)
}

// QuoInteger returns the integer part of the quotient of d and e, truncated
// toward zero, as a value of type t.
// It returns [DivisionImpossible] if the integer part has more than
// [MaxPrec] digits.
func (c Context) QuoInteger(d, e Decimal, t Type) (Decimal, error) {
	r, c := c.binary((*apd.Context).QuoInteger, &d.v, &e.v)
	return c.finish(r, t, "%v div %v", d, e)
}

// Rem returns the remainder of the truncated division of d and e as a value
// of type t.
// The remainder has the sign of d.
func (c Context) Rem(d, e Decimal, t Type) (Decimal, error) {
	r, c := c.binary((*apd.Context).Rem, &d.v, &e.v)
	return c.finish(r, t, "%v mod %v", d, e)
}

// Abs returns the absolute value of d as a value of type t.
func (c Context) Abs(d Decimal, t Type) (Decimal, error) {
	r, c := c.unary((*apd.Context).Abs, &d.v)
	return c.finish(r, t, "|%v|", d)
}

// Neg returns d with the opposite sign as a value of type t.
func (c Context) Neg(d Decimal, t Type) (Decimal, error) {
	r, c := c.unary((*apd.Context).Neg, &d.v)
	return c.finish(r, t, "-%v", d)
}

// Min returns the lesser of d and e as a value of type t.
// If exactly one of them is NaN, the other one is returned.
func (c Context) Min(d, e Decimal, t Type) (Decimal, error) {
	return c.finish(extremum(d, e, -1), t, "min(%v, %v)", d, e)
}

// Max returns the greater of d and e as a value of type t.
// If exactly one of them is NaN, the other one is returned.
func (c Context) Max(d, e Decimal, t Type) (Decimal, error) {
	return c.finish(extremum(d, e, 1), t, "max(%v, %v)", d, e)
}

// extremum returns the greater operand if sign > 0 and the lesser one
// otherwise, ignoring a single NaN.
func extremum(d, e Decimal, sign int) apd.Decimal {
	var r apd.Decimal
	switch {
	case e.IsNaN():
		r.Set(&d.v)
	case d.IsNaN():
		r.Set(&e.v)
	case d.Cmp(e)*sign >= 0:
		r.Set(&d.v)
	default:
		r.Set(&e.v)
	}
	return r
}

// Pow returns d raised to the power of e as a value of type t.
// 0 raised to the power of 0 is 1.
//
// Pow returns error:
//   - [InvalidOperation], if d is negative and e is not an integer.
//   - [InfiniteResult], if d is 0 and e is negative.
//   - [Overflow], if the power does not fit t.
func (c Context) Pow(d, e Decimal, t Type) (Decimal, error) {
	var r apd.Decimal
	if d.IsZero() && e.IsZero() {
		r.SetInt64(1)
	} else {
		r, c = c.binary((*apd.Context).Pow, &d.v, &e.v)
	}
	return c.finish(r, t, "%v ** %v", d, e)
}

// Sign returns -1, 0 or 1, depending on the sign of d, as a value of type t.
// Unlike other operations, it fails for infinities and NaN before computing
// anything.
func (c Context) Sign(d Decimal, t Type) (Decimal, error) {
	if err := d.finite(); err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("computing [sign(%v)]: %w", d, err))
	}
	var r apd.Decimal
	switch {
	case d.IsZero():
	case d.v.Negative:
		r.SetInt64(-1)
	default:
		r.SetInt64(1)
	}
	return c.finish(r, t, "sign(%v)", d)
}

// Ceil returns the smallest integer greater than or equal to d as a value of
// type t.
func (c Context) Ceil(d Decimal, t Type) (Decimal, error) {
	r, c := c.integral(Ceiling, &d.v)
	return c.finish(r, t, "ceil(%v)", d)
}

// Floor returns the largest integer less than or equal to d as a value of
// type t.
func (c Context) Floor(d Decimal, t Type) (Decimal, error) {
	r, c := c.integral(Floor, &d.v)
	return c.finish(r, t, "floor(%v)", d)
}

// integral rounds x to an integer in the given direction.
// The rounding mode of the returned context is the one of c.
func (c Context) integral(mode Rounding, x *apd.Decimal) (apd.Decimal, Context) {
	rounding := c.Rounding
	c.Rounding = mode
	r, c := c.unary((*apd.Context).RoundToIntegralValue, x)
	c.Rounding = rounding
	return r, c
}

// Rescale returns a copy of d as a value of type t.
// Fractional digits beyond t.Scale() are rounded.
func (c Context) Rescale(d Decimal, t Type) (Decimal, error) {
	var r apd.Decimal
	r.Set(&d.v)
	return c.finish(r, t, "%v", d)
}

// Add returns the (possibly rounded) sum of d and e as a value of type t.
// Also see method [Context.Add].
func (d Decimal) Add(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Add(d, e, t)
}

// Sub returns the (possibly rounded) difference of d and e as a value of type t.
// Also see method [Context.Sub].
func (d Decimal) Sub(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Sub(d, e, t)
}

// Mul returns the (possibly rounded) product of d and e as a value of type t.
// Also see method [Context.Mul].
func (d Decimal) Mul(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Mul(d, e, t)
}

// Quo returns the (possibly rounded) quotient of d and e as a value of type t.
// Also see method [Context.Quo].
func (d Decimal) Quo(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Quo(d, e, t)
}

// QuoInteger returns the truncated quotient of d and e as a value of type t.
// Also see method [Context.QuoInteger].
func (d Decimal) QuoInteger(e Decimal, t Type) (Decimal, error) {
	return defaultContext.QuoInteger(d, e, t)
}

// Rem returns the remainder of d and e as a value of type t.
// Also see method [Context.Rem].
func (d Decimal) Rem(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Rem(d, e, t)
}

// Abs returns the absolute value of d as a value of type t.
func (d Decimal) Abs(t Type) (Decimal, error) {
	return defaultContext.Abs(d, t)
}

// Neg returns d with the opposite sign as a value of type t.
func (d Decimal) Neg(t Type) (Decimal, error) {
	return defaultContext.Neg(d, t)
}

// Min returns the lesser of d and e as a value of type t.
func (d Decimal) Min(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Min(d, e, t)
}

// Max returns the greater of d and e as a value of type t.
func (d Decimal) Max(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Max(d, e, t)
}

// Pow returns d raised to the power of e as a value of type t.
// Also see method [Context.Pow].
func (d Decimal) Pow(e Decimal, t Type) (Decimal, error) {
	return defaultContext.Pow(d, e, t)
}

// Sign returns -1, 0 or 1 as a value of type t.
// Also see method [Context.Sign].
func (d Decimal) Sign(t Type) (Decimal, error) {
	return defaultContext.Sign(d, t)
}

// Ceil returns d rounded toward +Inf to an integer, as a value of type t.
func (d Decimal) Ceil(t Type) (Decimal, error) {
	return defaultContext.Ceil(d, t)
}

// Floor returns d rounded toward -Inf to an integer, as a value of type t.
func (d Decimal) Floor(t Type) (Decimal, error) {
	return defaultContext.Floor(d, t)
}

// Rescale returns a copy of d as a value of type t.
func (d Decimal) Rescale(t Type) (Decimal, error) {
	return defaultContext.Rescale(d, t)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// NaN is greater than any other decimal and equal to another NaN, so Cmp
// defines a total order that can be used for sorting.
// It never fails.
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.IsNaN() && e.IsNaN():
		return 0
	case d.IsNaN():
		return 1
	case e.IsNaN():
		return -1
	}
	return d.v.Cmp(&e.v)
}

// equalExact reports whether d and e are numerically equal and, when both
// are finite, have the same exponent, so that 12.5 and 12.50 differ.
func (d Decimal) equalExact(e Decimal) bool {
	if d.Cmp(e) != 0 {
		return false
	}
	if d.IsFinite() && e.IsFinite() {
		return d.v.Exponent == e.v.Exponent
	}
	return true
}

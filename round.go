package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Round returns d rounded half up to n digits after the decimal point,
// as a value of type dst.
// A negative n rounds the integer part: -2 rounds to the nearest hundred.
// The type src is the type d is a value of; it limits how far n reaches:
// n is clamped to src.Scale() and -n to src.Prec() - src.Scale() + 1.
// This is the ROUND function of SQL.
//
// Round returns [Overflow] if the rounded value does not fit dst.
func (c Context) Round(d Decimal, n int, src, dst Type) (Decimal, error) {
	r, c := c.round(&d.v, n, src, false)
	return c.finish(r, dst, "round(%v, %v)", d, n)
}

// Trunc is like [Context.Round] but rounds toward zero.
// This is the TRUNCATE function of SQL.
func (c Context) Trunc(d Decimal, n int, src, dst Type) (Decimal, error) {
	r, c := c.round(&d.v, n, src, true)
	return c.finish(r, dst, "trunc(%v, %v)", d, n)
}

// round quantizes x to 1E-n for n >= 0, or to 1E+(-n) for n < 0.
// Truncation quantizes toward zero and leaves the rounding mode of the
// returned context unchanged.
func (c Context) round(x *apd.Decimal, n int, src Type, truncate bool) (apd.Decimal, Context) {
	var q *apd.Decimal
	if n >= 0 {
		if n > src.scale {
			n = src.scale
		}
		q = fracQuantizer(n)
	} else {
		m := -n
		if lim := src.prec - src.scale + 1; m > lim || m < 0 {
			m = lim
		}
		q = integralQuantizer(m)
	}
	if !truncate {
		return c.quantize(x, q)
	}
	rounding := c.Rounding
	c.Rounding = Down
	r, c := c.quantize(x, q)
	c.Rounding = rounding
	return r, c
}

// Round returns d rounded half up to n digits after the decimal point,
// as a value of type dst.
// Also see method [Context.Round].
func (d Decimal) Round(n int, src, dst Type) (Decimal, error) {
	return defaultContext.Round(d, n, src, dst)
}

// Trunc returns d truncated to n digits after the decimal point,
// as a value of type dst.
// Also see method [Context.Trunc].
func (d Decimal) Trunc(n int, src, dst Type) (Decimal, error) {
	return defaultContext.Trunc(d, n, src, dst)
}

// RoundForFormat returns d rounded half up to n digits after the decimal
// point, for display.
// n is clamped to [0, MaxScale].
// If d has at most n digits after the decimal point, it is returned
// unchanged: RoundForFormat never adds trailing zeros.
// The result is not constrained by any type.
//
// RoundForFormat returns [InfiniteResult] or [NaNResult] if d is not finite.
func (d Decimal) RoundForFormat(n int) (Decimal, error) {
	if err := d.finite(); err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("rounding %v for format: %w", d, err))
	}
	switch {
	case n < 0:
		n = 0
	case n > MaxScale:
		n = MaxScale
	}
	if n >= d.Scale() {
		return d, nil
	}
	r, c := defaultContext.quantize(&d.v, fracQuantizer(n))
	if err := c.check(&r); err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("rounding %v for format: %w", d, err))
	}
	return Decimal{v: r}, nil
}

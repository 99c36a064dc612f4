package numeric

import (
	"github.com/cockroachdb/apd/v3"
)

// check returns an error if c holds a real error or r is not finite.
// Informational conditions such as inexact or rounded are ignored.
func (c Context) check(r *apd.Decimal) error {
	if c.status.failed() {
		return c.status.kind()
	}
	switch r.Form {
	case apd.Infinite:
		return InfiniteResult
	case apd.NaN, apd.NaNSignaling:
		return NaNResult
	}
	return nil
}

// quantize sets the exponent of x to the exponent of q, rounding the
// coefficient with c's rounding mode.
func (c Context) quantize(x, q *apd.Decimal) (apd.Decimal, Context) {
	var r apd.Decimal
	cond, err := c.engine().Quantize(&r, x, q.Exponent)
	return r, c.record(cond, err)
}

// normalize fits a raw engine result into the type t.
// On success the result is finite, its exponent is -t.Scale(), and it has
// at most t.Prec() digits.
func (c Context) normalize(r apd.Decimal, t Type) (Decimal, error) {
	if err := c.check(&r); err != nil {
		return Decimal{}, err
	}
	q, c := c.quantize(&r, fracQuantizer(t.scale))
	if c.status.failed() {
		return Decimal{}, Overflow
	}
	if q.NumDigits() > int64(t.prec) {
		return Decimal{}, Overflow
	}
	if q.IsZero() {
		q.Negative = false
	}
	return Decimal{v: q}, nil
}

package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// NewFromShopspring converts a [decimal.Decimal] to a (possibly rounded)
// value of type t.
//
// [decimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
func NewFromShopspring(x decimal.Decimal, t Type) (Decimal, error) {
	coef := x.Coefficient()
	var r apd.Decimal
	if coef.Sign() < 0 {
		r.Negative = true
		coef.Neg(coef)
	}
	r.Coeff.SetMathBigInt(coef)
	r.Exponent = x.Exponent()
	d, err := defaultContext.normalize(r, t)
	if err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("converting %v to %v: %w", x, t, err))
	}
	return d, nil
}

// Shopspring converts d to a [decimal.Decimal] with the same coefficient
// and exponent.
// It returns [InfiniteResult] or [NaNResult] if d is not finite.
//
// [decimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
func (d Decimal) Shopspring() (decimal.Decimal, error) {
	if err := d.finite(); err != nil {
		return decimal.Decimal{}, Error.Wrap(fmt.Errorf("converting %v: %w", d, err))
	}
	coef := d.v.Coeff.MathBigInt()
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return decimal.NewFromBigInt(coef, d.v.Exponent), nil
}

// NewFromUint256 converts an unsigned integer to a value of type t.
func NewFromUint256(u *uint256.Int, t Type) (Decimal, error) {
	var r apd.Decimal
	r.Coeff.SetMathBigInt(u.ToBig())
	d, err := defaultContext.normalize(r, t)
	if err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("converting %v to %v: %w", u.Dec(), t, err))
	}
	return d, nil
}

// Coef returns the coefficient of d, which is its absolute value without
// the decimal point.
// Also see method [Decimal.Prec].
//
// Coef returns [InfiniteResult] or [NaNResult] if d is not finite.
func (d Decimal) Coef() (*uint256.Int, error) {
	if err := d.finite(); err != nil {
		return nil, Error.Wrap(fmt.Errorf("coefficient of %v: %w", d, err))
	}
	u, overflow := uint256.FromBig(d.v.Coeff.MathBigInt())
	if overflow {
		return nil, Error.Wrap(fmt.Errorf("coefficient of %v: %w", d, OutOfRange))
	}
	return u, nil
}

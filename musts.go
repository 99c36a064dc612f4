package numeric

import "fmt"

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal, t Type) Decimal {
	f, err := d.Add(e, t)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal, t Type) Decimal {
	f, err := d.Sub(e, t)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal, t Type) Decimal {
	f, err := d.Mul(e, t)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal, t Type) Decimal {
	f, err := d.Quo(e, t)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustRound is like [Decimal.Round] but panics if computing error.
func (d Decimal) MustRound(n int, src, dst Type) Decimal {
	f, err := d.Round(n, src, dst)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v, %v) failed: %v", d, n, err))
	}
	return f
}

package numeric

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Parse converts a string to a (possibly rounded) value of type t.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Fractional digits beyond t.Scale() are rounded half up.
//
// Parse returns error:
//   - [ConversionSyntax], if the string does not represent a decimal number.
//   - [InfiniteResult] or [NaNResult], if the string is "Inf" or "NaN".
//   - [Overflow], if the integer part has more than t.Prec() - t.Scale() digits.
func Parse(s string, t Type) (Decimal, error) {
	return defaultContext.Parse(s, t)
}

// Parse is like [Parse] but rounds with c's rounding mode.
func (c Context) Parse(s string, t Type) (Decimal, error) {
	r, c := c.parse(s)
	d, err := c.normalize(r, t)
	if err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("parsing %q as %v: %w", s, t, err))
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string, t Type) Decimal {
	d, err := Parse(s, t)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, t, err))
	}
	return d
}

// ParseImplied converts a string to a decimal, and returns the smallest type
// that holds it exactly.
// The exponent of the literal is first brought into [-MaxScale, 0]:
// a positive exponent is removed by rescaling to 0, and digits beyond
// [MaxScale] decimal places are rounded half up.
// The returned scale is then minus the exponent, and the returned precision
// is the number of digits, but never less than the scale.
// For example, 0.00123 has type NUMERIC(5,5).
//
// ParseImplied returns error:
//   - [ConversionSyntax], if the string does not represent a decimal number.
//   - [InfiniteResult] or [NaNResult], if the string is "Inf" or "NaN".
//   - [Overflow], if the integer part has more than [MaxPrec] digits.
func ParseImplied(s string) (Decimal, Type, error) {
	return defaultContext.ParseImplied(s)
}

// ParseImplied is like [ParseImplied] but rounds with c's rounding mode.
func (c Context) ParseImplied(s string) (Decimal, Type, error) {
	r, c := c.parse(s)
	if err := c.check(&r); err != nil {
		return Decimal{}, Type{}, Error.Wrap(fmt.Errorf("parsing %q: %w", s, err))
	}
	switch {
	case r.Exponent > 0:
		r, c = c.quantize(&r, fracQuantizer(0))
	case r.Exponent < -MaxScale:
		r, c = c.quantize(&r, fracQuantizer(MaxScale))
	}
	if c.status.failed() {
		return Decimal{}, Type{}, Error.Wrap(fmt.Errorf("parsing %q: %w", s, Overflow))
	}
	if r.IsZero() {
		r.Negative = false
	}
	d := Decimal{v: r}
	return d, impliedType(&d), nil
}

// ParseRaw converts a string to a decimal without any type constraint.
// Unlike [Parse], it accepts "Inf", "-Inf" and "NaN", and keeps the exponent
// of the literal.
// More than [MaxPrec] digits are rounded half up.
//
// ParseRaw returns [ConversionSyntax] if the string does not represent
// a decimal number.
func ParseRaw(s string) (Decimal, error) {
	r, c := defaultContext.parse(s)
	if c.status.failed() {
		return Decimal{}, Error.Wrap(fmt.Errorf("parsing %q: %w", s, c.status.kind()))
	}
	return Decimal{v: r}, nil
}

// NewFromInt32 converts an integer to a value of type t.
func NewFromInt32(i int32, t Type) (Decimal, error) {
	var r apd.Decimal
	r.SetInt64(int64(i))
	d, err := defaultContext.normalize(r, t)
	if err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("converting %v to %v: %w", i, t, err))
	}
	return d, nil
}

// NewFromInt64 converts an integer to a value of type t.
func NewFromInt64(i int64, t Type) (Decimal, error) {
	d, err := defaultContext.Parse(strconv.FormatInt(i, 10), t)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", i, err)
	}
	return d, nil
}

// NewFromFloat64 converts a float to a (possibly rounded) value of type t.
// The float is first written with the shortest representation that
// parses back to the same float, so 0.1 converts to exactly 0.1.
//
// NewFromFloat64 returns [InfiniteResult] or [NaNResult] for infinities
// and NaN.
func NewFromFloat64(f float64, t Type) (Decimal, error) {
	d, err := defaultContext.Parse(strconv.FormatFloat(f, 'g', -1, 64), t)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// Int32 returns the integer part of d, truncating toward zero.
// It returns [OutOfRange] if the integer part does not fit an int32.
func (d Decimal) Int32() (int32, error) {
	i, err := d.toInt(Down, 32)
	return int32(i), err
}

// RoundInt32 returns d rounded half up to an integer.
// It returns [OutOfRange] if the result does not fit an int32.
func (d Decimal) RoundInt32() (int32, error) {
	i, err := d.toInt(HalfUp, 32)
	return int32(i), err
}

// Int64 returns the integer part of d, truncating toward zero.
// It returns [OutOfRange] if the integer part does not fit an int64.
func (d Decimal) Int64() (int64, error) {
	return d.toInt(Down, 64)
}

// RoundInt64 returns d rounded half up to an integer.
// It returns [OutOfRange] if the result does not fit an int64.
func (d Decimal) RoundInt64() (int64, error) {
	return d.toInt(HalfUp, 64)
}

func (d Decimal) toInt(mode Rounding, bitSize int) (int64, error) {
	if err := d.finite(); err != nil {
		return 0, Error.Wrap(fmt.Errorf("converting %v to int%v: %w", d, bitSize, err))
	}
	r, c := NewContext(mode).unary((*apd.Context).RoundToIntegralValue, &d.v)
	if err := c.check(&r); err != nil {
		return 0, Error.Wrap(fmt.Errorf("converting %v to int%v: %w", d, bitSize, err))
	}
	// Leftover text, such as an exponent, is reported as out of range too.
	i, err := strconv.ParseInt(r.Text('G'), 10, bitSize)
	if err != nil {
		return 0, Error.Wrap(fmt.Errorf("converting %v to int%v: %w", d, bitSize, OutOfRange))
	}
	return i, nil
}

// Float64 returns the nearest binary floating-point number to d.
// It returns [OutOfRange] if d is beyond the range of float64.
func (d Decimal) Float64() (float64, error) {
	if err := d.finite(); err != nil {
		return 0, Error.Wrap(fmt.Errorf("converting %v to float64: %w", d, err))
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, Error.Wrap(fmt.Errorf("converting %v to float64: %w", d, OutOfRange))
	}
	return f, nil
}

// RawString returns the coefficient of d without a decimal point, followed
// by the exponent if it is not 0, for example "-12345e-4", "12345" or
// "12345e2".
// Infinities and NaN are rendered as "+Inf", "-Inf" and "Nan".
// It shows exactly what is stored and is meant for debugging.
func (d Decimal) RawString() string {
	switch {
	case d.IsInf():
		if d.v.Negative {
			return "-Inf"
		}
		return "+Inf"
	case d.IsNaN():
		return "Nan"
	}
	buf := make([]byte, 0, MaxPrec+20)
	if d.IsNeg() {
		buf = append(buf, '-')
	}
	buf = append(buf, d.v.Coeff.String()...)
	if d.v.Exponent != 0 {
		buf = append(buf, 'e')
		buf = strconv.AppendInt(buf, int64(d.v.Exponent), 10)
	}
	return string(buf)
}

// Digits is the unpacked form of a decimal.
type Digits struct {
	Coef [MaxPrec]byte // one digit per byte, most significant first, padded with leading zeros
	Exp  int32         // exponent
	Neg  bool          // true if the decimal is negative and not zero
}

// Digits returns the coefficient of d one digit per byte, its exponent
// and its sign.
// For infinities Digits returns [InfiniteResult] together with a
// meaningful Neg field, so +Inf and -Inf can still be told apart.
// For NaN it returns [NaNResult].
func (d Decimal) Digits() (Digits, error) {
	var g Digits
	g.Neg = d.IsNeg()
	if err := d.finite(); err != nil {
		return g, Error.Wrap(fmt.Errorf("unpacking %v: %w", d, err))
	}
	coef := d.v.Coeff.String()
	if len(coef) > MaxPrec {
		return g, Error.Wrap(fmt.Errorf("unpacking %v: %w", d, Overflow))
	}
	pos := MaxPrec - len(coef)
	for i := 0; i < len(coef); i++ {
		g.Coef[pos+i] = coef[i] - '0'
	}
	g.Exp = d.v.Exponent
	return g, nil
}

// NewFromDigits converts an unpacked decimal to a value of type t.
// Also see method [Decimal.Digits].
//
// NewFromDigits returns [ConversionSyntax] if a byte of the coefficient
// is not a digit.
func NewFromDigits(g Digits, t Type) (Decimal, error) {
	var buf [MaxPrec]byte
	for i, b := range g.Coef {
		if b > 9 {
			return Decimal{}, Error.Wrap(fmt.Errorf("packing byte %v at position %v: %w", b, i, ConversionSyntax))
		}
		buf[i] = b + '0'
	}
	var r apd.Decimal
	if _, ok := r.Coeff.SetString(string(buf[:]), 10); !ok {
		return Decimal{}, Error.Wrap(fmt.Errorf("packing %q: %w", buf[:], ConversionSyntax))
	}
	r.Exponent = g.Exp
	r.Negative = g.Neg
	d, err := defaultContext.normalize(r, t)
	if err != nil {
		return Decimal{}, Error.Wrap(fmt.Errorf("packing %v as %v: %w", g, t, err))
	}
	return d, nil
}

package numeric

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"go.uber.org/zap/zapcore"
)

// Decimal type is a representation of a decimal floating-point number
// with up to 34 significant digits.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a sign, a coefficient and an exponent:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Coefficient: an integer of at most 34 digits.
//   - Exponent: the power of ten the coefficient is multiplied by.
//
// For example, a decimal with a coefficient of 12345 and an exponent of -2
// represents the value 123.45.
// Such approach allows for multiple representations of the same numerical value.
// For example, 1, 1.0, and 1.00 all have the same value, but they
// have different exponents and coefficients.
//
// Every operation that takes a [Type] returns a finite decimal whose
// exponent is -Type.Scale().
// Infinities and NaN are only produced by [ParseRaw], [Inf] and [NaN].
type Decimal struct {
	v apd.Decimal // never modified after the decimal is built
}

// NaN returns a decimal that is not a number.
// NaN compares equal to itself and greater than any other decimal.
func NaN() Decimal {
	return Decimal{v: apd.Decimal{Form: apd.NaN}}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Decimal {
	return Decimal{v: apd.Decimal{Form: apd.Infinite, Negative: sign < 0}}
}

// New returns a decimal equal to coef / 10^scale.
// New returns an error if scale is less than 0 or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, Error.Wrap(fmt.Errorf("New(%v, %v): %w", coef, scale, errTypeRange))
	}
	var d Decimal
	d.v.SetFinite(coef, int32(-scale))
	return d, nil
}

// MustNew is like [New] but panics if the scale is out of range.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// Zero returns 0 as a value of type t.
func Zero(t Type) Decimal {
	var d Decimal
	d.v.SetFinite(0, int32(-t.scale))
	return d
}

// IsFinite returns true if d is neither infinite nor NaN.
func (d Decimal) IsFinite() bool {
	return d.v.Form == apd.Finite
}

// IsInf returns true if d is +Inf or -Inf.
func (d Decimal) IsInf() bool {
	return d.v.Form == apd.Infinite
}

// IsNaN returns true if d is not a number.
func (d Decimal) IsNaN() bool {
	return d.v.Form == apd.NaN || d.v.Form == apd.NaNSignaling
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.IsFinite() && d.v.IsZero()
}

// IsInt returns true if d is finite and has no significant digits after
// the decimal point, for example 1.00.
func (d Decimal) IsInt() bool {
	if !d.IsFinite() {
		return false
	}
	if d.v.Exponent >= 0 {
		return true
	}
	coef := d.v.Coeff.String()
	if n := -int(d.v.Exponent); n < len(coef) {
		coef = coef[len(coef)-n:]
	}
	return strings.Trim(coef, "0") == ""
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.v.Negative && !d.IsNaN() && !d.IsZero()
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.v.Negative && !d.IsNaN() && !d.IsZero()
}

// Exponent returns the exponent of a finite d.
func (d Decimal) Exponent() int {
	return int(d.v.Exponent)
}

// Scale returns number of digits after the decimal point.
// It is 0 for infinities, NaN and decimals with a positive exponent.
func (d Decimal) Scale() int {
	if !d.IsFinite() || d.v.Exponent > 0 {
		return 0
	}
	return -int(d.v.Exponent)
}

// Prec returns number of digits in the coefficient.
// The coefficient of 0 has one digit.
func (d Decimal) Prec() int {
	return int(d.v.NumDigits())
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical text of the decimal.
// Scientific notation is used when the exponent is positive or when the
// value has more than 5 leading zeros after the decimal point,
// for example "1.2E+3" or "1.2E-7".
// Infinities and NaN are rendered as "Infinity", "-Infinity" and "NaN".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.v.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The text is parsed with implied precision and scale.
// Also see function [ParseImplied].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, _, err = ParseImplied(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// The scanned value gets implied precision and scale.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, _, err = ParseImplied(value)
	case []byte:
		*d, _, err = ParseImplied(string(value))
	case int64:
		*d, _, err = ParseImplied(strconv.FormatInt(value, 10))
	case float64:
		*d, _, err = ParseImplied(strconv.FormatFloat(value, 'g', -1, 64))
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Decimal{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Infinities and NaN cannot be stored.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	if err := d.finite(); err != nil {
		return nil, Error.Wrap(fmt.Errorf("storing %v: %w", d, err))
	}
	return d.String(), nil
}

// finite returns the error describing a non-finite d.
func (d Decimal) finite() error {
	switch {
	case d.IsInf():
		return InfiniteResult
	case d.IsNaN():
		return NaNResult
	}
	return nil
}

// MarshalLogObject implements the [zapcore.ObjectMarshaler] interface,
// so a decimal can be logged with [zap.Object].
//
// [zapcore.ObjectMarshaler]: https://pkg.go.dev/go.uber.org/zap/zapcore#ObjectMarshaler
// [zap.Object]: https://pkg.go.dev/go.uber.org/zap#Object
func (d Decimal) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("value", d.String())
	enc.AddString("raw", d.RawString())
	switch {
	case d.IsInf():
		enc.AddString("form", "infinite")
	case d.IsNaN():
		enc.AddString("form", "nan")
	default:
		enc.AddString("form", "finite")
	}
	return nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1.23E-7
//	%f:     -0.000000123
//	%q:    "-1.23E-7"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// The default precision is equal to the actual scale of the decimal.
// A smaller precision rounds half up, see [Decimal.RoundForFormat].
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	var body string

	// Rescaling
	switch {
	case (verb == 'f' || verb == 'F') && d.IsFinite():
		tzeroes := 0
		if p, ok := state.Precision(); ok {
			if r, err := d.RoundForFormat(p); err == nil {
				d = r
			}
			if p > d.Scale() {
				tzeroes = p - d.Scale()
			}
		}
		body = d.v.Text('f')
		if tzeroes > 0 {
			if !strings.Contains(body, ".") {
				body += "."
			}
			body += strings.Repeat("0", tzeroes)
		}
	default:
		body = d.String()
	}
	body = strings.TrimPrefix(body, "-")

	// Arithmetic sign
	rsign := 0
	if d.v.Negative || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && d.IsFinite():
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = appendRepeat(buf, ' ', lspaces)
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.v.Negative:
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	buf = appendRepeat(buf, ' ', tspaces)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(numeric.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}

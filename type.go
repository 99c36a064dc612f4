package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type is a NUMERIC(precision, scale) data type.
// Precision is the maximum number of significant digits and scale is the
// number of digits after the decimal point.
//
// A type is not stored in a [Decimal].
// It is passed to every operation that produces one, so the same value can
// be checked against different types by different callers.
//
// The zero value is not a valid type: every non-empty result overflows it.
type Type struct {
	prec  int
	scale int
}

var errTypeRange = errors.New("precision or scale out of range")

// NewType returns NUMERIC(prec, scale).
// NewType returns an error unless 1 <= prec <= [MaxPrec] and 0 <= scale <= prec.
func NewType(prec, scale int) (Type, error) {
	if prec < 1 || prec > MaxPrec || scale < 0 || scale > prec {
		return Type{}, Error.Wrap(fmt.Errorf("NUMERIC(%v,%v): %w", prec, scale, errTypeRange))
	}
	return Type{prec: prec, scale: scale}, nil
}

// MustNewType is like [NewType] but panics if the type is invalid.
// It simplifies safe initialization of global variables holding types.
func MustNewType(prec, scale int) Type {
	t, err := NewType(prec, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNewType(%v, %v) failed: %v", prec, scale, err))
	}
	return t
}

// ParseType converts a string such as "NUMERIC(10,2)", "DECIMAL(10)" or
// "10,2" to a type.
// A missing scale means a scale of 0.
func ParseType(s string) (Type, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	for _, name := range []string{"NUMERIC", "DECIMAL"} {
		if rest, ok := strings.CutPrefix(str, name); ok {
			rest = strings.TrimSpace(rest)
			if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
				return Type{}, Error.New("invalid type %q", s)
			}
			str = rest[1 : len(rest)-1]
			break
		}
	}
	ps, ss, hasScale := strings.Cut(str, ",")
	prec, err := strconv.Atoi(strings.TrimSpace(ps))
	if err != nil {
		return Type{}, Error.Wrap(fmt.Errorf("invalid precision in type %q: %w", s, err))
	}
	scale := 0
	if hasScale {
		scale, err = strconv.Atoi(strings.TrimSpace(ss))
		if err != nil {
			return Type{}, Error.Wrap(fmt.Errorf("invalid scale in type %q: %w", s, err))
		}
	}
	return NewType(prec, scale)
}

// Prec returns the precision of the type.
func (t Type) Prec() int {
	return t.prec
}

// Scale returns the scale of the type.
func (t Type) Scale() int {
	return t.scale
}

// Holds reports whether d is a valid value of the type: d is finite,
// its exponent is -t.Scale(), and it has at most t.Prec() digits.
func (t Type) Holds(d Decimal) bool {
	return d.IsFinite() &&
		int(d.v.Exponent) == -t.scale &&
		d.v.NumDigits() <= int64(t.prec)
}

// String returns the type in SQL notation, for example "NUMERIC(10,2)".
func (t Type) String() string {
	return fmt.Sprintf("NUMERIC(%d,%d)", t.prec, t.scale)
}

// MarshalText implements [encoding.TextMarshaler] interface.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [ParseType].
func (t *Type) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseType(string(text))
	return err
}

// Set parses a type from a command line flag.
func (t *Type) Set(s string) error {
	return t.UnmarshalText([]byte(s))
}

// Type returns the flag type name.
func (t *Type) Type() string {
	return "numeric"
}

// impliedType returns the smallest type that holds a finite r whose
// exponent is already in [-MaxScale, 0].
func impliedType(r *Decimal) Type {
	scale := -int(r.v.Exponent)
	prec := int(r.v.NumDigits())
	if prec < scale {
		prec = scale
	}
	return Type{prec: prec, scale: scale}
}

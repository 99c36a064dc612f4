package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Rounding is a rounding mode of the decimal engine.
// The zero value is [HalfUp].
type Rounding uint8

const (
	HalfUp   Rounding = iota // round to nearest, ties away from zero
	HalfEven                 // round to nearest, ties to even
	HalfDown                 // round to nearest, ties toward zero
	Down                     // round toward zero (truncate)
	Up                       // round away from zero
	Ceiling                  // round toward +Inf
	Floor                    // round toward -Inf
	Up05                     // round zero or five away from zero
)

var roundings = [...]struct {
	name    string
	rounder apd.Rounder
}{
	HalfUp:   {"half_up", apd.RoundHalfUp},
	HalfEven: {"half_even", apd.RoundHalfEven},
	HalfDown: {"half_down", apd.RoundHalfDown},
	Down:     {"down", apd.RoundDown},
	Up:       {"up", apd.RoundUp},
	Ceiling:  {"ceiling", apd.RoundCeiling},
	Floor:    {"floor", apd.RoundFloor},
	Up05:     {"05up", apd.Round05Up},
}

// ParseRounding converts a rounding mode name such as "half_up" or
// "ROUND_HALF_UP" to a [Rounding].
func ParseRounding(s string) (Rounding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "round_")
	for r, v := range roundings {
		if v.name == name {
			return Rounding(r), nil
		}
	}
	return 0, Error.New("unknown rounding mode %q", s)
}

func (r Rounding) String() string {
	if int(r) >= len(roundings) {
		return fmt.Sprintf("Rounding(%d)", uint8(r))
	}
	return roundings[r].name
}

func (r Rounding) rounder() apd.Rounder {
	if int(r) >= len(roundings) {
		return apd.RoundHalfUp
	}
	return roundings[r].rounder
}

// MarshalText implements [encoding.TextMarshaler] interface.
func (r Rounding) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see function [ParseRounding].
func (r *Rounding) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRounding(string(text))
	return err
}

// Set parses a rounding mode from a command line flag.
func (r *Rounding) Set(s string) error {
	return r.UnmarshalText([]byte(s))
}

// Type returns the flag type name.
func (r *Rounding) Type() string {
	return "rounding"
}

// status is the set of conditions raised by the engine during one logical call.
type status uint32

const (
	statusConversionSyntax status = 1 << iota
	statusDivisionByZero
	statusDivisionImpossible
	statusDivisionUndefined
	statusInsufficientStorage
	statusInexact
	statusInvalidContext
	statusInvalidOperation
	statusLostDigits
	statusOverflow
	statusClamped
	statusRounded
	statusSubnormal
	statusUnderflow
	statusUnlisted

	// statusInformational are the flags that do not invalidate a result.
	// An engine overflow yields a signed infinity and an underflow yields a zero
	// or a subnormal, both of which are caught later by looking at the result.
	statusInformational = statusOverflow | statusUnderflow | statusInexact |
		statusRounded | statusSubnormal | statusClamped | statusLostDigits
)

var statusNames = [...]struct {
	flag status
	name string
}{
	{statusConversionSyntax, "conversion syntax"},
	{statusDivisionByZero, "division by zero"},
	{statusDivisionImpossible, "division impossible"},
	{statusDivisionUndefined, "division undefined"},
	{statusInsufficientStorage, "insufficient storage"},
	{statusInexact, "inexact"},
	{statusInvalidContext, "invalid context"},
	{statusInvalidOperation, "invalid operation"},
	{statusLostDigits, "lost digits"},
	{statusOverflow, "overflow"},
	{statusClamped, "clamped"},
	{statusRounded, "rounded"},
	{statusSubnormal, "subnormal"},
	{statusUnderflow, "underflow"},
	{statusUnlisted, "unlisted"},
}

// failed reports whether s contains a real error.
func (s status) failed() bool {
	return s&^statusInformational != 0
}

func (s status) String() string {
	if s == 0 {
		return "none"
	}
	names := make([]string, 0, len(statusNames))
	for _, n := range statusNames {
		if s&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "; ")
}

var conditionFlags = [...]struct {
	cond apd.Condition
	flag status
}{
	{apd.SystemOverflow, statusInsufficientStorage},
	{apd.SystemUnderflow, statusInsufficientStorage},
	{apd.Overflow, statusOverflow},
	{apd.Underflow, statusUnderflow},
	{apd.Inexact, statusInexact},
	{apd.Subnormal, statusSubnormal},
	{apd.Rounded, statusRounded},
	{apd.DivisionUndefined, statusDivisionUndefined},
	{apd.DivisionByZero, statusDivisionByZero},
	{apd.DivisionImpossible, statusDivisionImpossible},
	{apd.InvalidOperation, statusInvalidOperation},
	{apd.Clamped, statusClamped},
}

// statusOf translates engine conditions into status flags.
// Conditions without a flag of their own are recorded as unlisted.
func statusOf(cond apd.Condition) status {
	var s status
	for _, c := range conditionFlags {
		if cond&c.cond != 0 {
			s |= c.flag
			cond &^= c.cond
		}
	}
	if cond != 0 {
		s |= statusUnlisted
	}
	return s
}

const (
	// MaxPrec is the maximum number of significant digits of a decimal.
	MaxPrec = 34
	// MaxScale is the maximum number of digits after the decimal point.
	MaxScale = MaxPrec

	maxExponent = 6144
	minExponent = -6143
)

// Context carries the rounding mode used by the operations and the
// conditions they raise.
// It is passed by value, so a context is never shared between callers.
// The zero value rounds half up and is ready to use.
type Context struct {
	Rounding Rounding
	status   status
}

// NewContext returns a context with the given rounding mode.
func NewContext(r Rounding) Context {
	return Context{Rounding: r}
}

var defaultContext = Context{Rounding: HalfUp}

// engine returns a decimal128 engine context with c's rounding mode and
// every trap disabled.
func (c Context) engine() *apd.Context {
	return &apd.Context{
		Precision:   MaxPrec,
		MaxExponent: maxExponent,
		MinExponent: minExponent,
		Traps:       0,
		Rounding:    c.Rounding.rounder(),
	}
}

// record returns a copy of c with the outcome of an engine call added to
// its status.
func (c Context) record(cond apd.Condition, err error) Context {
	c.status |= statusOf(cond)
	if err != nil {
		c.status |= statusInvalidContext
	}
	return c
}

type (
	unaryFunc  func(ec *apd.Context, d, x *apd.Decimal) (apd.Condition, error)
	binaryFunc func(ec *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)
)

func (c Context) unary(f unaryFunc, x *apd.Decimal) (apd.Decimal, Context) {
	var r apd.Decimal
	cond, err := f(c.engine(), &r, x)
	return r, c.record(cond, err)
}

func (c Context) binary(f binaryFunc, x, y *apd.Decimal) (apd.Decimal, Context) {
	var r apd.Decimal
	cond, err := f(c.engine(), &r, x, y)
	return r, c.record(cond, err)
}

// parse converts text using the engine's string conversion.
// A malformed string is recorded as a conversion syntax condition.
// A well-formed string whose exponent is beyond the engine's range
// overflows to an infinity or underflows to zero.
func (c Context) parse(s string) (apd.Decimal, Context) {
	var r apd.Decimal
	_, cond, err := c.engine().SetString(&r, s)
	if err == nil {
		return r, c.record(cond, nil)
	}
	neg, zero, negExp, ok := scanNumber(s)
	if !ok {
		c.status |= statusConversionSyntax
		r.Form = apd.NaN
		return r, c
	}
	r = apd.Decimal{Negative: neg}
	switch {
	case zero && negExp:
		r.Exponent = minExponent - MaxPrec + 1
		c.status |= statusClamped
	case zero:
		r.Exponent = maxExponent - MaxPrec + 1
		c.status |= statusClamped
	case negExp:
		r.Exponent = minExponent - MaxPrec + 1
		c.status |= statusUnderflow | statusSubnormal | statusInexact | statusRounded | statusClamped
	default:
		r.Form = apd.Infinite
		c.status |= statusOverflow | statusInexact | statusRounded
	}
	return r, c
}

// scanNumber reports whether s is a numeric string with an exponent,
// and returns the sign of the number, whether its coefficient is zero,
// and the sign of its exponent.
func scanNumber(s string) (neg, zero, negExp, ok bool) {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return false, false, false, false
	}
	coef, exp := s[:i], s[i+1:]
	digits, dot := 0, false
	zero = true
	for _, ch := range coef {
		switch {
		case ch == '.' && !dot:
			dot = true
		case ch >= '0' && ch <= '9':
			digits++
			if ch != '0' {
				zero = false
			}
		default:
			return false, false, false, false
		}
	}
	if digits == 0 {
		return false, false, false, false
	}
	if exp != "" && (exp[0] == '+' || exp[0] == '-') {
		negExp = exp[0] == '-'
		exp = exp[1:]
	}
	if exp == "" {
		return false, false, false, false
	}
	for _, ch := range exp {
		if ch < '0' || ch > '9' {
			return false, false, false, false
		}
	}
	return neg, zero, negExp, true
}

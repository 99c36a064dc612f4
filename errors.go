package numeric

import (
	"errors"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
// Use [KindOf] or [errors.Is] with a [Kind] to find out what went wrong.
var Error = errs.Class("numeric")

// Kind is the reason an operation failed.
// The set of kinds is closed.
type Kind uint8

const (
	// InfiniteResult means the operation produced +Inf or -Inf where a
	// finite value was required.
	InfiniteResult Kind = iota + 1
	// NaNResult means the operation produced NaN.
	NaNResult
	// Overflow means a finite result does not fit the target type, either
	// because it cannot be quantized to the target scale or because it has
	// more digits than the target precision.
	Overflow
	// OutOfRange means a conversion exceeded the range of a Go numeric type,
	// or left unparsed text behind.
	OutOfRange
	DivisionByZero
	DivisionUndefined
	DivisionImpossible
	InvalidOperation
	ConversionSyntax
	InsufficientStorage
	InvalidContext
	// UnlistedEngineError means the engine raised a condition that has no
	// kind of its own. It should never be returned.
	UnlistedEngineError
)

var kindNames = [...]string{
	InfiniteResult:      "infinite result",
	NaNResult:           "NaN result",
	Overflow:            "overflow",
	OutOfRange:          "out of range",
	DivisionByZero:      "division by zero",
	DivisionUndefined:   "division undefined",
	DivisionImpossible:  "division impossible",
	InvalidOperation:    "invalid operation",
	ConversionSyntax:    "conversion syntax",
	InsufficientStorage: "insufficient storage",
	InvalidContext:      "invalid context",
	UnlistedEngineError: "unlisted engine error",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown error"
	}
	return kindNames[k]
}

// Error implements the error interface, so that a kind can be matched with
// [errors.Is].
func (k Kind) Error() string {
	return k.String()
}

// KindOf returns the kind of err, or 0 if err was not returned by this package.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

// errorPrecedence lists the real error flags from the most to the least
// specific one.
var errorPrecedence = [...]struct {
	flag status
	kind Kind
}{
	{statusDivisionByZero, DivisionByZero},
	{statusConversionSyntax, ConversionSyntax},
	{statusDivisionImpossible, DivisionImpossible},
	{statusDivisionUndefined, DivisionUndefined},
	{statusInvalidOperation, InvalidOperation},
	{statusInsufficientStorage, InsufficientStorage},
	{statusInvalidContext, InvalidContext},
}

// kind returns the most specific real error recorded in s.
// It panics if s holds no real error.
func (s status) kind() Kind {
	if !s.failed() {
		panic("status.kind() called without a real error: " + s.String())
	}
	for _, p := range errorPrecedence {
		if s&p.flag != 0 {
			return p.kind
		}
	}
	return UnlistedEngineError
}

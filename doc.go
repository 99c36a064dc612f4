/*
Package numeric implements the SQL NUMERIC(precision, scale) data type on
top of 128-bit decimal floating-point arithmetic.
Arithmetic is carried out by [apd], configured as an IEEE 754-2008
decimal128 engine, and every result is fitted into a caller-supplied
[Type] before it is returned.

# Representation

[Decimal] is an immutable value with three parts:

  - Sign: whether the decimal is negative.
  - Coefficient: an integer of at most 34 decimal digits.
  - Exponent: the power of ten the coefficient is multiplied by.

A [Type] is the pair (precision, scale) of a NUMERIC column.
A decimal is a valid value of NUMERIC(p, s) if:

  - it is finite,
  - its exponent is exactly -s,
  - its coefficient has at most p digits.

The type is not stored in the decimal.
Every operation takes the target type as an argument, and the same decimal
can be checked against different types with [Type.Holds].

# Constraints

Precision is between 1 and 34 and scale is between 0 and precision.
Here are the ranges for some types:

	| Type           | Minimum                               | Maximum                              |
	| -------------- | ------------------------------------- | ------------------------------------ |
	| NUMERIC(34,0)  | -9999999999999999999999999999999999   | 9999999999999999999999999999999999   |
	| NUMERIC(19,4)  | -999999999999999.9999                 | 999999999999999.9999                 |
	| NUMERIC(10,2)  | -99999999.99                          | 99999999.99                          |
	| NUMERIC(34,34) | -0.9999999999999999999999999999999999 | 0.9999999999999999999999999999999999 |

Infinities and NaN are never the result of an operation that takes a type.
They can be created with [ParseRaw], [Inf] and [NaN], mostly as sentinels
for sorting: [Decimal.Cmp] orders NaN after every other value.

# Conversions

The package provides functions for converting decimals:

  - from/to string:
    [Parse], [ParseImplied], [ParseRaw], [Decimal.String], [Decimal.RawString],
    [Decimal.Format].
  - from/to int32 and int64:
    [NewFromInt32], [NewFromInt64], [Decimal.Int32], [Decimal.RoundInt32],
    [Decimal.Int64], [Decimal.RoundInt64].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to unpacked digits:
    [NewFromDigits], [Decimal.Digits].
  - from/to other libraries:
    [NewFromShopspring], [Decimal.Shopspring], [NewFromUint256], [Decimal.Coef].

[ParseImplied] infers the smallest type that holds a literal, for example
0.00123 is a NUMERIC(5,5).

# Operations

Each operation is carried out in two steps:

 1. The engine computes the result with 34 significant digits.
    Overflow and underflow of the engine are not errors at this point:
    they produce an infinity or a zero.

 2. The result is normalized to the target type.
    It is rejected if it is infinite or NaN, then rounded to the scale of
    the type, then rejected if it has more digits than the precision.

[Decimal.Round] and [Decimal.Trunc] implement the ROUND and TRUNCATE
functions of SQL. A negative number of digits rounds the integer part,
so round(1234, -2) is 1200.

# Context

Rounding is controlled by a [Context].
The methods of [Decimal] use a context that rounds half up, with the
following engine settings:

	| Attribute               | Value                                           |
	| ----------------------- | ----------------------------------------------- |
	| Precision               | 34                                              |
	| Maximum Exponent (Emax) | 6144                                            |
	| Minimum Exponent (Emin) | -6143                                           |
	| Rounding Method         | Half Up                                         |
	| Enabled Traps           | None                                            |

A context is a small value: it is copied into each call, so it is safe for
concurrent use and no state leaks from one call to another.

# Errors

Operations never panic, except the Must* functions.
Every error belongs to the [Error] class and has a [Kind]:

  - [InfiniteResult], [NaNResult]: the result is not finite.
  - [Overflow]: the result does not fit the target type.
  - [OutOfRange]: a conversion to a Go number does not fit.
  - [DivisionByZero], [DivisionUndefined], [DivisionImpossible],
    [InvalidOperation], [ConversionSyntax], [InsufficientStorage],
    [InvalidContext]: the engine reported the matching condition.

When the engine reports several conditions at once, the most specific one
is returned, division by zero first.
Use [errors.Is] with a kind, or [KindOf], to inspect an error.

[apd]: https://pkg.go.dev/github.com/cockroachdb/apd/v3
*/
package numeric

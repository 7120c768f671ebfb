// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package numera defines the numeric value model shared by the digits and
// numtheory packages: a tagged union over exact integers, exact rationals,
// arbitrary-precision decimal floats, and Gaussian (complex) integers.
// Values are immutable; constructors copy their arguments.
package numera

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Kind enumerates the variants of a Value.
type Kind int

const (
	// Integer is an exact arbitrary-precision integer.
	Integer Kind = iota
	// Rational is an exact rational in lowest terms with positive denominator.
	Rational
	// Float is an arbitrary-precision decimal float with a known number
	// of significant digits.
	Float
	// Complex is a Gaussian integer (integer real and imaginary parts).
	Complex
)

// MachinePrec is the number of significant decimal digits assumed for
// values built from a float64.
const MachinePrec = 16

// Value is an immutable numeric value.
// The zero Value is the integer 0.
type Value struct {
	kind Kind
	i    *big.Int
	r    *big.Rat
	d    decimal.Decimal
	prec int
	re   *big.Int
	im   *big.Int
}

// FromInt returns an integer value.
func FromInt(v int64) Value {
	return Value{kind: Integer, i: big.NewInt(v)}
}

// FromBigInt returns an integer value. v is copied.
func FromBigInt(v *big.Int) Value {
	return Value{kind: Integer, i: new(big.Int).Set(v)}
}

// FromRat returns num/den reduced to lowest terms.
// An integral result collapses to an Integer value.
// FromRat panics if den is 0, same as big.NewRat.
func FromRat(num, den int64) Value {
	return FromBigRat(big.NewRat(num, den))
}

// FromBigRat returns a rational value for r, which is copied.
// An integral r collapses to an Integer value.
func FromBigRat(r *big.Rat) Value {
	if r.IsInt() {
		return Value{kind: Integer, i: new(big.Int).Set(r.Num())}
	}
	return Value{kind: Rational, r: new(big.Rat).Set(r)}
}

// FromFloat64 returns a float value carrying MachinePrec significant digits.
func FromFloat64(f float64) Value {
	return FromDecimal(decimal.NewFromFloat(f), MachinePrec)
}

// FromDecimal returns a float value for d with the given count of known
// significant decimal digits.
func FromDecimal(d decimal.Decimal, prec int) Value {
	return Value{kind: Float, d: d, prec: prec}
}

// FromComplex returns a Gaussian integer re + im*i. Both parts are copied.
func FromComplex(re, im *big.Int) Value {
	return Value{
		kind: Complex,
		re:   new(big.Int).Set(re),
		im:   new(big.Int).Set(im),
	}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInteger reports whether the value is an exact integer.
func (v Value) IsInteger() bool {
	return v.kind == Integer
}

// IsReal reports whether the value is real (not complex).
func (v Value) IsReal() bool {
	return v.kind != Complex
}

// Int returns the value as a big integer.
// ok is false unless the value is an exact integer.
func (v Value) Int() (i *big.Int, ok bool) {
	if v.kind != Integer {
		return nil, false
	}
	return new(big.Int).Set(v.intRef()), true
}

// Rat returns the exact rational form of a real value.
// For floats the decimal mantissa and exponent convert exactly.
// ok is false for complex values.
func (v Value) Rat() (r *big.Rat, ok bool) {
	switch v.kind {
	case Integer:
		return new(big.Rat).SetInt(v.intRef()), true
	case Rational:
		return new(big.Rat).Set(v.r), true
	case Float:
		return v.d.Rat(), true
	default:
		return nil, false
	}
}

// Dec returns the decimal form of a float value.
func (v Value) Dec() (d decimal.Decimal, ok bool) {
	if v.kind != Float {
		return decimal.Decimal{}, false
	}
	return v.d, true
}

// Precision returns the number of known significant decimal digits of a
// float value, and 0 for exact values, whose precision is unbounded.
func (v Value) Precision() int {
	if v.kind == Float {
		return v.prec
	}
	return 0
}

// Complex returns the parts of a Gaussian integer.
func (v Value) Complex() (re, im *big.Int, ok bool) {
	if v.kind != Complex {
		return nil, nil, false
	}
	return new(big.Int).Set(v.re), new(big.Int).Set(v.im), true
}

// Sign returns -1, 0, or 1 for a real value.
// For a complex value it returns the sign of the real part unless that part
// is zero, in which case the sign of the imaginary part.
func (v Value) Sign() int {
	switch v.kind {
	case Integer:
		return v.intRef().Sign()
	case Rational:
		return v.r.Sign()
	case Float:
		return v.d.Sign()
	default:
		if s := v.re.Sign(); s != 0 {
			return s
		}
		return v.im.Sign()
	}
}

// Abs returns the absolute value. Complex values are returned unchanged.
func (v Value) Abs() Value {
	if v.kind == Complex || v.Sign() >= 0 {
		return v
	}
	switch v.kind {
	case Integer:
		return Value{kind: Integer, i: new(big.Int).Abs(v.intRef())}
	case Rational:
		return Value{kind: Rational, r: new(big.Rat).Abs(v.r)}
	default:
		return Value{kind: Float, d: v.d.Abs(), prec: v.prec}
	}
}

// String returns a human-readable form of the value, for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return v.intRef().String()
	case Rational:
		return v.r.RatString()
	case Float:
		return v.d.String()
	default:
		return "(" + v.re.String() + "+" + v.im.String() + "i)"
	}
}

// intRef returns the integer payload without copying,
// mapping the zero Value to 0.
func (v Value) intRef() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numera

import (
	"errors"
	"fmt"
)

// FailureKind names a typed failure reported by one of the engines.
type FailureKind int

const (
	// ZeroModulus: the modulus argument is zero.
	ZeroModulus FailureKind = iota + 1
	// NotInvertible: the base has no inverse modulo the modulus.
	NotInvertible
	// DivisionByInfinity: division by zero, yielding complex infinity.
	DivisionByInfinity
	// InvalidBase: the base is not an integer greater than 1.
	InvalidBase
	// InvalidLength: the requested digit count is not a non-negative integer.
	InvalidLength
	// InvalidPosition: the requested start position is not an integer.
	InvalidPosition
	// NotReal: a real number is required.
	NotReal
	// UndeterminedDigitCount: the number of digits to return cannot be
	// determined.
	UndeterminedDigitCount
	// ExactNumberRequired: an exact (integer or rational) number is required.
	ExactNumberRequired
	// IntegerExpected: an integer argument is required.
	IntegerExpected
	// InvalidPositiveIntegerArgument: a positive integer argument is required.
	InvalidPositiveIntegerArgument
	// NoPrimeInInterval: the interval contains no primes.
	NoPrimeInInterval
	// MalformedCall: the call has the wrong argument shape and stays
	// unevaluated.
	MalformedCall
	// ExponentUndefined: the integer exponent of zero is undefined.
	ExponentUndefined
)

// Infinity is the distinguished "complex infinity" operand attached to
// DivisionByInfinity failures.
type Infinity struct{}

func (Infinity) String() string { return "ComplexInfinity" }

// Error is a structured failure: a kind plus the operands a host-side
// message template needs. It carries no human-facing formatting policy;
// Error() exists for logs and tests.
type Error struct {
	Kind FailureKind
	Args []interface{}
}

// NewError returns an Error of the given kind with the offending operands.
func NewError(kind FailureKind, args ...interface{}) *Error {
	return &Error{Kind: kind, Args: args}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ZeroModulus:
		return "the modulus 0 should be nonzero"
	case NotInvertible:
		return fmt.Sprintf("%v is not invertible modulo %v", e.arg(0), e.arg(1))
	case DivisionByInfinity:
		return fmt.Sprintf("infinite expression %v/%v encountered", e.arg(0), e.arg(1))
	case InvalidBase:
		return fmt.Sprintf("base %v is not an integer greater than 1", e.arg(0))
	case InvalidLength:
		return fmt.Sprintf("non-negative integer digit count expected, got %v", e.arg(0))
	case InvalidPosition:
		return fmt.Sprintf("integer position expected, got %v", e.arg(0))
	case NotReal:
		return fmt.Sprintf("the value %v is not a real number", e.arg(0))
	case UndeterminedDigitCount:
		return "the number of digits to return cannot be determined"
	case ExactNumberRequired:
		return fmt.Sprintf("an exact number expected, got %v", e.arg(0))
	case IntegerExpected:
		return fmt.Sprintf("integer expected, got %v", e.arg(0))
	case InvalidPositiveIntegerArgument:
		return fmt.Sprintf("positive integer argument expected, got %v", e.arg(0))
	case NoPrimeInInterval:
		return "there are no primes in the specified interval"
	case MalformedCall:
		return fmt.Sprintf("malformed call: %v", e.arg(0))
	case ExponentUndefined:
		return "the integer exponent of 0 is undefined"
	default:
		return fmt.Sprintf("failure %d", int(e.Kind))
	}
}

func (e *Error) arg(i int) interface{} {
	if i >= len(e.Args) {
		return "?"
	}
	return e.Args[i]
}

// IsFailure reports whether err is (or wraps) an Error of the given kind.
func IsFailure(err error, kind FailureKind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package numtheory implements exact integer operations: GCD/LCM folds,
// modular arithmetic with floor-division conventions, primality and prime
// navigation, and integer factorization.
package numtheory

import (
	"math"
	"math/big"

	"github.com/avdva/numera"
	"github.com/avdva/numera/internal/mathutil"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// intGCD returns gcd(|a|, |b|), tolerating zero arguments.
func intGCD(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	if x.Sign() == 0 {
		return y
	}
	if y.Sign() == 0 {
		return x
	}
	return x.GCD(nil, nil, x, y)
}

// GCD folds the greatest common divisor over its arguments, 0 for the
// empty call. Any non-integer argument makes the whole call malformed;
// nothing is coerced.
func GCD(vals ...numera.Value) (*big.Int, error) {
	result := new(big.Int)
	for _, v := range vals {
		n, ok := v.Int()
		if !ok {
			return nil, numera.NewError(numera.MalformedCall, v)
		}
		n.Abs(n)
		if result.Sign() == 0 {
			result.Set(n)
			continue
		}
		if n.Sign() == 0 {
			continue
		}
		result.GCD(nil, nil, result, n)
	}
	return result, nil
}

// LCM folds the least common multiple over its arguments, 1 for the
// empty call. Any non-integer argument makes the whole call malformed.
func LCM(vals ...numera.Value) (*big.Int, error) {
	result := big.NewInt(1)
	g := new(big.Int)
	for _, v := range vals {
		n, ok := v.Int()
		if !ok {
			return nil, numera.NewError(numera.MalformedCall, v)
		}
		n.Abs(n)
		if n.Sign() == 0 || result.Sign() == 0 {
			result.SetInt64(0)
			continue
		}
		g.GCD(nil, nil, result, n)
		result.Div(result, g).Mul(result, n)
	}
	return result, nil
}

// PowerMod returns a^b mod m without materializing a^b. A negative b uses
// the modular inverse of a, failing with NotInvertible when none exists.
// The result follows the floor convention: it takes the sign of m.
func PowerMod(a, b, m *big.Int) (*big.Int, error) {
	if m.Sign() == 0 {
		return nil, numera.NewError(numera.ZeroModulus)
	}
	base, e := a, b
	if b.Sign() < 0 {
		inv := new(big.Int).ModInverse(a, new(big.Int).Abs(m))
		if inv == nil {
			return nil, numera.NewError(numera.NotInvertible, a, m)
		}
		base, e = inv, new(big.Int).Neg(b)
	}
	r := new(big.Int).Exp(base, e, m) // r is in [0, |m|)
	if r.Sign() != 0 && m.Sign() < 0 {
		r.Add(r, m)
	}
	return r, nil
}

// Mod returns n mod m with the result taking the sign of m
// (floor convention): Mod(-3, 4) = 1, Mod(-3, -4) = -3.
func Mod(n, m *big.Int) (*big.Int, error) {
	if m.Sign() == 0 {
		return nil, numera.NewError(numera.ZeroModulus)
	}
	if n.IsInt64() && m.IsInt64() && n.Int64() != math.MinInt64 {
		return big.NewInt(mathutil.FloorMod(n.Int64(), m.Int64())), nil
	}
	r := new(big.Int).Mod(n, m) // Euclidean: 0 <= r < |m|
	if r.Sign() != 0 && m.Sign() < 0 {
		r.Add(r, m)
	}
	return r, nil
}

// Quotient returns the floor of m/n. Division by zero fails with
// DivisionByInfinity, carrying the complex-infinity result marker.
func Quotient(m, n *big.Int) (*big.Int, error) {
	if n.Sign() == 0 {
		return nil, numera.NewError(numera.DivisionByInfinity, m, n, numera.Infinity{})
	}
	if m.IsInt64() && n.IsInt64() && m.Int64() != math.MinInt64 {
		return big.NewInt(mathutil.FloorDiv(m.Int64(), n.Int64())), nil
	}
	q, r := new(big.Int).QuoRem(m, n, new(big.Int))
	if r.Sign() != 0 && (m.Sign() < 0) != (n.Sign() < 0) {
		q.Sub(q, bigOne)
	}
	return q, nil
}

// QuotientRemainder returns both the floor quotient and the floor
// remainder, so that quo*n + rem == m and rem takes the sign of n.
func QuotientRemainder(m, n *big.Int) (quo, rem *big.Int, err error) {
	quo, err = Quotient(m, n)
	if err != nil {
		return nil, nil, err
	}
	rem, _ = Mod(m, n)
	return quo, rem, nil
}

// EvenQ reports whether v is an even integer.
// Non-integer input is never an error, just false.
func EvenQ(v numera.Value) bool {
	n, ok := v.Int()
	return ok && n.Bit(0) == 0
}

// OddQ reports whether v is an odd integer.
func OddQ(v numera.Value) bool {
	n, ok := v.Int()
	return ok && n.Bit(0) == 1
}

// CoprimeQ reports whether every pair of arguments has greatest common
// divisor 1. Arguments must be integers or Gaussian integers; anything
// else makes the whole test false. A pair with a complex member is decided
// by the Gaussian GCD being a unit.
func CoprimeQ(vals ...numera.Value) bool {
	gs := make([]gaussianInt, len(vals))
	complexAt := make([]bool, len(vals))
	for i, v := range vals {
		switch v.Kind() {
		case numera.Integer:
			n, _ := v.Int()
			gs[i] = gaussianInt{re: n, im: new(big.Int)}
		case numera.Complex:
			re, im, _ := v.Complex()
			gs[i] = gaussianInt{re: re, im: im}
			complexAt[i] = true
		default:
			return false
		}
	}
	for i := 0; i < len(gs); i++ {
		for j := i + 1; j < len(gs); j++ {
			if complexAt[i] || complexAt[j] {
				if !gaussianGCD(gs[i], gs[j]).isUnit() {
					return false
				}
				continue
			}
			if intGCD(gs[i].re, gs[j].re).Cmp(bigOne) != 0 {
				return false
			}
		}
	}
	return true
}

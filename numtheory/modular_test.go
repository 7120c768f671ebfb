// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numtheory

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/numera"
)

func ints(ns ...int64) []numera.Value {
	out := make([]numera.Value, len(ns))
	for i, n := range ns {
		out[i] = numera.FromInt(n)
	}
	return out
}

func TestGCDLCM(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		vals     []numera.Value
		gcd, lcm int64
	}{
		{nil, 0, 1},
		{ints(20, 30), 10, 60},
		{ints(15, 20), 5, 60},
		{ints(20, 30, 40, 50), 10, 600},
		{ints(4, 10), 2, 20},
		{ints(4, 13), 1, 52},
		{ints(-6, 4), 2, 12},
		{ints(0, 7), 7, 0},
		{ints(42), 42, 42},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			g, err := GCD(test.vals...)
			a.NoError(err)
			a.Equal(test.gcd, g.Int64())
			l, err := LCM(test.vals...)
			a.NoError(err)
			a.Equal(test.lcm, l.Int64())
		})
	}
	_, err := GCD(numera.FromRat(1, 2))
	a.True(numera.IsFailure(err, numera.MalformedCall))
	_, err = LCM(numera.FromFloat64(1.5))
	a.True(numera.IsFailure(err, numera.MalformedCall))
}

func TestPowerMod(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base, exp, mod int64
		res            int64
		kind           numera.FailureKind
		fails          bool
	}{
		{2, 10000000, 3, 1, 0, false},
		{3, -2, 10, 9, 0, false},
		{7, -1, 11, 8, 0, false},
		{2, 3, -5, -2, 0, false},
		{0, 0, 7, 1, 0, false},
		{0, -1, 2, 0, numera.NotInvertible, true},
		{5, 2, 0, 0, numera.ZeroModulus, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := PowerMod(big.NewInt(test.base), big.NewInt(test.exp), big.NewInt(test.mod))
			if test.fails {
				a.True(numera.IsFailure(err, test.kind))
				return
			}
			a.NoError(err)
			a.Equal(test.res, r.Int64())
		})
	}
}

// PowerMod(a, -b, m) must invert PowerMod(a, b, m) whenever a and m are
// coprime.
func TestPowerModInverse(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		base := big.NewInt(rnd.Int63n(10000) + 2)
		m := big.NewInt(rnd.Int63n(10000) + 2)
		if intGCD(base, m).Cmp(bigOne) != 0 {
			continue
		}
		b := big.NewInt(rnd.Int63n(1000) + 1)
		fwd, err := PowerMod(base, b, m)
		a.NoError(err)
		bwd, err := PowerMod(base, new(big.Int).Neg(b), m)
		a.NoError(err)
		prod := new(big.Int).Mul(fwd, bwd)
		prod.Mod(prod, m)
		a.Equal(int64(1), prod.Int64())
	}
}

func TestModQuotient(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m, n     int64
		quo, rem int64
	}{
		{14, 6, 2, 2},
		{-3, 4, -1, 1},
		{-3, -4, 0, -3},
		{7, -3, -3, -2},
		{17, 5, 3, 2},
		{-17, 5, -4, 3},
		{17, -5, -4, -3},
		{-17, -5, 3, -2},
		{10, 5, 2, 0},
		{-10, 5, -2, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			m, n := big.NewInt(test.m), big.NewInt(test.n)
			rem, err := Mod(m, n)
			a.NoError(err)
			a.Equal(test.rem, rem.Int64())
			quo, err := Quotient(m, n)
			a.NoError(err)
			a.Equal(test.quo, quo.Int64())
			quo, rem, err = QuotientRemainder(m, n)
			a.NoError(err)
			a.Equal(test.quo, quo.Int64())
			a.Equal(test.rem, rem.Int64())
		})
	}

	// operands beyond int64 take the big.Int path
	big100 := new(big.Int).Lsh(big.NewInt(1), 100)
	rem, err := Mod(big100, big.NewInt(7))
	a.NoError(err)
	a.Equal(int64(2), rem.Int64())
	rem, err = Mod(big100, big.NewInt(-7))
	a.NoError(err)
	a.Equal(int64(-5), rem.Int64())
	quo, err := Quotient(new(big.Int).Neg(big100), new(big.Int).Rsh(big100, 1))
	a.NoError(err)
	a.Equal(int64(-2), quo.Int64())

	_, err = Mod(big.NewInt(5), big.NewInt(0))
	a.True(numera.IsFailure(err, numera.ZeroModulus))
	_, err = Quotient(big.NewInt(5), big.NewInt(0))
	a.True(numera.IsFailure(err, numera.DivisionByInfinity))
}

// quo*n + rem == m must hold for any nonzero n, with rem taking the
// sign of n.
func TestQuotientRemainderIdentity(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		m := big.NewInt(rnd.Int63n(1000000) - 500000)
		n := big.NewInt(rnd.Int63n(1000) - 500)
		if n.Sign() == 0 {
			continue
		}
		quo, rem, err := QuotientRemainder(m, n)
		a.NoError(err)
		check := new(big.Int).Mul(quo, n)
		check.Add(check, rem)
		a.Equal(0, check.Cmp(m))
		if rem.Sign() != 0 {
			a.Equal(n.Sign(), rem.Sign())
		}
	}
}

func TestEvenOddQ(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v         numera.Value
		even, odd bool
	}{
		{numera.FromInt(4), true, false},
		{numera.FromInt(-3), false, true},
		{numera.FromInt(0), true, false},
		{numera.FromInt(-4), true, false},
		{numera.FromRat(1, 2), false, false},
		{numera.FromFloat64(2.0), false, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.even, EvenQ(test.v))
			a.Equal(test.odd, OddQ(test.v))
		})
	}
}

func gauss(re, im int64) numera.Value {
	return numera.FromComplex(big.NewInt(re), big.NewInt(im))
}

func TestCoprimeQ(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		vals []numera.Value
		res  bool
	}{
		{ints(7, 9), true},
		{ints(-4, 9), true},
		{ints(12, 15), false},
		{ints(2, 3, 5), true},
		{ints(2, 4, 5), false},
		{[]numera.Value{gauss(1, 2), gauss(1, -1)}, true},
		{[]numera.Value{gauss(4, 2), gauss(6, 3)}, false},
		{[]numera.Value{numera.FromInt(3), gauss(1, 2)}, true},
		{[]numera.Value{numera.FromRat(1, 2), numera.FromInt(3)}, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, CoprimeQ(test.vals...))
		})
	}
}

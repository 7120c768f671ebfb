// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numtheory

import (
	"crypto/rand"
	"io"
	"math"
	"math/big"

	"github.com/avdva/numera"
)

// PrimeQ reports whether |v| is prime. The test is probabilistic for
// values beyond 64 bits and may, in principle, accept an extremely large
// strong pseudoprime; that approximation is documented behavior.
func PrimeQ(v numera.Value) bool {
	n, ok := v.Int()
	if !ok {
		return false
	}
	return n.Abs(n).ProbablyPrime(0)
}

// Prime returns the n-th prime, 1-indexed: Prime(1) = 2.
func Prime(n int64) (int64, error) {
	if n < 1 {
		return 0, numera.NewError(numera.InvalidPositiveIntegerArgument, n)
	}
	limit := int64(13)
	if n >= 6 {
		// n*(ln n + ln ln n) bounds the n-th prime from above for n >= 6.
		f := float64(n)
		limit = int64(f*(math.Log(f)+math.Log(math.Log(f)))) + 1
	}
	for {
		primes := sievePrimes(limit)
		if int64(len(primes)) >= n {
			return primes[n-1], nil
		}
		limit *= 2
	}
}

// PrimePi returns the count of primes not exceeding v, flooring
// non-integer input. Negative input yields 0.
func PrimePi(v numera.Value) (int64, error) {
	x, ok := v.Rat()
	if !ok {
		return 0, numera.NewError(numera.NotReal, v)
	}
	limit := floorRat(x)
	if limit.Cmp(bigTwo) < 0 {
		return 0, nil
	}
	if !limit.IsInt64() {
		return 0, numera.NewError(numera.MalformedCall, v)
	}
	return int64(len(sievePrimes(limit.Int64()))), nil
}

// NextPrime returns the k-th prime strictly greater than v for k >= 0,
// and the k-th prime strictly less than v for k < 0. Walking backward past
// the smallest prime wraps to the negated forward walk from zero, counting
// only the remaining steps; that boundary produces negative values and is
// kept for compatibility with the historical behavior.
func NextPrime(v numera.Value, k int) (*big.Int, error) {
	x, ok := v.Rat()
	if !ok {
		return nil, numera.NewError(numera.MalformedCall, v)
	}
	if k >= 0 {
		return kthPrimeAbove(x, k), nil
	}
	cur := x
	var last *big.Int
	for i := 0; i < -k; i++ {
		p, ok := prevPrimeBelow(cur)
		if !ok {
			r := kthPrimeAbove(new(big.Rat), k-i)
			return r.Neg(r), nil
		}
		last = p
		cur = new(big.Rat).SetInt(p)
	}
	return last, nil
}

// RandomPrime returns n primes drawn independently and uniformly at random
// (with replacement, by rejection sampling) from the primes in [lo, hi].
// The bounds are reordered if needed and must both be positive. rnd is the
// caller's randomness source; crypto/rand.Reader or a seeded math/rand.Rand
// both serve.
func RandomPrime(rnd io.Reader, lo, hi *big.Int, n int) ([]*big.Int, error) {
	if n < 1 {
		return nil, numera.NewError(numera.MalformedCall, n)
	}
	if lo.Sign() <= 0 {
		return nil, numera.NewError(numera.InvalidPositiveIntegerArgument, lo)
	}
	if hi.Sign() <= 0 {
		return nil, numera.NewError(numera.InvalidPositiveIntegerArgument, hi)
	}
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	first := kthPrimeAbove(new(big.Rat).SetInt(new(big.Int).Sub(lo, bigOne)), 1)
	if first.Cmp(hi) > 0 {
		return nil, numera.NewError(numera.NoPrimeInInterval, lo, hi)
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)
	out := make([]*big.Int, 0, n)
	for len(out) < n {
		delta, err := rand.Int(rnd, span)
		if err != nil {
			return nil, err
		}
		c := delta.Add(delta, lo)
		if c.ProbablyPrime(0) {
			out = append(out, c)
		}
	}
	return out, nil
}

// kthPrimeAbove walks k primes upward from x, strictly increasing at every
// step. Counts below one collapse to a single step.
func kthPrimeAbove(x *big.Rat, k int) *big.Int {
	if k < 1 {
		k = 1
	}
	cur := new(big.Rat).Set(x)
	var p *big.Int
	for i := 0; i < k; i++ {
		p = nextPrimeAbove(cur)
		cur.SetInt(p)
	}
	return p
}

// nextPrimeAbove returns the smallest prime strictly greater than x.
func nextPrimeAbove(x *big.Rat) *big.Int {
	cand := floorRat(x)
	cand.Add(cand, bigOne)
	if cand.Cmp(bigTwo) < 0 {
		cand.Set(bigTwo)
	}
	for !cand.ProbablyPrime(0) {
		cand.Add(cand, bigOne)
	}
	return cand
}

// prevPrimeBelow returns the largest prime strictly less than x,
// or false when no prime lies below it.
func prevPrimeBelow(x *big.Rat) (*big.Int, bool) {
	cand := ceilRat(x)
	cand.Sub(cand, bigOne)
	for cand.Cmp(bigTwo) >= 0 {
		if cand.ProbablyPrime(0) {
			return cand, true
		}
		cand.Sub(cand, bigOne)
	}
	return nil, false
}

// sievePrimes returns all primes not exceeding limit, by the sieve of
// Eratosthenes.
func sievePrimes(limit int64) []int64 {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	var primes []int64
	for i := int64(2); i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j >= 0 && j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// floorRat returns the floor of x. big.Rat denominators are positive, so
// Euclidean division of the parts is exact.
func floorRat(x *big.Rat) *big.Int {
	return new(big.Int).Div(x.Num(), x.Denom())
}

// ceilRat returns the ceiling of x.
func ceilRat(x *big.Rat) *big.Int {
	c := new(big.Int).Neg(x.Num())
	c.Div(c, x.Denom())
	return c.Neg(c)
}

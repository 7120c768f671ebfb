// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numtheory

import (
	"math/big"
	"sort"

	"github.com/avdva/numera"
)

// Factor is a prime together with its exponent in a factorization.
type Factor struct {
	Prime    *big.Int
	Exponent int
}

// trialBound limits trial division; larger factors go to Pollard rho.
const trialBound = 1 << 12

// FactorInteger factors an exact value into (prime, exponent) pairs sorted
// ascending by prime. Negative input contributes a leading (-1, 1) unit
// entry and zero yields a single (0, 1) entry, mirroring the host's
// conventions. A rational merges the factorizations of its numerator and
// denominator with the denominator's exponents negated; a prime whose net
// exponent cancels to zero disappears in the merge. Non-exact input fails
// with ExactNumberRequired.
func FactorInteger(v numera.Value) ([]Factor, error) {
	switch v.Kind() {
	case numera.Integer:
		n, _ := v.Int()
		return factorSigned(n), nil
	case numera.Rational:
		r, _ := v.Rat()
		num := factorSigned(r.Num())
		den := factorAbs(r.Denom())
		return mergeFactors(num, den), nil
	default:
		return nil, numera.NewError(numera.ExactNumberRequired, v)
	}
}

// PrimePowerQ reports whether |v| is a positive power of a single prime.
// 1 and 0 are not prime powers; neither is any non-integer.
func PrimePowerQ(v numera.Value) bool {
	n, ok := v.Int()
	if !ok {
		return false
	}
	n.Abs(n)
	if n.Cmp(bigOne) <= 0 {
		return false
	}
	return len(factorAbs(n)) == 1
}

// IntegerExponent returns the largest e >= 0 such that base^e divides |v|.
// base must be an integer greater than 1 and v an exact integer.
// The exponent of zero is undefined: every power divides it.
func IntegerExponent(v numera.Value, base int64) (int64, error) {
	if base <= 1 {
		return 0, numera.NewError(numera.InvalidBase, base)
	}
	n, ok := v.Int()
	if !ok {
		return 0, numera.NewError(numera.IntegerExpected, v)
	}
	if n.Sign() == 0 {
		return 0, numera.NewError(numera.ExponentUndefined, v)
	}
	n.Abs(n)
	b := big.NewInt(base)
	q, r := new(big.Int), new(big.Int)
	var e int64
	for {
		q.QuoRem(n, b, r)
		if r.Sign() != 0 {
			return e, nil
		}
		n.Set(q)
		e++
	}
}

func factorSigned(n *big.Int) []Factor {
	if n.Sign() == 0 {
		return []Factor{{Prime: new(big.Int), Exponent: 1}}
	}
	var fs []Factor
	if n.Sign() < 0 {
		fs = append(fs, Factor{Prime: big.NewInt(-1), Exponent: 1})
	}
	return append(fs, factorAbs(new(big.Int).Abs(n))...)
}

// factorAbs factors n >= 1 into ascending prime powers: trial division by
// sieved small primes first, then Pollard rho splitting of the remaining
// cofactor until every piece passes the primality test.
func factorAbs(n *big.Int) []Factor {
	if n.Cmp(bigOne) <= 0 {
		return nil
	}
	m := new(big.Int).Set(n)
	var fs []Factor
	q, r, sq := new(big.Int), new(big.Int), new(big.Int)
	p := new(big.Int)
	for _, sp := range sievePrimes(trialBound) {
		p.SetInt64(sp)
		if sq.Mul(p, p).Cmp(m) > 0 {
			break
		}
		e := 0
		for {
			q.QuoRem(m, p, r)
			if r.Sign() != 0 {
				break
			}
			m.Set(q)
			e++
		}
		if e > 0 {
			fs = append(fs, Factor{Prime: big.NewInt(sp), Exponent: e})
		}
	}
	if m.Cmp(bigOne) > 0 {
		rest := primeFactors(m, nil)
		sort.Slice(rest, func(i, j int) bool { return rest[i].Cmp(rest[j]) < 0 })
		for _, rp := range rest {
			if len(fs) > 0 && fs[len(fs)-1].Prime.Cmp(rp) == 0 {
				fs[len(fs)-1].Exponent++
				continue
			}
			fs = append(fs, Factor{Prime: rp, Exponent: 1})
		}
	}
	return fs
}

// primeFactors splits n >= 2 into primes with multiplicity, in no
// particular order.
func primeFactors(n *big.Int, out []*big.Int) []*big.Int {
	if n.ProbablyPrime(0) {
		return append(out, n)
	}
	d := pollardRho(n)
	out = primeFactors(d, out)
	return primeFactors(new(big.Int).Quo(n, d), out)
}

// pollardRho returns a nontrivial factor of an odd composite n, retrying
// the x^2+c polynomial with increasing c until a split is found.
func pollardRho(n *big.Int) *big.Int {
	for c := int64(1); ; c++ {
		if d := rho(n, c); d != nil {
			return d
		}
	}
}

func rho(n *big.Int, c int64) *big.Int {
	cc := big.NewInt(c)
	step := func(v *big.Int) *big.Int {
		next := new(big.Int).Mul(v, v)
		next.Add(next, cc)
		return next.Mod(next, n)
	}
	x, y := big.NewInt(2), big.NewInt(2)
	d, diff := big.NewInt(1), new(big.Int)
	for d.Cmp(bigOne) == 0 {
		x = step(x)
		y = step(step(y))
		diff.Sub(x, y)
		if diff.Sign() == 0 {
			return nil // cycle without a factor, retry with another c
		}
		diff.Abs(diff)
		d.GCD(nil, nil, diff, n)
	}
	if d.Cmp(n) == 0 {
		return nil
	}
	return d
}

// mergeFactors merges two ascending factorizations, negating the exponents
// of the second (denominator) side. Equal primes sum their exponents and a
// zero sum drops out of the result.
func mergeFactors(num, den []Factor) []Factor {
	out := make([]Factor, 0, len(num)+len(den))
	i, j := 0, 0
	for i < len(num) || j < len(den) {
		switch {
		case j >= len(den) || (i < len(num) && num[i].Prime.Cmp(den[j].Prime) < 0):
			out = append(out, num[i])
			i++
		case i >= len(num) || num[i].Prime.Cmp(den[j].Prime) > 0:
			out = append(out, Factor{Prime: den[j].Prime, Exponent: -den[j].Exponent})
			j++
		default:
			if e := num[i].Exponent - den[j].Exponent; e != 0 {
				out = append(out, Factor{Prime: num[i].Prime, Exponent: e})
			}
			i++
			j++
		}
	}
	return out
}

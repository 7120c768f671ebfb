// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numtheory

import "math/big"

// gaussianInt is a Gaussian integer re + im*i.
type gaussianInt struct {
	re, im *big.Int
}

// norm returns re^2 + im^2.
func (g gaussianInt) norm() *big.Int {
	n := new(big.Int).Mul(g.re, g.re)
	return n.Add(n, new(big.Int).Mul(g.im, g.im))
}

// isUnit reports whether g is one of 1, -1, i, -i.
func (g gaussianInt) isUnit() bool {
	return g.norm().Cmp(bigOne) == 0
}

// gaussianGCD returns a greatest common divisor of a and b, unique up to
// multiplication by a unit, via the Euclidean algorithm with rounded
// division.
func gaussianGCD(a, b gaussianInt) gaussianInt {
	for b.norm().Sign() != 0 {
		a, b = b, gaussianMod(a, b)
	}
	return a
}

// gaussianMod returns the remainder of a divided by b, where the quotient
// rounds each coordinate of a/b to the nearest integer. Rounding keeps
// norm(rem) < norm(b), so the Euclidean loop terminates.
func gaussianMod(a, b gaussianInt) gaussianInt {
	// a/b = a*conj(b) / norm(b)
	n := b.norm()
	reNum := new(big.Int).Mul(a.re, b.re)
	reNum.Add(reNum, new(big.Int).Mul(a.im, b.im))
	imNum := new(big.Int).Mul(a.im, b.re)
	imNum.Sub(imNum, new(big.Int).Mul(a.re, b.im))
	qre := roundDiv(reNum, n)
	qim := roundDiv(imNum, n)

	// rem = a - q*b
	rre := new(big.Int).Mul(qre, b.re)
	rre.Sub(rre, new(big.Int).Mul(qim, b.im))
	rre.Sub(a.re, rre)
	rim := new(big.Int).Mul(qre, b.im)
	rim.Add(rim, new(big.Int).Mul(qim, b.re))
	rim.Sub(a.im, rim)
	return gaussianInt{re: rre, im: rim}
}

// roundDiv returns num/den rounded to the nearest integer; den > 0.
func roundDiv(num, den *big.Int) *big.Int {
	q := new(big.Int).Lsh(num, 1)
	q.Add(q, den)
	d := new(big.Int).Lsh(den, 1)
	return floorQuo(q, d)
}

// floorQuo returns the floor of m/n for n > 0.
func floorQuo(m, n *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(m, n, new(big.Int))
	if r.Sign() < 0 {
		q.Sub(q, bigOne)
	}
	return q
}

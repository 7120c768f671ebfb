// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package digits converts real numbers into digit sequences in an arbitrary
// integer base. It supports default precision-driven output, explicit digit
// counts with padding and truncation, explicit starting positions, and
// repeating-tail detection for rationals.
package digits

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/numera"
	"github.com/avdva/numera/internal/mathutil"
)

// Indeterminate marks a requested digit that lies beyond the known
// precision of the input.
const Indeterminate = -1

// Sequence is the result of a digit expansion of |v|:
//	|v| = 0.d1 d2 d3 ... * base^Exponent,
// where d1 d2 d3 ... are the digits of Digits followed, if Tail is not
// empty, by Tail repeated forever. The sign is not encoded; callers report
// it separately via Value.Sign().
type Sequence struct {
	Digits   []int
	Tail     []int
	Exponent int
}

type config struct {
	base      int
	length    int
	hasLength bool
	pos       int
	hasPos    bool
	prec      int
	hasPrec   bool
}

// Option configures a single Digits call.
type Option func(*config)

// Base sets the target base. The default is 10.
func Base(b int) Option {
	return func(c *config) {
		c.base = b
	}
}

// Length requests exactly n digits: longer expansions are truncated keeping
// the most significant digits, shorter ones are padded on the right with
// zeros (exact input) or Indeterminate (approximate input).
func Length(n int) Option {
	return func(c *config) {
		c.length = n
		c.hasLength = true
	}
}

// StartPosition makes the first returned digit the coefficient of base^p.
func StartPosition(p int) Option {
	return func(c *config) {
		c.pos = p
		c.hasPos = true
	}
}

// Precision overrides the decimal significance assumed for the input:
// floats carry their own by default, and rationals expanded to an explicit
// length get just enough digits to cover the requested window.
func Precision(digits int) Option {
	return func(c *config) {
		c.prec = digits
		c.hasPrec = true
	}
}

// Digits expands v into base-b digits.
func Digits(v numera.Value, opts ...Option) (Sequence, error) {
	cfg := config{base: 10}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.base < 2 {
		return Sequence{}, numera.NewError(numera.InvalidBase, cfg.base)
	}
	if cfg.hasLength && cfg.length < 0 {
		return Sequence{}, numera.NewError(numera.InvalidLength, cfg.length)
	}
	if !v.IsReal() {
		return Sequence{}, numera.NewError(numera.NotReal, v)
	}
	v = v.Abs()
	switch v.Kind() {
	case numera.Rational:
		if !cfg.hasLength && !cfg.hasPos {
			return expandRational(v, cfg)
		}
		return expand(v, cfg)
	case numera.Float:
		if v.Precision() <= 0 && !cfg.hasPrec {
			if !cfg.hasLength {
				return Sequence{}, numera.NewError(numera.UndeterminedDigitCount, v)
			}
			return allIndeterminate(v, cfg)
		}
		return expand(v, cfg)
	default:
		return expand(v, cfg)
	}
}

// expand produces a plain (non-repeating) digit sequence for an integer,
// a float, or a rational that was requested with an explicit length or
// position. It follows one routing for every input kind: compute the
// radix-point exponent, extract digits, then apply the position window,
// the display-length padding, and the length truncation/padding, in that
// order.
func expand(v numera.Value, cfg config) (Sequence, error) {
	x, _ := v.Rat()
	isInt := v.Kind() == numera.Integer
	isRat := v.Kind() == numera.Rational
	base := int64(cfg.base)

	exp := 1
	if x.Sign() != 0 {
		exp = ratExponent(x, base)
	} else if cfg.hasLength {
		exp = 0
	}

	displayLen := displayLength(v, cfg, exp)

	var digs []int
	if x.Sign() != 0 {
		if cfg.base == 10 && v.Kind() == numera.Float {
			// Base 10 reads a float's digits off its decimal string
			// form; the generic extraction below agrees with it.
			d, _ := v.Dec()
			digs = decimalStringDigits(d)
		} else {
			fracCount := 0
			if !isInt {
				fracCount = displayLen - exp
				if fracCount < 0 {
					fracCount = 0
				}
			}
			digs = realDigits(x, base, fracCount)
			digs = stripLeadingZeros(digs)
			// A precision override can leave more integer digits
			// than the display length admits; the excess is cut
			// before windowing.
			if cfg.base != 10 && !isInt && displayLen >= 1 && len(digs) > displayLen {
				digs = digs[:displayLen-1]
			}
		}
	}

	if cfg.hasPos {
		digs, displayLen = shiftWindow(digs, displayLen, exp-1-cfg.pos)
		exp = cfg.pos + 1
	}
	if !isRat {
		for len(digs) < displayLen {
			digs = append(digs, 0)
		}
	}
	if cfg.hasLength {
		digs = fitLength(digs, cfg.length, isInt || isRat)
	}
	return Sequence{Digits: digs, Exponent: exp}, nil
}

// expandRational produces the eventually-periodic expansion of a rational
// requested without an explicit length: a finite head and, when the
// expansion is infinite, the repeating tail starting at the first repeated
// long-division remainder.
func expandRational(v numera.Value, cfg config) (Sequence, error) {
	x, _ := v.Rat()
	base := int64(cfg.base)
	b := big.NewInt(base)

	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(x.Num(), x.Denom(), rem)
	head := bigDigits(quo, base)

	var frac []int
	tailStart := -1
	seen := map[string]int{rem.String(): 0}
	d := new(big.Int)
	for rem.Sign() != 0 {
		rem.Mul(rem, b)
		d.QuoRem(rem, x.Denom(), rem)
		frac = append(frac, int(d.Int64()))
		key := rem.String()
		if at, ok := seen[key]; ok {
			tailStart = at
			break
		}
		seen[key] = len(frac)
	}

	exp := 1
	if x.Sign() != 0 {
		exp = ratExponent(x, base)
	}
	if tailStart < 0 { // finite expansion
		head = stripLeadingZeros(append(head, frac...))
		return Sequence{Digits: head, Exponent: exp}, nil
	}
	tail := frac[tailStart:]
	head = append(head, frac[:tailStart]...)
	head, tail = canonicalizeTail(head, tail)
	head = stripLeadingZeros(head)
	return Sequence{Digits: head, Tail: tail, Exponent: exp}, nil
}

// canonicalizeTail rotates trailing head digits that merely repeat the end
// of the tail into the tail, so the period starts as early as possible, and
// then cycles a leading zero run of the tail to its end when no significant
// head digit precedes it, aligning the tail with the reported exponent.
func canonicalizeTail(head, tail []int) ([]int, []int) {
	for len(head) > 0 && head[len(head)-1] == tail[len(tail)-1] {
		copy(tail[1:], tail[:len(tail)-1])
		tail[0] = head[len(head)-1]
		head = head[:len(head)-1]
	}
	allZero := true
	for _, d := range head {
		if d != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		for i := 0; i < len(tail) && tail[0] == 0; i++ {
			copy(tail, tail[1:])
			tail[len(tail)-1] = 0
		}
	}
	return head, tail
}

// allIndeterminate reports a fixed-length request against a value with no
// known digits: every requested position is Indeterminate.
func allIndeterminate(v numera.Value, cfg config) (Sequence, error) {
	x, _ := v.Rat()
	exp := 1
	if x.Sign() != 0 {
		exp = ratExponent(x, int64(cfg.base))
	} else {
		exp = 0
	}
	if cfg.hasPos {
		exp = cfg.pos + 1
	}
	digs := make([]int, cfg.length)
	for i := range digs {
		digs[i] = Indeterminate
	}
	return Sequence{Digits: digs, Exponent: exp}, nil
}

// displayLength returns the number of digits the input is good for: one
// less than the digit count for exact integers (with a floor of one), and
// the known significance converted to the target base otherwise.
func displayLength(v numera.Value, cfg config, exp int) int {
	if v.Kind() == numera.Integer {
		if exp <= 1 {
			return 1
		}
		return exp - 1
	}
	prec := cfg.prec
	if !cfg.hasPrec {
		if v.Kind() == numera.Float {
			prec = v.Precision()
		} else {
			// A rational expanded to an explicit length is read
			// through an equivalent float carrying just enough
			// decimal digits for the requested window.
			posLen := 1
			if cfg.hasPos && cfg.pos < 0 {
				posLen = -cfg.pos + 1
			}
			prec = int(float64(cfg.length+posLen)*math.Log10(float64(cfg.base))) + 1
		}
	}
	return int(math.Round(float64(prec) / math.Log10(float64(cfg.base))))
}

// realDigits returns the digits of the integer part of x followed by
// fracCount digits of its fractional part (fewer if the expansion ends).
func realDigits(x *big.Rat, base int64, fracCount int) []int {
	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(x.Num(), x.Denom(), rem)
	out := bigDigits(quo, base)
	if fracCount <= 0 {
		return out
	}
	b := big.NewInt(base)
	d := new(big.Int)
	for i := 0; i < fracCount && rem.Sign() != 0; i++ {
		rem.Mul(rem, b)
		d.QuoRem(rem, x.Denom(), rem)
		out = append(out, int(d.Int64()))
	}
	return out
}

// decimalStringDigits reads the base-10 digits straight off the plain
// string form of d, skipping the sign, the point and leading zeros.
func decimalStringDigits(d decimal.Decimal) []int {
	var out []int
	for _, c := range d.String() {
		if c < '0' || c > '9' {
			continue
		}
		if len(out) == 0 && c == '0' {
			continue
		}
		out = append(out, int(c-'0'))
	}
	return out
}

// bigDigits returns the base-b digits of n >= 0, most significant first.
// n == 0 yields a single zero digit.
func bigDigits(n *big.Int, base int64) []int {
	if n.IsUint64() {
		return smallDigits(n.Uint64(), uint64(base))
	}
	var out []int
	q, m := new(big.Int).Set(n), new(big.Int)
	b := big.NewInt(base)
	for q.Sign() != 0 {
		q.QuoRem(q, b, m)
		out = append(out, int(m.Int64()))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func smallDigits(n, base uint64) []int {
	out := make([]int, mathutil.DigitLen(n, base))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = int(n % base)
		n /= base
	}
	return out
}

// ratExponent returns e such that base^(e-1) <= x < base^e for x > 0,
// i.e. floor(log_base(x)) + 1, computed exactly.
func ratExponent(x *big.Rat, base int64) int {
	num, den := x.Num(), x.Denom()
	if num.CmpAbs(den) >= 0 {
		q := new(big.Int).Quo(new(big.Int).Abs(num), den)
		if q.IsUint64() {
			return mathutil.DigitLen(q.Uint64(), uint64(base))
		}
		return len(bigDigits(q, base))
	}
	b := big.NewInt(base)
	n := new(big.Int).Abs(num)
	k := 0
	for n.Cmp(den) < 0 {
		n.Mul(n, b)
		k++
	}
	return 1 - k
}

func stripLeadingZeros(digs []int) []int {
	i := 0
	for i < len(digs) && digs[i] == 0 {
		i++
	}
	if i == len(digs) {
		return nil
	}
	return digs[i:]
}

// shiftWindow aligns digits with a requested start position: move is the
// distance from the current leading digit to the requested one. A negative
// move pads zeros above the expansion, a positive one drops high digits and
// shrinks the display length accordingly.
func shiftWindow(digs []int, displayLen, move int) ([]int, int) {
	if move <= 0 {
		padded := make([]int, -move, -move+len(digs))
		return append(padded, digs...), displayLen
	}
	if move >= len(digs) {
		digs = nil
	} else {
		digs = digs[move:]
	}
	return digs, displayLen - move
}

// fitLength pads or truncates digits to exactly length entries. Truncation
// keeps the most significant digits; padding appends zeros for exact input
// and Indeterminate for approximate input whose precision is exhausted.
func fitLength(digs []int, length int, exact bool) []int {
	if len(digs) >= length {
		return digs[:length]
	}
	pad := 0
	if !exact {
		pad = Indeterminate
	}
	for len(digs) < length {
		digs = append(digs, pad)
	}
	return digs
}

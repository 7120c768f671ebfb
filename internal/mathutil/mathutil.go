package mathutil

import (
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// DigitLen returns the number of base-'base' digits in 'value'.
// It generalizes DecimalDigits; base must be at least 2.
func DigitLen(value, base uint64) int {
	if base == 10 {
		return DecimalDigits(value)
	}
	if base == 2 {
		if value == 0 {
			return 1
		}
		return BinaryDigits(value)
	}
	result := 1
	for value >= base {
		value /= base
		result++
	}
	return result
}

// FloorDiv returns the floor of m/n, so the result is rounded towards
// negative infinity, unlike Go's built-in division.
func FloorDiv(m, n int64) int64 {
	q := m / n
	if (m%n != 0) && ((m < 0) != (n < 0)) {
		q--
	}
	return q
}

// FloorMod returns m mod n with the result taking the sign of n.
func FloorMod(m, n int64) int64 {
	r := m % n
	if r != 0 && ((r < 0) != (n < 0)) {
		r += n
	}
	return r
}

package mathutil

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{12345, 5},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestDigitLen(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    uint64
		base uint64
		res  int
	}{
		{0, 2, 1},
		{0, 10, 1},
		{0, 7, 1},
		{1, 2, 1},
		{5, 2, 3},
		{1024, 2, 11},
		{45, 10, 2},
		{220, 140, 2},
		{342, 7, 3},
		{math.MaxUint64, 16, 16},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DigitLen(test.v, test.base))
			if b := int(test.base); test.v > 0 && b >= 2 && b <= 36 {
				a.Equal(len(strconv.FormatUint(test.v, b)), DigitLen(test.v, test.base))
			}
		})
	}
}

func TestFloorDivMod(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m, n     int64
		quo, rem int64
	}{
		{14, 6, 2, 2},
		{-3, 4, -1, 1},
		{-3, -4, 0, -3},
		{23, 7, 3, 2},
		{-17, 7, -3, 4},
		{-17, -4, 4, -1},
		{19, -4, -5, -1},
		{20, 5, 4, 0},
		{-20, 5, -4, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			quo, rem := FloorDiv(test.m, test.n), FloorMod(test.m, test.n)
			a.Equal(test.quo, quo)
			a.Equal(test.rem, rem)
			a.Equal(test.m, quo*test.n+rem)
		})
	}
}

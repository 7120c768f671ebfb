// Copyright 2021 Aleksandr Demakin. All rights reserved.

package digits

import (
	"fmt"

	"github.com/avdva/numera"
)

func ExampleDigits() {
	seq, err := Digits(numera.FromFloat64(123.55555))
	if err != nil {
		panic(err)
	}
	fmt.Println(seq.Digits, seq.Exponent)

	seq, err = Digits(numera.FromRat(19, 7))
	if err != nil {
		panic(err)
	}
	fmt.Println(seq.Digits, seq.Tail, seq.Exponent)

	seq, err = Digits(numera.FromInt(12345), Base(2), Length(4))
	if err != nil {
		panic(err)
	}
	fmt.Println(seq.Digits, seq.Exponent)

	// Output:
	// [1 2 3 5 5 5 5 5 0 0 0 0 0 0 0 0] 3
	// [2] [7 1 4 2 8 5] 1
	// [1 1 0 0] 14
}

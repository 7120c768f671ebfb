// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numtheory

import (
	"fmt"

	"github.com/avdva/numera"
)

func ExampleFactorInteger() {
	factors, err := FactorInteger(numera.FromRat(2010, 2011))
	if err != nil {
		panic(err)
	}
	for _, f := range factors {
		fmt.Printf("{%v, %d} ", f.Prime, f.Exponent)
	}
	fmt.Println()
	// Output:
	// {2, 1} {3, 1} {5, 1} {67, 1} {2011, -1}
}

func ExampleNextPrime() {
	p, err := NextPrime(numera.FromInt(10000), 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)

	p, err = NextPrime(numera.FromInt(100), -5)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)

	// Output:
	// 10007
	// 73
}

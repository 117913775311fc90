package field_test

import (
	"encoding/hex"
	"fmt"

	"github.com/AlexanderYastrebov/field25519/field"
)

func ExampleElement_Invert() {
	two := make([]byte, 32)
	two[0] = 2

	a, _ := new(field.Element).SetBytes(two)
	aInv := new(field.Element).Invert(a)

	product := new(field.Element).Multiply(a, aInv)
	fmt.Println(hex.EncodeToString(product.Bytes()))
	// Output:
	// 0100000000000000000000000000000000000000000000000000000000000000
}

func ExampleElement_Swap() {
	a, _ := new(field.Element).SetBytes(decodeHexString("02"))
	b, _ := new(field.Element).SetBytes(decodeHexString("03"))

	a.Swap(b, 0) // no-op
	a.Swap(b, 1) // exchanges a and b

	fmt.Println(a.Bytes()[0], b.Bytes()[0])
	// Output:
	// 3 2
}

func decodeHexString(s string) []byte {
	b := make([]byte, 32)
	d, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	copy(b, d)
	return b
}

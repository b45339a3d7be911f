package token_test

import (
	"encoding/json"
	"fmt"

	"github.com/unc-go/token"
	"lukechampine.com/uint128"
)

// In this example, a validator's staking reward is added to its balance,
// with the checked variant guarding against overflow.
func Example_stakingReward() {
	balance := token.MustParse("100.5 UNC")
	reward := token.MustParse("250 yUNC")

	balance, err := balance.Add(reward)
	if err != nil {
		panic(err)
	}

	fmt.Println(balance)
	fmt.Printf("%d yoctoUNC\n", balance)

	// Output:
	// 100.51 UNC
	// 100500000000000000000000250 yoctoUNC
}

func ExampleParse() {
	a, err := token.Parse("0.123456 UNC")
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Yocto())
	// Output: 123456000000000000000000
}

func ExampleMustParse() {
	a := token.MustParse("123456 YN")
	fmt.Println(a.Yocto())
	// Output: 123456
}

func ExampleAmount_String() {
	fmt.Println(token.FromYocto64(0))
	fmt.Println(token.FromYocto64(1))
	fmt.Println(token.MustFromMilliUnc(42))
	fmt.Println(token.MustFromUnc(75))
	// Output:
	// 0 UNC
	// <0.001 UNC
	// 0.042 UNC
	// 75.00 UNC
}

func ExampleAmount_SaturatingQuo() {
	a := token.MustFromUnc(10)
	fmt.Println(a.SaturatingQuo(uint128.From64(4)))
	fmt.Println(a.SaturatingQuo(uint128.Zero))
	// Output:
	// 2.50 UNC
	// 0 UNC
}

func ExampleAmount_MarshalJSON() {
	type transfer struct {
		Receiver string       `json:"receiver"`
		Deposit  token.Amount `json:"deposit"`
	}
	data, err := json.Marshal(transfer{
		Receiver: "alice.unc",
		Deposit:  token.MustFromMilliUnc(1500),
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"receiver":"alice.unc","deposit":"1500000000000000000000000"}
}

package refined_test

import (
	"fmt"

	"github.com/roach88/refined"
	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/boundable/unsigned"
	"github.com/roach88/refined/character"
)

func ExampleRefine() {
	digit, err := refined.Refine[rune, character.IsDigit[rune]]('0')
	fmt.Println(string(digit.Get()), err)

	_, err = refined.Refine[rune, character.IsDigit[rune]]('a')
	fmt.Println(err)
	// Output:
	// 0 <nil>
	// refinement violated: must be a digit
}

func ExampleRefine_string() {
	type Name = unsigned.ClosedInterval[string, boundable.U1, boundable.U10]

	good, err := refined.Refine[string, Name]("Good name")
	fmt.Println(good, err)

	_, err = refined.Refine[string, Name]("Bad name, too long")
	fmt.Println(err)
	// Output:
	// Good name <nil>
	// refinement violated: must be greater than or equal to 1 and must be less than or equal to 10
}

func ExampleRefine_integer() {
	type Small = unsigned.LessThanEqual[uint8, boundable.U100]

	v, err := refined.Refine[uint8, Small](99)
	fmt.Println(v, err)

	_, err = refined.Refine[uint8, Small](123)
	fmt.Println(err)
	// Output:
	// 99 <nil>
	// refinement violated: must be less than or equal to 100
}

func ExampleAddUnsigned() {
	type Operand = unsigned.ClosedInterval[uint8, boundable.U1, boundable.U10]
	type Sum = unsigned.ClosedInterval[uint8, boundable.U2, boundable.U20]

	a := refined.MustRefine[uint8, Operand](9)
	b := refined.MustRefine[uint8, Operand](6)

	sum, err := refined.AddUnsigned[Sum](a, b)
	fmt.Println(sum, err)
	// Output: 15 <nil>
}

func ExampleRefinement_Modify() {
	v := refined.MustRefine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](90)

	_, err := v.Modify(func(n uint8) uint8 { return n + 20 })
	fmt.Println(err)
	fmt.Println(v.IsRefined())
	// Output:
	// refinement violated: must be less than or equal to 100
	// false
}

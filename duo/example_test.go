package duo_test

import (
	"fmt"

	"github.com/katalvlaran/sdset/duo"
)

func ExampleOpBuilder_union() {
	ob, err := duo.NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 3, 4, 5, 6, 7})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ob.Union().Slice())
	// Output: [1 2 3 4 5 6 7]
}

func ExampleOpBuilder_difference() {
	ob, _ := duo.NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 3, 4, 5, 6, 7})
	fmt.Println(ob.Difference().Slice())
	// Output: [1]
}

func ExampleOpBuilderByKey_differenceByKey() {
	type stockLine struct {
		sku       int
		warehouse string
	}
	a := []stockLine{{1, "north"}, {1, "south"}, {2, "north"}}
	b := []int{1}

	ob, _ := duo.NewOpBuilderByKey(a, func(s stockLine) int { return s.sku }, b, func(k int) int { return k })
	fmt.Println(ob.DifferenceByKey().Slice())
	// Output: [{2 north}]
}

package multi_test

import (
	"fmt"

	"github.com/katalvlaran/sdset/multi"
)

func ExampleOpBuilder_union() {
	ob, err := multi.NewOpBuilder([]int{1, 4, 7}, []int{2, 4, 6}, []int{3, 4, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ob.Union().Slice())
	// Output: [1 2 3 4 5 6 7]
}

func ExampleOpBuilder_symmetricDifference() {
	ob, _ := multi.NewOpBuilder([]int{1, 2}, []int{2, 3}, []int{})
	fmt.Println(ob.SymmetricDifference().Slice())
	// Output: [1 3]
}

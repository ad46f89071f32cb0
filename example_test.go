package turkshead_test

import (
	"fmt"

	"github.com/gogpu/turkshead"
)

func ExampleNew() {
	k, err := turkshead.New(3, 5, 40, 60, 2)
	if err != nil {
		panic(err)
	}
	all, _ := turkshead.CountSegments(k)
	fmt.Println(k.Paths(), k.MaxTheta(), all)
	// Output: 1 600 601
}

func ExampleNew_invalid() {
	_, err := turkshead.New(0, 5, 40, 60, 2)
	fmt.Println(err)
	// Output: turkshead: invalid parameters: leads must be positive, got 0
}

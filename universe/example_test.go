package universe_test

import (
	"fmt"

	"github.com/katalvlaran/cdt2d/universe"
)

func ExampleNew() {
	u, err := universe.New(4, false, universe.DefaultCapacity(8))
	if err != nil {
		panic(err)
	}

	fmt.Println(u.VertexCount(), u.Volume())
	// Output: 12 24
}

func ExampleUniverse_AddMove() {
	u, _ := universe.New(4, false, universe.DefaultCapacity(8))

	u.AddMove(0)

	fmt.Println(u.Volume(), u.SliceSize(0))
	// Output: 26 4
}

package bag_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cdt2d/bag"
)

// ExampleBag demonstrates building a subset and drawing a uniform
// sample from it.
func ExampleBag() {
	b := bag.New[int32](100)
	b.Add(10)
	b.Add(20)
	b.Add(30)

	rng := rand.New(rand.NewSource(1))
	pick := b.UniformPick(rng)

	fmt.Println(b.Size(), pick == 10 || pick == 20 || pick == 30)
	// Output: 3 true
}

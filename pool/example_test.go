package pool_test

import (
	"fmt"

	"github.com/katalvlaran/cdt2d/pool"
)

// ExamplePool demonstrates allocating, mutating, and freeing slots.
// A freed label is recycled by the very next Create call.
func ExamplePool() {
	p := pool.New[int](3)

	a := p.Create()
	*p.At(a) = 42

	b := p.Create()
	*p.At(b) = 7

	p.Destroy(a)
	c := p.Create() // reuses a's slot
	*p.At(c) = 99

	fmt.Println(p.Size(), a == c, *p.At(b))
	// Output: 2 true 7
}

package simulation_test

import (
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/cdt2d/simulation"
	"github.com/katalvlaran/cdt2d/universe"
)

// Example constructs a small toroidal triangulation, runs a short
// Metropolis chain against a target volume, and reports the resulting
// triangle count.
func Example() {
	u, err := universe.New(6, false, universe.DefaultCapacity(50))
	if err != nil {
		panic(err)
	}

	sim := simulation.New(u, simulation.Config{
		Lambda:       math.Ln2,
		TargetVolume: 50,
		Seed:         1,
	}, nil)
	sim.Register(simulation.NewVolumeProfileObservable(os.TempDir(), "example-run"))

	if err := sim.Run(1, false); err != nil {
		panic(err)
	}

	fmt.Println(u.Volume() >= 50)
	// Output: true
}

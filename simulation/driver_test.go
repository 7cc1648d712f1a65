package simulation_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt2d/simulation"
	"github.com/katalvlaran/cdt2d/universe"
)

func newDriver(t *testing.T, sphere bool, slices, targetVolume int, seed int64) (*universe.Universe, *simulation.Simulation) {
	t.Helper()
	u, err := universe.New(slices, sphere, universe.DefaultCapacity(targetVolume))
	require.NoError(t, err)

	sim := simulation.New(u, simulation.Config{
		Lambda:       math.Ln2,
		Epsilon:      0.01,
		TargetVolume: targetVolume,
		Seed:         seed,
	}, nil)
	return u, sim
}

func TestRun_SweepEndSnapsToExactTargetVolume(t *testing.T) {
	u, sim := newDriver(t, false, 8, 100, 1)

	dir := t.TempDir()
	sim.Register(simulation.NewVolumeProfileObservable(dir, "scenario3"))

	require.NoError(t, sim.Run(1, false))
	assert.Equal(t, 100, u.Volume())
	assert.NoError(t, u.Check())
}

func TestRun_ReproducibleWithIdenticalSeed(t *testing.T) {
	dir := t.TempDir()

	u1, sim1 := newDriver(t, false, 8, 60, 7)
	sim1.Register(simulation.NewVolumeProfileObservable(dir, "a"))
	require.NoError(t, sim1.Run(3, false))

	u2, sim2 := newDriver(t, false, 8, 60, 7)
	sim2.Register(simulation.NewVolumeProfileObservable(dir, "b"))
	require.NoError(t, sim2.Run(3, false))

	assert.Equal(t, u1.Volume(), u2.Volume())
	assert.Equal(t, u1.VertexCount(), u2.VertexCount())
	assert.Equal(t, u1.FourVertexCount(), u2.FourVertexCount())
	assert.Equal(t, u1.FlippableCount(), u2.FlippableCount())
}

func TestRun_SphereCapInvariantHoldsAfterSweeps(t *testing.T) {
	u, sim := newDriver(t, true, 6, 40, 3)

	dir := t.TempDir()
	sim.Register(simulation.NewVolumeProfileObservable(dir, "scenario6"))

	require.NoError(t, sim.Run(5, false))

	assert.Equal(t, 3, u.SliceSize(0))
	assert.Equal(t, 3, u.SliceSize(u.NSlices()-1))
	assert.NoError(t, u.Check())
}

func TestRun_RejectsMeasurementsWithNoObservables(t *testing.T) {
	_, sim := newDriver(t, false, 8, 40, 1)
	err := sim.Run(1, true)
	assert.ErrorIs(t, err, simulation.ErrNoObservables)
}

func TestRun_ZeroMeasurementsSkipsObservableRequirement(t *testing.T) {
	_, sim := newDriver(t, false, 8, 0, 1)
	assert.NoError(t, sim.Run(0, true))
}

func TestRun_WritesCheckpointAfterThermalizeAndEveryTenSweeps(t *testing.T) {
	u, err := universe.New(8, false, universe.DefaultCapacity(60))
	require.NoError(t, err)

	dir := t.TempDir()
	checkpointPath := filepath.Join(dir, "geometry.dat")
	sim := simulation.New(u, simulation.Config{
		Lambda:         math.Ln2,
		Epsilon:        0.01,
		TargetVolume:   60,
		Seed:           5,
		CheckpointPath: checkpointPath,
	}, nil)
	sim.Register(simulation.NewVolumeProfileObservable(dir, "checkpoints"))

	require.NoError(t, sim.Run(10, false))

	f, err := os.Open(checkpointPath)
	require.NoError(t, err)
	defer f.Close()

	imported, err := universe.Import(f, false, universe.DefaultCapacity(60))
	require.NoError(t, err)
	assert.Equal(t, u.Volume(), imported.Volume())
	assert.Equal(t, u.VertexCount(), imported.VertexCount())
}

package simulation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt2d/simulation"
	"github.com/katalvlaran/cdt2d/universe"
)

// TestFileObservable_ClearTruncatesThenMeasureAppends exercises the
// resolved Open Question (b) contract directly: Clear must start the
// file fresh, and every subsequent Measure call appends to that same
// file rather than to some other name.
func TestFileObservable_ClearTruncatesThenMeasureAppends(t *testing.T) {
	u, err := universe.New(4, false, universe.DefaultCapacity(8))
	require.NoError(t, err)
	snap := u.Rebuild()

	dir := t.TempDir()
	obs := simulation.NewVolumeProfileObservable(dir, "run")
	path := filepath.Join(dir, "volume_profile-run.dat")

	require.NoError(t, os.WriteFile(path, []byte("stale data from a previous run\n"), 0o644))

	require.NoError(t, obs.Clear())
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, before, "Clear must truncate the file, not just skip writing")

	require.NoError(t, obs.Measure(snap))
	require.NoError(t, obs.Measure(snap))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, splitLines(after), 2, "each Measure call appends one line to the same file Clear truncated")
}

func splitLines(b []byte) []string {
	var lines []string
	start := 0
	for i, c := range b {
		if c == '\n' {
			lines = append(lines, string(b[start:i]))
			start = i + 1
		}
	}
	return lines
}

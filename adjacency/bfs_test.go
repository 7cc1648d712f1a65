package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cdt2d/adjacency"
	"github.com/katalvlaran/cdt2d/pool"
)

// line builds a 4-vertex path 0-1-2-3 for distance checks.
func line() *adjacency.Snapshot {
	return &adjacency.Snapshot{
		Vertices: map[pool.Label]adjacency.VertexInfo{
			0: {Neighbors: []pool.Label{1}},
			1: {Neighbors: []pool.Label{0, 2}},
			2: {Neighbors: []pool.Label{1, 3}},
			3: {Neighbors: []pool.Label{2}},
		},
	}
}

func TestDistances_Path(t *testing.T) {
	s := line()
	d := s.Distances(0)
	assert.Equal(t, 0, d[0])
	assert.Equal(t, 1, d[1])
	assert.Equal(t, 2, d[2])
	assert.Equal(t, 3, d[3])
}

func TestBall_Radius(t *testing.T) {
	s := line()
	ball := s.Ball(0, 1)
	assert.ElementsMatch(t, []pool.Label{0, 1}, ball)
}

func TestVolumeProfile_Copies(t *testing.T) {
	s := &adjacency.Snapshot{SliceSizes: []int{3, 4, 4, 3}}
	profile := s.VolumeProfile()
	profile[0] = 99
	assert.Equal(t, 3, s.SliceSizes[0], "VolumeProfile must return a copy, not an alias")
}

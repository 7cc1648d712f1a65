package universe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt2d/pool"
	"github.com/katalvlaran/cdt2d/universe"
)

func TestRebuild_TorusLinkCount(t *testing.T) {
	u := newTorus(t)

	snap := u.Rebuild()

	assert.Equal(t, u.VertexCount(), snap.TotalVertices())
	assert.Equal(t, u.Volume(), snap.TotalTriangles())
	assert.Equal(t, 2*snap.TotalVertices(), snap.TotalTriangles())
	assert.Len(t, snap.Links, 3*snap.TotalVertices())
	assert.Equal(t, []int{3, 3, 3, 3}, snap.VolumeProfile())

	for _, info := range snap.Vertices {
		assert.Equal(t, 6, info.Order, "initial torus lattice is a regular order-6 triangulation")
	}
}

func TestRebuild_SphereCapOrder(t *testing.T) {
	u, err := universe.New(6, true, universe.DefaultCapacity(40))
	require.NoError(t, err)

	snap := u.Rebuild()
	assert.Equal(t, 3, snap.SliceSizes[0])
	assert.Equal(t, 3, snap.SliceSizes[5])
}

func TestRebuild_SphereCapTrianglesExposeNoCenterNeighbor(t *testing.T) {
	u, err := universe.New(6, true, universe.DefaultCapacity(40))
	require.NoError(t, err)

	snap := u.Rebuild()

	var sawBottomCap, sawTopCap bool
	for _, tri := range snap.Triangles {
		switch {
		case tri.Time == 0 && tri.Type.String() == "UP":
			sawBottomCap = true
			assert.Equal(t, pool.NoLabel, tri.TC, "bottom-cap UP triangle must not expose a center neighbor")
		case tri.Time == 5 && tri.Type.String() == "DOWN":
			sawTopCap = true
			assert.Equal(t, pool.NoLabel, tri.TC, "top-cap DOWN triangle must not expose a center neighbor")
		default:
			assert.NotEqual(t, pool.NoLabel, tri.TC, "interior triangles keep their center neighbor")
		}
	}
	assert.True(t, sawBottomCap)
	assert.True(t, sawTopCap)
}

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cdt2d/simplex"
)

func TestRecomputeOrientation_Basic(t *testing.T) {
	assert.Equal(t, simplex.Up, simplex.RecomputeOrientation(2, 3))
	assert.Equal(t, simplex.Down, simplex.RecomputeOrientation(3, 2))
}

func TestRecomputeOrientation_SeamCases(t *testing.T) {
	// vc at the seam (time 0), vl well into the bulk: still UP.
	assert.Equal(t, simplex.Up, simplex.RecomputeOrientation(5, 0))
	// vl at the seam (time 0), vc well into the bulk: still DOWN.
	assert.Equal(t, simplex.Down, simplex.RecomputeOrientation(0, 5))
}

func TestOrientation_Opposite(t *testing.T) {
	assert.Equal(t, simplex.Down, simplex.Up.Opposite())
	assert.Equal(t, simplex.Up, simplex.Down.Opposite())
}

func TestLinkClassification(t *testing.T) {
	assert.True(t, simplex.IsTimelike(1, 2))
	assert.False(t, simplex.IsSpacelike(1, 2))
	assert.True(t, simplex.IsSpacelike(3, 3))
	assert.False(t, simplex.IsTimelike(3, 3))
}

package universe

import (
	"math/rand"

	"github.com/katalvlaran/cdt2d/pool"
)

// PickDeleteCandidate uniformly selects a vertex from the order-4
// vertex bag, the candidate pool for a delete move.
func (u *Universe) PickDeleteCandidate(rng *rand.Rand) pool.Label {
	return u.verticesFour.UniformPick(rng)
}

// CanDelete reports whether removing v is structurally legal: its
// time slice must hold at least 4 vertices, so that at least 3 remain
// afterward (the torus/sphere minimum). Since the spherical caps are
// permanently pinned at 3
// vertices by CanAdd and never gain a fourth, this single rule also
// protects them without a separate sphere-specific check. A non-nil
// error (ErrSliceTooSmall) means the move must be rejected.
func (u *Universe) CanDelete(v pool.Label) error {
	if u.sliceSizes[u.vertex(v).Time] < 4 {
		return ErrSliceTooSmall
	}
	return nil
}

// DeleteMove performs the (4,2) move: the inverse of AddMove, removing
// an order-4 vertex v and merging its four surrounding triangles back
// into two. The caller must have already confirmed CanDelete(v) and
// won the Metropolis draw.
func (u *Universe) DeleteMove(v pool.Label) {
	vv := u.vertex(v)
	tl := vv.AnchorLeft
	tr := vv.AnchorRight
	tlc := u.triangle(tl).TC
	trc := u.triangle(tr).TC
	trn := u.triangle(tr).TR
	trcn := u.triangle(trc).TR
	trVR := u.triangle(tr).VR

	u.setTriangleRight(tl, trn)
	u.setTriangleRight(tlc, trcn)

	u.setVertexRight(tl, trVR)
	u.setVertexRight(tlc, trVR)

	u.sliceSizes[vv.Time]--

	if u.trianglesFlip.Contains(tr) {
		u.trianglesFlip.Remove(tr)
		u.trianglesFlip.Add(tl)
	}
	if u.trianglesFlip.Contains(trc) {
		u.trianglesFlip.Remove(trc)
		u.trianglesFlip.Add(tlc)
	}
	u.trianglesAll.Remove(tr)
	u.trianglesAll.Remove(trc)

	u.triangles.Destroy(tr)
	u.triangles.Destroy(trc)
	u.verticesFour.Remove(v)
	u.vertices.Destroy(v)
}
